package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

// TestConfigCommands contains tests for config init and config show.
func TestConfigCommands(t *testing.T) {
	t.Run("ShowWithoutConfig", testConfigShowWithoutConfig)
	t.Run("InitStoresFlags", testConfigInitStoresFlags)
	t.Run("InitRefusesOverwrite", testConfigInitRefusesOverwrite)
	t.Run("ShowJSON", testConfigShowJSON)
}

func testConfigShowWithoutConfig(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "No configuration found") {
		t.Errorf("Expected missing config message: %s", stdout)
	}
}

func testConfigInitStoresFlags(t *testing.T) {
	env := setupTestEnvironment(t)

	stdout, _, err := runCLI(t, "config", "init", "--repo-path", env.RepoDir, "-m", "22", "-n", "0.4")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "Configuration written to") {
		t.Errorf("Expected confirmation: %s", stdout)
	}

	config, err := configs.LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Paths.Repo != env.RepoDir {
		t.Errorf("Expected repo %s, got %s", env.RepoDir, config.Paths.Repo)
	}
	if config.Paths.Flashforge != configs.DefaultFlashforgePath {
		t.Errorf("Expected default FlashPrint path, got %s", config.Paths.Flashforge)
	}
	if config.Defaults.MachineID != "22" || config.Defaults.Nozzle != "0.4" {
		t.Errorf("Unexpected defaults: %+v", config.Defaults)
	}
}

func testConfigInitRefusesOverwrite(t *testing.T) {
	setupTestEnvironment(t)

	if _, _, err := runCLI(t, "config", "init"); err != nil {
		t.Fatalf("First init failed: %v", err)
	}

	_, _, err := runCLI(t, "config", "init")
	if !errors.Is(err, fferrors.ErrConfigExists) {
		t.Fatalf("Expected ErrConfigExists, got %v", err)
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("Expected --force hint, got %q", err.Error())
	}

	stdout, _, err := runCLI(t, "config", "init", "--force", "-n", "0.6")
	if err != nil {
		t.Fatalf("Forced init failed: %v", err)
	}
	if !strings.Contains(stdout, "overwritten") {
		t.Errorf("Expected overwrite confirmation: %s", stdout)
	}
}

func testConfigShowJSON(t *testing.T) {
	setupTestEnvironment(t)

	if _, _, err := runCLI(t, "config", "init", "-m", "22"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	stdout, _, err := runCLI(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	var got configs.Config
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, stdout)
	}
	if got.Defaults.MachineID != "22" {
		t.Errorf("Expected machine id 22, got %s", got.Defaults.MachineID)
	}
	if got.Meta.InstallationID == "" {
		t.Errorf("Expected installation id")
	}
}
