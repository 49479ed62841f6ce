package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

const absProfile = "[General]\nextruderTemp0=240\nplatformTemp=100\n\n[Custom]\nfanSpeed=0\n"

// TestUpdateCommands contains tests for update-profiles and update-repo.
func TestUpdateCommands(t *testing.T) {
	t.Run("UpdateProfilesCopiesMatching", testUpdateProfilesCopiesMatching)
	t.Run("UpdateProfilesReportsSkipped", testUpdateProfilesReportsSkipped)
	t.Run("UpdateProfilesDryRun", testUpdateProfilesDryRun)
	t.Run("UpdateProfilesNoMatch", testUpdateProfilesNoMatch)
	t.Run("UpdateRepoCopiesMatching", testUpdateRepoCopiesMatching)
	t.Run("UpdateProfilesBadGlob", testUpdateProfilesBadGlob)
}

func testUpdateProfilesCopiesMatching(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.RepoDir, "22_0.4_abs.cfg", absProfile)
	writeTestProfile(t, env.RepoDir, "23_0.4_abs.cfg", absProfile)

	stdout, _, err := runCLI(t, append([]string{"update-profiles", "-m", "22"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, stdout)
	}

	data, err := os.ReadFile(filepath.Join(env.FlashforgeDir, "22_0.4_abs.cfg"))
	if err != nil {
		t.Fatalf("Expected exported profile: %v", err)
	}
	if string(data) != absProfile {
		t.Errorf("Exported profile differs:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(env.FlashforgeDir, "23_0.4_abs.cfg")); !os.IsNotExist(err) {
		t.Errorf("Profile for machine 23 should not be exported")
	}
	if !strings.Contains(stdout, "Exported 1 profile(s)") {
		t.Errorf("Expected summary in output: %s", stdout)
	}
	if !strings.Contains(stdout, "22_0.4_abs.cfg") {
		t.Errorf("Expected file name in output: %s", stdout)
	}
}

func testUpdateProfilesReportsSkipped(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.RepoDir, "22_0.4_abs.cfg", absProfile)
	writeTestProfile(t, env.RepoDir, "README.md", "# Profiles\n")

	stdout, _, err := runCLI(t, append([]string{"update-profiles"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "Invalid profile") || !strings.Contains(stdout, "README.md") || !strings.Contains(stdout, ", skipping") {
		t.Errorf("Expected skip warning on stdout: %s", stdout)
	}
}

func testUpdateProfilesDryRun(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.RepoDir, "22_0.4_abs.cfg", absProfile)

	stdout, _, err := runCLI(t, append([]string{"update-profiles", "--dry-run"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "Would export 1 profile(s)") {
		t.Errorf("Expected dry run summary: %s", stdout)
	}
	if _, err := os.Stat(filepath.Join(env.FlashforgeDir, "22_0.4_abs.cfg")); !os.IsNotExist(err) {
		t.Errorf("Dry run should not write files")
	}
	if _, err := os.Stat(filepath.Join(env.ConfigDir, "history.jsonl")); !os.IsNotExist(err) {
		t.Errorf("Dry run should not record history")
	}
}

func testUpdateProfilesNoMatch(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.RepoDir, "22_0.4_abs.cfg", absProfile)
	writeTestProfile(t, env.RepoDir, "notes.txt", "hello\n")

	stdout, _, err := runCLI(t, append([]string{"update-profiles", "-m", "99"}, env.pathArgs()...)...)
	if err == nil {
		t.Fatalf("Expected an error when nothing matches")
	}
	if !errors.Is(err, fferrors.ErrNoProfilesFound) {
		t.Errorf("Expected ErrNoProfilesFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "No valid profiles found") {
		t.Errorf("Expected friendly message, got %q", err.Error())
	}
	if !strings.Contains(stdout, "notes.txt") {
		t.Errorf("Expected skipped files to be reported: %s", stdout)
	}
}

func testUpdateRepoCopiesMatching(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.FlashforgeDir, "22_0.4_abs.cfg", absProfile)
	writeTestProfile(t, env.FlashforgeDir, "22_0.6_abs.cfg", absProfile)

	_, _, err := runCLI(t, append([]string{"update-repo", "--nozzle", "0.6"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.RepoDir, "22_0.6_abs.cfg")); err != nil {
		t.Errorf("Expected 0.6 profile in repository: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.RepoDir, "22_0.4_abs.cfg")); !os.IsNotExist(err) {
		t.Errorf("0.4 profile should not be copied")
	}
}

func testUpdateProfilesBadGlob(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.RepoDir, "22_0.4_abs.cfg", absProfile)

	_, _, err := runCLI(t, append([]string{"update-profiles", "--glob", "[abs"}, env.pathArgs()...)...)
	if err == nil {
		t.Fatalf("Expected an error for a malformed glob")
	}
	if !strings.Contains(err.Error(), "invalid glob") {
		t.Errorf("Expected glob error, got %q", err.Error())
	}
}
