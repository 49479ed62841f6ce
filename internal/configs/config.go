package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
)

type Config struct {
	Paths    PathsConfig    `toml:"paths" json:"paths"`
	Defaults DefaultsConfig `toml:"defaults" json:"defaults"`
	Meta     MetaConfig     `toml:"meta" json:"meta"`
}

type PathsConfig struct {
	Repo       string `toml:"repo" json:"repo"`
	Flashforge string `toml:"flashforge" json:"flashforge"`
}

type DefaultsConfig struct {
	MachineID string `toml:"machine_id" json:"machine_id"`
	Nozzle    string `toml:"nozzle" json:"nozzle"`
}

type MetaConfig struct {
	InstallationID string    `toml:"installation_id" json:"installation_id"`
	CreatedAt      time.Time `toml:"created_at" json:"created_at"`
}

// Paths are the two profile directories after precedence and ~ expansion.
type Paths struct {
	Repo       string
	Flashforge string
}

// ConfigPath returns the location of config.toml.
func ConfigPath() string {
	return filepath.Join(UserAppSettings.ConfigDir, "config.toml")
}

// ConfigExists reports whether config.toml has been written.
func ConfigExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// NewConfig returns a config holding the built-in defaults and a fresh
// installation id.
func NewConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Repo:       DefaultRepoPath,
			Flashforge: DefaultFlashforgePath,
		},
		Meta: MetaConfig{
			InstallationID: GenerateInstallationID(),
			CreatedAt:      time.Now().UTC().Truncate(time.Second),
		},
	}
}

// LoadConfig loads config.toml. A missing file yields an empty config so
// that built-in defaults apply.
func LoadConfig() (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(ConfigPath()); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(ConfigPath(), config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

// SaveConfig writes config.toml.
func SaveConfig(config *Config) error {
	if err := SaveTOML(ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// GenerateInstallationID generates a new id stamped into history entries.
func GenerateInstallationID() string {
	return uuid.New().String()
}

// Pick returns flagValue when the flag was set on the command line, then
// configValue when non-empty, then fallback.
func Pick(flagValue string, flagSet bool, configValue, fallback string) string {
	if flagSet {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return fallback
}

// ResolvePaths applies precedence to the two directories and expands ~.
// Empty override strings mean the flag was not set.
func (c *Config) ResolvePaths(repoFlag, flashforgeFlag string) (Paths, error) {
	repo, err := utils.ExpandPath(Pick(repoFlag, repoFlag != "", c.Paths.Repo, DefaultRepoPath))
	if err != nil {
		return Paths{}, err
	}

	flashforge, err := utils.ExpandPath(Pick(flashforgeFlag, flashforgeFlag != "", c.Paths.Flashforge, DefaultFlashforgePath))
	if err != nil {
		return Paths{}, err
	}

	return Paths{Repo: repo, Flashforge: flashforge}, nil
}
