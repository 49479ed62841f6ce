package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
)

// AppName names the configuration directory.
const AppName = "flashforge-profile-cli"

// Built-in locations used when neither a flag nor config.toml sets them.
const (
	DefaultRepoPath       = "~/src/abyss/abyss-flashforge/profiles/"
	DefaultFlashforgePath = "~/.FlashPrint5/slice_profile/"
)

type UserSettings struct {
	ConfigDir string
	Username  string
}

var UserAppSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	UserAppSettings = &UserSettings{
		ConfigDir: filepath.Join(configDir, AppName),
		Username:  utils.CurrentUser(),
	}
}
