// Package configs manages user configuration for flashforge-profile-cli.
//
// Configuration is stored in TOML format at
// $XDG_CONFIG_HOME/flashforge-profile-cli/config.toml (or the platform
// equivalent returned by os.UserConfigDir):
//
//	[paths]
//	repo = "~/src/abyss/abyss-flashforge/profiles/"
//	flashforge = "~/.FlashPrint5/slice_profile/"
//
//	[defaults]
//	machine_id = "22"
//	nozzle = "0.4"
//
//	[meta]
//	installation_id = "5f0c..."
//	created_at = 2026-10-19T09:30:00Z
//
// # Precedence
//
// Command flags win over the config file, which wins over the built-in
// defaults. Use Pick to apply that order to a single value and
// Config.ResolvePaths to get expanded directory paths.
//
// # Settings
//
// UserAppSettings is initialized at startup with the configuration
// directory and the current username. Tests replace it with a temporary
// directory.
package configs
