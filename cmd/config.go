package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage flashforge-profile-cli configuration",
	Long: `Provides commands for managing config.toml.

The config file stores the repository and FlashPrint directories and the
default machine id and nozzle diameter. Command-line flags always win over
the config file, and the config file wins over the built-in defaults.

Examples:
  # Write a config for machine 22 with a 0.4mm nozzle
  flashforge-profile-cli config init -m 22 -n 0.4

  # Show the current configuration
  flashforge-profile-cli config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// resetConfigCommandState resets the config commands' global state for testing.
func resetConfigCommandState() {
	resetConfigInitState()
	resetConfigShowState()
}
