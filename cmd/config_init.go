package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a new config.toml",
	Long: `Writes config.toml to the user config directory.

The global --repo-path, --flashforge-path, --machine-id and --nozzle flags
are stored as the new defaults. Paths that are not given keep the built-in
defaults.

Examples:
  flashforge-profile-cli config init
  flashforge-profile-cli config init -r ~/src/profiles -m 22 -n 0.4
  flashforge-profile-cli config init -n 0.6 --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		result, err := workflows.InitConfig(context.Background(), workflows.InitConfigOptions{
			RepoPath:       repoPath,
			FlashforgePath: flashforgePath,
			MachineID:      machineID,
			Nozzle:         nozzle,
			Force:          configInitForce,
		})
		if err != nil {
			return formatError(err)
		}

		verb := "written to"
		if result.Overwritten {
			verb = "overwritten at"
		}
		fmt.Println(ui.SuccessLine("Configuration ", verb, " ", ui.Path.Sprint(result.Path)))
		fmt.Println()
		outputConfigText(result.Config)
		return nil
	},
}
