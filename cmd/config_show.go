package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the contents of config.toml.

Examples:
  flashforge-profile-cli config show
  flashforge-profile-cli config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		result, err := workflows.ShowConfig(context.Background())
		if err != nil {
			return formatError(err)
		}
		Logger.Debugf("Config path: %s, exists: %t", result.Path, result.Exists)

		if !result.Exists {
			if configShowJSON {
				fmt.Println("{}")
				return nil
			}
			fmt.Println(ui.WarningLine("No configuration found."))
			fmt.Println()
			fmt.Println(ui.HintLine("Run ", ui.Code.Sprint(configs.AppName+" config init"), " to create one"))
			return nil
		}

		if configShowJSON {
			output, err := json.MarshalIndent(result.Config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		fmt.Println(ui.Info.Sprint("Configuration") + " (" + ui.Path.Sprint(result.Path) + "):")
		fmt.Println()
		outputConfigText(result.Config)
		return nil
	},
}

// outputConfigText prints a config in human-readable form. Empty values show
// what applies instead.
func outputConfigText(config *configs.Config) {
	orDefault := func(value, fallback string) string {
		if value == "" {
			return ui.Muted.Sprint(fallback)
		}
		return ui.Success.Sprint(value)
	}

	fmt.Printf("  %-16s %s\n", "Repository:", orDefault(config.Paths.Repo, configs.DefaultRepoPath+", default"))
	fmt.Printf("  %-16s %s\n", "FlashPrint:", orDefault(config.Paths.Flashforge, configs.DefaultFlashforgePath+", default"))
	fmt.Printf("  %-16s %s\n", "Machine ID:", orDefault(config.Defaults.MachineID, "any"))
	fmt.Printf("  %-16s %s\n", "Nozzle:", orDefault(config.Defaults.Nozzle, "any"))
	if config.Meta.InstallationID != "" {
		fmt.Printf("  %-16s %s\n", "Installation ID:", ui.Muted.Sprint(config.Meta.InstallationID))
	}
}
