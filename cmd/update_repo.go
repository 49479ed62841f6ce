package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

var updateRepoCmd = &cobra.Command{
	Use:   "update-repo",
	Short: "Copy FlashPrint profiles into the repository",
	Long: `Copies every FlashPrint profile that matches the filters into the
profile repository, replacing files with the same name.

Examples:
  # Save all tuned profiles for machine 22 with a 0.4mm nozzle
  flashforge-profile-cli update-repo -m 22 -n 0.4

  # Save only the PETG profiles
  flashforge-profile-cli update-repo --glob '*petg*'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, workflows.OpUpdateRepo, workflows.UpdateRepo)
	},
}
