package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

var syncDryRun bool

func init() {
	updateProfilesCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "show which profiles would be written without writing them")
	updateRepoCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "show which profiles would be written without writing them")
}

// resetSyncCommandState resets the update commands' global state for testing.
func resetSyncCommandState() {
	syncDryRun = false
}

var updateProfilesCmd = &cobra.Command{
	Use:   "update-profiles",
	Short: "Copy repository profiles into FlashPrint",
	Long: `Copies every repository profile that matches the filters into the
FlashPrint profile directory, replacing files with the same name.

Examples:
  # Install every profile for machine 22
  flashforge-profile-cli update-profiles -m 22

  # Preview which 0.6mm profiles would be installed
  flashforge-profile-cli update-profiles -n 0.6 --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, workflows.OpUpdateProfiles, workflows.UpdateProfiles)
	},
}

type syncFunc func(context.Context, workflows.SyncOptions) (*workflows.SyncResult, error)

// runSync drives update-profiles and update-repo, which differ only in direction.
func runSync(cmd *cobra.Command, op string, run syncFunc) error {
	Logger.Infof("Starting %s command", op)

	paths, filter, err := resolveTargets(cmd)
	if err != nil {
		return formatError(err)
	}

	spinner, cleanup := startSpinner("Exporting profiles...", verbose)
	defer cleanup()

	result, err := run(context.Background(), workflows.SyncOptions{
		Paths:  paths,
		Filter: filter,
		DryRun: syncDryRun,
	})
	if result != nil {
		spinner.FinalMSG = formatSkipped(result.Skipped)
	}
	if err != nil {
		return formatError(err)
	}

	Logger.Infof("Exported %d profiles from %s to %s", len(result.Exported), result.Source, result.Target)

	verb := "Exported"
	if result.DryRun {
		verb = "Would export"
	}
	spinner.FinalMSG += ui.SuccessLine(fmt.Sprintf("%s %d profile(s) to ", verb, len(result.Exported)),
		ui.Path.Sprint(result.Target), ":") + utils.FormatPaths(result.Exported)
	return nil
}
