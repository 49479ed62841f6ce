package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

var (
	setParamName       string
	setParamInput      string
	setParamUpdateRepo bool
	setParamDryRun     bool
)

func init() {
	setParamCmd.Flags().StringVarP(&setParamName, "param", "p", "", "parameter to copy")
	setParamCmd.Flags().StringVarP(&setParamInput, "input-profile-name", "i", "", "text contained in the file name of the profile to copy from")
	setParamCmd.Flags().BoolVarP(&setParamUpdateRepo, "update-repo", "u", false, "also write updated profiles to the repository")
	setParamCmd.Flags().BoolVar(&setParamDryRun, "dry-run", false, "show which profiles would change without writing them")
	_ = setParamCmd.MarkFlagRequired("param")
	_ = setParamCmd.MarkFlagRequired("input-profile-name")
}

// resetSetParamCommandState resets the set-param command's global state for testing.
func resetSetParamCommandState() {
	setParamName = ""
	setParamInput = ""
	setParamUpdateRepo = false
	setParamDryRun = false
}

var setParamCmd = &cobra.Command{
	Use:   "set-param",
	Short: "Copy one parameter value into many FlashPrint profiles",
	Long: `Reads a parameter from an input profile and writes the same value into
every FlashPrint profile that matches the filters and already defines it.

The input profile is the first filtered profile whose file name contains
--input-profile-name, so it must match the filters too. Profiles that do not
define the parameter are left untouched and reported as warnings.

Examples:
  # Use the bed temperature of one ABS profile for every 0.4mm ABS profile
  flashforge-profile-cli set-param -p platformTemp -i abs-1.8-light -n 0.4 --search-regex abs

  # Also save the result into the repository
  flashforge-profile-cli set-param -p extruderTemp0 -i pla-1.8-full -m 22 -u`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting set-param command")
		Logger.Debugf("Flags: param=%s, input=%s, update-repo=%t, dry-run=%t", setParamName, setParamInput, setParamUpdateRepo, setParamDryRun)

		paths, filter, err := resolveTargets(cmd)
		if err != nil {
			return formatError(err)
		}

		spinner, cleanup := startSpinner("Updating profiles...", verbose)
		defer cleanup()

		result, err := workflows.SetParam(context.Background(), workflows.SetParamOptions{
			Paths:        paths,
			Filter:       filter,
			Param:        setParamName,
			InputProfile: setParamInput,
			UpdateRepo:   setParamUpdateRepo,
			DryRun:       setParamDryRun,
		})
		if err != nil {
			if result != nil {
				spinner.FinalMSG = formatSkipped(result.Skipped)
			}
			return formatError(err)
		}

		// Stop the spinner before warnings go to stderr.
		spinner.Stop()
		msg := formatSkipped(result.Skipped)
		for _, name := range result.Missing {
			Logger.Warnf("Parameter %s not found in %s", setParamName, name)
		}

		Logger.Infof("Input profile %s has %s=%s", result.Input, setParamName, result.Value)

		verb := "Updated"
		if result.DryRun {
			verb = "Would update"
		}
		msg += ui.SuccessLine(fmt.Sprintf("%s %d profile(s) with ", verb, len(result.Updated)),
			ui.Highlight.Sprint(setParamName+"="+result.Value), " from ", ui.Path.Sprint(result.Input), ":") +
			utils.FormatPaths(result.Updated)
		if result.RepoUpdated {
			msg += ui.HintLine("Repository updated at ", ui.Path.Sprint(paths.Repo)) + "\n"
		}
		spinner.FinalMSG = msg
		return nil
	},
}
