package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

var (
	listSource string
	listJSON   bool
)

func init() {
	listCmd.Flags().StringVar(&listSource, "source", sourceLive, "directory to list: repo or live")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON array")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listSource = sourceLive
	listJSON = false
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profiles that match the filters",
	Long: `Lists the profiles in the FlashPrint directory (or the repository with
--source repo) that match the filters. Use it to check what update-profiles,
update-repo or set-param would touch.

Examples:
  flashforge-profile-cli list -m 22
  flashforge-profile-cli list --source repo --glob '*abs*'
  flashforge-profile-cli list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		paths, filter, err := resolveTargets(cmd)
		if err != nil {
			return formatError(err)
		}

		dir, err := resolveSource(listSource, paths)
		if err != nil {
			return formatError(err)
		}

		result, err := workflows.List(context.Background(), workflows.ListOptions{
			Dir:    dir,
			Filter: filter,
		})
		if err != nil {
			return formatError(err)
		}
		Logger.Debugf("Found %d profiles, skipped %d files", len(result.Profiles), len(result.Skipped))

		if listJSON {
			return outputListJSON(result.Profiles)
		}

		fmt.Print(formatSkipped(result.Skipped))
		if len(result.Profiles) == 0 {
			fmt.Println(ui.InfoLine("No profiles in ", ui.Path.Sprint(dir), " match the filters"))
			return nil
		}
		outputListTable(result.Profiles)
		return nil
	},
}

func outputListJSON(profiles []*profile.Profile) error {
	ids := make([]profile.Identity, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.Identity)
	}
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputListTable(profiles []*profile.Profile) {
	fmt.Printf("%-8s  %-7s  %-24s  %s\n", "MACHINE", "NOZZLE", "NAME", "FILE")
	for _, p := range profiles {
		fmt.Printf("%-8s  %-7s  %-24s  %s\n", p.MachineID, p.NozzleDiameter, p.Name, p.FileName)
	}
}
