package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/audit"
	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

// historyFlags holds the log command's flag values.
type historyFlags struct {
	query   workflows.LogOptions
	oneline bool
	json    bool
}

var logFlags historyFlags

func init() {
	f := logCmd.Flags()
	// No -n shorthand: it belongs to --nozzle.
	f.IntVar(&logFlags.query.Limit, "number", 0, "show only the N most recent entries")
	f.BoolVar(&logFlags.query.Reverse, "reverse", false, "list newest entries first")
	f.StringVar(&logFlags.query.Operations, "operation", "", "only these operations, comma-separated")
	f.StringVar(&logFlags.query.Since, "since", "", "entries on or after this date (YYYY-MM-DD)")
	f.StringVar(&logFlags.query.Until, "until", "", "entries on or before this date (YYYY-MM-DD)")
	f.BoolVar(&logFlags.oneline, "oneline", false, "one compact line per entry")
	f.BoolVar(&logFlags.json, "json", false, "print entries as a JSON array")
}

func resetLogCommandState() {
	logFlags = historyFlags{}
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the history of profile writes",
	Long: `Shows which commands wrote profiles, when, and by whom.

update-profiles, update-repo and set-param append an entry to history.jsonl
(next to config.toml) whenever they write files. Dry runs leave no entry.

Examples:
  flashforge-profile-cli log --number 10
  flashforge-profile-cli log --reverse --oneline
  flashforge-profile-cli log --operation set-param --since 2026-01-01
  flashforge-profile-cli log --json`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Debugf("Log query: %+v", logFlags.query)

	result, err := workflows.Log(context.Background(), logFlags.query)
	switch {
	case errors.Is(err, fferrors.ErrNoHistory):
		fmt.Println(ui.InfoLine("No history found. Commands that write profiles are recorded here."))
		return nil
	case err != nil:
		return formatError(err)
	}

	Logger.Infof("%d of %d history entries match", len(result.Entries), result.Total)

	if logFlags.json {
		entries := result.Entries
		if entries == nil {
			entries = []audit.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding history: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(result.Entries) == 0 {
		fmt.Println(ui.InfoLine("No history entries found matching the filters."))
		return nil
	}

	render := historyLine
	if logFlags.oneline {
		render = historyOneline
	}
	for _, e := range result.Entries {
		fmt.Println(render(e))
	}
	return nil
}

func historyLine(e audit.Entry) string {
	return fmt.Sprintf("%-19s  %-12s  %-15s  %s",
		workflows.FormatDateTime(e.Timestamp), e.User, e.Operation, workflows.FormatDetails(e))
}

func historyOneline(e audit.Entry) string {
	return fmt.Sprintf("%s %s %s %s",
		workflows.FormatDate(e.Timestamp), e.User, e.Operation, workflows.FormatDetailsOneline(e))
}
