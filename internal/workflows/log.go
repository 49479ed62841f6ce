package workflows

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/audit"
	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

const dateLayout = "2006-01-02"

// LogOptions selects which history entries to return.
type LogOptions struct {
	// Limit keeps only the N most recent matches. 0 keeps all.
	Limit   int
	Reverse bool

	// Operations is a comma-separated list such as "set-param,update-repo".
	Operations string

	// Since and Until are inclusive YYYY-MM-DD bounds in UTC.
	Since string
	Until string
}

type LogResult struct {
	Entries []audit.Entry

	// Total counts every recorded entry, before filtering.
	Total int
}

// historyWindow is the parsed form of LogOptions.
type historyWindow struct {
	ops      map[string]bool
	from, to time.Time
}

func newHistoryWindow(opts LogOptions) (historyWindow, error) {
	var w historyWindow

	if opts.Since != "" {
		day, err := time.Parse(dateLayout, opts.Since)
		if err != nil {
			return w, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", fferrors.ErrInvalidDateFormat)
		}
		w.from = day
	}
	if opts.Until != "" {
		day, err := time.Parse(dateLayout, opts.Until)
		if err != nil {
			return w, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", fferrors.ErrInvalidDateFormat)
		}
		w.to = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	for _, op := range strings.Split(opts.Operations, ",") {
		if op = strings.ToLower(strings.TrimSpace(op)); op != "" {
			if w.ops == nil {
				w.ops = map[string]bool{}
			}
			w.ops[op] = true
		}
	}
	return w, nil
}

// contains reports whether e passes every filter. Entries with an
// unreadable timestamp are dropped only when a date bound is set.
func (w historyWindow) contains(e audit.Entry) bool {
	if w.ops != nil && !w.ops[strings.ToLower(e.Operation)] {
		return false
	}
	if w.from.IsZero() && w.to.IsZero() {
		return true
	}

	at, err := parseTimestamp(e.Timestamp)
	if err != nil {
		return false
	}
	if !w.from.IsZero() && at.Before(w.from) {
		return false
	}
	return w.to.IsZero() || !at.After(w.to)
}

// Log reads the recorded history and applies opts.
//
// ErrInvalidDateFormat is returned before the history file is touched.
// ErrNoHistory means nothing has been recorded yet.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	window, err := newHistoryWindow(opts)
	if err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if entries == nil {
		return nil, fferrors.ErrNoHistory
	}

	var matched []audit.Entry
	for _, e := range entries {
		if window.contains(e) {
			matched = append(matched, e)
		}
	}

	// History is oldest first, so the most recent N sit at the tail.
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[len(matched)-opts.Limit:]
	}
	if opts.Reverse {
		slices.Reverse(matched)
	}

	return &LogResult{Entries: matched, Total: len(entries)}, nil
}

func parseTimestamp(ts string) (time.Time, error) {
	if t, err := time.Parse(audit.TimestampFormat, ts); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, ts)
}

// reformat renders ts with layout, or falls back to the first width bytes
// of the raw string.
func reformat(ts, layout string, width int) string {
	if t, err := parseTimestamp(ts); err == nil {
		return t.Format(layout)
	}
	if len(ts) > width {
		return ts[:width]
	}
	return ts
}

// FormatDate renders a history timestamp as YYYY-MM-DD.
func FormatDate(ts string) string { return reformat(ts, dateLayout, 10) }

// FormatDateTime renders a history timestamp as YYYY-MM-DD HH:MM:SS.
func FormatDateTime(ts string) string { return reformat(ts, "2006-01-02 15:04:05", 19) }

// FormatDetails describes what an entry changed, for the default log view.
func FormatDetails(e audit.Entry) string {
	switch e.Operation {
	case OpUpdateProfiles, OpUpdateRepo:
		return e.Source + " -> " + e.Target + ", " + formatFiles(e.Files)
	case OpSetParam:
		details := fmt.Sprintf("%s=%s from %s, %s", e.Param, e.Value, e.InputProfile, formatFiles(e.Files))
		if e.RepoTarget != "" {
			details += ", repo updated"
		}
		return details
	}
	return ""
}

// FormatDetailsOneline is the short form used by --oneline.
func FormatDetailsOneline(e audit.Entry) string {
	count := fmt.Sprintf("%d files", len(e.Files))
	switch e.Operation {
	case OpUpdateProfiles, OpUpdateRepo:
		return count
	case OpSetParam:
		return e.Param + "=" + e.Value + " " + count
	}
	return ""
}

// formatFiles lists up to three names and summarises longer lists as a count.
func formatFiles(files []string) string {
	switch {
	case len(files) == 0:
		return "no files"
	case len(files) > 3:
		return fmt.Sprintf("%d files", len(files))
	}
	return strings.Join(files, ", ")
}
