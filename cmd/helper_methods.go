package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/briandowns/spinner"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
)

// Values accepted by --source.
const (
	sourceRepo = "repo"
	sourceLive = "live"
)

// startSpinner creates and starts a spinner with the given message when not in
// verbose or debug mode and stdout is a terminal.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	animate := !verbose && !debug && utils.IsStdoutTerminal()
	if animate {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if animate {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		s.Stop()

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// formatSkipped renders one line per file that was not a valid profile.
func formatSkipped(skipped []profile.Skipped) string {
	var b strings.Builder
	for _, s := range skipped {
		Logger.Debugf("Skipped %s: %v", s.Path, s.Err)
		b.WriteString(ui.Warning.Sprint("Invalid profile") + " " + ui.Path.Sprint(s.Path) + ", skipping\n")
	}
	return b.String()
}

// displayError carries a message formatted for the terminal while keeping the
// underlying error available to errors.Is.
type displayError struct {
	msg string
	err error
}

func (e *displayError) Error() string { return e.msg }

func (e *displayError) Unwrap() error { return e.err }

// formatError maps known errors to user-facing messages. The returned error
// is printed to stderr by main and results in exit code 1.
func formatError(err error) error {
	if err == nil {
		return nil
	}

	var msg string
	switch {
	case errors.Is(err, fferrors.ErrNoProfilesFound):
		msg = ui.ErrorLine("No valid profiles found") + "\n" +
			ui.HintLine("Check ", ui.Flag.Sprint("--machine-id"), ", ", ui.Flag.Sprint("--nozzle"),
				" and ", ui.Flag.Sprint("--search-regex"))

	case errors.Is(err, fferrors.ErrInputProfileNotFound):
		msg = ui.ErrorLine(err.Error()) + "\n" +
			ui.HintLine("The input profile must also match the filters")

	case errors.Is(err, fferrors.ErrParamNotInInput),
		errors.Is(err, fferrors.ErrInvalidParameter),
		errors.Is(err, fferrors.ErrInvalidSource),
		errors.Is(err, fferrors.ErrInvalidOutputFormat),
		errors.Is(err, fferrors.ErrInvalidDateFormat),
		errors.Is(err, doublestar.ErrBadPattern):
		msg = ui.ErrorLine(err.Error())

	case errors.Is(err, fferrors.ErrConfigExists):
		msg = ui.ErrorLine(err.Error()) + "\n" +
			ui.HintLine("Run with ", ui.Flag.Sprint("--force"), " to overwrite it")

	case errors.Is(err, fferrors.ErrMalformedLine):
		msg = ui.ErrorLine("Failed to read profiles: ", err.Error())

	default:
		msg = ui.ErrorLine(err.Error())
	}

	return &displayError{msg: msg, err: err}
}

// resolveSource returns the directory named by a --source value.
func resolveSource(source string, paths configs.Paths) (string, error) {
	switch source {
	case sourceRepo:
		return paths.Repo, nil
	case sourceLive:
		return paths.Flashforge, nil
	default:
		return "", fmt.Errorf("%w: %q, use %s or %s", fferrors.ErrInvalidSource, source, sourceRepo, sourceLive)
	}
}
