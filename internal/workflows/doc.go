// Package workflows provides the business logic behind each
// flashforge-profile-cli command.
//
// Each workflow handles a single command, independent of CLI concerns like
// flag parsing, spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and resolves paths
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Collecting and filtering profiles
//   - Applying parameter changes
//   - Exporting profiles
//   - Recording history entries
//
// # Available Workflows
//
//   - UpdateProfiles: exports repository profiles into the FlashPrint directory
//   - UpdateRepo: exports FlashPrint profiles into the repository
//   - SetParam: copies one parameter value from an input profile to many profiles
//   - List: lists profiles matching a filter
//   - Show: returns a single profile or parameter
//   - Log: reads and filters the command history
//   - InitConfig, ShowConfig: manage config.toml
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.SetParam(ctx, opts)
//	if errors.Is(err, fferrors.ErrInputProfileNotFound) {
//	    // Show user-friendly message
//	}
//
// When a workflow fails with ErrNoProfilesFound its result is still returned
// so the caller can report which files were skipped.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It is checked between files.
package workflows
