// Package errors provides typed error values for flashforge-profile-cli.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Profile errors: a file or parameter does not fit the profile format
//     (ErrInvalidProfilePath, ErrInvalidProfile, ErrMalformedLine, ErrInvalidParameter)
//   - Selection errors: filtering left nothing to work on
//     (ErrNoProfilesFound, ErrInputProfileNotFound, ErrParamNotInInput)
//   - Input errors: a flag value is not understood (ErrInvalidSource, ErrInvalidOutputFormat)
//   - Config errors: configuration and history state (ErrConfigExists, ErrNoHistory)
//
// # Usage
//
// Return errors from internal packages wrapped with context:
//
//	return Identity{}, fmt.Errorf("%w: %s", errors.ErrInvalidProfilePath, fileName)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.SetParam(ctx, opts)
//	if errors.Is(err, fferrors.ErrInputProfileNotFound) {
//	    // Show user-friendly message
//	}
package errors
