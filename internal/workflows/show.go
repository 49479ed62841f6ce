package workflows

import (
	"context"
	"fmt"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	// Dir is the directory to search.
	Dir string

	// Filter narrows the profiles searched.
	Filter profile.Filter

	// InputProfile is a substring of the file name to show.
	InputProfile string

	// Param limits the output to a single parameter when set.
	Param string
}

// ShowResult contains the selected profile.
type ShowResult struct {
	Profile *profile.Profile

	// Param and Value are set when ShowOptions.Param was given.
	Param string
	Value string

	Skipped []profile.Skipped
}

// Show selects a single profile by file name substring.
//
// Returns ErrNoProfilesFound if the filter matches nothing,
// ErrInputProfileNotFound if no profile name contains InputProfile, and
// ErrInvalidParameter if Param is set but not defined in the profile.
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collection, err := profile.Collect(opts.Dir, opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("collecting profiles from %s: %w", opts.Dir, err)
	}

	result := &ShowResult{Skipped: collection.Skipped}

	if len(collection.Profiles) == 0 {
		return result, fferrors.ErrNoProfilesFound
	}

	p, ok := collection.Find(opts.InputProfile)
	if !ok {
		return result, fmt.Errorf("%w: %q", fferrors.ErrInputProfileNotFound, opts.InputProfile)
	}
	result.Profile = p

	if opts.Param != "" {
		value, err := p.GetParam(opts.Param)
		if err != nil {
			return result, err
		}
		result.Param = opts.Param
		result.Value = value
	}

	return result, nil
}
