package workflows

import (
	"context"
	"fmt"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Dir is the directory to list.
	Dir string

	// Filter selects which profiles are listed.
	Filter profile.Filter
}

// ListResult contains the profiles found in a directory.
type ListResult struct {
	Dir      string
	Profiles []*profile.Profile
	Skipped  []profile.Skipped
}

// List collects the profiles in a directory that match a filter.
// An empty result is not an error.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collection, err := profile.Collect(opts.Dir, opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("collecting profiles from %s: %w", opts.Dir, err)
	}

	return &ListResult{
		Dir:      opts.Dir,
		Profiles: collection.Profiles,
		Skipped:  collection.Skipped,
	}, nil
}
