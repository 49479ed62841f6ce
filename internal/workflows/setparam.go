package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/audit"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
)

// SetParamOptions configures the set-param workflow.
type SetParamOptions struct {
	// Paths are the resolved repository and FlashPrint directories.
	Paths configs.Paths

	// Filter selects which FlashPrint profiles are updated.
	Filter profile.Filter

	// Param is the parameter to copy.
	Param string

	// InputProfile is a substring of the file name of the profile to copy from.
	// The first filtered profile containing it is used.
	InputProfile string

	// UpdateRepo also exports every updated profile into the repository.
	UpdateRepo bool

	// DryRun reports what would change without writing anything.
	DryRun bool
}

// SetParamResult contains the outcome of a set-param run.
type SetParamResult struct {
	// Input is the file name of the profile the value was read from.
	Input string

	// Value is the value copied to every profile.
	Value string

	// Updated lists profiles that define Param and were rewritten.
	Updated []string

	// Missing lists filtered profiles that do not define Param. They are left untouched.
	Missing []string

	// Skipped lists files in the FlashPrint directory that were not valid profiles.
	Skipped []profile.Skipped

	// RepoUpdated is true when updated profiles were also written to the repository.
	RepoUpdated bool

	// DryRun is true when nothing was written.
	DryRun bool
}

// SetParam reads Param from the input profile and writes that value into
// every filtered FlashPrint profile that already defines Param.
//
// Profiles lacking Param are reported in Missing, not treated as failures.
// Returns ErrNoProfilesFound, ErrInputProfileNotFound or ErrParamNotInInput
// when there is nothing to copy.
func SetParam(ctx context.Context, opts SetParamOptions) (*SetParamResult, error) {
	live := opts.Paths.Flashforge

	collection, err := profile.Collect(live, opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("collecting profiles from %s: %w", live, err)
	}

	result := &SetParamResult{
		Skipped:     collection.Skipped,
		RepoUpdated: opts.UpdateRepo && !opts.DryRun,
		DryRun:      opts.DryRun,
	}

	if len(collection.Profiles) == 0 {
		return result, fferrors.ErrNoProfilesFound
	}

	input, ok := collection.Find(opts.InputProfile)
	if !ok {
		return result, fmt.Errorf("%w: %q", fferrors.ErrInputProfileNotFound, opts.InputProfile)
	}
	result.Input = input.FileName

	value, ok := input.LookupParam(opts.Param)
	if !ok {
		return result, fmt.Errorf("%w: %s, %s", fferrors.ErrParamNotInInput, opts.Param, input.FileName)
	}
	result.Value = value

	if opts.UpdateRepo && !utils.IsDir(opts.Paths.Repo) {
		return nil, fmt.Errorf("repository directory %s: %w", opts.Paths.Repo, os.ErrNotExist)
	}

	for _, p := range collection.Profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := p.SetParam(opts.Param, value); err != nil {
			if errors.Is(err, fferrors.ErrInvalidParameter) {
				result.Missing = append(result.Missing, p.FileName)
				continue
			}
			return nil, err
		}

		if !opts.DryRun {
			if err := p.Export(live); err != nil {
				return nil, err
			}
			if opts.UpdateRepo {
				if err := p.Export(opts.Paths.Repo); err != nil {
					return nil, err
				}
			}
		}
		result.Updated = append(result.Updated, p.FileName)
	}

	if !opts.DryRun && len(result.Updated) > 0 {
		entry := audit.NewEntry(OpSetParam)
		entry.Source = live
		entry.Target = live
		if opts.UpdateRepo {
			entry.RepoTarget = opts.Paths.Repo
		}
		entry.Files = result.Updated
		entry.Param = opts.Param
		entry.Value = value
		entry.InputProfile = input.FileName
		entry.SkippedCount = len(result.Skipped)
		audit.Log(entry)
	}

	return result, nil
}
