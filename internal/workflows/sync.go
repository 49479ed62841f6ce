package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/audit"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
)

// Operation names recorded in history.
const (
	OpUpdateProfiles = "update-profiles"
	OpUpdateRepo     = "update-repo"
	OpSetParam       = "set-param"
)

// SyncOptions configures UpdateProfiles and UpdateRepo.
type SyncOptions struct {
	// Paths are the resolved repository and FlashPrint directories.
	Paths configs.Paths

	// Filter selects which profiles are copied.
	Filter profile.Filter

	// DryRun reports what would be written without writing anything.
	DryRun bool
}

// SyncResult contains the outcome of a sync.
type SyncResult struct {
	// Source is the directory profiles were read from.
	Source string

	// Target is the directory profiles were written to.
	Target string

	// Exported lists the file names written (or that would be written on a dry run).
	Exported []string

	// Skipped lists files in Source that were not valid profiles.
	Skipped []profile.Skipped

	// DryRun is true when nothing was written.
	DryRun bool
}

// UpdateProfiles exports matching repository profiles into the FlashPrint directory.
//
// Returns ErrNoProfilesFound if no repository profile matches the filter.
func UpdateProfiles(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	return syncProfiles(ctx, OpUpdateProfiles, opts.Paths.Repo, opts.Paths.Flashforge, opts)
}

// UpdateRepo exports matching FlashPrint profiles into the repository.
//
// Returns ErrNoProfilesFound if no FlashPrint profile matches the filter.
func UpdateRepo(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	return syncProfiles(ctx, OpUpdateRepo, opts.Paths.Flashforge, opts.Paths.Repo, opts)
}

func syncProfiles(ctx context.Context, op, source, target string, opts SyncOptions) (*SyncResult, error) {
	collection, err := profile.Collect(source, opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("collecting profiles from %s: %w", source, err)
	}

	result := &SyncResult{
		Source:  source,
		Target:  target,
		Skipped: collection.Skipped,
		DryRun:  opts.DryRun,
	}

	if len(collection.Profiles) == 0 {
		return result, fferrors.ErrNoProfilesFound
	}

	if !utils.IsDir(target) {
		return nil, fmt.Errorf("target directory %s: %w", target, os.ErrNotExist)
	}

	for _, p := range collection.Profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !opts.DryRun {
			if err := p.Export(target); err != nil {
				return nil, err
			}
		}
		result.Exported = append(result.Exported, p.FileName)
	}

	if !opts.DryRun {
		entry := audit.NewEntry(op)
		entry.Source = source
		entry.Target = target
		entry.Files = result.Exported
		entry.SkippedCount = len(result.Skipped)
		audit.Log(entry)
	}

	return result, nil
}
