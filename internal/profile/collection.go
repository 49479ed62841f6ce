package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

// Filter selects profiles by identity. Empty fields match everything.
type Filter struct {
	// MachineID keeps profiles whose machine id equals it.
	MachineID string

	// NozzleDiameter keeps profiles whose nozzle diameter equals it.
	NozzleDiameter string

	// Search keeps profiles whose file name contains it.
	Search string

	// Glob keeps profiles whose file name matches it (doublestar syntax).
	Glob string
}

// IsEmpty reports whether the filter selects every profile.
func (f Filter) IsEmpty() bool {
	return f.MachineID == "" && f.NozzleDiameter == "" && f.Search == "" && f.Glob == ""
}

// Validate checks that the glob pattern, if any, is well formed.
func (f Filter) Validate() error {
	if f.Glob != "" && !doublestar.ValidatePattern(f.Glob) {
		return fmt.Errorf("invalid glob %q: %w", f.Glob, doublestar.ErrBadPattern)
	}
	return nil
}

// Apply returns the profiles that pass the filter, keeping their order.
// Machine id, nozzle, search and glob are applied in that order.
func (f Filter) Apply(profiles []*Profile) []*Profile {
	if f.IsEmpty() {
		return profiles
	}

	var out []*Profile
	for _, p := range profiles {
		if f.MachineID != "" && p.MachineID != f.MachineID {
			continue
		}
		if f.NozzleDiameter != "" && p.NozzleDiameter != f.NozzleDiameter {
			continue
		}
		if f.Search != "" && !strings.Contains(p.FileName, f.Search) {
			continue
		}
		if f.Glob != "" && !doublestar.MatchUnvalidated(f.Glob, p.FileName) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Skipped records a file that was not a valid profile.
type Skipped struct {
	Path string
	Err  error
}

// Collection is the result of reading a profile directory.
type Collection struct {
	// Dir is the directory that was read.
	Dir string

	// Profiles are the parsed profiles that passed the filter, in file name order.
	Profiles []*Profile

	// Skipped lists files rejected with ErrInvalidProfilePath or ErrInvalidProfile.
	Skipped []Skipped

	// Parsed is the number of profiles parsed before filtering.
	Parsed int
}

// Find returns the first profile whose file name contains substr.
func (c *Collection) Find(substr string) (*Profile, bool) {
	for _, p := range c.Profiles {
		if strings.Contains(p.FileName, substr) {
			return p, true
		}
	}
	return nil, false
}

// Collect parses every regular file in dir and applies f.
//
// Files with an invalid name or a parameter outside any section are skipped
// and recorded. Any other error, including a line without '=', aborts the
// collection.
func Collect(dir string, f Filter) (*Collection, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading profile directory: %w", err)
	}

	c := &Collection{Dir: dir}
	var profiles []*Profile

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks; dangling links are not regular files.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		p, err := Parse(path)
		if err != nil {
			if errors.Is(err, fferrors.ErrInvalidProfilePath) || errors.Is(err, fferrors.ErrInvalidProfile) {
				c.Skipped = append(c.Skipped, Skipped{Path: path, Err: err})
				continue
			}
			return nil, err
		}
		profiles = append(profiles, p)
	}

	c.Parsed = len(profiles)
	c.Profiles = f.Apply(profiles)
	return c, nil
}
