package profile

import (
	"fmt"
	"path/filepath"
	"strings"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

// Identity holds the fields derived from a profile's file name.
type Identity struct {
	// MachineID identifies the printer model. Only compared for equality.
	MachineID string `json:"machine_id" yaml:"machine_id"`

	// NozzleDiameter is kept as written in the file name, e.g. "0.4".
	NozzleDiameter string `json:"nozzle_diameter" yaml:"nozzle_diameter"`

	// Name is the human-readable part of the file name without its extension.
	Name string `json:"name" yaml:"name"`

	// FileName is the last path component, used as the export target name.
	FileName string `json:"file_name" yaml:"file_name"`
}

// ParsePath derives a profile Identity from path without touching the filesystem.
//
// The file name is split on its first two underscores into machine id,
// nozzle diameter and name. Returns ErrInvalidProfilePath when the file name
// has fewer than two underscores.
func ParsePath(path string) (Identity, error) {
	fileName := filepath.Base(path)

	parts := strings.SplitN(fileName, "_", 3)
	if len(parts) < 3 {
		return Identity{}, fmt.Errorf("%w: %q does not match <machine_id>_<nozzle>_<name>.<ext>", fferrors.ErrInvalidProfilePath, fileName)
	}

	return Identity{
		MachineID:      parts[0],
		NozzleDiameter: parts[1],
		Name:           stem(parts[2]),
		FileName:       fileName,
	}, nil
}

// stem strips the last extension. A name that starts or ends with its only
// dot has no extension.
func stem(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name
	}
	return name[:i]
}
