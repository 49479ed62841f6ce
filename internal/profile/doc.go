// Package profile models FlashPrint slicing profiles.
//
// A profile is a small INI-like file with two fixed sections:
//
//	[General]
//	extruderTemp0=210
//
//	[Custom]
//	fanSpeed=100
//
// Its identity comes from the file name, which follows the convention
// <machine_id>_<nozzle_diameter>_<name>.<ext>. The name part may itself
// contain underscores; only the first two underscores separate fields.
//
// # Reading
//
// Parse reads a profile from disk, Decode reads one from any io.Reader given
// an Identity obtained from ParsePath:
//
//	p, err := profile.Parse("profiles/22_0.4_abs-1.8-light.cfg")
//	if errors.Is(err, fferrors.ErrInvalidProfilePath) {
//	    // not a profile file name
//	}
//
// # Editing
//
// Parameters are opaque strings kept in insertion order. SetParam only
// updates a parameter that already exists in one of the two sections; it
// never inserts.
//
// # Writing
//
// Export writes the profile into a directory under its original file name,
// ExportAs writes it to an explicit path. Neither creates directories.
//
// # Collections
//
// Collect parses every regular file in a directory, skips files that are not
// profiles, and narrows the result with a Filter.
package profile
