package errors

import "errors"

// Profile errors indicate that a file or parameter does not fit the profile format.
var (
	// ErrInvalidProfilePath indicates the file name is not <machine>_<nozzle>_<name>.<ext>.
	ErrInvalidProfilePath = errors.New("invalid profile path")

	// ErrInvalidProfile indicates a parameter line appeared before any section header.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrMalformedLine indicates a parameter line has no '=' separator.
	ErrMalformedLine = errors.New("malformed parameter line")

	// ErrInvalidParameter indicates the parameter is in neither the General nor the Custom section.
	ErrInvalidParameter = errors.New("parameter not found")
)

// Selection errors indicate that filtering left nothing to operate on.
var (
	// ErrNoProfilesFound indicates no profiles matched the filters.
	ErrNoProfilesFound = errors.New("no valid profiles found")

	// ErrInputProfileNotFound indicates no filtered profile matched the input profile name.
	ErrInputProfileNotFound = errors.New("input profile not found after filtering")

	// ErrParamNotInInput indicates the input profile does not define the requested parameter.
	ErrParamNotInInput = errors.New("parameter not found in input profile")
)

// Input errors indicate a flag value that is not understood.
var (
	// ErrInvalidSource indicates --source is neither "repo" nor "live".
	ErrInvalidSource = errors.New("invalid profile source")

	// ErrInvalidOutputFormat indicates --output is not one of the supported formats.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidDateFormat indicates a date flag is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// Config errors indicate issues with configuration or history state.
var (
	// ErrConfigExists indicates config init would overwrite an existing file.
	ErrConfigExists = errors.New("configuration already exists")

	// ErrNoHistory indicates no history file has been written yet.
	ErrNoHistory = errors.New("no history found")
)
