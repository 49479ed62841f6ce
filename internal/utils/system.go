package utils

import (
	"os"
	"os/user"
)

// UnknownUser is recorded when the login name cannot be determined.
const UnknownUser = "unknown"

// CurrentUser returns the login name of the user running the CLI.
// $USER is used when the user database is unavailable, then UnknownUser.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return UnknownUser
}

// Hostname returns the machine name, or "" if it cannot be determined.
func Hostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}
	return hostname
}
