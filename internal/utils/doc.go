// Package utils provides shared helpers for flashforge-profile-cli.
//
// # Filesystem Utilities
//
//   - ExpandPath: expands a leading ~ to the user's home directory
//   - IsDir: reports whether a path is an existing directory
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//
//   - CurrentUser: returns the login name recorded in history entries
//   - Hostname: returns the machine name recorded in history entries
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether a file is attached to a terminal
package utils
