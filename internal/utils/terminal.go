package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsStdoutTerminal returns true if stdout is a terminal. Spinners are only
// drawn when it is.
func IsStdoutTerminal() bool {
	return IsTerminal(os.Stdout)
}
