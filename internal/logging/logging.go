package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes levelled, prefixed lines. Info and debug lines go to Out and
// are shown only with --verbose or --debug. Warnings and errors always go to Err.
type Logger struct {
	Verbose bool
	Debug   bool

	// Out and Err default to os.Stdout and os.Stderr when nil. They are
	// resolved on every call so tests that swap the process streams still
	// capture output.
	Out io.Writer
	Err io.Writer
}

func (l Logger) stdout() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l Logger) stderr() io.Writer {
	if l.Err != nil {
		return l.Err
	}
	return os.Stderr
}

func (l Logger) emit(w io.Writer, prefix, msg string, args []any) {
	fmt.Fprintf(w, "%s%s\n", prefix, fmt.Sprintf(msg, args...))
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		l.emit(l.stdout(), color.GreenString("[info] "), msg, args)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.emit(l.stdout(), color.CyanString("[debug] "), msg, args)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	l.emit(l.stderr(), color.YellowString("[warn] "), msg, args)
}

func (l Logger) Errorf(msg string, args ...any) {
	l.emit(l.stderr(), color.RedString("[error] "), msg, args)
}

// ErrorfAndReturn builds an error from msg, logging it only under --debug.
// The caller decides how the error is finally reported.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	if l.Debug {
		l.Errorf("%v", err)
	}
	return err
}
