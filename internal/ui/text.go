package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Status symbols used at the start of summary lines.
const (
	CheckMark = "✓"
	CrossMark = "✗"
	Arrow     = "→"
	InfoMark  = "ℹ"
	WarnMark  = "⚠"
)

// Formatter renders one kind of content. With color it paints the text;
// without color it wraps the text in open and close instead.
type Formatter struct {
	paint       *color.Color
	open, close string
}

func (f Formatter) render(text string) string {
	if colorDisabled() {
		return f.open + text + f.close
	}
	return f.paint.Sprint(text)
}

// Sprint formats a the way fmt.Sprint does and renders the result.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats a the way fmt.Sprintf does and renders the result.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

var (
	Code      = Formatter{color.New(color.FgYellow), "`", "`"}
	Path      = Formatter{color.New(color.FgYellow), "", ""}
	Flag      = Formatter{color.New(color.FgYellow), "", ""}
	Success   = Formatter{color.New(color.FgGreen), "", ""}
	Error     = Formatter{color.New(color.FgRed), "", ""}
	Warning   = Formatter{color.New(color.FgYellow), "", ""}
	Info      = Formatter{color.New(color.FgCyan), "", ""}
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}
	Muted     = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

func statusLine(f Formatter, mark string, msg []string) string {
	return f.Sprint(mark) + " " + strings.Join(msg, "")
}

// SuccessLine returns "✓ msg" with the mark in green.
func SuccessLine(msg ...string) string { return statusLine(Success, CheckMark, msg) }

// ErrorLine returns "✗ msg" with the mark in red.
func ErrorLine(msg ...string) string { return statusLine(Error, CrossMark, msg) }

// HintLine returns "→ msg", used for a suggested next step.
func HintLine(msg ...string) string { return statusLine(Info, Arrow, msg) }

func InfoLine(msg ...string) string    { return statusLine(Info, InfoMark, msg) }
func WarningLine(msg ...string) string { return statusLine(Warning, WarnMark, msg) }

// Bullet formats a "    - item" line, as used for lists of profile files.
func Bullet(item string) string {
	return "    - " + item + "\n"
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// colorDisabled honours NO_COLOR (https://no-color.org/) and fatih/color's
// own terminal detection.
func colorDisabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}
