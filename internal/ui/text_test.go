package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// withColor forces colored output for the duration of a test.
func withColor(t *testing.T) {
	t.Helper()
	if prev, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { os.Setenv("NO_COLOR", prev) })
	}
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })
}

func TestFormatterColored(t *testing.T) {
	withColor(t)

	got := Code.Sprint("flashforge-profile-cli update-repo")
	if strings.Contains(got, "`") {
		t.Errorf("colored Code should drop backticks, got %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("colored Code should contain ANSI escapes, got %q", got)
	}

	got = Highlight.Sprintf("param: %s", "extruderTemp0")
	if strings.HasPrefix(got, "'") || !strings.Contains(got, "param: extruderTemp0") {
		t.Errorf("colored Highlight = %q", got)
	}
}

func TestFormatterPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"code", Code.Sprint("flashforge-profile-cli", " ", "list"), "`flashforge-profile-cli list`"},
		{"code sprintf", Code.Sprintf("flashforge-profile-cli %s", "update-repo"), "`flashforge-profile-cli update-repo`"},
		{"path", Path.Sprint("22_0.4_abs-1.8-light.cfg"), "22_0.4_abs-1.8-light.cfg"},
		{"flag", Flag.Sprint("--dry-run"), "--dry-run"},
		{"highlight", Highlight.Sprint("extruderTemp0"), "'extruderTemp0'"},
		{"muted", Muted.Sprint("repo"), "(repo)"},
		{"success line", SuccessLine("Exported ", "3 profile(s)"), "✓ Exported 3 profile(s)"},
		{"error line", ErrorLine("No valid profiles found"), "✗ No valid profiles found"},
		{"hint line", HintLine("Run ", Code.Sprint("list")), "→ Run `list`"},
		{"info line", InfoLine("No history found."), "ℹ No history found."},
		{"warning line", WarningLine("No configuration found."), "⚠ No configuration found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestColorDisabled(t *testing.T) {
	withColor(t)
	if colorDisabled() {
		t.Fatal("colorDisabled() = true with color forced on")
	}

	color.NoColor = true
	if !colorDisabled() {
		t.Error("colorDisabled() should follow color.NoColor")
	}
	color.NoColor = false

	t.Setenv("NO_COLOR", "")
	if !colorDisabled() {
		t.Error("an empty NO_COLOR should still disable color")
	}
}

func TestBullet(t *testing.T) {
	if got := Bullet("22_0.4_pla.cfg"); got != "    - 22_0.4_pla.cfg\n" {
		t.Errorf("Bullet() = %q", got)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":       "\n",
		"done":   "done\n",
		"done\n": "done\n",
		"a\nb":   "a\nb\n",
	}
	for in, want := range tests {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", in, got, want)
		}
	}
}
