package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
)

// ExpandPath replaces a leading "~" or "~/" with the current user's home
// directory. Other paths, including "~otheruser", are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString(ui.Bullet(ui.Path.Sprint(path)))
	}
	return b.String()
}
