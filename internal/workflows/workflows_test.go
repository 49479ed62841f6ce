package workflows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/audit"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
)

// testEnv is a repository directory, a FlashPrint directory and an isolated
// config directory for history.
type testEnv struct {
	Repo       string
	Flashforge string
	ConfigDir  string
}

func (e testEnv) Paths() configs.Paths {
	return configs.Paths{Repo: e.Repo, Flashforge: e.Flashforge}
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()

	root := t.TempDir()
	env := testEnv{
		Repo:       filepath.Join(root, "repo"),
		Flashforge: filepath.Join(root, "flashprint"),
		ConfigDir:  filepath.Join(root, "config"),
	}
	require.NoError(t, os.MkdirAll(env.Repo, 0755))
	require.NoError(t, os.MkdirAll(env.Flashforge, 0755))

	original := configs.UserAppSettings
	configs.UserAppSettings = &configs.UserSettings{
		ConfigDir: env.ConfigDir,
		Username:  "testuser",
	}
	t.Cleanup(func() {
		configs.UserAppSettings = original
	})

	return env
}

func writeProfile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func readHistory(t *testing.T) []audit.Entry {
	t.Helper()
	entries, err := audit.ReadEntries()
	require.NoError(t, err)
	return entries
}
