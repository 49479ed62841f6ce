// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and running the CLI in-process.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	logger "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/logging"
)

// testEnvironment holds the directories a command test works in.
type testEnvironment struct {
	RepoDir       string
	FlashforgeDir string
	ConfigDir     string
}

// pathArgs returns the flags pointing a command at the test directories.
func (e testEnvironment) pathArgs() []string {
	return []string{"--repo-path", e.RepoDir, "--flashforge-path", e.FlashforgeDir}
}

// setupTestEnvironment creates empty repository and FlashPrint directories and
// points the user settings at a temporary config directory.
func setupTestEnvironment(t *testing.T) testEnvironment {
	t.Helper()

	root := t.TempDir()
	env := testEnvironment{
		RepoDir:       filepath.Join(root, "repo"),
		FlashforgeDir: filepath.Join(root, "flashprint"),
		ConfigDir:     filepath.Join(root, "config"),
	}
	for _, dir := range []string{env.RepoDir, env.FlashforgeDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	originalUserSettings := configs.UserAppSettings
	configs.UserAppSettings = &configs.UserSettings{
		ConfigDir: env.ConfigDir,
		Username:  "testuser",
	}

	// Cleanup function to restore original state
	t.Cleanup(func() {
		configs.UserAppSettings = originalUserSettings
		ResetGlobalState()
	})

	return env
}

// writeTestProfile writes a profile file into dir.
func writeTestProfile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// captureStreams captures stdout and stderr separately during function execution.
func captureStreams(fn func() error) (string, string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan, <-stderrChan, err
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	stdout, stderr, err := captureStreams(fn)
	return stdout + stderr, err
}

// createTestCLI returns the root command with fresh state, ready to run args.
func createTestCLI(args []string, verboseFlag, debugFlag bool) *cobra.Command {
	ResetGlobalState()

	// Initialize the logger with the test flags
	verbose = verboseFlag
	debug = debugFlag
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	if verboseFlag {
		args = append(args, "--verbose")
	}
	if debugFlag {
		args = append(args, "--debug")
	}
	RootCmd.SetArgs(args)

	return RootCmd
}

// runCLI runs the CLI with args and returns stdout, stderr and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return captureStreams(func() error {
		return createTestCLI(args, false, false).Execute()
	})
}
