package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

const orderedProfile = "[General]\nzeta=1\nalpha=2\n\n[Custom]\nfanSpeed=100\n"

// TestListAndShow contains tests for the read-only list and show commands.
func TestListAndShow(t *testing.T) {
	t.Run("ListTable", testListTable)
	t.Run("ListJSON", testListJSON)
	t.Run("ListInvalidSource", testListInvalidSource)
	t.Run("ShowText", testShowText)
	t.Run("ShowParam", testShowParam)
	t.Run("ShowJSONKeepsOrder", testShowJSONKeepsOrder)
	t.Run("ShowYAML", testShowYAML)
	t.Run("ShowInvalidOutput", testShowInvalidOutput)
}

func testListTable(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.RepoDir, "22_0.4_abs.cfg", orderedProfile)
	writeTestProfile(t, env.RepoDir, "23_0.6_petg.cfg", orderedProfile)

	stdout, _, err := runCLI(t, append([]string{"list", "--source", "repo", "-m", "23"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "23_0.6_petg.cfg") {
		t.Errorf("Expected petg profile in output: %s", stdout)
	}
	if strings.Contains(stdout, "22_0.4_abs.cfg") {
		t.Errorf("abs profile should be filtered out: %s", stdout)
	}
}

func testListJSON(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.FlashforgeDir, "22_0.4_abs.cfg", orderedProfile)

	stdout, _, err := runCLI(t, append([]string{"list", "--json"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	var got []map[string]string
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, stdout)
	}
	if len(got) != 1 || got[0]["machine_id"] != "22" || got[0]["nozzle_diameter"] != "0.4" || got[0]["name"] != "abs" {
		t.Errorf("Unexpected JSON: %v", got)
	}
}

func testListInvalidSource(t *testing.T) {
	env := setupTestEnvironment(t)

	_, _, err := runCLI(t, append([]string{"list", "--source", "cloud"}, env.pathArgs()...)...)
	if err == nil || !strings.Contains(err.Error(), "invalid profile source") {
		t.Errorf("Expected invalid source error, got %v", err)
	}
}

func testShowText(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.FlashforgeDir, "22_0.4_abs.cfg", orderedProfile)

	stdout, _, err := runCLI(t, append([]string{"show", "-i", "abs"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != orderedProfile {
		t.Errorf("Expected on-disk format, got:\n%s", stdout)
	}
}

func testShowParam(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.FlashforgeDir, "22_0.4_abs.cfg", orderedProfile)

	stdout, _, err := runCLI(t, append([]string{"show", "-i", "abs", "-p", "fanSpeed"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != "100\n" {
		t.Errorf("Expected bare value, got %q", stdout)
	}
}

func testShowJSONKeepsOrder(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.FlashforgeDir, "22_0.4_abs.cfg", orderedProfile)

	stdout, _, err := runCLI(t, append([]string{"show", "-i", "abs", "-o", "json"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	zeta := strings.Index(stdout, `"zeta"`)
	alpha := strings.Index(stdout, `"alpha"`)
	if zeta < 0 || alpha < 0 || zeta > alpha {
		t.Errorf("Expected zeta before alpha:\n%s", stdout)
	}
	if !strings.Contains(stdout, `"file_name": "22_0.4_abs.cfg"`) {
		t.Errorf("Expected identity fields:\n%s", stdout)
	}
}

func testShowYAML(t *testing.T) {
	env := setupTestEnvironment(t)
	writeTestProfile(t, env.FlashforgeDir, "22_0.4_abs.cfg", orderedProfile)

	stdout, _, err := runCLI(t, append([]string{"show", "-i", "abs", "-p", "zeta", "-o", "yaml"}, env.pathArgs()...)...)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != "zeta: \"1\"\n" {
		t.Errorf("Unexpected YAML: %q", stdout)
	}
}

func testShowInvalidOutput(t *testing.T) {
	env := setupTestEnvironment(t)

	_, _, err := runCLI(t, append([]string{"show", "-i", "abs", "-o", "xml"}, env.pathArgs()...)...)
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("Expected invalid output error, got %v", err)
	}
}
