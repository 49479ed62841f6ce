// Package audit records a history of commands that write profiles.
//
// Every update-profiles, update-repo and set-param run that exports at least
// one profile is recorded. The history answers "when did the live profiles
// last change, and from where?".
//
// # Log Format
//
// The history is stored as JSON Lines (one JSON object per line) at:
//
//	$XDG_CONFIG_HOME/flashforge-profile-cli/history.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - A random entry id, the username and the installation id
//   - Operation name
//   - Source and target directories, exported files, parameter details
//
// # Usage
//
//	entry := audit.NewEntry("set-param")
//	entry.Param = "extruderTemp0"
//	audit.Log(entry)
//
// # Failure Handling
//
// History is best-effort. If writing fails the command still succeeds.
//
// # Reading Logs
//
// Use ReadEntries() to parse the history. Malformed lines are skipped to
// tolerate partial writes.
package audit
