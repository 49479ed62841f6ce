package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/utils"
)

// TimestampFormat is the layout of Entry.Timestamp: UTC with microseconds.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

const historyFile = "history.jsonl"

// Entry is one line of history.jsonl.
type Entry struct {
	Timestamp    string `json:"ts"`
	ID           string `json:"id"`
	User         string `json:"user"`
	Host         string `json:"host,omitempty"`
	Installation string `json:"installation,omitempty"`
	Operation    string `json:"op"`

	Source     string   `json:"source,omitempty"`
	Target     string   `json:"target,omitempty"`
	RepoTarget string   `json:"repo_target,omitempty"` // set-param --update-repo
	Files      []string `json:"files,omitempty"`

	Param        string `json:"param,omitempty"`
	Value        string `json:"value,omitempty"`
	InputProfile string `json:"input_profile,omitempty"`

	// SkippedCount is the number of files that failed to parse as profiles.
	SkippedCount int `json:"skipped_count,omitempty"`
}

// NewEntry starts an entry for op, stamped with who ran it and where.
func NewEntry(op string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Operation: op,
		Host:      utils.Hostname(),
	}
	if configs.UserAppSettings != nil {
		entry.User = configs.UserAppSettings.Username
	}
	if config, err := configs.LoadConfig(); err == nil {
		entry.Installation = config.Meta.InstallationID
	}
	return entry
}

// HistoryPath returns the location of history.jsonl, or "" before the user
// settings are initialised.
func HistoryPath() string {
	if configs.UserAppSettings == nil || configs.UserAppSettings.ConfigDir == "" {
		return ""
	}
	return filepath.Join(configs.UserAppSettings.ConfigDir, historyFile)
}

// Append writes entry as a single line at the end of path, filling in the
// timestamp and id when they are empty.
func Append(path string, entry Entry) error {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	// #nosec G302 G304 -- path is inside the user's config directory.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Log records entry in the user's history. A failed write never fails the
// command that produced the entry.
func Log(entry Entry) {
	if path := HistoryPath(); path != "" {
		_ = Append(path, entry)
	}
}

// ReadEntries returns the recorded history, oldest first. It returns nil
// and no error when nothing has been recorded.
func ReadEntries() ([]Entry, error) {
	path := HistoryPath()
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries decodes JSON Lines. Blank and undecodable lines, such as a
// line cut short by an interrupted write, are skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if json.Unmarshal(line, &entry) == nil {
			entries = append(entries, entry)
		}
	}
	return entries, scanner.Err()
}
