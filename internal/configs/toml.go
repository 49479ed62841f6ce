package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// SaveTOML encodes data to filePath, creating its directory if needed.
// The file is written to a temporary name and renamed into place, so readers
// see either the previous or the new content.
func SaveTOML(filePath string, data interface{}) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filePath)
}

// LoadTOML decodes filePath into data. Keys with no matching field are an
// error so that a misspelled setting is not silently ignored.
func LoadTOML(filePath string, data interface{}) error {
	md, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("unknown keys in %s: %s", filepath.Base(filePath), strings.Join(keys, ", "))
	}

	return nil
}
