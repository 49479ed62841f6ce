package profile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

// Section headers as they appear on disk.
const (
	GeneralHeader = "[General]"
	CustomHeader  = "[Custom]"
)

// Profile is one FlashPrint profile file held in memory.
type Profile struct {
	Identity `yaml:",inline"`

	// General holds the parameters of the [General] section.
	General *Params `json:"general" yaml:"general"`

	// Custom holds the parameters of the [Custom] section.
	Custom *Params `json:"custom" yaml:"custom"`
}

// New returns a profile with the given identity and empty sections.
func New(id Identity) *Profile {
	return &Profile{
		Identity: id,
		General:  NewParams(),
		Custom:   NewParams(),
	}
}

// LookupParam returns the value of name and whether it was found.
// The General section is consulted before the Custom section.
func (p *Profile) LookupParam(name string) (string, bool) {
	if v, ok := p.General.Get(name); ok {
		return v, true
	}
	return p.Custom.Get(name)
}

// GetParam returns the value of name, or ErrInvalidParameter if neither
// section defines it.
func (p *Profile) GetParam(name string) (string, error) {
	v, ok := p.LookupParam(name)
	if !ok {
		return "", fmt.Errorf("%w: %s in %s", fferrors.ErrInvalidParameter, name, p.FileName)
	}
	return v, nil
}

// SetParam overwrites an existing parameter in whichever section defines it,
// preferring General. It never adds a parameter: if neither section defines
// name, it returns ErrInvalidParameter and the profile is left unchanged.
func (p *Profile) SetParam(name, value string) error {
	if p.General.Has(name) {
		p.General.Set(name, value)
		return nil
	}
	if p.Custom.Has(name) {
		p.Custom.Set(name, value)
		return nil
	}
	return fmt.Errorf("%w: %s in %s", fferrors.ErrInvalidParameter, name, p.FileName)
}

// Bytes renders the profile in its on-disk format. Both section headers are
// always written, even for empty sections.
func (p *Profile) Bytes() []byte {
	var b strings.Builder

	b.WriteString(GeneralHeader + "\n")
	for _, param := range p.General.Pairs() {
		b.WriteString(param.Name + "=" + param.Value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(CustomHeader + "\n")
	for _, param := range p.Custom.Pairs() {
		b.WriteString(param.Name + "=" + param.Value + "\n")
	}

	return []byte(b.String())
}

// WriteTo writes the on-disk format of the profile to w.
func (p *Profile) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	return int64(n), err
}

// Export writes the profile into dir under its original file name.
func (p *Profile) Export(dir string) error {
	return p.ExportAs(filepath.Join(dir, p.FileName))
}

// ExportAs writes the profile to path, replacing any existing file.
// Parent directories are not created.
func (p *Profile) ExportAs(path string) error {
	// #nosec G304 -- path is chosen by the user running the CLI.
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporting profile %s: %w", p.FileName, err)
	}

	w := bufio.NewWriter(file)
	if _, err := p.WriteTo(w); err != nil {
		file.Close()
		return fmt.Errorf("exporting profile %s: %w", p.FileName, err)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("exporting profile %s: %w", p.FileName, err)
	}

	return file.Close()
}
