package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "22_0.4_abs-1.8-light.cfg", "[General]\nextruderTemp0=210\n\n[Custom]\nfanSpeed=100\n")

	p, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "22", p.MachineID)
	assert.Equal(t, "0.4", p.NozzleDiameter)
	assert.Equal(t, "abs-1.8-light", p.Name)
	assert.Equal(t, "22_0.4_abs-1.8-light.cfg", p.FileName)
	assert.Equal(t, []Param{{Name: "extruderTemp0", Value: "210"}}, p.General.Pairs())
	assert.Equal(t, []Param{{Name: "fanSpeed", Value: "100"}}, p.Custom.Pairs())
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		general []Param
		custom  []Param
	}{
		"order preserved": {
			input:   "[General]\nb=2\na=1\nc=3\n\n[Custom]\nz=26\ny=25\n",
			general: []Param{{"b", "2"}, {"a", "1"}, {"c", "3"}},
			custom:  []Param{{"z", "26"}, {"y", "25"}},
		},
		"split on first equals": {
			input:   "[General]\nstartGcode=M104 S=210\nempty=\n",
			general: []Param{{"startGcode", "M104 S=210"}, {"empty", ""}},
			custom:  []Param{},
		},
		"surrounding whitespace trimmed": {
			input:   "  [General]  \n\t key = value \t\n\n   \n[Custom]\n",
			general: []Param{{"key ", " value"}},
			custom:  []Param{},
		},
		"duplicate keeps first position": {
			input:   "[General]\na=1\nb=2\na=3\n",
			general: []Param{{"a", "3"}, {"b", "2"}},
			custom:  []Param{},
		},
		"header matched by containment": {
			input:   "; [General] section\na=1\n#[Custom]#\nb=2\n",
			general: []Param{{"a", "1"}},
			custom:  []Param{{"b", "2"}},
		},
		"sections may repeat": {
			input:   "[Custom]\nc=1\n[General]\ng=1\n[Custom]\nd=2\n",
			general: []Param{{"g", "1"}},
			custom:  []Param{{"c", "1"}, {"d", "2"}},
		},
		"empty input": {
			input:   "",
			general: []Param{},
			custom:  []Param{},
		},
		"windows line endings": {
			input:   "[General]\r\na=1\r\n\r\n[Custom]\r\nb=2\r\n",
			general: []Param{{"a", "1"}},
			custom:  []Param{{"b", "2"}},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := Decode(strings.NewReader(tc.input), Identity{FileName: "22_0.4_x.cfg"})
			require.NoError(t, err)
			assert.Equal(t, tc.general, p.General.Pairs())
			assert.Equal(t, tc.custom, p.Custom.Pairs())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  error
	}{
		"parameter before section": {
			input: "a=1\n[General]\n",
			want:  fferrors.ErrInvalidProfile,
		},
		"line without equals": {
			input: "[General]\nnot a parameter\n",
			want:  fferrors.ErrMalformedLine,
		},
		"malformed line before section": {
			input: "garbage\n",
			want:  fferrors.ErrMalformedLine,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tc.input), Identity{})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseLongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("G1 X0 Y0;", 20000)
	dir := t.TempDir()
	path := writeFile(t, dir, "22_0.4_long.cfg", "[General]\nstartGcode="+long+"\n")

	p, err := Parse(path)
	require.NoError(t, err)

	got, ok := p.General.Get("startGcode")
	require.True(t, ok)
	assert.Equal(t, long, got)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("invalid path is checked before reading", func(t *testing.T) {
		t.Parallel()

		_, err := Parse(filepath.Join(dir, "missing.cfg"))
		require.ErrorIs(t, err, fferrors.ErrInvalidProfilePath)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Parse(filepath.Join(dir, "22_0.4_missing.cfg"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("error names the file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, dir, "22_0.4_bad.cfg", "x=1\n")
		_, err := Parse(path)
		require.ErrorIs(t, err, fferrors.ErrInvalidProfile)
		assert.Contains(t, err.Error(), path)
	})
}
