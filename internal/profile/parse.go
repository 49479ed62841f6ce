package profile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

// maxLineSize bounds a single profile line. Start G-code values can be long.
const maxLineSize = 1024 * 1024

type section int

const (
	sectionNone section = iota
	sectionGeneral
	sectionCustom
)

// Parse reads the profile file at path.
//
// Errors from ParsePath are returned unchanged. A parameter line before any
// section header yields ErrInvalidProfile and a line without '=' yields
// ErrMalformedLine.
func Parse(path string) (*Profile, error) {
	id, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- profile paths come from directory listings the user selected.
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile: %w", err)
	}
	defer file.Close()

	p, err := Decode(file, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads the two-section profile format from r.
func Decode(r io.Reader, id Identity) (*Profile, error) {
	p := New(id)
	current := sectionNone

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.Contains(line, GeneralHeader) {
			current = sectionGeneral
			continue
		}
		if strings.Contains(line, CustomHeader) {
			current = sectionCustom
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", fferrors.ErrMalformedLine, lineNo, line)
		}

		switch current {
		case sectionGeneral:
			p.General.Set(name, value)
		case sectionCustom:
			p.Custom.Set(name, value)
		default:
			return nil, fmt.Errorf("%w: line %d: parameter %q appears before any section header", fferrors.ErrInvalidProfile, lineNo, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	return p, nil
}
