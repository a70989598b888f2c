// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictfile

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// TableKey is the top-level key holding the dictionary table.
const TableKey = "main"

var (
	// ErrUnknownFormat is returned for a path or format name that does
	// not map to a supported dictionary format.
	ErrUnknownFormat = errors.New("unknown dictionary format")

	// ErrNoTable is returned when a source file has no TableKey entry.
	ErrNoTable = errors.New(`dictionary has no "main" table`)

	// ErrBadSnapshot is returned for a snapshot with a damaged header
	// or body.
	ErrBadSnapshot = errors.New("malformed dictionary snapshot")
)

// Format identifies a dictionary file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatSnapshot
)

// String returns the format name.
func (format Format) String() string {
	switch format {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("Format(%d)", int(format))
	}
}

// ParseFormat accepts json, jsonc, yaml, yml and snapshot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "snapshot", "bdict":
		return FormatSnapshot, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DetectFormat picks a format from data's snapshot magic, falling back
// to the path's extension.
func DetectFormat(path string, data []byte) (Format, error) {
	if bytes.HasPrefix(data, snapshotMagic[:]) {
		return FormatSnapshot, nil
	}
	extension := strings.TrimPrefix(filepath.Ext(path), ".")
	if extension == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(extension)
}
