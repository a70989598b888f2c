// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictfile

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/bearcode/lib/dictionary"
)

// Source is a loaded dictionary file.
type Source struct {
	Path    string
	Format  Format
	Entries []dictionary.Entry

	// Fingerprint identifies the file's bytes.
	Fingerprint Hash

	// Origin identifies the text source the entries came from: the
	// file itself for JSON and YAML, the recorded source for a
	// snapshot.
	Origin Hash
}

// Load parses data read from path.
func Load(path string, data []byte) (*Source, error) {
	format, err := DetectFormat(path, data)
	if err != nil {
		return nil, err
	}

	source := &Source{Path: path, Format: format, Fingerprint: Fingerprint(data)}
	if format == FormatSnapshot {
		snapshot, err := DecodeSnapshot(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		source.Entries = snapshot.Entries
		source.Origin = snapshot.Source
		return source, nil
	}

	source.Entries, err = Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	source.Origin = source.Fingerprint
	return source, nil
}

// ReadFile reads and parses the dictionary at path.
func ReadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return Load(path, data)
}

// Build loads path and builds a store from it.
func Build(path string, options dictionary.Options) (*dictionary.Store, dictionary.Report, *Source, error) {
	source, err := ReadFile(path)
	if err != nil {
		return nil, dictionary.Report{}, nil, err
	}
	store, report := dictionary.Build(source.Entries, options)
	return store, report, source, nil
}
