// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bearcode/lib/dictionary"
)

// Parse decodes data in the given format into entries in file order.
func Parse(data []byte, format Format) ([]dictionary.Entry, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	case FormatSnapshot:
		snapshot, err := DecodeSnapshot(data)
		if err != nil {
			return nil, err
		}
		return snapshot.Entries, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// ParseJSON decodes a JSONC document of the form {"main": {...}}. The
// table is read token by token so entry order is preserved; other
// top-level keys are ignored.
func ParseJSON(data []byte) ([]dictionary.Entry, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	if err := expectDelimiter(decoder, '{'); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}

	var entries []dictionary.Entry
	found := false
	for decoder.More() {
		key, err := readString(decoder)
		if err != nil {
			return nil, fmt.Errorf("parsing dictionary: %w", err)
		}
		if key != TableKey || found {
			var skipped json.RawMessage
			if err := decoder.Decode(&skipped); err != nil {
				return nil, fmt.Errorf("parsing dictionary key %q: %w", key, err)
			}
			continue
		}
		found = true
		entries, err = readTable(decoder)
		if err != nil {
			return nil, fmt.Errorf("parsing dictionary table: %w", err)
		}
	}
	if err := expectDelimiter(decoder, '}'); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}
	if !found {
		return nil, ErrNoTable
	}
	return entries, nil
}

func readTable(decoder *json.Decoder) ([]dictionary.Entry, error) {
	if err := expectDelimiter(decoder, '{'); err != nil {
		return nil, err
	}
	var entries []dictionary.Entry
	for decoder.More() {
		key, err := readString(decoder)
		if err != nil {
			return nil, err
		}
		target, err := readString(decoder)
		if err != nil {
			return nil, fmt.Errorf("value for %q: %w", key, err)
		}
		entries = append(entries, dictionary.Entry{Key: key, Target: target})
	}
	if err := expectDelimiter(decoder, '}'); err != nil {
		return nil, err
	}
	return entries, nil
}

func expectDelimiter(decoder *json.Decoder, want json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delimiter, ok := token.(json.Delim); !ok || delimiter != want {
		return fmt.Errorf("expected %q, got %v", want, token)
	}
	return nil
}

func readString(decoder *json.Decoder) (string, error) {
	token, err := decoder.Token()
	if err != nil {
		return "", err
	}
	text, ok := token.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", token)
	}
	return text, nil
}

// ParseYAML decodes a YAML document of the same shape as ParseJSON.
// The node tree is walked directly so mapping order is preserved.
func ParseYAML(data []byte) ([]dictionary.Entry, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, ErrNoTable
	}
	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing dictionary: line %d: top level is not a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != TableKey {
			continue
		}
		table := root.Content[i+1]
		if table.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("parsing dictionary: line %d: %q is not a mapping", table.Line, TableKey)
		}
		entries := make([]dictionary.Entry, 0, len(table.Content)/2)
		for j := 0; j+1 < len(table.Content); j += 2 {
			key, value := table.Content[j], table.Content[j+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("parsing dictionary: line %d: entries must be scalar pairs", key.Line)
			}
			entries = append(entries, dictionary.Entry{Key: key.Value, Target: value.Value})
		}
		return entries, nil
	}
	return nil, ErrNoTable
}
