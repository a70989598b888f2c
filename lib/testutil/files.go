// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside directory and returns the
// full path.
func WriteFile(t testing.TB, directory, name, content string) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// WriteDictionary writes a JSON dictionary file holding table under the
// "main" key. Go maps are unordered, so tests that depend on entry
// order write the JSON themselves.
func WriteDictionary(t testing.TB, directory, name string, table map[string]string) string {
	t.Helper()
	data, err := json.Marshal(map[string]map[string]string{"main": table})
	if err != nil {
		t.Fatalf("encoding dictionary: %v", err)
	}
	return WriteFile(t, directory, name, string(data))
}
