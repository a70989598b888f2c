// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/bearcode/lib/dictionary"
)

// largeEntries returns enough repetitive entries that both compressors
// shrink the body.
func largeEntries() []dictionary.Entry {
	entries := make([]dictionary.Entry, 0, 500)
	for i := 0; i < 500; i++ {
		entries = append(entries, dictionary.Entry{
			Key:    fmt.Sprintf("熊%d", i),
			Target: fmt.Sprintf("啊哒~%d", i),
		})
	}
	return entries
}

func TestSnapshotRoundTrip(t *testing.T) {
	entries := largeEntries()
	source := Fingerprint([]byte("source bytes"))

	for _, compression := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(compression.String(), func(t *testing.T) {
			data, err := EncodeSnapshot(entries, source, compression)
			if err != nil {
				t.Fatalf("EncodeSnapshot: %v", err)
			}
			snapshot, err := DecodeSnapshot(data)
			if err != nil {
				t.Fatalf("DecodeSnapshot: %v", err)
			}
			if snapshot.Compression != compression {
				t.Errorf("Compression = %v, want %v", snapshot.Compression, compression)
			}
			if snapshot.Source != source {
				t.Errorf("Source = %s, want %s", snapshot.Source, source)
			}
			sameEntries(t, snapshot.Entries, entries)
		})
	}
}

func TestSnapshotIncompressibleFallsBackToNone(t *testing.T) {
	// A digest has no repeated runs for LZ4 to exploit.
	data, err := EncodeSnapshot([]dictionary.Entry{{Key: "你", Target: "啊哒"}}, Fingerprint([]byte("tiny")), CompressionLZ4)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	snapshot, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if snapshot.Compression != CompressionNone {
		t.Errorf("Compression = %v, want none for a tiny body", snapshot.Compression)
	}
}

func TestSnapshotIsDeterministic(t *testing.T) {
	entries := largeEntries()
	first, err := EncodeSnapshot(entries, Hash{}, CompressionZstd)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	second, err := EncodeSnapshot(entries, Hash{}, CompressionZstd)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	if Fingerprint(first) != Fingerprint(second) {
		t.Error("identical input produced different snapshots")
	}
}

func TestDecodeSnapshotRejectsDamage(t *testing.T) {
	valid, err := EncodeSnapshot(largeEntries(), Hash{}, CompressionLZ4)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	badTag := append([]byte(nil), valid...)
	badTag[4] = 9

	tests := map[string][]byte{
		"empty":           nil,
		"wrong magic":     []byte("JSON\x00\x00\x00\x00\x00"),
		"truncated":       valid[:len(valid)/2],
		"unknown tag":     badTag,
		"header only":     valid[:snapshotHeaderSize],
		"garbage payload": append(append([]byte(nil), valid[:snapshotHeaderSize]...), "nonsense"...),
	}
	for name, data := range tests {
		if _, err := DecodeSnapshot(data); !errors.Is(err, ErrBadSnapshot) {
			t.Errorf("%s: err = %v, want ErrBadSnapshot", name, err)
		}
	}
}

func TestReadFileFormats(t *testing.T) {
	directory := t.TempDir()
	jsonPath := filepath.Join(directory, "dictionary.json")
	jsonData := []byte(`{"main": {"你": "啊哒", "熊猫": "~嗷~"}}`)
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	source, err := ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("ReadFile(json): %v", err)
	}
	if source.Format != FormatJSON || len(source.Entries) != 2 {
		t.Errorf("json source = %+v", source)
	}
	if source.Fingerprint != Fingerprint(jsonData) || source.Origin != source.Fingerprint {
		t.Error("json fingerprint and origin should both be the file digest")
	}

	snapshotData, err := EncodeSnapshot(source.Entries, source.Fingerprint, CompressionZstd)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	snapshotPath := filepath.Join(directory, "dictionary.bdict")
	if err := os.WriteFile(snapshotPath, snapshotData, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	compiled, err := ReadFile(snapshotPath)
	if err != nil {
		t.Fatalf("ReadFile(snapshot): %v", err)
	}
	if compiled.Format != FormatSnapshot {
		t.Errorf("Format = %v, want snapshot", compiled.Format)
	}
	if compiled.Origin != source.Fingerprint {
		t.Errorf("Origin = %s, want the JSON file's fingerprint", compiled.Origin.Short())
	}
	sameEntries(t, compiled.Entries, source.Entries)

	if _, err := ReadFile(filepath.Join(directory, "missing.json")); err == nil {
		t.Error("ReadFile succeeded on a missing file")
	}
}

func TestFingerprintText(t *testing.T) {
	hash := Fingerprint([]byte("你"))
	if hash.IsZero() {
		t.Fatal("fingerprint is zero")
	}
	if hash == Fingerprint([]byte("好")) {
		t.Error("different input produced the same fingerprint")
	}

	text, err := hash.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var parsed Hash
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if parsed != hash {
		t.Error("text round trip changed the hash")
	}
	if len(hash.Short()) != 12 {
		t.Errorf("Short() = %q", hash.Short())
	}
	if err := parsed.UnmarshalText([]byte("abcd")); err == nil {
		t.Error("short hex accepted")
	}
}
