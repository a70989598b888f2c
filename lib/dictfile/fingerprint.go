// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictfile

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// fingerprintKey separates dictionary fingerprints from any other
// BLAKE3 use. ASCII "bearcode.dictionary" zero-padded to 32 bytes.
var fingerprintKey = [32]byte{
	'b', 'e', 'a', 'r', 'c', 'o', 'd', 'e', '.',
	'd', 'i', 'c', 't', 'i', 'o', 'n', 'a', 'r', 'y',
}

// Fingerprint returns the keyed BLAKE3 digest of a dictionary file's
// raw bytes.
func Fingerprint(data []byte) Hash {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		// NewKeyed only fails for a key that is not 32 bytes.
		panic("dictfile: " + err.Error())
	}
	hasher.Write(data)
	var digest Hash
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// String returns the lowercase hex encoding.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// Short returns the first 12 hex characters, for log lines.
func (hash Hash) Short() string {
	return hash.String()[:12]
}

// IsZero reports whether the hash is unset.
func (hash Hash) IsZero() bool {
	return hash == Hash{}
}

// MarshalText implements encoding.TextMarshaler.
func (hash Hash) MarshalText() ([]byte, error) {
	return []byte(hash.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (hash *Hash) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(hash) {
		return fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return nil
}
