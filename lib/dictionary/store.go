// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"strings"
	"unicode/utf8"
)

// Entry is one source key and its bear-language target.
type Entry struct {
	Key    string `json:"key" cbor:"k"`
	Target string `json:"target" cbor:"t"`
}

// Options controls which entries Build accepts.
type Options struct {
	// Skip lists source keys that are dropped during build. The
	// transcoder elides the same keys from its input.
	Skip []string

	// Separator is the codec unit boundary rune. Targets containing it
	// are rejected. Zero disables the check.
	Separator rune
}

// Report counts what Build did with its input.
type Report struct {
	// Loaded is the number of entries reachable by forward lookup.
	Loaded int `json:"loaded"`

	// Skipped counts entries whose key is on the skip list.
	Skipped int `json:"skipped"`

	// Empty counts entries with an empty key or target.
	Empty int `json:"empty"`

	// DuplicateKeys counts repeats of an already loaded key.
	DuplicateKeys int `json:"duplicate_keys"`

	// DuplicateTargets counts loaded entries whose target already
	// decodes to an earlier key.
	DuplicateTargets int `json:"duplicate_targets"`

	// SeparatorTargets counts entries rejected because their target
	// contains the separator.
	SeparatorTargets int `json:"separator_targets"`
}

// Store is an immutable bidirectional phrase table.
type Store struct {
	singles         map[string]string
	phrasesByLength map[int]map[string]string
	maxLength       int

	reverse         map[string]string
	reverseByLength map[int]map[string]string
	maxTargetLength int

	entries []Entry
}

// Empty returns a store with no entries. Conversions against it use the
// codec for everything.
func Empty() *Store {
	store, _ := Build(nil, Options{})
	return store
}

// Build creates a store from entries in order. See the package
// documentation for the rules on rejected and repeated entries.
func Build(entries []Entry, options Options) (*Store, Report) {
	store := &Store{
		singles:         make(map[string]string),
		phrasesByLength: make(map[int]map[string]string),
		maxLength:       1,
		reverse:         make(map[string]string),
		reverseByLength: make(map[int]map[string]string),
	}

	skip := make(map[string]bool, len(options.Skip))
	for _, key := range options.Skip {
		skip[key] = true
	}

	var report Report
	for _, entry := range entries {
		if entry.Key == "" || entry.Target == "" {
			report.Empty++
			continue
		}
		if skip[entry.Key] {
			report.Skipped++
			continue
		}
		if options.Separator != 0 && strings.ContainsRune(entry.Target, options.Separator) {
			report.SeparatorTargets++
			continue
		}

		keyLength := utf8.RuneCountInString(entry.Key)
		bucket := store.singles
		if keyLength > 1 {
			bucket = store.phrasesByLength[keyLength]
			if bucket == nil {
				bucket = make(map[string]string)
				store.phrasesByLength[keyLength] = bucket
			}
		}
		if _, exists := bucket[entry.Key]; exists {
			report.DuplicateKeys++
			continue
		}
		bucket[entry.Key] = entry.Target
		store.maxLength = max(store.maxLength, keyLength)
		store.entries = append(store.entries, entry)
		report.Loaded++

		if _, exists := store.reverse[entry.Target]; exists {
			report.DuplicateTargets++
			continue
		}
		store.reverse[entry.Target] = entry.Key
		targetLength := utf8.RuneCountInString(entry.Target)
		reverseBucket := store.reverseByLength[targetLength]
		if reverseBucket == nil {
			reverseBucket = make(map[string]string)
			store.reverseByLength[targetLength] = reverseBucket
		}
		reverseBucket[entry.Target] = entry.Key
		store.maxTargetLength = max(store.maxTargetLength, targetLength)
	}

	return store, report
}

// Dictionary returns the store itself, so a *Store can be passed
// anywhere a [Provider] is accepted.
func (store *Store) Dictionary() *Store {
	return store
}

// LookupForward returns the target for a source candidate.
func (store *Store) LookupForward(candidate string) (string, bool) {
	length := utf8.RuneCountInString(candidate)
	if length == 1 {
		target, exists := store.singles[candidate]
		return target, exists
	}
	target, exists := store.phrasesByLength[length][candidate]
	return target, exists
}

// LookupReverse returns the source key a target decodes to.
func (store *Store) LookupReverse(token string) (string, bool) {
	key, exists := store.reverse[token]
	return key, exists
}

// LookupReverseLength is LookupReverse for callers that already know
// the token's rune count, avoiding a full-table probe per candidate
// length during scanning.
func (store *Store) LookupReverseLength(token string, length int) (string, bool) {
	key, exists := store.reverseByLength[length][token]
	return key, exists
}

// MaxLength is the longest source key in runes, at least 1.
func (store *Store) MaxLength() int {
	return store.maxLength
}

// MaxTargetLength is the longest reversible target in runes, or 0 for
// an empty store.
func (store *Store) MaxTargetLength() int {
	return store.maxTargetLength
}

// Len is the number of entries reachable by forward lookup.
func (store *Store) Len() int {
	return len(store.entries)
}

// Entries returns the loaded entries in build order. The slice is
// shared; callers must not modify it.
func (store *Store) Entries() []Entry {
	return store.entries
}
