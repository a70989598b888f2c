// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dictionary holds the bidirectional phrase table used by the
// transcoder.
//
// A [Store] is built once from an ordered list of [Entry] values and is
// immutable thereafter, so it is safe for concurrent readers. Forward
// lookups are bucketed by key length in runes so the longest-match scan
// only probes the bucket it needs; reverse lookups are bucketed the same
// way by target length.
//
// Build never fails. Entries that cannot be stored are skipped and
// counted in the returned [Report]: empty keys or targets, keys on the
// configured skip list, targets containing the boundary separator, and
// repeats. A repeated key keeps its first target. A repeated target
// keeps its first key for the reverse direction only, so both source
// keys still encode but the target always decodes to the first one.
//
// [Holder] wraps an atomically swappable *Store for callers that reload
// the dictionary while conversions are running.
package dictionary
