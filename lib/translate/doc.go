// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package translate converts between Chinese text and bear language.
//
// An [Engine] combines a dictionary (through [dictionary.Provider]), a
// codec alphabet, a separator rune and a direction [Detector]. It has
// no mutable state of its own: each call reads one dictionary snapshot
// and returns a [Result] holding the display text and the ordered
// [Segment] trace that produced it.
//
// # Forward
//
// The input is scanned by rune. Elided runes are dropped. At each
// position the longest dictionary key starting there wins; otherwise
// the rune becomes a ten-symbol codec unit. The separator is written
// only between two consecutive codec units. Runes too large for a unit
// pass through as literals.
//
// # Reverse
//
// The scan at each position tries, in order:
//
//  1. ten codec symbols immediately followed by the separator, or
//     directly after such a unit and its separator, which under the
//     forward rule can only be a codec unit;
//  2. the longest dictionary target;
//  3. ten codec symbols;
//  4. the single rune, passed through as a literal.
//
// A separator directly after a dictionary or codec segment is consumed
// as a boundary. Every step advances at least one rune, so malformed
// input always terminates.
//
// [Engine.DecodeTokens] implements the older separator-delimited
// reading, where every segment was joined by the separator, for input
// produced by that convention.
package translate
