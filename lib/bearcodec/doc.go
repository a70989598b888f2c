// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bearcodec implements the fixed-width binary codec that turns a
// single Unicode codepoint into a bear-language codec unit and back.
//
// A codepoint is rendered as a 20-bit big-endian value, split into ten
// 2-bit groups, and each group is replaced by one of four symbols from
// an [Alphabet]. Every codec unit is therefore exactly [UnitLength]
// symbols long, which is what lets a decoder recognise units inside a
// longer run of bear text.
//
// The default alphabet maps 00→啊, 01→哒, 10→., 11→。. Alphabets are
// values: callers construct one with [New] (or take [Default]) and pass
// it to whatever needs it. There is no package-level mutable state.
//
// Decoding is deliberately forgiving. Runes outside the alphabet are
// stripped before the length check, a symbol with no inverse decodes as
// 00, and a reconstructed value that is not a valid codepoint becomes
// U+FFFD. Each of these degradations is reported through
// [Decoded.Lossy] rather than an error.
package bearcodec
