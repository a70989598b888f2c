// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dictfile loads dictionary source files into ordered
// [dictionary.Entry] lists.
//
// Three formats are accepted:
//
//   - JSON, with // and /* */ comments and trailing commas allowed
//     (JSONC). The table lives under the top-level "main" key:
//     {"main": {"你": "啊哒", ...}}.
//   - YAML with the same shape.
//   - Compiled snapshots written by [EncodeSnapshot]: a short header
//     naming the compression (none, lz4, zstd) followed by a
//     deterministic CBOR body carrying the entries and the fingerprint
//     of the source they were compiled from.
//
// Entry order follows the file, which makes the store's
// first-writer-wins rule for duplicate targets deterministic. Parsing
// is the only place in the dictionary path that returns errors;
// callers that cannot load a dictionary fall back to
// [dictionary.Empty].
//
// [Fingerprint] is a keyed BLAKE3 digest of the raw file bytes, used to
// detect changes between reloads and to tie a snapshot to its source.
package dictfile
