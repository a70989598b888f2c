// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the single CBOR configuration for bearcode.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2) so the same
// dictionary snapshot or conversion result always produces identical
// bytes; snapshot fingerprints and golden tests depend on that. Types
// implementing encoding.TextMarshaler (translate.Mode, translate.Kind)
// are written as CBOR text strings, matching their JSON form.
//
// Consumers import this package rather than fxamacker/cbor directly.
package codec
