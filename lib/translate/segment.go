// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package translate

import (
	"fmt"
	"strings"
)

// Mode selects the conversion direction.
type Mode int

const (
	// ModeAuto picks forward or reverse with the engine's Detector.
	ModeAuto Mode = iota
	// ModeForward converts source text to bear language.
	ModeForward
	// ModeReverse converts bear language to source text.
	ModeReverse
)

// String returns the canonical mode name.
func (mode Mode) String() string {
	switch mode {
	case ModeAuto:
		return "auto"
	case ModeForward:
		return "forward"
	case ModeReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Mode(%d)", int(mode))
	}
}

// ParseMode accepts the canonical names plus the historical aliases
// cn2bear/bear2cn and encode/decode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return ModeAuto, nil
	case "forward", "cn2bear", "encode":
		return ModeForward, nil
	case "reverse", "bear2cn", "decode":
		return ModeReverse, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode %q (want auto, forward, or reverse)", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (mode Mode) MarshalText() ([]byte, error) {
	return []byte(mode.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (mode *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

// Kind records where a segment's text came from.
type Kind int

const (
	// KindDictionary is a direct phrase substitution.
	KindDictionary Kind = iota
	// KindCodec is a codec unit, encoded or decoded.
	KindCodec
	// KindLiteral is input passed through unchanged.
	KindLiteral
)

// String returns the kind name used in traces and JSON output.
func (kind Kind) String() string {
	switch kind {
	case KindDictionary:
		return "dictionary"
	case KindCodec:
		return "codec"
	case KindLiteral:
		return "literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (kind Kind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (kind *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dictionary":
		*kind = KindDictionary
	case "codec":
		*kind = KindCodec
	case "literal":
		*kind = KindLiteral
	default:
		return fmt.Errorf("unknown segment kind %q", text)
	}
	return nil
}

// Tag is the provenance label shown next to converted output.
type Tag string

const (
	TagDict    Tag = "dict"
	TagEncode  Tag = "encode"
	TagDecode  Tag = "decode"
	TagUnknown Tag = "unknown"
)

// Label returns the Chinese label shown next to converted output.
func (tag Tag) Label() string {
	switch tag {
	case TagDict:
		return "词典"
	case TagEncode:
		return "编码"
	case TagDecode:
		return "解码"
	default:
		return "直译"
	}
}

// Segment is one unit of converted output.
type Segment struct {
	// Text is the output produced for this segment.
	Text string `json:"text" cbor:"text"`

	// Kind is the path that produced Text.
	Kind Kind `json:"kind" cbor:"kind"`

	// Tag is the display label for Kind in the conversion's direction.
	Tag Tag `json:"tag" cbor:"tag"`

	// Input is the span of input consumed, excluding any boundary
	// separator.
	Input string `json:"input" cbor:"input"`

	// Lossy is set when Text is a degraded rendering of Input: a
	// replacement character or a unit with foreign or unknown symbols.
	Lossy bool `json:"lossy,omitempty" cbor:"lossy,omitempty"`
}

// Result is the outcome of one conversion.
type Result struct {
	// DisplayText is the converted text.
	DisplayText string `json:"display_text" cbor:"display_text"`

	// Segments is the ordered trace that produced DisplayText.
	Segments []Segment `json:"segments" cbor:"segments"`

	// Mode is the direction actually used, never ModeAuto.
	Mode Mode `json:"mode" cbor:"mode"`
}

// Lossy reports whether any segment degraded.
func (result Result) Lossy() bool {
	for _, segment := range result.Segments {
		if segment.Lossy {
			return true
		}
	}
	return false
}
