// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bearcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// BitWidth is the number of bits a codepoint occupies in a unit.
	BitWidth = 20

	// UnitLength is the number of symbols in one codec unit.
	UnitLength = BitWidth / 2

	// MaxCodepoint is the largest codepoint a unit can carry.
	// Codepoints above it (U+100000 and up) cannot be encoded.
	MaxCodepoint = 1<<BitWidth - 1

	// Replacement is substituted when a decoded value is not a valid
	// codepoint.
	Replacement = utf8.RuneError
)

// DefaultSymbols is the historical alphabet, indexed by bit pair:
// 00, 01, 10, 11.
var DefaultSymbols = [4]rune{'啊', '哒', '.', '。'}

// Alphabet is a bijection between the four 2-bit patterns and four
// symbols. An Alphabet is immutable after construction and safe for
// concurrent use.
type Alphabet struct {
	symbols [4]rune
	inverse map[rune]uint8
}

// New builds an Alphabet from four symbols indexed by bit pair. The
// symbols must be valid, distinct runes.
func New(symbols [4]rune) (*Alphabet, error) {
	inverse := make(map[rune]uint8, len(symbols))
	for bits, symbol := range symbols {
		if !utf8.ValidRune(symbol) || symbol == utf8.RuneError {
			return nil, fmt.Errorf("codec symbol %d (%U) is not a valid rune", bits, symbol)
		}
		if previous, exists := inverse[symbol]; exists {
			return nil, fmt.Errorf("codec symbol %q is assigned to both %02b and %02b", symbol, previous, bits)
		}
		inverse[symbol] = uint8(bits)
	}
	return &Alphabet{symbols: symbols, inverse: inverse}, nil
}

// Parse builds an Alphabet from a four-rune string such as "啊哒.。".
func Parse(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) != 4 {
		return nil, fmt.Errorf("codec alphabet %q has %d symbols, want 4", symbols, len(runes))
	}
	return New([4]rune(runes))
}

// Default returns an Alphabet over [DefaultSymbols].
func Default() *Alphabet {
	alphabet, err := New(DefaultSymbols)
	if err != nil {
		panic("bearcodec: default alphabet is invalid: " + err.Error())
	}
	return alphabet
}

// Symbols returns the four symbols indexed by bit pair.
func (alphabet *Alphabet) Symbols() [4]rune {
	return alphabet.symbols
}

// String returns the symbols concatenated in bit-pair order.
func (alphabet *Alphabet) String() string {
	return string(alphabet.symbols[:])
}

// Contains reports whether r is one of the alphabet's symbols.
func (alphabet *Alphabet) Contains(r rune) bool {
	_, exists := alphabet.inverse[r]
	return exists
}

// CheckSeparator returns an error if separator collides with a codec
// symbol. A shared rune would make unit boundaries unrecoverable.
func (alphabet *Alphabet) CheckSeparator(separator rune) error {
	if alphabet.Contains(separator) {
		return fmt.Errorf("separator %q is also a codec symbol in %q", separator, alphabet.String())
	}
	return nil
}

// IsUnit reports whether runes is exactly one unit's worth of alphabet
// symbols.
func (alphabet *Alphabet) IsUnit(runes []rune) bool {
	if len(runes) != UnitLength {
		return false
	}
	for _, r := range runes {
		if !alphabet.Contains(r) {
			return false
		}
	}
	return true
}

// Encode renders r as a codec unit. It returns false when r is outside
// 0..MaxCodepoint.
func (alphabet *Alphabet) Encode(r rune) (string, bool) {
	if r < 0 || r > MaxCodepoint {
		return "", false
	}
	var builder strings.Builder
	builder.Grow(UnitLength * utf8.UTFMax)
	for group := 0; group < UnitLength; group++ {
		shift := BitWidth - 2 - 2*group
		builder.WriteRune(alphabet.symbols[(r>>shift)&0b11])
	}
	return builder.String(), true
}

// Decoded is the outcome of decoding one token.
type Decoded struct {
	// Rune is the reconstructed codepoint. Only meaningful when OK.
	Rune rune

	// OK is false when the token did not contain exactly UnitLength
	// alphabet symbols. The caller passes such tokens through.
	OK bool

	// Lossy is set when decoding degraded: foreign runes were
	// stripped, or the value was not a valid codepoint and Rune is
	// Replacement.
	Lossy bool
}

// DecodeUnit decodes a token into a codepoint. Runes outside the
// alphabet are stripped first; if what remains is not exactly
// UnitLength symbols the result has OK false.
func (alphabet *Alphabet) DecodeUnit(token string) Decoded {
	cleaned := make([]rune, 0, UnitLength)
	stripped := false
	for _, r := range token {
		if alphabet.Contains(r) {
			cleaned = append(cleaned, r)
		} else {
			stripped = true
		}
	}
	if len(cleaned) != UnitLength {
		return Decoded{}
	}
	decoded := alphabet.DecodeRunes(cleaned)
	decoded.Lossy = decoded.Lossy || stripped
	return decoded
}

// DecodeRunes decodes exactly UnitLength symbols. A symbol with no
// inverse contributes 00 and marks the result lossy.
func (alphabet *Alphabet) DecodeRunes(unit []rune) Decoded {
	if len(unit) != UnitLength {
		return Decoded{}
	}
	var value int32
	lossy := false
	for _, symbol := range unit {
		bits, exists := alphabet.inverse[symbol]
		if !exists {
			lossy = true
		}
		value = value<<2 | int32(bits)
	}
	r := rune(value)
	if !utf8.ValidRune(r) {
		return Decoded{Rune: Replacement, OK: true, Lossy: true}
	}
	return Decoded{Rune: r, OK: true, Lossy: lossy}
}
