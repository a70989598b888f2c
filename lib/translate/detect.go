// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bureau-foundation/bearcode/lib/bearcodec"
)

// Range is an inclusive codepoint range.
type Range struct {
	Low  rune
	High rune
}

// Contains reports whether r falls inside the range.
func (r Range) Contains(candidate rune) bool {
	return candidate >= r.Low && candidate <= r.High
}

// String formats the range as "4e00-9fa5".
func (r Range) String() string {
	return fmt.Sprintf("%04x-%04x", r.Low, r.High)
}

// ParseRange parses "4e00-9fa5" (hexadecimal, optional U+ or 0x
// prefixes) or a single codepoint "3007".
func ParseRange(text string) (Range, error) {
	lowText, highText, isRange := strings.Cut(strings.TrimSpace(text), "-")
	low, err := parseCodepoint(lowText)
	if err != nil {
		return Range{}, fmt.Errorf("parsing range %q: %w", text, err)
	}
	high := low
	if isRange {
		high, err = parseCodepoint(highText)
		if err != nil {
			return Range{}, fmt.Errorf("parsing range %q: %w", text, err)
		}
	}
	if high < low {
		return Range{}, fmt.Errorf("parsing range %q: end is before start", text)
	}
	return Range{Low: low, High: high}, nil
}

func parseCodepoint(text string) (rune, error) {
	text = strings.TrimSpace(text)
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		text = strings.TrimPrefix(text, prefix)
	}
	value, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, err
	}
	if value > 0x10FFFF {
		return 0, fmt.Errorf("%x is beyond U+10FFFF", value)
	}
	return rune(value), nil
}

// DefaultSourceRanges is U+4E00 through U+9FA5, the CJK Unified
// Ideographs block as first published.
var DefaultSourceRanges = []Range{{Low: 0x4E00, High: 0x9FA5}}

// DefaultExtraSignals are bear-signal runes beyond the codec symbols
// and separator. Dictionary phrases use '~'.
var DefaultExtraSignals = []rune{'~'}

// Detector decides a direction by counting source-script runes against
// bear-signal runes.
type Detector struct {
	source []Range
	bear   map[rune]bool
}

// NewDetector builds a detector from source ranges and the full set of
// bear-signal runes.
func NewDetector(source []Range, bearSignals []rune) *Detector {
	bear := make(map[rune]bool, len(bearSignals))
	for _, signal := range bearSignals {
		bear[signal] = true
	}
	return &Detector{source: append([]Range(nil), source...), bear: bear}
}

// DefaultDetector counts the default source ranges against the
// alphabet's symbols, the separator and [DefaultExtraSignals].
func DefaultDetector(alphabet *bearcodec.Alphabet, separator rune) *Detector {
	return NewDetector(DefaultSourceRanges, BearSignals(alphabet, separator, DefaultExtraSignals))
}

// BearSignals collects the codec symbols, the separator and extras into
// one signal list.
func BearSignals(alphabet *bearcodec.Alphabet, separator rune, extras []rune) []rune {
	symbols := alphabet.Symbols()
	signals := append([]rune(nil), symbols[:]...)
	signals = append(signals, separator)
	return append(signals, extras...)
}

// Counts returns the number of source-script runes and bear-signal
// runes in text. The classes are counted independently: 啊 and 哒 are
// both CJK ideographs and codec symbols, so they count toward both.
func (detector *Detector) Counts(text string) (source, bear int) {
	for _, r := range text {
		if detector.bear[r] {
			bear++
		}
		for _, sourceRange := range detector.source {
			if sourceRange.Contains(r) {
				source++
				break
			}
		}
	}
	return source, bear
}

// Detect returns ModeForward when source runes strictly outnumber bear
// signals, and ModeReverse otherwise, including for empty text.
func (detector *Detector) Detect(text string) Mode {
	source, bear := detector.Counts(text)
	if source > bear {
		return ModeForward
	}
	return ModeReverse
}
