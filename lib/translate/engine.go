// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package translate

import (
	"strings"

	"github.com/bureau-foundation/bearcode/lib/bearcodec"
	"github.com/bureau-foundation/bearcode/lib/dictionary"
)

// DefaultSeparator delimits consecutive codec units.
const DefaultSeparator = '+'

// DefaultElide is the stopword dropped from forward input.
var DefaultElide = []rune{'了'}

// Options configures an Engine. The zero value uses the default
// alphabet and separator, no elision and the default detector.
type Options struct {
	Alphabet  *bearcodec.Alphabet
	Separator rune
	Elide     []rune
	Detector  *Detector
}

// Engine converts text in either direction. It is safe for concurrent
// use as long as its dictionary provider is.
type Engine struct {
	dictionary dictionary.Provider
	alphabet   *bearcodec.Alphabet
	separator  rune
	elide      map[rune]bool
	detector   *Detector
}

// New creates an Engine reading from provider. A nil provider means a
// permanently empty dictionary.
func New(provider dictionary.Provider, options Options) (*Engine, error) {
	if provider == nil {
		provider = dictionary.Empty()
	}
	alphabet := options.Alphabet
	if alphabet == nil {
		alphabet = bearcodec.Default()
	}
	separator := options.Separator
	if separator == 0 {
		separator = DefaultSeparator
	}
	if err := alphabet.CheckSeparator(separator); err != nil {
		return nil, err
	}
	detector := options.Detector
	if detector == nil {
		detector = DefaultDetector(alphabet, separator)
	}
	elide := make(map[rune]bool, len(options.Elide))
	for _, r := range options.Elide {
		elide[r] = true
	}
	return &Engine{
		dictionary: provider,
		alphabet:   alphabet,
		separator:  separator,
		elide:      elide,
		detector:   detector,
	}, nil
}

// Separator returns the codec unit boundary rune.
func (engine *Engine) Separator() rune {
	return engine.separator
}

// Alphabet returns the codec alphabet.
func (engine *Engine) Alphabet() *bearcodec.Alphabet {
	return engine.alphabet
}

// Detect resolves ModeAuto for text.
func (engine *Engine) Detect(text string) Mode {
	return engine.detector.Detect(text)
}

// Convert converts text in the given mode. With useDictionary false
// every rune goes through the codec.
func (engine *Engine) Convert(text string, mode Mode, useDictionary bool) Result {
	if mode == ModeAuto {
		mode = engine.Detect(text)
	}
	if mode == ModeForward {
		return engine.Encode(text, useDictionary)
	}
	return engine.Decode(text, useDictionary)
}

// Encode converts source text to bear language.
func (engine *Engine) Encode(text string, useDictionary bool) Result {
	store := engine.dictionary.Dictionary()
	runes := []rune(text)

	var segments []Segment
	var display strings.Builder
	previousCodec := false

	for position := 0; position < len(runes); {
		current := runes[position]
		if engine.elide[current] {
			position++
			continue
		}

		if useDictionary {
			if length, target, found := longestForward(store, runes, position); found {
				segments = append(segments, Segment{
					Text:  target,
					Kind:  KindDictionary,
					Tag:   TagDict,
					Input: string(runes[position : position+length]),
				})
				display.WriteString(target)
				previousCodec = false
				position += length
				continue
			}
		}

		unit, encodable := engine.alphabet.Encode(current)
		if !encodable {
			segments = append(segments, Segment{
				Text:  string(current),
				Kind:  KindLiteral,
				Tag:   TagUnknown,
				Input: string(current),
			})
			display.WriteRune(current)
			previousCodec = false
			position++
			continue
		}

		if previousCodec {
			display.WriteRune(engine.separator)
		}
		segments = append(segments, Segment{
			Text:  unit,
			Kind:  KindCodec,
			Tag:   TagEncode,
			Input: string(current),
		})
		display.WriteString(unit)
		previousCodec = true
		position++
	}

	return Result{DisplayText: display.String(), Segments: segments, Mode: ModeForward}
}

// longestForward finds the longest dictionary key starting at position.
func longestForward(store *dictionary.Store, runes []rune, position int) (int, string, bool) {
	limit := min(store.MaxLength(), len(runes)-position)
	for length := limit; length >= 1; length-- {
		candidate := string(runes[position : position+length])
		if target, found := store.LookupForward(candidate); found {
			return length, target, true
		}
	}
	return 0, "", false
}

// Decode converts bear language to source text using the fixed-length
// scan described in the package documentation.
func (engine *Engine) Decode(text string, useDictionary bool) Result {
	store := engine.dictionary.Dictionary()
	runes := []rune(text)

	var segments []Segment
	var display strings.Builder
	emit := func(segment Segment) {
		segments = append(segments, segment)
		display.WriteString(segment.Text)
	}

	// afterUnitSeparator is set when the previous step consumed a codec
	// unit and its separator; the separator only ever joins two units.
	afterUnitSeparator := false
	for position := 0; position < len(runes); {
		unitEnd := position + bearcodec.UnitLength
		isUnit := unitEnd <= len(runes) && engine.alphabet.IsUnit(runes[position:unitEnd])
		separated := isUnit && unitEnd < len(runes) && runes[unitEnd] == engine.separator

		if isUnit && (separated || afterUnitSeparator) {
			emit(engine.codecSegment(runes[position:unitEnd]))
			position = engine.skipSeparator(runes, unitEnd)
			afterUnitSeparator = separated
			continue
		}
		afterUnitSeparator = false

		if useDictionary {
			if length, key, found := longestReverse(store, runes, position); found {
				emit(Segment{
					Text:  key,
					Kind:  KindDictionary,
					Tag:   TagDict,
					Input: string(runes[position : position+length]),
				})
				position = engine.skipSeparator(runes, position+length)
				continue
			}
		}

		if isUnit {
			emit(engine.codecSegment(runes[position:unitEnd]))
			position = engine.skipSeparator(runes, unitEnd)
			continue
		}

		emit(Segment{
			Text:  string(runes[position]),
			Kind:  KindLiteral,
			Tag:   TagUnknown,
			Input: string(runes[position]),
		})
		position++
	}

	return Result{DisplayText: display.String(), Segments: segments, Mode: ModeReverse}
}

func (engine *Engine) codecSegment(unit []rune) Segment {
	decoded := engine.alphabet.DecodeRunes(unit)
	return Segment{
		Text:  string(decoded.Rune),
		Kind:  KindCodec,
		Tag:   TagDecode,
		Input: string(unit),
		Lossy: decoded.Lossy,
	}
}

func (engine *Engine) skipSeparator(runes []rune, position int) int {
	if position < len(runes) && runes[position] == engine.separator {
		return position + 1
	}
	return position
}

// longestReverse finds the longest dictionary target starting at
// position.
func longestReverse(store *dictionary.Store, runes []rune, position int) (int, string, bool) {
	limit := min(store.MaxTargetLength(), len(runes)-position)
	for length := limit; length >= 1; length-- {
		candidate := string(runes[position : position+length])
		if key, found := store.LookupReverseLength(candidate, length); found {
			return length, key, true
		}
	}
	return 0, "", false
}

// DecodeTokens converts bear language that joins every segment with
// the separator. Each token is looked up whole in the reverse
// dictionary, then decoded as a codec unit; tokens that are neither
// pass through unchanged.
func (engine *Engine) DecodeTokens(text string, useDictionary bool) Result {
	store := engine.dictionary.Dictionary()

	var segments []Segment
	var display strings.Builder
	for _, token := range strings.Split(text, string(engine.separator)) {
		if token == "" {
			continue
		}

		segment := Segment{Text: token, Kind: KindLiteral, Tag: TagUnknown, Input: token}
		if key, found := store.LookupReverse(token); useDictionary && found {
			segment = Segment{Text: key, Kind: KindDictionary, Tag: TagDict, Input: token}
		} else if decoded := engine.alphabet.DecodeUnit(token); decoded.OK {
			segment = Segment{
				Text:  string(decoded.Rune),
				Kind:  KindCodec,
				Tag:   TagDecode,
				Input: token,
				Lossy: decoded.Lossy,
			}
		}
		segments = append(segments, segment)
		display.WriteString(segment.Text)
	}

	return Result{DisplayText: display.String(), Segments: segments, Mode: ModeReverse}
}
