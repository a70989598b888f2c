// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/bearcode/lib/dictionary"
)

// Field names which side of an entry matched.
type Field string

const (
	FieldKey    Field = "key"
	FieldTarget Field = "target"
)

// Match is one ranked search hit.
type Match struct {
	Entry dictionary.Entry `json:"entry"`
	Field Field            `json:"field"`
	Score int              `json:"score"`

	// Start and End are rune offsets of the matched span in the
	// matched field.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Slab sizes follow fzf's own defaults.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

var initScheme sync.Once

// Entries ranks entries against query and returns up to limit matches
// (all when limit <= 0). Matching is case-insensitive. Ties keep
// shorter keys first, then entry order.
func Entries(entries []dictionary.Entry, query string, limit int) []Match {
	pattern := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(pattern) == 0 {
		return nil
	}
	initScheme.Do(func() { algo.Init("default") })

	slab := util.MakeSlab(slab16Size, slab32Size)
	var matches []Match
	for _, entry := range entries {
		best, found := Match{}, false
		for _, candidate := range []struct {
			field Field
			text  string
		}{{FieldKey, entry.Key}, {FieldTarget, entry.Target}} {
			chars := util.ToChars([]byte(candidate.text))
			result, _ := algo.FuzzyMatchV2(false, false, true, &chars, pattern, false, slab)
			if result.Start < 0 || result.Score <= 0 {
				continue
			}
			if !found || result.Score > best.Score {
				best = Match{
					Entry: entry,
					Field: candidate.field,
					Score: result.Score,
					Start: result.Start,
					End:   result.End,
				}
				found = true
			}
		}
		if found {
			matches = append(matches, best)
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}
		return len([]rune(matches[a].Entry.Key)) < len([]rune(matches[b].Entry.Key))
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
