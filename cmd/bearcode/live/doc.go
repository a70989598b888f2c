// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package live is the interactive translator: an input area whose
// contents are converted as the user types, with the output coloured
// by segment and a strip of tag chips underneath.
//
// Conversion is debounced: each edit schedules a conversion after
// [DefaultDebounce], and only the most recent schedule runs. Switching
// the mode or the dictionary converts immediately. A dictionary reload
// (delivered as [DictionaryChangedMsg]) also reconverts the current
// input against the new store.
package live
