// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package search finds dictionary entries by fuzzy match, using fzf's
// matching algorithm over both the source key and the bear target of
// each entry.
package search
