// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package reload keeps a [dictionary.Holder] in step with a dictionary
// file on disk.
//
// A [Watcher] polls the file on a [clock.Clock] ticker and compares the
// BLAKE3 fingerprint of its contents with the last one it saw. When
// the contents change it parses them, builds a complete new store and
// swaps it into the holder in one step. A file that fails to read or
// parse leaves the previous store in place; the failure is logged and
// reported once per distinct file content, not on every tick.
//
// Polling is used instead of inotify so the same code path serves
// editors that replace files by rename, network filesystems, and
// platforms without inotify.
package reload
