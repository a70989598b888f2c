// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides the injectable time source used by the
// dictionary reload watcher.
//
// Production code takes a [Clock] and is given [Real]. Tests give it a
// [FakeClock], which never moves on its own: [FakeClock.Advance] moves
// time forward and delivers any ticks that came due. A test that
// starts a goroutine owning a ticker calls [FakeClock.WaitForTickers]
// before advancing, so that the tick cannot be delivered before the
// goroutine is listening.
package clock
