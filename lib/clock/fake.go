// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// FakeClock is a Clock that moves only when told to. It is safe for
// concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	changed *sync.Cond
	current time.Time
	tickers []*fakeTicker
}

type fakeTicker struct {
	next     time.Time
	interval time.Duration
	channel  chan time.Time
	stopped  bool
}

// Fake returns a FakeClock reading initial.
func Fake(initial time.Time) *FakeClock {
	clock := &FakeClock{current: initial}
	clock.changed = sync.NewCond(&clock.mu)
	return clock
}

// Now returns the fake time.
func (clock *FakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.current
}

// NewTicker registers a ticker that fires when Advance crosses its
// next deadline.
func (clock *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	clock.mu.Lock()
	defer clock.mu.Unlock()

	ticker := &fakeTicker{
		next:     clock.current.Add(d),
		interval: d,
		channel:  make(chan time.Time, 1),
	}
	clock.tickers = append(clock.tickers, ticker)
	clock.changed.Broadcast()

	return &Ticker{
		C: ticker.channel,
		stop: func() {
			clock.mu.Lock()
			defer clock.mu.Unlock()
			ticker.stopped = true
			clock.changed.Broadcast()
		},
	}
}

// Advance moves the clock forward by d. Each ticker whose deadline is
// crossed receives one tick (more are dropped, as with time.Ticker)
// and is rescheduled past the new time.
func (clock *FakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	clock.current = clock.current.Add(d)
	active := clock.tickers[:0]
	for _, ticker := range clock.tickers {
		if ticker.stopped {
			continue
		}
		if !ticker.next.After(clock.current) {
			select {
			case ticker.channel <- ticker.next:
			default:
			}
			for !ticker.next.After(clock.current) {
				ticker.next = ticker.next.Add(ticker.interval)
			}
		}
		active = append(active, ticker)
	}
	clock.tickers = active
}

// WaitForTickers blocks until at least count tickers are running.
func (clock *FakeClock) WaitForTickers(count int) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for clock.runningTickers() < count {
		clock.changed.Wait()
	}
}

func (clock *FakeClock) runningTickers() int {
	running := 0
	for _, ticker := range clock.tickers {
		if !ticker.stopped {
			running++
		}
	}
	return running
}
