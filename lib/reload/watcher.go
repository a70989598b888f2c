// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package reload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/bureau-foundation/bearcode/lib/clock"
	"github.com/bureau-foundation/bearcode/lib/dictfile"
	"github.com/bureau-foundation/bearcode/lib/dictionary"
)

// DefaultInterval is the poll interval when Config.Interval is zero.
const DefaultInterval = 2 * time.Second

// Event describes one observed change of the dictionary file.
type Event struct {
	Fingerprint dictfile.Hash
	Report      dictionary.Report

	// Err is set when the new contents could not be loaded. The
	// holder still serves the previous store.
	Err error
}

// Config configures a Watcher.
type Config struct {
	Path     string
	Options  dictionary.Options
	Holder   *dictionary.Holder
	Clock    clock.Clock
	Interval time.Duration
	Logger   *slog.Logger

	// OnChange, if set, is called after every load attempt triggered
	// by a content change, from the watcher's goroutine.
	OnChange func(Event)
}

// Watcher polls a dictionary file and swaps rebuilt stores into a
// holder.
type Watcher struct {
	config Config

	mu   sync.Mutex
	last dictfile.Hash
	seen bool
}

// New validates config and returns a Watcher. It does not read the
// file; call Load or Run.
func New(config Config) (*Watcher, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("reload: dictionary path is required")
	}
	if config.Holder == nil {
		return nil, fmt.Errorf("reload: holder is required")
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	config.Logger = config.Logger.With("dictionary", config.Path)
	return &Watcher{config: config}, nil
}

// Load reads the file now and installs it if its contents differ from
// the last load. The bool reports whether the contents changed;
// Event.Err carries a load failure, in which case the holder is left
// unchanged.
func (watcher *Watcher) Load() (Event, bool) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()

	data, err := os.ReadFile(watcher.config.Path)
	if err != nil {
		// A missing file has no fingerprint; report it only once.
		if watcher.seen && watcher.last.IsZero() {
			return Event{}, false
		}
		watcher.seen = true
		watcher.last = dictfile.Hash{}
		event := Event{Err: fmt.Errorf("reading dictionary: %w", err)}
		watcher.config.Logger.Warn("dictionary unavailable, keeping current store", "error", err)
		return event, true
	}

	fingerprint := dictfile.Fingerprint(data)
	if watcher.seen && fingerprint == watcher.last {
		return Event{}, false
	}
	watcher.seen = true
	watcher.last = fingerprint

	event := Event{Fingerprint: fingerprint}
	source, err := dictfile.Load(watcher.config.Path, data)
	if err != nil {
		event.Err = err
		watcher.config.Logger.Warn("dictionary failed to load, keeping current store",
			"fingerprint", fingerprint.Short(),
			"error", err,
		)
		return event, true
	}

	store, report := dictionary.Build(source.Entries, watcher.config.Options)
	watcher.config.Holder.Swap(store)
	event.Report = report
	watcher.config.Logger.Info("dictionary loaded",
		"fingerprint", fingerprint.Short(),
		"format", source.Format.String(),
		"entries", report.Loaded,
		"duplicate_targets", report.DuplicateTargets,
		"rejected", report.Empty+report.SeparatorTargets+report.DuplicateKeys,
	)
	return event, true
}

// Run polls until ctx is cancelled. The first poll happens
// immediately.
func (watcher *Watcher) Run(ctx context.Context) error {
	watcher.poll()

	ticker := watcher.config.Clock.NewTicker(watcher.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			watcher.poll()
		}
	}
}

func (watcher *Watcher) poll() {
	event, changed := watcher.Load()
	if changed && watcher.config.OnChange != nil {
		watcher.config.OnChange(event)
	}
}
