// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"sync"
	"testing"
)

func TestBuildBucketsByLength(t *testing.T) {
	store, report := Build([]Entry{
		{Key: "你", Target: "啊哒"},
		{Key: "你好", Target: "哒哒~"},
		{Key: "熊猫宝宝", Target: "啊~哒~"},
	}, Options{})

	if report.Loaded != 3 {
		t.Errorf("Loaded = %d, want 3", report.Loaded)
	}
	if store.MaxLength() != 4 {
		t.Errorf("MaxLength = %d, want 4", store.MaxLength())
	}
	if store.MaxTargetLength() != 4 {
		t.Errorf("MaxTargetLength = %d, want 4", store.MaxTargetLength())
	}

	tests := []struct {
		candidate string
		want      string
		found     bool
	}{
		{"你", "啊哒", true},
		{"你好", "哒哒~", true},
		{"熊猫宝宝", "啊~哒~", true},
		{"好", "", false},
		{"熊猫", "", false},
	}
	for _, test := range tests {
		got, found := store.LookupForward(test.candidate)
		if found != test.found || got != test.want {
			t.Errorf("LookupForward(%q) = %q, %v; want %q, %v", test.candidate, got, found, test.want, test.found)
		}
	}

	key, found := store.LookupReverse("哒哒~")
	if !found || key != "你好" {
		t.Errorf("LookupReverse(哒哒~) = %q, %v; want 你好, true", key, found)
	}
	key, found = store.LookupReverseLength("啊哒", 2)
	if !found || key != "你" {
		t.Errorf("LookupReverseLength(啊哒, 2) = %q, %v; want 你, true", key, found)
	}
	if _, found := store.LookupReverseLength("啊哒", 3); found {
		t.Error("LookupReverseLength matched with the wrong length")
	}
}

func TestBuildDuplicateTargetFirstWriterWins(t *testing.T) {
	store, report := Build([]Entry{
		{Key: "熊", Target: "啊啊"},
		{Key: "猫", Target: "啊啊"},
	}, Options{})

	if report.Loaded != 2 || report.DuplicateTargets != 1 {
		t.Errorf("report = %+v, want Loaded 2, DuplicateTargets 1", report)
	}
	// Both keys still encode.
	for _, key := range []string{"熊", "猫"} {
		if target, found := store.LookupForward(key); !found || target != "啊啊" {
			t.Errorf("LookupForward(%q) = %q, %v", key, target, found)
		}
	}
	// The target decodes to the first key only.
	if key, _ := store.LookupReverse("啊啊"); key != "熊" {
		t.Errorf("LookupReverse(啊啊) = %q, want 熊", key)
	}
}

func TestBuildRejections(t *testing.T) {
	store, report := Build([]Entry{
		{Key: "了", Target: "哒"},
		{Key: "", Target: "哒"},
		{Key: "空", Target: ""},
		{Key: "加", Target: "啊+哒"},
		{Key: "熊", Target: "啊啊"},
		{Key: "熊", Target: "哒哒"},
	}, Options{Skip: []string{"了"}, Separator: '+'})

	want := Report{Loaded: 1, Skipped: 1, Empty: 2, DuplicateKeys: 1, SeparatorTargets: 1}
	if report != want {
		t.Errorf("report = %+v, want %+v", report, want)
	}
	if _, found := store.LookupForward("了"); found {
		t.Error("skipped key is present")
	}
	if target, _ := store.LookupForward("熊"); target != "啊啊" {
		t.Errorf("repeated key kept %q, want the first target", target)
	}
	if _, found := store.LookupReverse("哒哒"); found {
		t.Error("rejected duplicate key leaked into the reverse table")
	}
	if store.Len() != 1 || store.Entries()[0].Key != "熊" {
		t.Errorf("Entries = %+v", store.Entries())
	}
}

func TestEmptyStore(t *testing.T) {
	store := Empty()
	if store.MaxLength() != 1 {
		t.Errorf("MaxLength = %d, want 1", store.MaxLength())
	}
	if store.MaxTargetLength() != 0 {
		t.Errorf("MaxTargetLength = %d, want 0", store.MaxTargetLength())
	}
	if _, found := store.LookupForward("你"); found {
		t.Error("empty store found a key")
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}
}

func TestHolderSwap(t *testing.T) {
	holder := NewHolder(nil)
	if holder.Dictionary() == nil || holder.Dictionary().Len() != 0 {
		t.Fatal("NewHolder(nil) should serve the empty store")
	}

	next, _ := Build([]Entry{{Key: "你", Target: "啊哒"}}, Options{})
	previous := holder.Swap(next)
	if previous.Len() != 0 {
		t.Errorf("Swap returned a store with %d entries, want the empty one", previous.Len())
	}
	if holder.Dictionary() != next {
		t.Error("Dictionary did not return the swapped-in store")
	}
}

func TestHolderConcurrentReaders(t *testing.T) {
	first, _ := Build([]Entry{{Key: "你", Target: "啊哒"}}, Options{})
	second, _ := Build([]Entry{{Key: "你", Target: "哒啊"}}, Options{})
	holder := NewHolder(first)

	var group sync.WaitGroup
	for reader := 0; reader < 4; reader++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for i := 0; i < 1000; i++ {
				target, found := holder.Dictionary().LookupForward("你")
				if !found || (target != "啊哒" && target != "哒啊") {
					t.Errorf("reader saw %q, %v", target, found)
					return
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			holder.Swap(second)
		} else {
			holder.Swap(first)
		}
	}
	group.Wait()
}
