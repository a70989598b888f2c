// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictionary

import "sync/atomic"

// Provider supplies the store a conversion should read. Implementations
// must return a non-nil store.
type Provider interface {
	Dictionary() *Store
}

// Holder is a Provider whose store can be replaced while readers are
// active. Readers see either the old or the new store in full, never a
// partially built one.
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder returns a Holder serving initial, or the empty store when
// initial is nil.
func NewHolder(initial *Store) *Holder {
	holder := &Holder{}
	holder.Swap(initial)
	return holder
}

// Dictionary returns the current store.
func (holder *Holder) Dictionary() *Store {
	return holder.current.Load()
}

// Swap installs store and returns the one it replaced. A nil store is
// replaced by the empty store.
func (holder *Holder) Swap(store *Store) *Store {
	if store == nil {
		store = Empty()
	}
	return holder.current.Swap(store)
}
