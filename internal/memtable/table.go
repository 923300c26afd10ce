package memtable

import (
	"sync"

	"membuf/internal/filter"
	"membuf/pkg/errors"
)

// Memtable is a bounded upsert buffer. The zero value is not usable;
// construct with New or NewWithFilter.
type Memtable struct {
	mu       sync.RWMutex
	entries  []Entry // live entries are [0, len); append never reallocates
	capacity int
	closed   bool
	filter   filter.Filter // optional, nil means scan every lookup
}

// New creates an empty table with the given number of slots.
func New(capacity int) (*Memtable, error) {
	return NewWithFilter(capacity, nil)
}

// NewWithFilter creates an empty table that consults f to skip the
// scan on lookups for keys that were never written. A nil f behaves
// like New.
func NewWithFilter(capacity int, f filter.Filter) (*Memtable, error) {
	if capacity <= 0 {
		return nil, errors.ErrInvalidCapacity
	}
	return &Memtable{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
		filter:   f,
	}, nil
}

// Put inserts or overwrites the entry for key. An existing key is
// updated in place even when the table is full; a new key lands in the
// next free slot, or is rejected with no effect when none remains.
func (t *Memtable) Put(key, value int64) (PutResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, errors.ErrClosed
	}

	for i := range t.entries {
		if t.entries[i].Key == key {
			t.entries[i].Value = value
			return PutUpdated, nil
		}
	}

	if len(t.entries) == t.capacity {
		return PutRejected, nil
	}

	t.entries = append(t.entries, Entry{Key: key, Value: value})
	if t.filter != nil {
		t.filter.Add(key)
	}
	return PutInserted, nil
}

// Get returns the value stored for key. The second return is false
// when the key is absent or the table is closed.
func (t *Memtable) Get(key int64) (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return 0, false
	}
	if t.filter != nil && !t.filter.MayContain(key) {
		return 0, false
	}
	for i := range t.entries {
		if t.entries[i].Key == key {
			return t.entries[i].Value, true
		}
	}
	return 0, false
}

// Len returns the number of occupied slots.
func (t *Memtable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Cap returns the slot capacity fixed at construction.
func (t *Memtable) Cap() int {
	return t.capacity
}

// Full reports whether every slot is occupied.
func (t *Memtable) Full() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries) == t.capacity
}

// All returns a snapshot copy of the live entries in slot order, nil
// when the table is empty or closed.
func (t *Memtable) All() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Close releases the backing storage. Put on a closed table fails
// with ErrClosed, Get misses. Close is idempotent in effect but only
// the first call returns nil.
func (t *Memtable) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return errors.ErrClosed
	}
	t.closed = true
	t.entries = nil
	t.filter = nil
	return nil
}
