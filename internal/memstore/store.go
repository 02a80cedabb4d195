// Package memstore provides the in-memory entity store used as the development
// and test backend for vacancies, candidates and files.
// Entries are keyed by integer identifier and guarded per key by
// compare-and-swap, so writers to different entities never contend.
package memstore

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// ErrChanged is returned by Store.Replace when another writer replaced the
// entry between the read and the swap.
var ErrChanged = errors.New("entry changed concurrently")

// Store is a concurrent map from identifier to value.
// Values are published by pointer swap and copied out on read, so an observed
// value is always one that was fully built before installation.
type Store[V any] struct {
	entries sync.Map // int -> *V
}

// NewStore creates an empty Store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{}
}

// Insert adds v under id unless an entry already exists.
// Reports whether the value was inserted.
func (s *Store[V]) Insert(id int, v V) bool {
	_, loaded := s.entries.LoadOrStore(id, &v)
	return !loaded
}

// Replace applies fn to the current value at id and installs the result.
// The read-transform-write is indivisible for that key: if the slot changes
// before the swap, Replace reports the key as absent when it was removed and
// returns ErrChanged otherwise. Errors from fn are returned unchanged and leave
// the entry untouched. Reports false when no entry exists at id.
func (s *Store[V]) Replace(id int, fn func(current V) (V, error)) (bool, error) {
	raw, ok := s.entries.Load(id)
	if !ok {
		return false, nil
	}
	current := raw.(*V)

	next, err := fn(*current)
	if err != nil {
		return false, err
	}

	if s.entries.CompareAndSwap(id, current, &next) {
		return true, nil
	}
	if _, ok := s.entries.Load(id); !ok {
		return false, nil
	}
	return false, ErrChanged
}

// Remove deletes the entry at id. Reports whether it existed.
func (s *Store[V]) Remove(id int) bool {
	_, ok := s.entries.LoadAndDelete(id)
	return ok
}

// Get returns a copy of the value at id.
func (s *Store[V]) Get(id int) (V, bool) {
	raw, ok := s.entries.Load(id)
	if !ok {
		var zero V
		return zero, false
	}
	return *raw.(*V), true
}

// Snapshot returns copies of all values ordered by identifier.
// Entries written concurrently may or may not be included.
func (s *Store[V]) Snapshot() []V {
	type entry struct {
		id    int
		value V
	}
	var entries []entry
	s.entries.Range(func(key, raw any) bool {
		entries = append(entries, entry{id: key.(int), value: *raw.(*V)})
		return true
	})
	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.id, b.id) })

	result := make([]V, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.value)
	}
	return result
}

// Len returns the number of entries at the time of the call.
func (s *Store[V]) Len() int {
	n := 0
	s.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
