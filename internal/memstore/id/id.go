// Package id provides unique identifier allocation for in-memory entities.
package id

import "sync/atomic"

// Sequence hands out strictly increasing integer identifiers.
// The zero value is ready to use; the first identifier issued is 1.
// It is safe for concurrent use and never reissues a value.
type Sequence struct {
	last atomic.Int64
}

// Next returns a new identifier greater than every identifier returned before.
func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}

// Current returns the last issued identifier, or 0 if none was issued yet.
func (s *Sequence) Current() int {
	return int(s.last.Load())
}
