package store

import "sync/atomic"

// Sequence issues unique, strictly increasing int64 identifiers starting at 1.
// Safe for concurrent use; values are never reused while the process runs.
type Sequence struct {
	n int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() int64 {
	return atomic.AddInt64(&s.n, 1)
}
