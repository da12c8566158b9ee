package task

import "sync/atomic"

// Sequence hands out monotonically increasing task IDs. Identity is
// decoupled from creation time so two adds within one clock tick never
// collide.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose first ID is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next unused ID.
func (s *Sequence) Next() ID {
	return ID(s.last.Add(1))
}
