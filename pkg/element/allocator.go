package element

import (
	"strconv"
	"sync/atomic"
)

// ID identifies an element. IDs from one Allocator are unique and strictly
// increasing.
type ID uint64

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Allocator hands out element IDs. The zero value is ready to use and
// first returns 1. It is safe for concurrent use.
type Allocator struct {
	last atomic.Uint64
}

// NewAllocator returns a fresh allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next ID. Counters are never reset.
func (a *Allocator) Next() ID {
	return ID(a.last.Add(1))
}

// Last returns the most recently issued ID, or 0 if none was issued.
func (a *Allocator) Last() ID {
	return ID(a.last.Load())
}
