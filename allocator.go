package serd

// Allocator is a fallible capacity pre-flight hook: Nodes and Model call
// Reserve before growing an internal table, so a test harness can inject an
// allocation failure deterministically at a chosen call without needing
// `unsafe` or a custom byte-level malloc/free/realloc surface.
type Allocator interface {
	// Reserve is called before growing a table to hold n more entries than
	// it currently has capacity for. Returning an error aborts the growth
	// and the triggering operation fails with StatusBadAlloc.
	Reserve(n int) error
}

// DefaultAllocator always succeeds; it is used when a constructor receives
// a nil Allocator.
type DefaultAllocator struct{}

func (DefaultAllocator) Reserve(int) error { return nil }

func orDefaultAllocator(a Allocator) Allocator {
	if a == nil {
		return DefaultAllocator{}
	}
	return a
}
