package graph

// Edge is one directed edge in a vertex's adjacency sequence.
type Edge[K comparable, E any] struct {
	From K
	To   K
	Data E

	next *Edge[K, E]
}

// Next returns the following edge in the same adjacency sequence, or nil.
func (e *Edge[K, E]) Next() *Edge[K, E] {
	return e.next
}
