// Package element provides the visual building blocks shared by every
// bridges data structure.
//
// An [Element] wraps a caller-defined payload with a unique [ID], a display
// label, one [ElementVisualizer] describing how the element itself is drawn,
// and a cache of [LinkVisualizer] values describing how links from this
// element to others are drawn.
//
// # Identifiers
//
// IDs come from an [Allocator]. Each allocation increments an atomic
// counter starting at 1, so IDs are unique and strictly increasing for the
// lifetime of the allocator, including across goroutines. Graphs own an
// allocator; callers building trees or lists by hand share one explicitly:
//
//	alloc := element.NewAllocator()
//	a := element.New(alloc, "payload")
//	b := element.Copy(a) // new ID from the same allocator
//
// # Link Visualizers
//
// The link cache is keyed by the other element's ID, not by pointer, and
// entries are created lazily:
//
//	lv := a.LinkVisualizer(b)   // creates a default entry
//	lv.SetColorName("crimson")
//	a.LinkVisualizer(b) == lv   // same pointer on every later call
//
// # Capabilities
//
// Structures are composed from small interfaces rather than a class
// hierarchy: [Identifiable], [Styled], [Linked] and [Geometric].
// Serialization code depends only on these.
package element
