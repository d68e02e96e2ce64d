package element

import "fmt"

// DefaultLabel is the label of elements built without one.
const DefaultLabel = "Default"

// Element wraps a payload of type T with an ID, a label, and visual
// attributes. Elements are not safe for concurrent mutation.
//
// The zero value is not usable; construct elements with [New],
// [NewLabeled], [NewEmpty] or [Copy].
type Element[T any] struct {
	id     ID
	alloc  *Allocator
	label  string
	value  T
	format LabelFormatter
	vis    *ElementVisualizer
	links  map[ID]*LinkVisualizer
}

// New returns an element wrapping value, labeled with fmt.Sprint(value).
func New[T any](alloc *Allocator, value T) *Element[T] {
	return NewLabeled(alloc, value, fmt.Sprint(value))
}

// NewLabeled returns an element with an explicit label.
func NewLabeled[T any](alloc *Allocator, value T, label string) *Element[T] {
	e := &Element[T]{
		id:     alloc.Next(),
		alloc:  alloc,
		value:  value,
		format: PassThrough,
		vis:    NewElementVisualizer(),
	}
	e.SetLabel(label)
	return e
}

// NewEmpty returns an element holding the zero value of T and the label
// DefaultLabel.
func NewEmpty[T any](alloc *Allocator) *Element[T] {
	var zero T
	return NewLabeled(alloc, zero, DefaultLabel)
}

// Copy returns a new element with the label, value, formatter and visual
// attributes of original, a fresh ID from original's allocator, and an
// empty link cache. The value is copied shallowly.
func Copy[T any](original *Element[T]) *Element[T] {
	return &Element[T]{
		id:     original.alloc.Next(),
		alloc:  original.alloc,
		label:  original.label,
		value:  original.value,
		format: original.format,
		vis:    original.vis.Clone(),
	}
}

func (e *Element[T]) ID() ID { return e.id }

// Allocator returns the allocator the element's ID was drawn from.
func (e *Element[T]) Allocator() *Allocator { return e.alloc }

func (e *Element[T]) Label() string { return e.label }

// SetLabel stores label after passing it through the element's formatter.
func (e *Element[T]) SetLabel(label string) {
	e.label = e.format(label)
}

// SetLabelFormatter installs f and reformats the current label. A nil f
// restores PassThrough.
func (e *Element[T]) SetLabelFormatter(f LabelFormatter) {
	if f == nil {
		f = PassThrough
	}
	e.format = f
	e.label = f(e.label)
}

func (e *Element[T]) Value() T { return e.value }

func (e *Element[T]) SetValue(v T) { e.value = v }

// Visualizer returns the element's own visualizer. Mutations through the
// returned pointer affect this element only.
func (e *Element[T]) Visualizer() *ElementVisualizer { return e.vis }

// LinkVisualizer returns the visualizer for the link from e to other,
// creating a default one on first access. Later calls with the same other
// return the same pointer.
func (e *Element[T]) LinkVisualizer(other Identifiable) *LinkVisualizer {
	if lv, ok := e.links[other.ID()]; ok {
		return lv
	}
	return e.SetLinkVisualizer(other)
}

// SetLinkVisualizer installs a fresh default visualizer for the link to
// other, replacing any existing one, and returns it.
func (e *Element[T]) SetLinkVisualizer(other Identifiable) *LinkVisualizer {
	if e.links == nil {
		e.links = make(map[ID]*LinkVisualizer)
	}
	lv := NewLinkVisualizer()
	e.links[other.ID()] = lv
	return lv
}

// RemoveLinkVisualizer drops the cached visualizer for the link to other.
// It reports whether an entry existed.
func (e *Element[T]) RemoveLinkVisualizer(other Identifiable) bool {
	if _, ok := e.links[other.ID()]; !ok {
		return false
	}
	delete(e.links, other.ID())
	return true
}

// HasLinkVisualizer reports whether a visualizer for the link to other is
// cached, without creating one.
func (e *Element[T]) HasLinkVisualizer(other Identifiable) bool {
	_, ok := e.links[other.ID()]
	return ok
}

// LinkCount returns the number of cached link visualizers.
func (e *Element[T]) LinkCount() int { return len(e.links) }

// String implements fmt.Stringer.
func (e *Element[T]) String() string {
	return fmt.Sprintf("Element{id=%d, label=%q, value=%v}", e.id, e.label, e.value)
}
