// Package list provides a singly-linked list whose cells are bridges
// elements.
package list

import (
	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/element"
)

// TypeSinglyLinkedList is the data structure type of a singly-linked list.
const TypeSinglyLinkedList = "SinglyLinkedList"

// SLElement is one cell of a singly-linked list. The head cell serializes
// the whole list. Circular lists are allowed.
type SLElement[T any] struct {
	*element.Element[T]
	next *SLElement[T]
}

// New returns a detached cell wrapping value.
func New[T any](alloc *element.Allocator, value T) *SLElement[T] {
	return &SLElement[T]{Element: element.New(alloc, value)}
}

// NewLabeled returns a detached cell with an explicit label.
func NewLabeled[T any](alloc *element.Allocator, value T, label string) *SLElement[T] {
	return &SLElement[T]{Element: element.NewLabeled(alloc, value, label)}
}

// FromValues links one cell per value in order and returns the head, or
// nil when values is empty.
func FromValues[T any](alloc *element.Allocator, values ...T) *SLElement[T] {
	var head, tail *SLElement[T]
	for _, v := range values {
		cell := New(alloc, v)
		if head == nil {
			head = cell
		} else {
			tail.next = cell
		}
		tail = cell
	}
	return head
}

func (l *SLElement[T]) Next() *SLElement[T] { return l.next }

func (l *SLElement[T]) SetNext(n *SLElement[T]) { l.next = n }

// Links returns the next cell, if any.
func (l *SLElement[T]) Links() []element.Linked {
	if l.next == nil {
		return nil
	}
	return []element.Linked{l.next}
}

// Len counts distinct cells reachable from l, stopping when a cycle
// closes.
func (l *SLElement[T]) Len() int {
	seen := make(map[element.ID]bool)
	for c := l; c != nil && !seen[c.ID()]; c = c.next {
		seen[c.ID()] = true
	}
	return len(seen)
}

// Values returns the payloads of the cells counted by Len, in order.
func (l *SLElement[T]) Values() []T {
	var out []T
	seen := make(map[element.ID]bool)
	for c := l; c != nil && !seen[c.ID()]; c = c.next {
		seen[c.ID()] = true
		out = append(out, c.Value())
	}
	return out
}

func (l *SLElement[T]) DataStructureType() string { return TypeSinglyLinkedList }

// Representation encodes the list starting at l.
func (l *SLElement[T]) Representation() (document.Section, error) {
	return document.EncodeLinked(l), nil
}
