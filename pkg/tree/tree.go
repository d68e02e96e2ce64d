// Package tree provides a binary tree whose nodes are bridges elements.
package tree

import (
	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/element"
)

// TypeBinaryTree is the data structure type of a binary tree.
const TypeBinaryTree = "BinaryTree"

// BinTree is a binary tree node. The root node serializes the whole tree.
type BinTree[T any] struct {
	*element.Element[T]
	left, right *BinTree[T]
}

// New returns a leaf wrapping value.
func New[T any](alloc *element.Allocator, value T) *BinTree[T] {
	return &BinTree[T]{Element: element.New(alloc, value)}
}

// NewLabeled returns a leaf with an explicit label.
func NewLabeled[T any](alloc *element.Allocator, value T, label string) *BinTree[T] {
	return &BinTree[T]{Element: element.NewLabeled(alloc, value, label)}
}

func (t *BinTree[T]) Left() *BinTree[T] { return t.left }

func (t *BinTree[T]) Right() *BinTree[T] { return t.right }

func (t *BinTree[T]) SetLeft(n *BinTree[T]) { t.left = n }

func (t *BinTree[T]) SetRight(n *BinTree[T]) { t.right = n }

// Links returns the present children, left first.
func (t *BinTree[T]) Links() []element.Linked {
	var out []element.Linked
	if t.left != nil {
		out = append(out, t.left)
	}
	if t.right != nil {
		out = append(out, t.right)
	}
	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A nil tree has height 0.
func (t *BinTree[T]) Height() int {
	if t == nil {
		return 0
	}
	return 1 + max(t.left.Height(), t.right.Height())
}

// Len returns the number of nodes in the tree.
func (t *BinTree[T]) Len() int {
	if t == nil {
		return 0
	}
	return 1 + t.left.Len() + t.right.Len()
}

func (t *BinTree[T]) DataStructureType() string { return TypeBinaryTree }

// Representation encodes the tree rooted at t in pre-order.
func (t *BinTree[T]) Representation() (document.Section, error) {
	return document.EncodeLinked(t), nil
}
