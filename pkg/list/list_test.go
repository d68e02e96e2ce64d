package list

import (
	"slices"
	"testing"

	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/element"
)

var _ document.Structure = (*SLElement[int])(nil)

func TestFromValues(t *testing.T) {
	head := FromValues(element.NewAllocator(), "a", "b", "c")
	if head.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", head.Len())
	}
	if got := head.Values(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Values() = %v", got)
	}
	if FromValues[int](element.NewAllocator()) != nil {
		t.Error("FromValues() with no values should return nil")
	}
}

func TestRepresentation(t *testing.T) {
	head := FromValues(element.NewAllocator(), 1, 2, 3)
	sec, err := head.Representation()
	if err != nil {
		t.Fatal(err)
	}
	nodes := sec["nodes"].([]document.Node)
	links := sec["links"].([]document.Link)
	if len(nodes) != 3 || len(links) != 2 {
		t.Fatalf("got %d nodes, %d links, want 3, 2", len(nodes), len(links))
	}
	for i, l := range links {
		if l.Source != i || l.Target != i+1 {
			t.Errorf("links[%d] = %d->%d", i, l.Source, l.Target)
		}
	}
}

func TestCircularList(t *testing.T) {
	head := FromValues(element.NewAllocator(), 1, 2, 3)
	head.Next().Next().SetNext(head)

	if head.Len() != 3 {
		t.Errorf("circular Len() = %d, want 3", head.Len())
	}

	sec, err := head.Representation()
	if err != nil {
		t.Fatal(err)
	}
	links := sec["links"].([]document.Link)
	if len(links) != 3 {
		t.Fatalf("links = %d, want 3", len(links))
	}
	if last := links[2]; last.Source != 2 || last.Target != 0 {
		t.Errorf("closing link = %d->%d, want 2->0", last.Source, last.Target)
	}
	if head.DataStructureType() != TypeSinglyLinkedList {
		t.Errorf("DataStructureType() = %v", head.DataStructureType())
	}
}
