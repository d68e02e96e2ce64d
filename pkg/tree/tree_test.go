package tree

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/element"
)

var _ document.Structure = (*BinTree[int])(nil)

func buildTree() *BinTree[int] {
	alloc := element.NewAllocator()
	root := New(alloc, 2)
	root.SetLeft(New(alloc, 1))
	root.SetRight(New(alloc, 4))
	root.Right().SetLeft(New(alloc, 3))
	return root
}

func TestShape(t *testing.T) {
	root := buildTree()
	if root.Len() != 4 {
		t.Errorf("Len() = %d, want 4", root.Len())
	}
	if root.Height() != 3 {
		t.Errorf("Height() = %d, want 3", root.Height())
	}
	if got := len(root.Left().Links()); got != 0 {
		t.Errorf("leaf Links() = %d, want 0", got)
	}
	if got := len(root.Right().Links()); got != 1 {
		t.Errorf("Right().Links() = %d, want 1", got)
	}
}

func TestRepresentation(t *testing.T) {
	root := buildTree()
	lv := root.LinkVisualizer(root.Right())
	if err := lv.SetThickness(5); err != nil {
		t.Fatal(err)
	}

	sec, err := root.Representation()
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(sec)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Nodes []document.Node `json:"nodes"`
		Links []document.Link `json:"links"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	wantNames := []string{"2", "1", "4", "3"}
	if len(doc.Nodes) != len(wantNames) {
		t.Fatalf("nodes = %d, want %d", len(doc.Nodes), len(wantNames))
	}
	for i, n := range doc.Nodes {
		if n.Name != wantNames[i] {
			t.Errorf("nodes[%d] = %q, want %q", i, n.Name, wantNames[i])
		}
	}

	wantLinks := [][2]int{{0, 1}, {0, 2}, {2, 3}}
	if len(doc.Links) != len(wantLinks) {
		t.Fatalf("links = %d, want %d", len(doc.Links), len(wantLinks))
	}
	for i, l := range doc.Links {
		if l.Source != wantLinks[i][0] || l.Target != wantLinks[i][1] {
			t.Errorf("links[%d] = %d->%d, want %v", i, l.Source, l.Target, wantLinks[i])
		}
	}
	if doc.Links[1].Thickness != 5 {
		t.Errorf("root->right thickness = %v, want 5", doc.Links[1].Thickness)
	}
	if root.DataStructureType() != TypeBinaryTree {
		t.Errorf("DataStructureType() = %v", root.DataStructureType())
	}
}

func TestNilHeight(t *testing.T) {
	var root *BinTree[string]
	if root.Height() != 0 || root.Len() != 0 {
		t.Error("nil tree should have zero height and length")
	}
}
