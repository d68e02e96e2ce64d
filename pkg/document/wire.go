package document

import (
	"encoding/json"

	"github.com/matzehuels/bridges/pkg/color"
	"github.com/matzehuels/bridges/pkg/element"
)

// Section is the structure-specific part of a document. Its keys are
// merged into the top-level JSON object next to the header.
type Section map[string]any

// Structure is implemented by every serializable data structure.
type Structure interface {
	// DataStructureType names the renderer's visual for this structure.
	DataStructureType() string
	// Representation builds the structure's section.
	Representation() (Section, error)
}

// Node is the verbose encoding of one element.
type Node struct {
	Name     string        `json:"name"`
	Shape    element.Shape `json:"shape"`
	Size     float64       `json:"size"`
	Color    color.Color   `json:"color"`
	Location *[2]float64   `json:"location,omitempty"`
}

// Link is the verbose encoding of one link. Source and Target are node
// indices within the same document.
type Link struct {
	Color     color.Color `json:"color"`
	Thickness float64     `json:"thickness"`
	Weight    float64     `json:"weight"`
	Label     string      `json:"label,omitempty"`
	Source    int         `json:"source"`
	Target    int         `json:"target"`
}

// CompactNode encodes as [[x,y], [r,g,b,a]], or [[r,g,b,a]] when the
// element has no location.
type CompactNode struct {
	Location *[2]float64
	Color    color.Color
}

func (n CompactNode) MarshalJSON() ([]byte, error) {
	if n.Location == nil {
		return json.Marshal([]any{n.Color})
	}
	return json.Marshal([]any{n.Location, n.Color})
}

// CompactLink encodes as [source, target, [r,g,b,a]].
type CompactLink struct {
	Source int
	Target int
	Color  color.Color
}

func (l CompactLink) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{l.Source, l.Target, l.Color})
}

func location(v *element.ElementVisualizer) *[2]float64 {
	if !v.HasLocation() {
		return nil
	}
	x, y := v.Location()
	return &[2]float64{x, y}
}

// NodeOf returns the verbose encoding of e.
func NodeOf(e element.Styled) Node {
	v := e.Visualizer()
	return Node{
		Name:     e.Label(),
		Shape:    v.Shape(),
		Size:     v.Size(),
		Color:    v.Color(),
		Location: location(v),
	}
}

// LinkOf returns the verbose encoding of a link between two indices.
func LinkOf(lv *element.LinkVisualizer, source, target int) Link {
	return Link{
		Color:     lv.Color(),
		Thickness: lv.Thickness(),
		Weight:    lv.Weight(),
		Label:     lv.Label(),
		Source:    source,
		Target:    target,
	}
}

// CompactNodeOf returns the compact encoding of e.
func CompactNodeOf(e element.Styled) CompactNode {
	v := e.Visualizer()
	return CompactNode{Location: location(v), Color: v.Color()}
}

// CompactLinkOf returns the compact encoding of a link.
func CompactLinkOf(lv *element.LinkVisualizer, source, target int) CompactLink {
	return CompactLink{Source: source, Target: target, Color: lv.Color()}
}
