package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/matzehuels/bridges/pkg/color"
	"github.com/matzehuels/bridges/pkg/element"
	"github.com/matzehuels/bridges/pkg/errors"
	"github.com/matzehuels/bridges/pkg/graph"
)

type fileGraph struct {
	Nodes []fileNode `json:"nodes" validate:"dive"`
	Edges []fileEdge `json:"edges" validate:"dive"`
}

type fileNode struct {
	ID       string       `json:"id" validate:"required"`
	Label    string       `json:"label,omitempty"`
	Color    *color.Color `json:"color,omitempty"`
	Opacity  *float64     `json:"opacity,omitempty"`
	Shape    string       `json:"shape,omitempty" validate:"omitempty,oneof=point circle square diamond cross triangle star wye"`
	Size     *float64     `json:"size,omitempty"`
	Location *[2]float64  `json:"location,omitempty"`
	Meta     Metadata     `json:"meta,omitempty"`
}

type fileEdge struct {
	From      string       `json:"from" validate:"required"`
	To        string       `json:"to" validate:"required"`
	Label     string       `json:"label,omitempty"`
	Color     *color.Color `json:"color,omitempty"`
	Opacity   *float64     `json:"opacity,omitempty"`
	Thickness *float64     `json:"thickness,omitempty"`
	Weight    *float64     `json:"weight,omitempty"`
	Data      Metadata     `json:"data,omitempty"`
}

// JSONFile is a node-link JSON dataset on disk.
type JSONFile struct {
	Path string
}

// Load reads and decodes the file.
func (f JSONFile) Load(ctx context.Context) (*Graph, error) {
	data, err := readFile(f.Path)
	if err != nil {
		return nil, err
	}
	g, err := ReadJSON(bytes.NewReader(data))
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInvalidFormat
		}
		return nil, errors.Wrap(code, err, "load %s", f.Path)
	}
	return g, nil
}

// ReadJSON decodes a node-link document from r:
//
//	{
//	  "nodes": [{"id": "a", "label": "A", "color": "crimson", "shape": "star", "size": 20,
//	             "location": [1, 2], "meta": {"k": "v"}}],
//	  "edges": [{"from": "a", "to": "a", "color": [0,0,0,1], "thickness": 2, "weight": 3,
//	             "label": "self", "data": {"k": "v"}}]
//	}
//
// Only "id", "from" and "to" are required. Edges are added in file order,
// so each vertex's adjacency runs in reverse file order. Duplicate node
// IDs and out-of-range attributes are VALIDATION errors; edges naming
// unknown nodes are REFERENCE errors.
func ReadJSON(r io.Reader) (*Graph, error) {
	var data fileGraph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	if err := errors.CheckStruct(data); err != nil {
		return nil, err
	}

	g := graph.New[string, Metadata, Metadata]()
	for _, n := range data.Nodes {
		if g.HasVertex(n.ID) {
			return nil, errors.Validation("duplicate node id %q", n.ID)
		}
		e := g.AddVertex(n.ID, n.Meta)
		if err := applyNode(e, n); err != nil {
			return nil, errors.Wrap(errors.ErrCodeValidation, err, "node %s", n.ID)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdgeWithData(e.From, e.To, e.Data); err != nil {
			return nil, err
		}
		lv, err := g.LinkVisualizer(e.From, e.To)
		if err != nil {
			return nil, err
		}
		if err := applyEdge(lv, e); err != nil {
			return nil, errors.Wrap(errors.ErrCodeValidation, err, "edge %s->%s", e.From, e.To)
		}
	}
	return g, nil
}

func applyNode(e *element.Element[Metadata], n fileNode) error {
	if n.Label != "" {
		e.SetLabel(n.Label)
	}
	v := e.Visualizer()
	if n.Color != nil {
		v.SetColor(*n.Color)
	}
	if n.Opacity != nil {
		if err := v.SetOpacity(*n.Opacity); err != nil {
			return err
		}
	}
	if n.Shape != "" {
		if err := v.SetShape(element.Shape(n.Shape)); err != nil {
			return err
		}
	}
	if n.Size != nil {
		if err := v.SetSize(*n.Size); err != nil {
			return err
		}
	}
	if n.Location != nil {
		v.SetLocation(n.Location[0], n.Location[1])
	}
	return nil
}

func applyEdge(lv *element.LinkVisualizer, e fileEdge) error {
	if e.Color != nil {
		lv.SetColor(*e.Color)
	}
	if e.Opacity != nil {
		if err := lv.SetOpacity(*e.Opacity); err != nil {
			return err
		}
	}
	if e.Thickness != nil {
		if err := lv.SetThickness(*e.Thickness); err != nil {
			return err
		}
	}
	if e.Weight != nil {
		if err := lv.SetWeight(*e.Weight); err != nil {
			return err
		}
	}
	if e.Label != "" {
		lv.SetLabel(e.Label)
	}
	return nil
}
