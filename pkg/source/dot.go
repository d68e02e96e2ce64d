package source

import (
	"context"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/matzehuels/bridges/pkg/color"
	"github.com/matzehuels/bridges/pkg/element"
	"github.com/matzehuels/bridges/pkg/errors"
	"github.com/matzehuels/bridges/pkg/graph"
)

// dotShapes maps Graphviz node shapes onto element shapes. Shapes not
// listed keep the default.
var dotShapes = map[string]element.Shape{
	"point":    element.ShapePoint,
	"circle":   element.ShapeCircle,
	"ellipse":  element.ShapeCircle,
	"oval":     element.ShapeCircle,
	"box":      element.ShapeSquare,
	"rect":     element.ShapeSquare,
	"square":   element.ShapeSquare,
	"diamond":  element.ShapeDiamond,
	"triangle": element.ShapeTriangle,
	"star":     element.ShapeStar,
}

// DOTFile is a Graphviz dataset on disk.
type DOTFile struct {
	Path string
}

// Load reads and parses the file.
func (f DOTFile) Load(ctx context.Context) (*Graph, error) {
	data, err := readFile(f.Path)
	if err != nil {
		return nil, err
	}
	g, err := ReadDOT(ctx, data)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInvalidFormat
		}
		return nil, errors.Wrap(code, err, "load %s", f.Path)
	}
	return g, nil
}

// ReadDOT parses a Graphviz graph. Nodes keep their declaration order.
// Recognized node attributes are label, color, shape, width (as size) and
// pos ("x,y"); recognized edge attributes are color, penwidth (as
// thickness), weight and label.
func ReadDOT(ctx context.Context, data []byte) (*Graph, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	dg, err := graphviz.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse dot")
	}
	defer dg.Close()

	g := graph.New[string, Metadata, Metadata]()

	var nodes []*cgraph.Node
	for n, err := dg.FirstNode(); n != nil || err != nil; n, err = dg.NextNode(n) {
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "walk nodes")
		}
		name, err := n.Name()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "node name")
		}
		e := g.AddVertex(name, nil)
		if err := applyDOTNode(e, name, n); err != nil {
			return nil, errors.Wrap(errors.ErrCodeValidation, err, "node %s", name)
		}
		nodes = append(nodes, n)
	}

	for _, n := range nodes {
		from, _ := n.Name()
		for de, err := dg.FirstOut(n); de != nil || err != nil; de, err = dg.NextOut(de) {
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "walk edges of %s", from)
			}
			head, err := de.Head()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "edge head")
			}
			to, err := head.Name()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "edge head name")
			}
			if err := g.AddEdge(from, to); err != nil {
				return nil, err
			}
			lv, err := g.LinkVisualizer(from, to)
			if err != nil {
				return nil, err
			}
			if err := applyDOTEdge(lv, de); err != nil {
				return nil, errors.Wrap(errors.ErrCodeValidation, err, "edge %s->%s", from, to)
			}
		}
	}
	return g, nil
}

func applyDOTNode(e *element.Element[Metadata], name string, n *cgraph.Node) error {
	if label := n.GetStr("label"); label != "" && label != `\N` {
		e.SetLabel(label)
	} else {
		e.SetLabel(name)
	}

	v := e.Visualizer()
	if c := n.GetStr("color"); c != "" {
		parsed, err := color.Parse(c)
		if err != nil {
			return err
		}
		v.SetColor(parsed)
	}
	if s, ok := dotShapes[strings.ToLower(n.GetStr("shape"))]; ok {
		if err := v.SetShape(s); err != nil {
			return err
		}
	}
	if w := n.GetStr("width"); w != "" {
		size, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return errors.Validation("width %q is not a number", w)
		}
		if err := v.SetSize(size); err != nil {
			return err
		}
	}
	if pos := n.GetStr("pos"); pos != "" {
		x, y, err := parsePos(pos)
		if err != nil {
			return err
		}
		v.SetLocation(x, y)
	}
	return nil
}

func applyDOTEdge(lv *element.LinkVisualizer, e *cgraph.Edge) error {
	if c := e.GetStr("color"); c != "" {
		parsed, err := color.Parse(c)
		if err != nil {
			return err
		}
		lv.SetColor(parsed)
	}
	if pw := e.GetStr("penwidth"); pw != "" {
		t, err := strconv.ParseFloat(pw, 64)
		if err != nil {
			return errors.Validation("penwidth %q is not a number", pw)
		}
		if err := lv.SetThickness(t); err != nil {
			return err
		}
	}
	if w := e.GetStr("weight"); w != "" {
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return errors.Validation("weight %q is not a number", w)
		}
		if err := lv.SetWeight(weight); err != nil {
			return err
		}
	}
	if label := e.GetStr("label"); label != "" {
		lv.SetLabel(label)
	}
	return nil
}

// parsePos accepts "x,y" with an optional trailing "!".
func parsePos(pos string) (float64, float64, error) {
	parts := strings.Split(strings.TrimSuffix(pos, "!"), ",")
	if len(parts) != 2 {
		return 0, 0, errors.Validation("pos %q must be \"x,y\"", pos)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return 0, 0, errors.Validation("pos %q must be numeric", pos)
	}
	return x, y, nil
}
