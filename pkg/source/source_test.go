package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/bridges/pkg/color"
	"github.com/matzehuels/bridges/pkg/element"
	"github.com/matzehuels/bridges/pkg/errors"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		path    string
		want    Source
		wantErr bool
	}{
		{"data.json", JSONFile{Path: "data.json"}, false},
		{"graph.DOT", DOTFile{Path: "graph.DOT"}, false},
		{"graph.gv", DOTFile{Path: "graph.gv"}, false},
		{"graph.csv", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Open(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Open(%q) = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}
}

func TestJSONFileLoad(t *testing.T) {
	g, err := JSONFile{Path: "testdata/small.json"}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if g.Len() != 3 || g.EdgeCount() != 3 {
		t.Fatalf("Len/EdgeCount = %d/%d, want 3/3", g.Len(), g.EdgeCount())
	}

	a, _ := g.Vertex("a")
	if a.Label() != "Alpha" {
		t.Errorf("a label = %q", a.Label())
	}
	v := a.Visualizer()
	if v.Color() != color.MustNamed("crimson") || v.Shape() != element.ShapeStar || v.Size() != 20 {
		t.Errorf("a visualizer = %v %v %v", v.Color(), v.Shape(), v.Size())
	}
	if x, y := v.Location(); x != 1 || y != 2 {
		t.Errorf("a location = %v,%v", x, y)
	}

	b, _ := g.Vertex("b")
	if b.Label() != "b" || b.Value()["kind"] != "leaf" {
		t.Errorf("b = %v", b)
	}

	ab, _ := g.LinkVisualizer("a", "b")
	if ab.Thickness() != 3 || ab.Weight() != 2 || ab.Label() != "ab" {
		t.Errorf("a->b visualizer = %v %v %q", ab.Thickness(), ab.Weight(), ab.Label())
	}
	ac, _ := g.LinkVisualizer("a", "c")
	if ac.Color() != color.MustNew(0, 0, 0, 0.25) {
		t.Errorf("a->c color = %v", ac.Color())
	}
	data, err := g.EdgeData("a", "c")
	if err != nil || data["w"] != 1.0 {
		t.Errorf("a->c data = %v, %v", data, err)
	}

	out := g.OutgoingEdges("a")
	if len(out) != 2 || out[0].To != "c" {
		t.Errorf("a adjacency should be most-recent-first: %v", out)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"nodes": [`, errors.ErrCodeInvalidFormat},
		{"missing id", `{"nodes": [{"label": "x"}]}`, errors.ErrCodeValidation},
		{"duplicate id", `{"nodes": [{"id": "a"}, {"id": "a"}]}`, errors.ErrCodeValidation},
		{"bad shape", `{"nodes": [{"id": "a", "shape": "blob"}]}`, errors.ErrCodeValidation},
		{"bad size", `{"nodes": [{"id": "a", "size": 80}]}`, errors.ErrCodeValidation},
		{"bad color", `{"nodes": [{"id": "a", "color": "nope"}]}`, errors.ErrCodeValidation},
		{"unknown endpoint", `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "z"}]}`, errors.ErrCodeReference},
		{"bad thickness", `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "a", "thickness": -1}]}`, errors.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadJSON() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := JSONFile{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want file not found", err)
	}
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"q"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := JSONFile{Path: path}.Load(context.Background())
	if !errors.Is(err, errors.ErrCodeReference) {
		t.Fatalf("Load() error = %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestDOTFileLoad(t *testing.T) {
	g, err := DOTFile{Path: "testdata/small.dot"}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := g.Keys(); strings.Join(got, ",") != "a,b,c" {
		t.Errorf("Keys() = %v, want a,b,c", got)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}

	a, _ := g.Vertex("a")
	if a.Label() != "Alpha" {
		t.Errorf("a label = %q", a.Label())
	}
	if a.Visualizer().Shape() != element.ShapeSquare {
		t.Errorf("a shape = %v", a.Visualizer().Shape())
	}
	if x, y := a.Visualizer().Location(); x != 1 || y != 2 {
		t.Errorf("a location = %v,%v", x, y)
	}

	c, _ := g.Vertex("c")
	if c.Label() != "c" {
		t.Errorf("c label = %q, want node name", c.Label())
	}

	ab, _ := g.LinkVisualizer("a", "b")
	if ab.Thickness() != 2 || ab.Weight() != 5 || ab.Color() != color.MustNamed("black") {
		t.Errorf("a->b = %v %v %v", ab.Thickness(), ab.Weight(), ab.Color())
	}
}

func TestReadDOTEdgeAttributeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"nan weight", `digraph { a -> b [weight="nan"]; }`},
		{"infinite weight", `digraph { a -> b [weight="inf"]; }`},
		{"non-numeric weight", `digraph { a -> b [weight="heavy"]; }`},
		{"penwidth out of range", `digraph { a -> b [penwidth=80]; }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDOT(context.Background(), []byte(tt.input))
			if !errors.Is(err, errors.ErrCodeValidation) {
				t.Errorf("ReadDOT() error = %v, want validation error", err)
			}
		})
	}
}

func TestParallelEdgesKeepLabel(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		input := `{"nodes": [{"id": "a"}, {"id": "b"}],
			"edges": [{"from": "a", "to": "b", "label": "first"}, {"from": "a", "to": "b"}]}`
		g, err := ReadJSON(strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		lv, _ := g.LinkVisualizer("a", "b")
		if lv.Label() != "first" {
			t.Errorf("label = %q, want first", lv.Label())
		}
	})

	t.Run("dot", func(t *testing.T) {
		g, err := ReadDOT(context.Background(), []byte(`digraph { a -> b [label="first"]; a -> b; }`))
		if err != nil {
			t.Fatal(err)
		}
		lv, _ := g.LinkVisualizer("a", "b")
		if lv.Label() != "first" {
			t.Errorf("label = %q, want first", lv.Label())
		}
	})
}

func TestReadDOTInvalid(t *testing.T) {
	_, err := ReadDOT(context.Background(), []byte("digraph { a -> "))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadDOT() error = %v, want invalid format", err)
	}
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		in      string
		x, y    float64
		wantErr bool
	}{
		{"1,2", 1, 2, false},
		{"3.5, -4!", 3.5, -4, false},
		{"1", 0, 0, true},
		{"a,b", 0, 0, true},
	}
	for _, tt := range tests {
		x, y, err := parsePos(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePos(%q) error = %v", tt.in, err)
			continue
		}
		if x != tt.x || y != tt.y {
			t.Errorf("parsePos(%q) = %v,%v", tt.in, x, y)
		}
	}
}
