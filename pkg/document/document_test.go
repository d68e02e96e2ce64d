package document

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bridges/pkg/element"
	"github.com/matzehuels/bridges/pkg/errors"
)

type cell struct {
	*element.Element[string]
	next []element.Linked
}

func (c *cell) Links() []element.Linked { return c.next }

type fakeStructure struct {
	visual  string
	section Section
	err     error
}

func (f fakeStructure) DataStructureType() string        { return f.visual }
func (f fakeStructure) Representation() (Section, error) { return f.section, f.err }

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	return m
}

func TestEncodeIndexedVerbose(t *testing.T) {
	alloc := element.NewAllocator()
	a := element.New(alloc, "A")
	b := element.New(alloc, "B")
	b.Visualizer().SetLocation(1, 2)
	lv := a.LinkVisualizer(b)
	lv.SetLabel("ab")

	sec := EncodeIndexed([]element.Styled{a, b}, []Arc{{From: 0, To: 1, Visual: lv}})
	data, err := json.Marshal(sec)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"links":[{"color":[70,130,180,1],"thickness":1,"weight":1,"label":"ab","source":0,"target":1}],` +
		`"nodes":[{"name":"A","shape":"circle","size":10,"color":[0,128,0,1]},` +
		`{"name":"B","shape":"circle","size":10,"color":[0,128,0,1],"location":[1,2]}]}`
	if string(data) != want {
		t.Errorf("verbose section =\n%s\nwant\n%s", data, want)
	}
}

func TestEncodeIndexedCompact(t *testing.T) {
	alloc := element.NewAllocator()
	nodes := make([]element.Styled, LargeGraphThreshold+1)
	for i := range nodes {
		nodes[i] = element.New(alloc, i)
	}
	nodes[0].Visualizer().SetLocation(5, 6)
	arcs := []Arc{{From: 0, To: 1, Visual: nodes[0].LinkVisualizer(nodes[1])}}

	data, err := json.Marshal(EncodeIndexed(nodes, arcs))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte(`"name"`)) || bytes.Contains(data, []byte(`"shape"`)) {
		t.Error("compact encoding contains verbose fields")
	}
	if !bytes.HasPrefix(data, []byte(`{"links":[[0,1,[70,130,180,1]]],"nodes":[[[5,6],[0,128,0,1]],[[0,128,0,1]],`)) {
		t.Errorf("compact section prefix = %.120s", data)
	}
}

func TestIsLarge(t *testing.T) {
	if IsLarge(LargeGraphThreshold) {
		t.Error("IsLarge(threshold) = true")
	}
	if !IsLarge(LargeGraphThreshold + 1) {
		t.Error("IsLarge(threshold+1) = false")
	}
}

func TestEncodeLinkedDedupesCycles(t *testing.T) {
	alloc := element.NewAllocator()
	c1 := &cell{Element: element.New(alloc, "one")}
	c2 := &cell{Element: element.New(alloc, "two")}
	c3 := &cell{Element: element.New(alloc, "three")}
	c1.next = []element.Linked{c2}
	c2.next = []element.Linked{c3}
	c3.next = []element.Linked{c1}

	sec := EncodeLinked(c1)
	nodes := sec["nodes"].([]Node)
	links := sec["links"].([]Link)

	if len(nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(nodes))
	}
	if len(links) != 3 {
		t.Fatalf("links = %d, want 3", len(links))
	}
	for i, name := range []string{"one", "two", "three"} {
		if nodes[i].Name != name {
			t.Errorf("nodes[%d].Name = %q, want %q", i, nodes[i].Name, name)
		}
	}
	last := links[len(links)-1]
	if last.Source != 2 || last.Target != 0 {
		t.Errorf("back link = %d->%d, want 2->0", last.Source, last.Target)
	}
	if !c3.HasLinkVisualizer(c1) {
		t.Error("encoding did not go through the link visualizer cache")
	}
}

func TestEncodeLinkedNil(t *testing.T) {
	sec := EncodeLinked(nil)
	if len(sec["nodes"].([]Node)) != 0 || len(sec["links"].([]Link)) != 0 {
		t.Errorf("EncodeLinked(nil) = %v", sec)
	}
}

func TestBuilderRequiresStructure(t *testing.T) {
	b := NewBuilder(nil)

	if _, err := b.Marshal(); !errors.Is(err, errors.ErrCodeUnrepresentable) {
		t.Errorf("Marshal() without structure error = %v", err)
	}
	if err := b.SetStructure(nil); !errors.Is(err, errors.ErrCodeUnrepresentable) {
		t.Errorf("SetStructure(nil) error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err == nil || buf.Len() != 0 {
		t.Errorf("WriteTo() wrote %d bytes, err = %v", buf.Len(), err)
	}
}

func TestBuilderHeader(t *testing.T) {
	var logs bytes.Buffer
	b := NewBuilder(log.NewWithOptions(&logs, log.Options{}))

	b.SetTitle(strings.Repeat("t", 60))
	if len(b.Title()) != MaxTitleLength {
		t.Errorf("title length = %d, want %d", len(b.Title()), MaxTitleLength)
	}
	if !strings.Contains(logs.String(), "truncating title") {
		t.Errorf("no truncation warning logged: %q", logs.String())
	}

	b.SetDescription(strings.Repeat("é", 300))
	if got := []rune(b.Description()); len(got) != MaxDescriptionLength {
		t.Errorf("description runes = %d, want %d", len(got), MaxDescriptionLength)
	}

	if err := b.SetCoordSystem("mercator"); !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("SetCoordSystem(mercator) error = %v", err)
	}
	if b.CoordSystem() != Cartesian {
		t.Errorf("CoordSystem() = %v after failed set", b.CoordSystem())
	}
	if err := b.SetCoordSystem("albersusa"); err != nil {
		t.Fatal(err)
	}
	b.SetMapOverlay(true)

	s := fakeStructure{visual: "Fake", section: Section{"nodes": []int{}, "visual": "ignored"}}
	if err := b.SetStructure(s); err != nil {
		t.Fatal(err)
	}
	data, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	m := decode(t, data)
	if m["visual"] != "Fake" {
		t.Errorf("visual = %v, want Fake", m["visual"])
	}
	if m["coord_system_type"] != "albersusa" {
		t.Errorf("coord_system_type = %v", m["coord_system_type"])
	}
	if m["map_overlay"] != true {
		t.Errorf("map_overlay = %v", m["map_overlay"])
	}
	if _, ok := m["nodes"]; !ok {
		t.Error("section keys missing from document")
	}
}

func TestBuilderPropagatesRepresentationError(t *testing.T) {
	b := NewBuilder(nil)
	want := errors.Reference("vertex %q does not exist", "x")
	if err := b.SetStructure(fakeStructure{visual: "Fake", err: want}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Marshal(); !errors.Is(err, errors.ErrCodeReference) {
		t.Errorf("Marshal() error = %v, want reference error", err)
	}
}

func TestBuilderWriteToIndents(t *testing.T) {
	b := NewBuilder(nil)
	if err := b.SetStructure(fakeStructure{visual: "Fake", section: Section{}}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d", n, buf.Len())
	}
	if !strings.Contains(buf.String(), "\n  \"visual\": \"Fake\"") {
		t.Errorf("output not indented:\n%s", buf.String())
	}
}
