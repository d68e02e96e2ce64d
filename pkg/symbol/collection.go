package symbol

import (
	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/element"
)

// DefaultDomain is the extent reported by an empty collection.
var DefaultDomain = element.BoundingBox{MinX: -100, MaxX: 100, MinY: -100, MaxY: 100}

// ids numbers shapes on first Add. It is shared by every collection so a
// shape keeps one ID wherever it is added.
var ids = element.NewAllocator()

// Collection is an ordered set of shapes. It implements
// document.Structure.
type Collection struct {
	symbols []Drawable
}

func NewCollection() *Collection {
	return &Collection{}
}

// Add appends d, assigning it an ID if it has none. Adding the same shape
// twice keeps a single entry.
func (c *Collection) Add(d Drawable) {
	base := d.Base()
	if base.id == 0 {
		base.id = ids.Next()
	}
	for _, s := range c.symbols {
		if s.Base() == base {
			return
		}
	}
	c.symbols = append(c.symbols, d)
}

// Symbols returns the shapes in insertion order.
func (c *Collection) Symbols() []Drawable { return c.symbols }

func (c *Collection) Len() int { return len(c.symbols) }

// Domain returns the union of every shape's bounding box, or DefaultDomain
// when the collection is empty.
func (c *Collection) Domain() element.BoundingBox {
	if len(c.symbols) == 0 {
		return DefaultDomain
	}
	box := c.symbols[0].Dimensions()
	for _, s := range c.symbols[1:] {
		box = box.Union(s.Dimensions())
	}
	return box
}

func (c *Collection) DataStructureType() string { return "SymbolCollection" }

func (c *Collection) Representation() (document.Section, error) {
	d := c.Domain()
	symbols := c.symbols
	if symbols == nil {
		symbols = []Drawable{}
	}
	return document.Section{
		"domainX": [2]float64{d.MinX, d.MaxX},
		"domainY": [2]float64{d.MinY, d.MaxY},
		"symbols": symbols,
	}, nil
}
