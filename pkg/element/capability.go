package element

// Identifiable is anything carrying an element ID.
type Identifiable interface {
	ID() ID
}

// Styled is an element that can be drawn: it has a label, its own
// visualizer, and per-neighbour link visualizers.
type Styled interface {
	Identifiable
	Label() string
	Visualizer() *ElementVisualizer
	LinkVisualizer(other Identifiable) *LinkVisualizer
}

// Linked is a styled element that points at other styled elements, such as
// a tree node or a list cell. Links never contains nil entries.
type Linked interface {
	Styled
	Links() []Linked
}

// BoundingBox is an axis-aligned extent.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: min(b.MinX, o.MinX),
		MaxX: max(b.MaxX, o.MaxX),
		MinY: min(b.MinY, o.MinY),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Geometric is anything occupying a region of the plane.
type Geometric interface {
	Dimensions() BoundingBox
}
