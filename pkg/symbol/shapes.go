package symbol

import (
	"encoding/json"

	"github.com/matzehuels/bridges/pkg/element"
	"github.com/matzehuels/bridges/pkg/errors"
)

const DefaultRadius = 10.0

// Circle is a circle centered on its location.
type Circle struct {
	Symbol
	radius float64
}

// NewCircle returns a circle centered at (x, y). A negative radius is a
// validation error.
func NewCircle(x, y, r float64) (*Circle, error) {
	c := &Circle{Symbol: newSymbol(), radius: DefaultRadius}
	if err := c.SetRadius(r); err != nil {
		return nil, err
	}
	c.SetLocation(x, y)
	return c, nil
}

func (c *Circle) Name() string { return "circle" }

func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) SetRadius(r float64) error {
	if err := errors.CheckFloat("radius", r, "gte=0"); err != nil {
		return err
	}
	c.radius = r
	return nil
}

func (c *Circle) Dimensions() element.BoundingBox {
	return element.BoundingBox{
		MinX: c.x - c.radius,
		MaxX: c.x + c.radius,
		MinY: c.y - c.radius,
		MaxY: c.y + c.radius,
	}
}

func (c *Circle) MarshalJSON() ([]byte, error) {
	w := c.wire(c.Name())
	w.Radius = &c.radius
	return json.Marshal(w)
}

// Rectangle is an axis-aligned rectangle anchored at its lower-left corner.
type Rectangle struct {
	Symbol
	width, height float64
}

// NewRectangle returns a rectangle with lower-left corner (x, y).
func NewRectangle(x, y, width, height float64) (*Rectangle, error) {
	r := &Rectangle{Symbol: newSymbol()}
	if err := r.SetSize(width, height); err != nil {
		return nil, err
	}
	r.SetLocation(x, y)
	return r, nil
}

func (r *Rectangle) Name() string { return "rect" }

func (r *Rectangle) Size() (width, height float64) { return r.width, r.height }

// SetSize sets both extents. Either being negative or non-finite is a
// validation error and leaves the rectangle unchanged.
func (r *Rectangle) SetSize(width, height float64) error {
	if err := errors.CheckFloat("width", width, "gte=0"); err != nil {
		return err
	}
	if err := errors.CheckFloat("height", height, "gte=0"); err != nil {
		return err
	}
	r.width, r.height = width, height
	return nil
}

func (r *Rectangle) Dimensions() element.BoundingBox {
	return element.BoundingBox{
		MinX: r.x,
		MaxX: r.x + r.width,
		MinY: r.y,
		MaxY: r.y + r.height,
	}
}

func (r *Rectangle) MarshalJSON() ([]byte, error) {
	w := r.wire(r.Name())
	w.Width = &r.width
	w.Height = &r.height
	return json.Marshal(w)
}
