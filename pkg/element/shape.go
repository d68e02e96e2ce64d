package element

import (
	"slices"

	"github.com/matzehuels/bridges/pkg/errors"
)

// Shape is the glyph used to draw an element.
type Shape string

// Supported shapes.
const (
	ShapePoint    Shape = "point"
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeDiamond  Shape = "diamond"
	ShapeCross    Shape = "cross"
	ShapeTriangle Shape = "triangle"
	ShapeStar     Shape = "star"
	ShapeWye      Shape = "wye"
)

// Shapes lists every valid shape in declaration order.
var Shapes = []Shape{
	ShapePoint, ShapeCircle, ShapeSquare, ShapeDiamond,
	ShapeCross, ShapeTriangle, ShapeStar, ShapeWye,
}

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	return slices.Contains(Shapes, s)
}

// ParseShape converts a name to a Shape.
func ParseShape(name string) (Shape, error) {
	s := Shape(name)
	if !s.Valid() {
		return "", errors.Validation("unknown shape %q (valid: %v)", name, Shapes)
	}
	return s, nil
}
