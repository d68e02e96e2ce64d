package element

import (
	"math"

	"github.com/matzehuels/bridges/pkg/color"
	"github.com/matzehuels/bridges/pkg/errors"
)

// Visual attribute bounds and defaults.
const (
	MaxSize          = 50.0
	DefaultSize      = 10.0
	DefaultShape     = ShapeCircle
	DefaultColorName = "green"

	sizeRule = "gte=0,lte=50"
)

// ElementVisualizer holds the visual attributes of one element.
type ElementVisualizer struct {
	shape Shape
	size  float64
	color color.Color
	x, y  float64
}

// NewElementVisualizer returns a visualizer with the default attributes:
// a green circle of size 10 with no location.
func NewElementVisualizer() *ElementVisualizer {
	return &ElementVisualizer{
		shape: DefaultShape,
		size:  DefaultSize,
		color: color.MustNamed(DefaultColorName),
		x:     math.Inf(1),
		y:     math.Inf(1),
	}
}

// Clone returns a deep copy.
func (v *ElementVisualizer) Clone() *ElementVisualizer {
	c := *v
	return &c
}

func (v *ElementVisualizer) Shape() Shape { return v.shape }

// SetShape fails with a validation error for shapes outside [Shapes].
func (v *ElementVisualizer) SetShape(s Shape) error {
	if !s.Valid() {
		return errors.Validation("unknown shape %q (valid: %v)", s, Shapes)
	}
	v.shape = s
	return nil
}

func (v *ElementVisualizer) Size() float64 { return v.size }

// SetSize accepts sizes in [0, MaxSize].
func (v *ElementVisualizer) SetSize(size float64) error {
	if err := errors.CheckVar("size", size, sizeRule); err != nil {
		return err
	}
	v.size = size
	return nil
}

func (v *ElementVisualizer) Color() color.Color { return v.color }

func (v *ElementVisualizer) SetColor(c color.Color) { v.color = c }

// SetColorName resolves name against the named-color table.
func (v *ElementVisualizer) SetColorName(name string) error {
	return v.color.SetName(name)
}

// SetOpacity sets the alpha channel of the element color.
func (v *ElementVisualizer) SetOpacity(a float64) error {
	return v.color.SetAlpha(a)
}

// Location returns the element position. Either coordinate is +Inf when
// no location has been set.
func (v *ElementVisualizer) Location() (x, y float64) { return v.x, v.y }

func (v *ElementVisualizer) SetLocation(x, y float64) {
	v.x, v.y = x, y
}

func (v *ElementVisualizer) ClearLocation() {
	v.x, v.y = math.Inf(1), math.Inf(1)
}

// HasLocation reports whether both coordinates are finite.
func (v *ElementVisualizer) HasLocation() bool {
	return !math.IsInf(v.x, 0) && !math.IsInf(v.y, 0) && !math.IsNaN(v.x) && !math.IsNaN(v.y)
}
