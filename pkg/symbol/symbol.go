// Package symbol provides free-standing geometric shapes that are drawn
// directly on a canvas rather than as nodes of a data structure.
//
// Shapes ([Circle], [Rectangle]) share a [Symbol] base carrying fill,
// stroke and opacity. A [Collection] gathers shapes, assigns their IDs, and
// serializes them together with the bounding domain of the whole set.
package symbol

import (
	"github.com/matzehuels/bridges/pkg/color"
	"github.com/matzehuels/bridges/pkg/element"
	"github.com/matzehuels/bridges/pkg/errors"
)

const (
	MaxStrokeWidth     = 50.0
	DefaultStrokeWidth = 1.0

	strokeRule  = "gte=0,lte=50"
	opacityRule = "gte=0,lte=1"
)

// Drawable is implemented by every shape a Collection can hold.
type Drawable interface {
	element.Identifiable
	element.Geometric
	// Name is the shape name emitted on the wire.
	Name() string
	// Base exposes the shared visual attributes.
	Base() *Symbol
}

// Symbol holds the attributes common to every shape. It is embedded by
// concrete shapes and is not drawable on its own.
type Symbol struct {
	id          element.ID
	label       string
	fill        color.Color
	stroke      color.Color
	strokeWidth float64
	opacity     float64
	x, y        float64
}

func newSymbol() Symbol {
	return Symbol{
		fill:        color.MustNamed("white"),
		stroke:      color.MustNamed("black"),
		strokeWidth: DefaultStrokeWidth,
		opacity:     1,
	}
}

// ID returns the identifier assigned when the shape joined a Collection,
// or 0 before that.
func (s *Symbol) ID() element.ID { return s.id }

func (s *Symbol) Base() *Symbol { return s }

func (s *Symbol) Label() string { return s.label }

func (s *Symbol) SetLabel(l string) { s.label = l }

func (s *Symbol) Fill() color.Color { return s.fill }

func (s *Symbol) SetFill(c color.Color) { s.fill = c }

func (s *Symbol) Stroke() color.Color { return s.stroke }

func (s *Symbol) SetStroke(c color.Color) { s.stroke = c }

func (s *Symbol) StrokeWidth() float64 { return s.strokeWidth }

// SetStrokeWidth accepts widths in [0, MaxStrokeWidth].
func (s *Symbol) SetStrokeWidth(w float64) error {
	if err := errors.CheckVar("stroke width", w, strokeRule); err != nil {
		return err
	}
	s.strokeWidth = w
	return nil
}

func (s *Symbol) Opacity() float64 { return s.opacity }

// SetOpacity accepts opacities in [0, 1].
func (s *Symbol) SetOpacity(o float64) error {
	if err := errors.CheckVar("opacity", o, opacityRule); err != nil {
		return err
	}
	s.opacity = o
	return nil
}

// Location returns the anchor point of the shape: the center of a circle,
// the lower-left corner of a rectangle.
func (s *Symbol) Location() (x, y float64) { return s.x, s.y }

func (s *Symbol) SetLocation(x, y float64) { s.x, s.y = x, y }

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// wire is the JSON form shared by every shape. Geometry fields are set by
// the concrete shape.
type wire struct {
	ID          element.ID  `json:"ID"`
	Name        string      `json:"name"`
	Shape       string      `json:"shape"`
	Fill        color.Color `json:"fill"`
	Stroke      color.Color `json:"stroke"`
	StrokeWidth float64     `json:"stroke-width"`
	Opacity     float64     `json:"opacity"`
	Location    point       `json:"location"`
	Radius      *float64    `json:"r,omitempty"`
	Width       *float64    `json:"width,omitempty"`
	Height      *float64    `json:"height,omitempty"`
}

func (s *Symbol) wire(shape string) wire {
	return wire{
		ID:          s.id,
		Name:        s.label,
		Shape:       shape,
		Fill:        s.fill,
		Stroke:      s.stroke,
		StrokeWidth: s.strokeWidth,
		Opacity:     s.opacity,
		Location:    point{X: s.x, Y: s.y},
	}
}
