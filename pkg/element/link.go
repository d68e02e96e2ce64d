package element

import (
	"github.com/matzehuels/bridges/pkg/color"
	"github.com/matzehuels/bridges/pkg/errors"
)

// Link visualizer defaults.
const (
	MaxThickness     = 50.0
	DefaultThickness = 1.0
	DefaultWeight    = 1.0
	DefaultLinkColor = "steelblue"

	thicknessRule = "gte=0,lte=50"
)

// LinkVisualizer holds the visual attributes of a link between two
// elements. Opacity is not stored separately; it is the alpha channel of
// the link color.
type LinkVisualizer struct {
	color     color.Color
	thickness float64
	weight    float64
	label     string
}

// NewLinkVisualizer returns a steelblue link of thickness 1 and weight 1.
func NewLinkVisualizer() *LinkVisualizer {
	return &LinkVisualizer{
		color:     color.MustNamed(DefaultLinkColor),
		thickness: DefaultThickness,
		weight:    DefaultWeight,
	}
}

func (l *LinkVisualizer) Color() color.Color { return l.color }

func (l *LinkVisualizer) SetColor(c color.Color) { l.color = c }

// SetColorName resolves name against the named-color table, keeping the
// previous color on failure.
func (l *LinkVisualizer) SetColorName(name string) error {
	return l.color.SetName(name)
}

func (l *LinkVisualizer) Thickness() float64 { return l.thickness }

// SetThickness accepts thicknesses in [0, MaxThickness].
func (l *LinkVisualizer) SetThickness(t float64) error {
	if err := errors.CheckVar("thickness", t, thicknessRule); err != nil {
		return err
	}
	l.thickness = t
	return nil
}

func (l *LinkVisualizer) Weight() float64 { return l.weight }

// SetWeight accepts any finite weight.
func (l *LinkVisualizer) SetWeight(w float64) error {
	if err := errors.CheckFloat("weight", w, ""); err != nil {
		return err
	}
	l.weight = w
	return nil
}

// Opacity returns the alpha channel of the link color.
func (l *LinkVisualizer) Opacity() float64 { return l.color.Alpha() }

// SetOpacity writes the alpha channel of the link color.
func (l *LinkVisualizer) SetOpacity(a float64) error {
	return l.color.SetAlpha(a)
}

func (l *LinkVisualizer) Label() string { return l.label }

func (l *LinkVisualizer) SetLabel(s string) { l.label = s }
