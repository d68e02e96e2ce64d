// Package color provides the validated RGBA color used by every visual
// attribute in bridges.
//
// A [Color] has integer red, green and blue channels in [0, 255] and a
// floating-point alpha in [0.0, 1.0]. Colors are built from numeric channels
// with [New] or [NewRGB], from a CSS/SVG color name with [Named], or from
// either a name or a "#rrggbb[aa]" hex string with [Parse].
//
// Every constructor and setter validates its input before touching state: a
// failed SetRed leaves the color exactly as it was. Failures are
// [errors.ErrCodeValidation] errors naming the offending channel and value.
//
// # Wire Format
//
// Colors marshal to JSON as a four-element array:
//
//	[220, 20, 60, 1]
//
// and unmarshal from the same array (alpha optional), a color name, or a hex
// string.
package color

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/bridges/pkg/errors"
)

// Channel bounds.
const (
	MinChannel = 0
	MaxChannel = 255
	MinAlpha   = 0.0
	MaxAlpha   = 1.0
)

const (
	channelRule = "gte=0,lte=255"
	alphaRule   = "gte=0,lte=1"
)

// Color is an RGBA color. The zero value is opaque-less black (0,0,0,0);
// use a constructor to get a meaningful color.
type Color struct {
	r, g, b int
	a       float64
}

// New returns a color from explicit channels.
func New(r, g, b int, a float64) (Color, error) {
	if err := validate(r, g, b, a); err != nil {
		return Color{}, err
	}
	return Color{r: r, g: g, b: b, a: a}, nil
}

// NewRGB returns an opaque color.
func NewRGB(r, g, b int) (Color, error) {
	return New(r, g, b, MaxAlpha)
}

// MustNew is like New but panics on invalid input.
// Intended for package-level defaults built from literal values.
func MustNew(r, g, b int, a float64) Color {
	c, err := New(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

// Named resolves a CSS/SVG color name (case-insensitive) to an opaque color.
// "transparent" resolves to (0,0,0,0).
func Named(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "transparent" {
		return Color{}, nil
	}
	rgb, ok := named[key]
	if !ok {
		return Color{}, errors.Validation("unknown color name %q", name)
	}
	return Color{r: rgb[0], g: rgb[1], b: rgb[2], a: MaxAlpha}, nil
}

// MustNamed is like Named but panics on an unknown name.
func MustNamed(name string) Color {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

// IsNamed reports whether name is in the named-color table.
func IsNamed(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	_, ok := named[key]
	return ok || key == "transparent"
}

// Parse accepts a color name or a hex string ("#rgb", "#rrggbb", "#rrggbbaa").
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	return Named(s)
}

func parseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, errors.Validation("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Validation("invalid hex color %q", s)
	}
	if len(hex) == 6 {
		return Color{r: int(v >> 16 & 0xff), g: int(v >> 8 & 0xff), b: int(v & 0xff), a: MaxAlpha}, nil
	}
	return Color{
		r: int(v >> 24 & 0xff),
		g: int(v >> 16 & 0xff),
		b: int(v >> 8 & 0xff),
		a: float64(v&0xff) / 255,
	}, nil
}

func validate(r, g, b int, a float64) error {
	for _, ch := range []struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if err := errors.CheckVar(ch.name, ch.v, channelRule); err != nil {
			return err
		}
	}
	return errors.CheckVar("alpha", a, alphaRule)
}

// Red returns the red channel.
func (c Color) Red() int { return c.r }

// Green returns the green channel.
func (c Color) Green() int { return c.g }

// Blue returns the blue channel.
func (c Color) Blue() int { return c.b }

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 { return c.a }

// RGBA returns all four channels.
func (c Color) RGBA() (r, g, b int, a float64) { return c.r, c.g, c.b, c.a }

// SetRed sets the red channel, leaving c unchanged on error.
func (c *Color) SetRed(v int) error {
	if err := errors.CheckVar("red", v, channelRule); err != nil {
		return err
	}
	c.r = v
	return nil
}

// SetGreen sets the green channel, leaving c unchanged on error.
func (c *Color) SetGreen(v int) error {
	if err := errors.CheckVar("green", v, channelRule); err != nil {
		return err
	}
	c.g = v
	return nil
}

// SetBlue sets the blue channel, leaving c unchanged on error.
func (c *Color) SetBlue(v int) error {
	if err := errors.CheckVar("blue", v, channelRule); err != nil {
		return err
	}
	c.b = v
	return nil
}

// SetAlpha sets the alpha channel, leaving c unchanged on error.
func (c *Color) SetAlpha(v float64) error {
	if err := errors.CheckVar("alpha", v, alphaRule); err != nil {
		return err
	}
	c.a = v
	return nil
}

// Set replaces all four channels at once. Either every channel is applied
// or none is.
func (c *Color) Set(r, g, b int, a float64) error {
	if err := validate(r, g, b, a); err != nil {
		return err
	}
	c.r, c.g, c.b, c.a = r, g, b, a
	return nil
}

// SetName replaces the color with a named color.
func (c *Color) SetName(name string) error {
	n, err := Named(name)
	if err != nil {
		return err
	}
	*c = n
	return nil
}

// String returns "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, strconv.FormatFloat(c.a, 'f', -1, 64))
}

// Hex returns "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// MarshalJSON encodes the color as [r, g, b, a].
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]any{c.r, c.g, c.b, c.a})
}

// UnmarshalJSON decodes [r, g, b], [r, g, b, a], a color name, or a hex string.
// The receiver is unchanged if the input is invalid.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := Parse(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var ch []float64
	if err := json.Unmarshal(data, &ch); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "color must be an array or a string")
	}
	if len(ch) != 3 && len(ch) != 4 {
		return errors.Validation("color array must have 3 or 4 channels, got %d", len(ch))
	}
	alpha := MaxAlpha
	if len(ch) == 4 {
		alpha = ch[3]
	}
	for i, v := range ch[:3] {
		if v != float64(int(v)) {
			return errors.Validation("color channel %d must be an integer, got %v", i, v)
		}
	}
	parsed, err := New(int(ch[0]), int(ch[1]), int(ch[2]), alpha)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
