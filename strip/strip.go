// Package strip models an addressable LED strip as an animation target.
package strip

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/easing"
)

// Animatable properties of a Strip.
const (
	Color           = "color"
	BackgroundColor = "background-color"
	Brightness      = "brightness"
	Offset          = "offset"
	Width           = "width"
	Feather         = "feather"
)

// Strip is a row of pixels with a single lit segment. The segment starts at
// offset, spans width pixels and fades in and out over feather pixels at
// either end.
type Strip struct {
	pixels int
	props  map[string]anim.Value
}

// New creates a Strip of n pixels, fully lit in white.
func New(n int) *Strip {
	s := new(Strip)
	s.pixels = n
	s.props = map[string]anim.Value{
		Color:           anim.Vector(255, 255, 255),
		BackgroundColor: anim.Vector(0, 0, 0),
		Brightness:      anim.Scalar(1),
		Offset:          anim.Scalar(0),
		Width:           anim.Scalar(float64(n)),
		Feather:         anim.Scalar(0),
	}
	return s
}

// Len returns the number of pixels.
func (s *Strip) Len() int {
	return s.pixels
}

// Value implements anim.Target. Colours are red, green and blue in 0..255.
func (s *Strip) Value(property string) anim.Value {
	v, ok := s.props[property]
	if !ok {
		return anim.Scalar(0)
	}
	return v
}

// SetValue implements anim.Target. Units are ignored, everything is measured
// in pixels.
func (s *Strip) SetValue(property string, v anim.Value, _ string) {
	s.props[property] = v
}

// Properties returns the current values keyed by name.
func (s *Strip) Properties() map[string]anim.Value {
	out := make(map[string]anim.Value, len(s.props))
	for k, v := range s.props {
		out[k] = v
	}
	return out
}

// Names returns the property names in sorted order.
func (s *Strip) Names() []string {
	names := make([]string, 0, len(s.props))
	for k := range s.props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (s *Strip) color(property string) colorful.Color {
	v := s.Value(property)
	return colorful.Color{
		R: v.Component(0) / 255,
		G: v.Component(1) / 255,
		B: v.Component(2) / 255,
	}.Clamped()
}

// Render draws the strip into a new Frame.
func (s *Strip) Render() *Frame {
	f := NewFrame(s.pixels)
	back := s.color(BackgroundColor)
	fore := s.color(Color)
	brightness := math.Max(0, math.Min(1, s.Value(Brightness).Float()))
	offset := s.Value(Offset).Float()
	width := math.Max(0, s.Value(Width).Float())
	feather := int(math.Max(0, math.Round(s.Value(Feather).Float())))

	var lut []float64
	if feather > 0 {
		lut = easing.Table(easing.EaseBoth, 2*feather)
	}

	start := int(math.Round(offset))
	end := int(math.Round(offset + width))
	for i := 0; i < s.pixels; i++ {
		if i < start || i >= end {
			f.pixels[i] = back
			continue
		}
		gain := brightness
		if lut != nil {
			if d := i - start; d < feather {
				gain *= lut[d]
			} else if d := end - 1 - i; d < feather {
				gain *= lut[d]
			}
		}
		f.pixels[i] = back.BlendRgb(fore, gain).Clamped()
	}
	return f
}

var _ anim.Target = (*Strip)(nil)
