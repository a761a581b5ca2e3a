// Package style provides an animation target over inline CSS declarations,
// such as the contents of an element's style attribute.
package style

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("ledanim.style")
}

var length = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)([a-zA-Z%]*)$`)

type declaration struct {
	value anim.Value
	unit  string
	raw   string
}

// Style is a set of declarations keyed by property name.
type Style struct {
	decls map[string]declaration
}

// New creates an empty Style.
func New() *Style {
	s := new(Style)
	s.decls = make(map[string]declaration)
	return s
}

// Parse reads declarations like "width: 10px; color: #ff8000".
func Parse(inline string) (*Style, error) {
	decls, err := parser.ParseDeclarations(inline)
	if err != nil {
		return nil, fmt.Errorf("style: parsing %q: %w", inline, err)
	}
	s := New()
	for _, d := range decls {
		s.Set(d.Property, d.Value)
	}
	return s, nil
}

// Set stores the raw text of a declaration.
func (s *Style) Set(property, raw string) {
	property = strings.ToLower(strings.TrimSpace(property))
	raw = strings.TrimSpace(raw)
	v, unit := parseValue(raw)
	s.decls[property] = declaration{value: v, unit: unit, raw: raw}
}

// Get returns the text of a declaration and whether it is present.
func (s *Style) Get(property string) (string, bool) {
	d, ok := s.decls[strings.ToLower(property)]
	return d.raw, ok
}

// Unit returns the unit of a length declaration.
func (s *Style) Unit(property string) string {
	return s.decls[strings.ToLower(property)].unit
}

// Value implements anim.Target. Colours read as red, green and blue in
// 0..255, lengths as their number; anything else reads as 0.
func (s *Style) Value(property string) anim.Value {
	d, ok := s.decls[strings.ToLower(property)]
	if !ok {
		return anim.Scalar(0)
	}
	return d.value
}

// SetValue implements anim.Target.
func (s *Style) SetValue(property string, v anim.Value, unit string) {
	property = strings.ToLower(property)
	var raw string
	if v.IsVector() && v.Len() == 3 {
		raw = toHex(v)
	} else {
		raw = strconv.FormatFloat(v.Float(), 'f', -1, 64) + unit
	}
	s.decls[property] = declaration{value: v, unit: unit, raw: raw}
}

// String renders the declarations sorted by property.
func (s *Style) String() string {
	props := make([]string, 0, len(s.decls))
	for p := range s.decls {
		props = append(props, p)
	}
	sort.Strings(props)
	var b strings.Builder
	for i, p := range props {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s: %s;", p, s.decls[p].raw)
	}
	return b.String()
}

func parseValue(raw string) (anim.Value, string) {
	if strings.HasPrefix(raw, "#") {
		c, err := colorful.Hex(expandHex(raw))
		if err == nil {
			r, g, b := c.RGB255()
			return anim.Vector(float64(r), float64(g), float64(b)), ""
		}
	}
	if m := length.FindStringSubmatch(raw); m != nil {
		x, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return anim.Scalar(x), m[2]
		}
	}
	if raw != "auto" {
		tracer().Debugf("value %q is not numeric, reading as 0", raw)
	}
	return anim.Scalar(0), ""
}

// expandHex turns the short #rgb form into #rrggbb.
func expandHex(h string) string {
	if len(h) != 4 {
		return h
	}
	return string([]byte{'#', h[1], h[1], h[2], h[2], h[3], h[3]})
}

func toHex(v anim.Value) string {
	ch := func(i int) float64 {
		return math.Round(v.Component(i)) / 255
	}
	return colorful.Color{R: ch(0), G: ch(1), B: ch(2)}.Clamped().Hex()
}

var _ anim.Target = (*Style)(nil)
