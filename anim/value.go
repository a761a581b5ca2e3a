package anim

import (
	"fmt"
	"strings"
)

// Value is either a single number or a vector of numbers, such as the
// channels of a colour. Vectors interpolate component-wise.
type Value struct {
	vector bool
	comps  []float64
}

// Scalar creates a single-number Value.
func Scalar(x float64) Value {
	return Value{comps: []float64{x}}
}

// Vector creates a multi-component Value.
func Vector(xs ...float64) Value {
	c := make([]float64, len(xs))
	copy(c, xs)
	return Value{vector: true, comps: c}
}

// IsVector reports whether v was created by Vector.
func (v Value) IsVector() bool {
	return v.vector
}

// Float returns the scalar value, or the first component of a vector.
func (v Value) Float() float64 {
	if len(v.comps) == 0 {
		return 0
	}
	return v.comps[0]
}

// Len returns the number of components.
func (v Value) Len() int {
	return len(v.comps)
}

// Component returns component i. Scalars broadcast to every index.
func (v Value) Component(i int) float64 {
	if !v.vector {
		return v.Float()
	}
	if i < 0 || i >= len(v.comps) {
		return 0
	}
	return v.comps[i]
}

// broadcast returns a scalar v as a vector of n equal components. Vectors are
// returned unchanged.
func (v Value) broadcast(n int) Value {
	if v.vector {
		return v
	}
	out := Value{vector: true, comps: make([]float64, n)}
	for i := range out.comps {
		out.comps[i] = v.Float()
	}
	return out
}

// Components returns a copy of the components.
func (v Value) Components() []float64 {
	c := make([]float64, len(v.comps))
	copy(c, v.comps)
	return c
}

// Add returns v + o. The result has the shape of v.
func (v Value) Add(o Value) Value {
	return v.Map(func(i int, x float64) float64 { return x + o.Component(i) })
}

// Sub returns v - o. The result has the shape of v.
func (v Value) Sub(o Value) Value {
	return v.Map(func(i int, x float64) float64 { return x - o.Component(i) })
}

// Map applies fn to every component and returns a Value of the same shape.
func (v Value) Map(fn func(i int, x float64) float64) Value {
	if !v.vector {
		return Scalar(fn(0, v.Float()))
	}
	out := Value{vector: true, comps: make([]float64, len(v.comps))}
	for i, x := range v.comps {
		out.comps[i] = fn(i, x)
	}
	return out
}

// Equal reports whether v and o have the same shape and components.
func (v Value) Equal(o Value) bool {
	if v.vector != o.vector || len(v.comps) != len(o.comps) {
		return false
	}
	for i := range v.comps {
		if v.comps[i] != o.comps[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	if !v.vector {
		return fmt.Sprintf("%g", v.Float())
	}
	parts := make([]string, len(v.comps))
	for i, x := range v.comps {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Tween describes how one property should move. Create it with To or By.
// The zero Tween moves nothing and is skipped when an animation starts.
type Tween struct {
	from, to, by *Value
	unit         *string
}

// To creates a Tween ending at v.
func To(v Value) Tween {
	return Tween{to: &v}
}

// By creates a Tween ending at the start value plus v.
func By(v Value) Tween {
	return Tween{by: &v}
}

// From sets an explicit start value instead of the target's current one.
func (tw Tween) From(v Value) Tween {
	tw.from = &v
	return tw
}

// Unit sets the unit written alongside each value. Without it the unit is
// inferred from the property name.
func (tw Tween) Unit(u string) Tween {
	tw.unit = &u
	return tw
}

// Valid reports whether tw has a destination.
func (tw Tween) Valid() bool {
	return tw.to != nil || tw.by != nil
}

// Attributes maps property names to their tweens.
type Attributes map[string]Tween

// RuntimeAttribute holds the resolved values of one property for one run.
type RuntimeAttribute struct {
	Start Value
	End   Value
	Unit  string
}
