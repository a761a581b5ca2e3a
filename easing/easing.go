// Package easing implements tweening curves.
//
// Every curve is a Func taking the elapsed time t, the start value b, the
// change in value c and the total duration d, and returning the value at t.
// All curves return exactly b at t == 0 and exactly b+c at t == d.
package easing

import "math"

// Func computes the eased value at elapsed time t of a tween from b to b+c
// lasting d.
type Func func(t, b, c, d float64) float64

// DefaultOvershoot is the overshoot constant used by the back curves.
const DefaultOvershoot = 1.70158

// Linear moves at a constant rate.
func Linear(t, b, c, d float64) float64 {
	if t >= d {
		return b + c
	}
	return c*t/d + b
}

// EaseIn starts slowly and accelerates towards the end.
func EaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// EaseOut starts quickly and decelerates towards the end.
func EaseOut(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// EaseBoth accelerates through the first half and decelerates through the second.
func EaseBoth(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

// EaseInStrong is the quartic form of EaseIn.
func EaseInStrong(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

// EaseOutStrong is the quartic form of EaseOut.
func EaseOutStrong(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

// EaseBothStrong is the quartic form of EaseBoth.
func EaseBothStrong(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

// elasticShape resolves amplitude a and period p against the change c and
// returns the phase shift together with the effective amplitude.
func elasticShape(a, p, c float64) (float64, float64) {
	if a == 0 || a < math.Abs(c) {
		return p / 4, c
	}
	return p / (2 * math.Pi) * math.Asin(c/a), a
}

// ElasticInWith returns an elastic ease-in with the given amplitude and period.
// A zero amplitude means the change itself, a zero period means 0.3*d.
func ElasticInWith(amplitude, period float64) Func {
	return func(t, b, c, d float64) float64 {
		if t == 0 {
			return b
		}
		if t /= d; t == 1 {
			return b + c
		}
		p := period
		if p == 0 {
			p = d * 0.3
		}
		s, a := elasticShape(amplitude, p, c)
		t--
		return -(a * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
}

// ElasticOutWith returns an elastic ease-out with the given amplitude and period.
func ElasticOutWith(amplitude, period float64) Func {
	return func(t, b, c, d float64) float64 {
		if t == 0 {
			return b
		}
		if t /= d; t == 1 {
			return b + c
		}
		p := period
		if p == 0 {
			p = d * 0.3
		}
		s, a := elasticShape(amplitude, p, c)
		return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
	}
}

// ElasticBothWith returns an elastic ease-in-out. A zero period means 0.45*d.
func ElasticBothWith(amplitude, period float64) Func {
	return func(t, b, c, d float64) float64 {
		if t == 0 {
			return b
		}
		if t /= d / 2; t == 2 {
			return b + c
		}
		p := period
		if p == 0 {
			p = d * (0.3 * 1.5)
		}
		s, a := elasticShape(amplitude, p, c)
		t--
		if t < 0 {
			return -0.5*(a*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
		}
		return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*0.5 + c + b
	}
}

// ElasticIn snaps in like a released spring.
func ElasticIn(t, b, c, d float64) float64 { return ElasticInWith(0, 0)(t, b, c, d) }

// ElasticOut overshoots and oscillates around the end value.
func ElasticOut(t, b, c, d float64) float64 { return ElasticOutWith(0, 0)(t, b, c, d) }

// ElasticBoth oscillates at both ends.
func ElasticBoth(t, b, c, d float64) float64 { return ElasticBothWith(0, 0)(t, b, c, d) }

// BackInWith returns a back ease-in pulling away by overshoot s first.
func BackInWith(s float64) Func {
	return func(t, b, c, d float64) float64 {
		if t <= 0 {
			return b
		}
		if t >= d {
			return b + c
		}
		t /= d
		return c*t*t*((s+1)*t-s) + b
	}
}

// BackOutWith returns a back ease-out that overshoots by s before settling.
func BackOutWith(s float64) Func {
	return func(t, b, c, d float64) float64 {
		if t <= 0 {
			return b
		}
		if t >= d {
			return b + c
		}
		t = t/d - 1
		return c*(t*t*((s+1)*t+s)+1) + b
	}
}

// BackBothWith returns a back ease-in-out with overshoot s.
func BackBothWith(s float64) Func {
	return func(t, b, c, d float64) float64 {
		if t <= 0 {
			return b
		}
		if t >= d {
			return b + c
		}
		s := s * 1.525
		t /= d / 2
		if t < 1 {
			return c/2*(t*t*((s+1)*t-s)) + b
		}
		t -= 2
		return c/2*(t*t*((s+1)*t+s)+2) + b
	}
}

// BackIn backs up slightly before moving towards the end.
func BackIn(t, b, c, d float64) float64 { return BackInWith(DefaultOvershoot)(t, b, c, d) }

// BackOut runs past the end and comes back.
func BackOut(t, b, c, d float64) float64 { return BackOutWith(DefaultOvershoot)(t, b, c, d) }

// BackBoth backs up at the start and overshoots at the end.
func BackBoth(t, b, c, d float64) float64 { return BackBothWith(DefaultOvershoot)(t, b, c, d) }

// BounceOut bounces off the end value with decaying height.
func BounceOut(t, b, c, d float64) float64 {
	if t >= d {
		return b + c
	}
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	}
	t -= 2.625 / 2.75
	return c*(7.5625*t*t+0.984375) + b
}

// BounceIn is BounceOut played backwards.
func BounceIn(t, b, c, d float64) float64 {
	return c - BounceOut(d-t, 0, c, d) + b
}

// BounceBoth bounces in over the first half and out over the second.
func BounceBoth(t, b, c, d float64) float64 {
	if t < d/2 {
		return BounceIn(t*2, 0, c, d)*0.5 + b
	}
	return BounceOut(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}
