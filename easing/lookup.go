package easing

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// FromUnit adapts a normalised curve, mapping [0,1] onto [0,1], to a Func.
func FromUnit(f func(float64) float64) Func {
	return func(t, b, c, d float64) float64 {
		if t <= 0 {
			return b
		}
		if t >= d {
			return b + c
		}
		return b + c*f(t/d)
	}
}

var named = map[string]Func{
	"easeNone":       Linear,
	"easeIn":         EaseIn,
	"easeOut":        EaseOut,
	"easeBoth":       EaseBoth,
	"easeInStrong":   EaseInStrong,
	"easeOutStrong":  EaseOutStrong,
	"easeBothStrong": EaseBothStrong,
	"elasticIn":      ElasticIn,
	"elasticOut":     ElasticOut,
	"elasticBoth":    ElasticBoth,
	"backIn":         BackIn,
	"backOut":        BackOut,
	"backBoth":       BackBoth,
	"bounceIn":       BounceIn,
	"bounceOut":      BounceOut,
	"bounceBoth":     BounceBoth,

	"inCubic":    FromUnit(ease.InCubic),
	"outCubic":   FromUnit(ease.OutCubic),
	"inOutCubic": FromUnit(ease.InOutCubic),
	"inQuint":    FromUnit(ease.InQuint),
	"outQuint":   FromUnit(ease.OutQuint),
	"inOutQuint": FromUnit(ease.InOutQuint),
	"inSine":     FromUnit(ease.InSine),
	"outSine":    FromUnit(ease.OutSine),
	"inOutSine":  FromUnit(ease.InOutSine),
	"inExpo":     FromUnit(ease.InExpo),
	"outExpo":    FromUnit(ease.OutExpo),
	"inOutExpo":  FromUnit(ease.InOutExpo),
	"inCirc":     FromUnit(ease.InCirc),
	"outCirc":    FromUnit(ease.OutCirc),
	"inOutCirc":  FromUnit(ease.InOutCirc),
}

// Lookup resolves an easing curve by name. The empty name selects Linear.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Linear, nil
	}
	fn, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("easing: unknown curve %q", name)
	}
	return fn, nil
}

// Names lists the curves known to Lookup in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Table samples fn into a look-up table of the given length that rises from
// 0 towards 1 over the first half and falls back over the second half.
func Table(fn Func, length int) []float64 {
	lut := make([]float64, length)
	half := length / 2
	if half == 0 {
		return lut
	}
	for i, j := 0, length-1; i < half; i, j = i+1, j-1 {
		v := fn(float64(i), 0, 1, float64(half))
		lut[i] = v
		lut[j] = v
	}
	return lut
}
