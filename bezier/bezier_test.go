package bezier

import (
	"testing"

	"github.com/matt-g-everett/ledanim/easing"
	"github.com/stretchr/testify/assert"
)

func TestPositionLine(t *testing.T) {
	line := []Point{{0, 0}, {10, 10}}
	assert.Equal(t, Point{5, 5}, Position(line, 0.5))
	assert.Equal(t, line[0], Position(line, 0))
	assert.Equal(t, line[1], Position(line, 1))
}

func TestPositionQuadratic(t *testing.T) {
	curve := []Point{{0, 0}, {10, 20}, {20, 0}}
	assert.Equal(t, Point{10, 10}, Position(curve, 0.5))
	assert.Equal(t, curve[0], Position(curve, 0))
	assert.Equal(t, curve[2], Position(curve, 1))
}

func TestPositionLeavesInput(t *testing.T) {
	curve := []Point{{0, 0}, {4, 8}, {8, 8}, {12, 0}}
	before := append([]Point(nil), curve...)
	Position(curve, 0.3)
	assert.Equal(t, before, curve)
}

func TestPositionDegenerate(t *testing.T) {
	assert.Equal(t, Point{}, Position(nil, 0.5))
	assert.Equal(t, Point{3, 4}, Position([]Point{{3, 4}}, 0.7))
}

func TestPath(t *testing.T) {
	p := NewPath(nil, Point{0, 0}, Point{10, 10})
	assert.Equal(t, Point{5, 5}, p.At(15, 30))
	assert.Equal(t, Point{10, 10}, p.At(30, 30))
	assert.Equal(t, Point{10, 10}, p.At(0, 0))

	eased := NewPath(easing.EaseIn, Point{0, 0}, Point{100, 0})
	assert.Equal(t, Point{25, 0}, eased.At(15, 30))
}
