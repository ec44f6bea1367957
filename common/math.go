package common

import "math"

// PixelsPerUnit converts world units to screen pixels.
const PixelsPerUnit = 32.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Vec is a 2D vector in world units. Y points up.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// MoveTowards moves current toward target by at most maxDelta and never
// overshoots.
func MoveTowards(current, target Vec, maxDelta float64) Vec {
	d := target.Sub(current)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.Scale(maxDelta / dist))
}

// Sign returns -1 for negative values, 1 for positive and 0 otherwise.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
