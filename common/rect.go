package common

// Rect is an axis-aligned box described by its center and size.
type Rect struct {
	Center Vec
	Width  float64
	Height float64
}

func (r Rect) Min() Vec { return Vec{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2} }
func (r Rect) Max() Vec { return Vec{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2} }

// SweepDown returns the area covered by r moved down by distance, including
// its starting position.
func (r Rect) SweepDown(distance float64) Rect {
	return Rect{
		Center: Vec{X: r.Center.X, Y: r.Center.Y - distance/2},
		Width:  r.Width,
		Height: r.Height + distance,
	}
}

func (r Rect) Intersects(other Rect) bool {
	a0, a1 := r.Min(), r.Max()
	b0, b1 := other.Min(), other.Max()
	return a0.X < b1.X && a1.X > b0.X && a0.Y < b1.Y && a1.Y > b0.Y
}
