package common

import (
	"math"
	"testing"
)

func TestMoveTowards(t *testing.T) {
	cases := []struct {
		name    string
		from    Vec
		to      Vec
		max     float64
		want    Vec
		wantLen float64
	}{
		{"partial_step", Vec{0, 0}, Vec{10, 0}, 2, Vec{2, 0}, 2},
		{"snaps_when_close", Vec{0, 0}, Vec{1, 0}, 2, Vec{1, 0}, 1},
		{"diagonal", Vec{0, 0}, Vec{3, 4}, 1, Vec{0.6, 0.8}, 1},
		{"already_there", Vec{5, 5}, Vec{5, 5}, 1, Vec{5, 5}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MoveTowards(c.from, c.to, c.max)
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Fatalf("MoveTowards = %+v, want %+v", got, c.want)
			}
			if d := Distance(c.from, got); math.Abs(d-c.wantLen) > 1e-9 {
				t.Fatalf("moved %v, want %v", d, c.wantLen)
			}
		})
	}
}

func TestRectSweepDown(t *testing.T) {
	r := Rect{Center: Vec{0, 1}, Width: 1, Height: 2}
	s := r.SweepDown(0.5)
	if s.Min().Y != -0.5 || s.Max().Y != 2 {
		t.Fatalf("sweep bounds = %+v..%+v", s.Min(), s.Max())
	}
	if !s.Intersects(Rect{Center: Vec{0, -0.25}, Width: 4, Height: 0.5}) {
		t.Fatalf("sweep should reach a surface 0.5 below")
	}
	if s.Intersects(Rect{Center: Vec{0, -1}, Width: 4, Height: 0.5}) {
		t.Fatalf("sweep should not reach a surface 0.75 below")
	}
}
