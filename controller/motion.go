package controller

import "github.com/milk9111/dashshot/common"

// Motion is the character state both machines read and write during a tick.
// The driver loads it from the body before the machines run and stores it
// back afterwards, so the last write in a tick wins.
type Motion struct {
	Velocity    common.Vec
	FacingRight bool
}

// Frame is the per-tick input to the state machines.
type Frame struct {
	Dt     float64
	Input  Input
	Motion *Motion
}

func (f *Frame) pressed(a Action) bool {
	return f != nil && f.Input != nil && f.Input.Pressed(a)
}

func (f *Frame) horizontal() float64 {
	if f == nil || f.Input == nil {
		return 0
	}
	return f.Input.Horizontal()
}
