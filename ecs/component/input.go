package component

import "github.com/milk9111/dashshot/controller"

// Input stores per-frame input state for an entity. The *Pressed fields are
// true only on the frame the button went down.
type Input struct {
	MoveX        float64
	JumpPressed  bool
	DropPressed  bool
	DashPressed  bool
	ShootPressed bool
}

func (i *Input) Horizontal() float64 {
	if i == nil {
		return 0
	}
	return i.MoveX
}

func (i *Input) Pressed(a controller.Action) bool {
	if i == nil {
		return false
	}
	switch a {
	case controller.ActionJump:
		return i.JumpPressed
	case controller.ActionDrop:
		return i.DropPressed
	case controller.ActionDash:
		return i.DashPressed
	case controller.ActionShoot:
		return i.ShootPressed
	}
	return false
}

var InputComponent = NewComponent[Input]()
