package component

import "github.com/milk9111/dashshot/controller"

// PlayerState carries the running controller and the states it reported on
// the previous tick, for change detection.
type PlayerState struct {
	Controller   *controller.Controller
	LastMovement controller.MovementState
	LastAttack   controller.AttackState
}

var PlayerStateComponent = NewComponent[PlayerState]()
