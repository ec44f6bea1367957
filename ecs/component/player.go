package component

import "github.com/milk9111/dashshot/controller"

// Player holds the tuning the controller is built with.
type Player struct {
	Config controller.Config
}

var PlayerComponent = NewComponent[Player]()
