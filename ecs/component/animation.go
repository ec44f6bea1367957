package component

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation plays named clips. Params are float inputs written by gameplay
// code; the animation system picks Current from them.
type Animation struct {
	Defs       map[string]AnimationDef
	Params     map[string]float64
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
}

// SetFloat records a named float parameter.
func (a *Animation) SetFloat(name string, value float64) {
	if a == nil {
		return
	}
	if a.Params == nil {
		a.Params = make(map[string]float64)
	}
	a.Params[name] = value
}

// Float returns a parameter, or zero when it was never set.
func (a *Animation) Float(name string) float64 {
	if a == nil {
		return 0
	}
	return a.Params[name]
}

// Play switches to a clip and restarts it. Playing the current clip is a no-op.
func (a *Animation) Play(name string) {
	if a == nil || a.Current == name {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
}

var AnimationComponent = NewComponent[Animation]()
