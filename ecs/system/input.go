package system

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
	"github.com/milk9111/dashshot/settings"
)

// InputSystem samples keyboard and gamepad once per frame and writes the
// result to every Input component. Buttons are edge-triggered.
type InputSystem struct {
	left, right             []ebiten.Key
	jump, drop, dash, shoot []ebiten.Key

	padJump, padDrop, padDash, padShoot ebiten.StandardGamepadButton
	deadzone                            float64
}

func NewInputSystem(b *settings.Bindings) (*InputSystem, error) {
	if b == nil {
		b = settings.DefaultBindings()
	}
	i := &InputSystem{
		padJump:  ebiten.StandardGamepadButton(b.PadJump),
		padDrop:  ebiten.StandardGamepadButton(b.PadDrop),
		padDash:  ebiten.StandardGamepadButton(b.PadDash),
		padShoot: ebiten.StandardGamepadButton(b.PadShoot),
		deadzone: b.StickDeadzone,
	}
	for _, bind := range []struct {
		dst   *[]ebiten.Key
		names []string
	}{
		{&i.left, b.Left},
		{&i.right, b.Right},
		{&i.jump, b.Jump},
		{&i.drop, b.Drop},
		{&i.dash, b.Dash},
		{&i.shoot, b.Shoot},
	} {
		keys, err := settings.Keys(bind.names)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		*bind.dst = keys
	}
	return i, nil
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var in component.Input
	if anyPressed(i.left) {
		in.MoveX -= 1
	}
	if anyPressed(i.right) {
		in.MoveX += 1
	}
	in.JumpPressed = anyJustPressed(i.jump)
	in.DropPressed = anyJustPressed(i.drop)
	in.DashPressed = anyJustPressed(i.dash)
	in.ShootPressed = anyJustPressed(i.shoot)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > i.deadzone {
			in.MoveX = leftX
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			in.MoveX = -1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			in.MoveX = 1
		}

		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, i.padJump)
		in.DropPressed = in.DropPressed || inpututil.IsStandardGamepadButtonJustPressed(id, i.padDrop)
		in.DashPressed = in.DashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, i.padDash)
		in.ShootPressed = in.ShootPressed || inpututil.IsStandardGamepadButtonJustPressed(id, i.padShoot)
	}

	writeInput(w, in)
}

func writeInput(w *ecs.World, in component.Input) {
	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		*input = in
	})
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
