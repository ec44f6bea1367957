package system

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dashshot/common"
	"github.com/milk9111/dashshot/controller"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws every sprite as a box, Y up, centered on the camera.
// With Debug set it also draws sensing probes and a state HUD.
type RenderSystem struct {
	Debug bool

	camEntity ecs.Entity
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

type view struct {
	camX, camY float64
	scale      float64
	halfW      float64
	halfH      float64
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32(v.halfW + (x-v.camX)*v.scale), float32(v.halfH - (y-v.camY)*v.scale)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	if !w.IsAlive(r.camEntity) {
		r.camEntity, _ = w.First(component.CameraComponent.Kind())
	}

	bounds := screen.Bounds()
	v := view{
		scale: common.PixelsPerUnit,
		halfW: float64(bounds.Dx()) / 2,
		halfH: float64(bounds.Dy()) / 2,
	}
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent); ok {
		v.camX, v.camY = camTransform.X, camTransform.Y
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent); ok && cam.Zoom > 0 {
		v.scale *= cam.Zoom
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	// Level geometry first, then everything that moves.
	sort.SliceStable(entities, func(i, j int) bool {
		ti := ecs.Has(w, entities[i], component.StaticTileComponent)
		tj := ecs.Has(w, entities[j], component.StaticTileComponent)
		if ti != tj {
			return ti
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		drawBox(screen, v, t.X, t.Y, s.Width, s.Height, s.Color)

		if t.ScaleX != 0 && !ecs.Has(w, e, component.StaticTileComponent) {
			// Facing marker on the leading edge.
			dir := 1.0
			if t.FacingLeft() {
				dir = -1
			}
			x0, y0 := v.toScreen(t.X, t.Y)
			x1, y1 := v.toScreen(t.X+dir*s.Width/2, t.Y)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.White, false)
		}
	}

	if r.Debug {
		r.drawDebug(w, screen, v)
	}
}

func drawBox(screen *ebiten.Image, v view, x, y, width, height float64, c color.Color) {
	if c == nil {
		c = colornames.White
	}
	left, top := v.toScreen(x-width/2, y+height/2)
	vector.DrawFilledRect(screen, left, top, float32(width*v.scale), float32(height*v.scale), c, false)
}

func strokeBox(screen *ebiten.Image, v view, r common.Rect, c color.Color) {
	left, top := v.toScreen(r.Min().X, r.Max().Y)
	vector.StrokeRect(screen, left, top, float32(r.Width*v.scale), float32(r.Height*v.scale), 1, c, false)
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image, v view) {
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.PlayerStateComponent.Kind())
	if !ok {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  no player", ebiten.ActualTPS()))
		return
	}
	state, _ := ecs.Get(w, player, component.PlayerStateComponent)
	if state.Controller == nil {
		return
	}
	snap := state.Controller.Snapshot()

	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent); ok && body.Body != nil {
		pos := body.Body.Position()
		bounds := common.Rect{Center: common.Vec{X: pos.X, Y: pos.Y}, Width: body.Width, Height: body.Height}
		probe := colornames.Lime
		if snap.DroppingThrough {
			probe = colornames.Red
		}
		strokeBox(screen, v, bounds.SweepDown(controller.ProbeDistance), probe)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  t=%.2fs\n", ebiten.ActualTPS(), state.Controller.Now())
	fmt.Fprintf(&b, "movement %s  attack %s\n", snap.Movement, snap.Attack)
	facing := "right"
	if !snap.FacingRight {
		facing = "left"
	}
	fmt.Fprintf(&b, "facing %s  dash %.2fs\n", facing, snap.DashRemaining)
	if snap.CooldownLeft > 0 {
		fmt.Fprintf(&b, "cooldown %.2fs\n", snap.CooldownLeft)
	}
	if snap.DroppingThrough {
		fmt.Fprintf(&b, "drop-through %.2fs\n", snap.PlatformRestore)
	}
	fmt.Fprintf(&b, "bullets %d", len(w.Query(component.BulletTagComponent.Kind())))
	ebitenutil.DebugPrint(screen, b.String())
}
