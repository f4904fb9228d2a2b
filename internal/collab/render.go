package collab

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// Renderer holds the current frame's draw target. The demo harness sets
// Screen right before calling World.Render() from its ebiten.Game.Draw
// callback, since ebiten only hands out the *ebiten.Image inside that
// callback; Render-stage systems read it back out via Res[Renderer].
type Renderer struct {
	Screen *ebiten.Image
}

// RenderGraph accumulates per-frame draw statistics so systems later in the
// Render/PostRender stages (a debug overlay, a profiler hook) can observe
// what the earlier draw systems did this tick. It is reset every PreRender.
type RenderGraph struct {
	DrawCalls int
}

// RenderPlugin installs the Renderer and RenderGraph resources and a
// PreRender system that resets RenderGraph's per-frame counters.
func RenderPlugin() ecs.Plugin {
	return ecs.Plugin{
		Title:       "collab.Render",
		Description: "draw-target and per-frame render graph resources",
		Plug: func(w *ecs.World) {
			ecs.SetResource(w, Renderer{})
			ecs.SetResource(w, RenderGraph{})
			w.AddSystem(ecs.StagePreRender, ecs.System1(
				"collab.Render.resetGraph",
				func(graph ecs.ResMut[RenderGraph]) {
					*graph.Get() = RenderGraph{}
				},
			))
		},
	}
}

// SetScreen updates the Renderer resource's draw target. Called by the
// demo harness from inside its ebiten.Game.Draw callback.
func SetScreen(w *ecs.World, screen *ebiten.Image) {
	r, err := ecs.GetResource[Renderer](w)
	if err != nil {
		return
	}
	r.Screen = screen
	ecs.SetResource(w, r)
}
