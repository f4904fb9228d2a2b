package collab

import (
	"time"

	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// Time is the frame clock resource: Delta since the previous tick and
// Elapsed since the World started. Gameplay systems take ResMut[Time] only
// if they need to reset it (the clock system itself); everything else
// should take Res[Time].
type Time struct {
	Delta   time.Duration
	Elapsed time.Duration
}

type clockState struct {
	last time.Time
}

// TimePlugin installs the Time resource and a PreUpdate system that
// advances it from the wall clock on every tick.
func TimePlugin() ecs.Plugin {
	state := &clockState{}
	return ecs.Plugin{
		Title:       "collab.Time",
		Description: "frame delta/elapsed clock resource",
		Plug: func(w *ecs.World) {
			ecs.SetResource(w, Time{})
			w.AddSystem(ecs.StagePreUpdate, ecs.System1(
				"collab.Time.tick",
				func(clock ecs.ResMut[Time]) {
					now := time.Now()
					if state.last.IsZero() {
						state.last = now
					}
					delta := now.Sub(state.last)
					state.last = now
					t := clock.Get()
					t.Delta = delta
					t.Elapsed += delta
				},
			))
		},
	}
}
