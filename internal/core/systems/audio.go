package systems

import (
	"github.com/duskforge/ecsframe/internal/collab"
	"github.com/duskforge/ecsframe/internal/core/components"
	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// AudioPlugin resolves each Audio component's clip name against the audio
// library once per tick it transitions into the playing state, marking it
// playing so the resolution only happens once until something resets it.
func AudioPlugin() ecs.Plugin {
	return ecs.Plugin{
		Title:       "systems.Audio",
		Description: "resolves Audio components against the asset library",
		Deps:        []string{"collab.Assets"},
		Plug: func(w *ecs.World) {
			w.AddSystem(ecs.StageUpdate, ecs.System2(
				"systems.Audio.resolve",
				func(
					q *ecs.Query1[ecs.RefMut[components.Audio]],
					clips ecs.Res[*collab.AudioLibrary],
				) {
					for {
						audio, ok := q.Next()
						if !ok {
							break
						}
						a := audio.Get()
						if a.Playing || a.ClipName == "" {
							continue
						}
						if _, err := clips.Get().Load(a.ClipName); err != nil {
							continue
						}
						a.Playing = true
					}
				},
			))
		},
	}
}
