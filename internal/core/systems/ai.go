package systems

import (
	"math"

	"github.com/duskforge/ecsframe/internal/core/components"
	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// AIPlugin steps each AI entity's patrol behavior and writes a Velocity
// toward its current patrol point. An idle AI switches to patrol; the chase
// and attack states are never entered.
func AIPlugin() ecs.Plugin {
	return ecs.Plugin{
		Title:       "systems.AI",
		Description: "patrol behavior driving entity velocity",
		Plug: func(w *ecs.World) {
			w.RegisterEvent("ai.state_changed", "payload is the AI entity's new components.AIState")
			w.AddSystem(ecs.StageUpdate, ecs.System2(
				"systems.AI.step",
				func(
					q *ecs.Query3[ecs.RefMut[components.AI], ecs.Ref[components.Position], ecs.RefMut[components.Velocity]],
					cmds *ecs.Commands,
				) {
					for {
						ai, pos, vel, ok := q.Next()
						if !ok {
							break
						}
						before := ai.Get().State
						stepAI(ai.Get(), pos.Get(), vel.Get())
						if after := ai.Get().State; after != before {
							cmds.Trigger("ai.state_changed", after)
						}
					}
				},
			))
		},
	}
}

func stepAI(ai *components.AI, pos *components.Position, vel *components.Velocity) {
	if len(ai.PatrolPoints) == 0 {
		vel.X, vel.Y = 0, 0
		return
	}
	if ai.State == components.AIStateIdle {
		ai.State = components.AIStatePatrol
	}
	target := ai.PatrolPoints[ai.PatrolIndex]
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		ai.PatrolIndex = (ai.PatrolIndex + 1) % len(ai.PatrolPoints)
		vel.X, vel.Y = 0, 0
		return
	}
	vel.X = dx / dist * ai.Speed
	vel.Y = dy / dist * ai.Speed
}
