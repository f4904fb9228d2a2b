// Package systems holds the example gameplay systems the demo wires onto a
// World: movement, AI, audio and drawing. Each is grounded on the shape of
// the teacher's corresponding internal/core/systems file, rebuilt against
// the generic query/resource parameter API.
package systems

import (
	"math"

	"github.com/duskforge/ecsframe/internal/collab"
	"github.com/duskforge/ecsframe/internal/core/components"
	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// MovementPlugin integrates Velocity into Position every Update tick,
// scaled by the frame delta from collab.Time.
func MovementPlugin() ecs.Plugin {
	return ecs.Plugin{
		Title:       "systems.Movement",
		Description: "integrates velocity into position",
		Deps:        []string{"collab.Time"},
		Plug: func(w *ecs.World) {
			w.AddSystem(ecs.StageUpdate, ecs.System2(
				"systems.Movement.integrate",
				func(
					q *ecs.Query2[ecs.RefMut[components.Position], ecs.Ref[components.Velocity]],
					clock ecs.Res[collab.Time],
				) {
					dt := clock.Get().Delta.Seconds()
					for {
						pos, vel, ok := q.Next()
						if !ok {
							break
						}
						p := pos.Get()
						v := vel.Get()
						p.X += v.X * dt
						p.Y += v.Y * dt
					}
				},
			))
		},
	}
}

// PhysicsPlugin applies acceleration, friction and gravity to Velocity.
func PhysicsPlugin(gravity float64) ecs.Plugin {
	return ecs.Plugin{
		Title:       "systems.Physics",
		Description: "applies acceleration, friction and gravity to velocity",
		Deps:        []string{"collab.Time"},
		Plug: func(w *ecs.World) {
			w.AddSystem(ecs.StagePreUpdate, ecs.System2(
				"systems.Physics.integrate",
				func(
					q *ecs.Query2[ecs.RefMut[components.Velocity], ecs.Ref[components.Physics]],
					clock ecs.Res[collab.Time],
				) {
					dt := clock.Get().Delta.Seconds()
					for {
						vel, phys, ok := q.Next()
						if !ok {
							break
						}
						v := vel.Get()
						p := phys.Get()
						if p.Static {
							v.X, v.Y = 0, 0
							continue
						}
						v.X += p.Acceleration.X * dt
						v.Y += p.Acceleration.Y * dt
						if p.Gravity {
							v.Y += gravity * dt
						}
						if p.Friction > 0 {
							damp := 1 - p.Friction*dt
							if damp < 0 {
								damp = 0
							}
							v.X *= damp
							v.Y *= damp
						}
						if p.MaxSpeed > 0 {
							speed2 := v.X*v.X + v.Y*v.Y
							if max2 := p.MaxSpeed * p.MaxSpeed; speed2 > max2 {
								scale := p.MaxSpeed / math.Sqrt(speed2)
								v.X *= scale
								v.Y *= scale
							}
						}
					}
				},
			))
		},
	}
}
