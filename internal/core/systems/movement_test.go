package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskforge/ecsframe/internal/collab"
	"github.com/duskforge/ecsframe/internal/core/components"
	"github.com/duskforge/ecsframe/internal/core/ecs"
)

func TestMovementPlugin_IntegratesVelocityIntoPosition(t *testing.T) {
	w := ecs.New(nil)
	ecs.SetResource(w, collab.Time{Delta: time.Second})
	w.AddPlugin(MovementPlugin())

	e := w.Spawn()
	ecs.Set(w, e, components.Position{Vec2: components.Vec2{X: 0, Y: 0}})
	ecs.Set(w, e, components.Velocity{Vec2: components.Vec2{X: 10, Y: -5}})

	w.Update()

	pos, err := ecs.Get[components.Position](w, e)
	require.NoError(t, err)
	assert.Equal(t, 10.0, pos.X)
	assert.Equal(t, -5.0, pos.Y)
}

func TestPhysicsPlugin_AppliesGravityAndClampsToMaxSpeed(t *testing.T) {
	w := ecs.New(nil)
	ecs.SetResource(w, collab.Time{Delta: time.Second})
	w.AddPlugin(PhysicsPlugin(100))

	e := w.Spawn()
	ecs.Set(w, e, components.Velocity{})
	ecs.Set(w, e, components.Physics{Gravity: true, MaxSpeed: 50})

	w.Update()

	vel, err := ecs.Get[components.Velocity](w, e)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, vel.Y, 0.01)
}

func TestPhysicsPlugin_StaticBodyIgnoresForces(t *testing.T) {
	w := ecs.New(nil)
	ecs.SetResource(w, collab.Time{Delta: time.Second})
	w.AddPlugin(PhysicsPlugin(100))

	e := w.Spawn()
	ecs.Set(w, e, components.Velocity{Vec2: components.Vec2{X: 5, Y: 5}})
	ecs.Set(w, e, components.Physics{Static: true, Gravity: true})

	w.Update()

	vel, err := ecs.Get[components.Velocity](w, e)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vel.X)
	assert.Equal(t, 0.0, vel.Y)
}
