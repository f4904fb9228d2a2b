package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskforge/ecsframe/internal/core/components"
	"github.com/duskforge/ecsframe/internal/core/ecs"
)

func TestAIPlugin_MovesTowardPatrolPoint(t *testing.T) {
	w := ecs.New(nil)
	w.AddPlugin(AIPlugin())

	e := w.Spawn()
	ecs.Set(w, e, components.Position{Vec2: components.Vec2{X: 0, Y: 0}})
	ecs.Set(w, e, components.Velocity{})
	ecs.Set(w, e, components.AI{
		Speed:        10,
		PatrolPoints: []components.Vec2{{X: 100, Y: 0}},
	})

	w.Update()

	vel, err := ecs.Get[components.Velocity](w, e)
	require.NoError(t, err)
	assert.Greater(t, vel.X, 0.0)
	assert.Equal(t, 0.0, vel.Y)

	ai, err := ecs.Get[components.AI](w, e)
	require.NoError(t, err)
	assert.Equal(t, components.AIStatePatrol, ai.State)
}

func TestAIPlugin_EmitsStateChangedEvent(t *testing.T) {
	w := ecs.New(nil)
	w.AddPlugin(AIPlugin())

	var newState components.AIState
	fired := false
	w.AddHook("ai.state_changed", func(w *ecs.World, payload any) {
		fired = true
		newState = payload.(components.AIState)
	})

	e := w.Spawn()
	ecs.Set(w, e, components.Position{})
	ecs.Set(w, e, components.Velocity{})
	ecs.Set(w, e, components.AI{Speed: 10, PatrolPoints: []components.Vec2{{X: 50, Y: 0}}})

	w.Update()

	assert.True(t, fired)
	assert.Equal(t, components.AIStatePatrol, newState)
}
