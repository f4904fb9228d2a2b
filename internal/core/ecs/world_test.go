package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_StartupRunsOnce(t *testing.T) {
	w := New(nil)
	runs := 0
	w.AddSystem(StageStartup, System0("init", func() { runs++ }))

	require.NoError(t, w.Startup())
	require.NoError(t, w.Startup())

	assert.Equal(t, 1, runs)
}

func TestWorld_StartupChecksPluginDependencies(t *testing.T) {
	w := New(nil)
	w.AddPlugin(Plugin{Title: "needs-missing", Deps: []string{"never-added"}})

	err := w.Startup()

	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: CodePluginDependencyMissing}))
}

func TestWorld_StartupDrainsEventsQueuedDuringStartupStage(t *testing.T) {
	w := New(nil)
	w.RegisterEvent("spawned", "")
	fired := false
	w.AddHook("spawned", func(w *World, payload any) { fired = true })
	w.AddSystem(StageStartup, System1("init", func(c *Commands) {
		c.Trigger("spawned", nil)
	}))

	require.NoError(t, w.Startup())

	assert.True(t, fired)
}

func TestWorld_FullTickOrder(t *testing.T) {
	w := New(nil)
	var order []string
	record := func(name string) System { return System0(name, func() { order = append(order, name) }) }

	w.AddSystem(StageStartup, record("startup"))
	w.AddSystem(StagePreUpdate, record("pre_update"))
	w.AddSystem(StageUpdate, record("update"))
	w.AddSystem(StagePostUpdate, record("post_update"))
	w.AddSystem(StagePreRender, record("pre_render"))
	w.AddSystem(StageRender, record("render"))
	w.AddSystem(StagePostRender, record("post_render"))
	w.AddSystem(StageShutdown, record("shutdown"))

	w.Startup()
	w.Update()
	w.Render()
	w.Shutdown()

	assert.Equal(t, []string{
		"startup",
		"pre_update", "update", "post_update",
		"pre_render", "render", "post_render",
		"shutdown",
	}, order)
}

func TestWorld_DeadEntityOperationsAreAbsorbed(t *testing.T) {
	w := New(nil)
	e := w.Spawn()
	w.Kill(e)

	assert.NotPanics(t, func() {
		Set(w, e, position{X: 1})
	})
	assert.False(t, Has[position](w, e))
	assert.False(t, w.Kill(e))
}
