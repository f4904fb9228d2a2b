package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlugin_AddPluginIsIdempotent(t *testing.T) {
	w := New(nil)
	calls := 0
	p := Plugin{Title: "physics", Plug: func(w *World) { calls++ }}

	w.AddPlugin(p)
	w.AddPlugin(p)

	assert.Equal(t, 1, calls)
}

func TestPlugin_CheckDependenciesReportsMissing(t *testing.T) {
	w := New(nil)
	w.AddPlugin(Plugin{Title: "render", Deps: []string{"window"}})

	err := w.CheckDependencies()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: CodePluginDependencyMissing}))
}

func TestPlugin_CheckDependenciesPassesWhenSatisfied(t *testing.T) {
	w := New(nil)
	w.AddPlugin(Plugin{Title: "window"})
	w.AddPlugin(Plugin{Title: "render", Deps: []string{"window"}})

	assert.NoError(t, w.CheckDependencies())
}

func TestBundle_AddRegistersEveryPlugin(t *testing.T) {
	w := New(nil)
	var added []string
	b := Bundle{
		Title: "physics_bundle",
		Plugins: []Plugin{
			{Title: "gravity", Plug: func(w *World) { added = append(added, "gravity") }},
			{Title: "collisions", Plug: func(w *World) { added = append(added, "collisions") }},
		},
	}

	b.Add(w)

	assert.Equal(t, []string{"gravity", "collisions"}, added)
}
