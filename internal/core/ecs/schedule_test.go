package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_SystemsRunInRegistrationOrder(t *testing.T) {
	w := New(nil)
	var order []string
	w.AddSystem(StageUpdate, System0("first", func() { order = append(order, "first") }))
	w.AddSystem(StageUpdate, System0("second", func() { order = append(order, "second") }))

	w.Update()

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSchedule_PanicAbortsStageButNotFollowingStages(t *testing.T) {
	w := New(nil)
	ranAfterPanic := false
	ranNextStage := false

	w.AddSystem(StageUpdate, System0("boom", func() { panic("system failure") }))
	w.AddSystem(StageUpdate, System0("after", func() { ranAfterPanic = true }))
	w.AddSystem(StagePostUpdate, System0("post", func() { ranNextStage = true }))

	assert.NotPanics(t, func() { w.Update() })
	assert.False(t, ranAfterPanic, "systems after a panic in the same stage must not run")
	assert.True(t, ranNextStage, "a later stage still runs after a prior stage's panic")
}

func TestSchedule_TickDrainsEventsAfterPostUpdate(t *testing.T) {
	w := New(nil)
	w.RegisterEvent("tick_done", "")
	fired := false
	w.AddHook("tick_done", func(w *World, payload any) { fired = true })
	w.AddSystem(StagePostUpdate, System1("announce", func(c *Commands) {
		c.Trigger("tick_done", nil)
	}))

	w.Update()

	assert.True(t, fired)
}
