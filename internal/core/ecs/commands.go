package ecs

// Commands buffers structural mutations so a system body never observes a
// half-mutated world mid-query: spawns, kills, component add/remove, system
// and hook registration, and event triggers all queue here and apply in
// insertion order at the next schedule boundary (spec.md §4.6).
type Commands struct {
	world *World
	ops   []func(w *World)
}

func newCommands(w *World) *Commands {
	return &Commands{world: w}
}

// Spawn reserves a fresh entity id immediately so the returned handle can be
// used to chain AddComponent calls within the same buffer, but the entity
// stays invisible to queries until the buffer is applied.
func (c *Commands) Spawn() Entity {
	id, gen := c.world.entities.reserve()
	c.ops = append(c.ops, func(w *World) {
		w.entities.reviveAt(id, gen)
	})
	return Entity{id: id, gen: gen, world: c.world}
}

// Kill defers destruction of e, including cascading component removal.
func (c *Commands) Kill(e Entity) {
	c.ops = append(c.ops, func(w *World) {
		w.killNow(e)
	})
}

// AddComponent defers attaching value to e.
func AddComponent[T any](c *Commands, e Entity, value T) {
	c.ops = append(c.ops, func(w *World) {
		if !w.entities.isAlive(e) {
			w.logDeadEntity(e)
			return
		}
		addComponent[T](w.components, e.id, value)
	})
}

// RemoveComponent defers detaching T from e.
func RemoveComponent[T any](c *Commands, e Entity) {
	c.ops = append(c.ops, func(w *World) {
		if !w.entities.isAlive(e) {
			w.logDeadEntity(e)
			return
		}
		removeComponent[T](w.components, e.id)
	})
}

// AddSystemTo defers registering sys onto the named stage.
func (c *Commands) AddSystemTo(stage string, sys System) {
	c.ops = append(c.ops, func(w *World) {
		w.schedules.add(stage, sys)
	})
}

// AddHook defers subscribing fn to the named event.
func (c *Commands) AddHook(event string, fn Hook) {
	c.ops = append(c.ops, func(w *World) {
		w.events.addHook(event, fn)
	})
}

// Trigger defers enqueueing payload under the named event.
func (c *Commands) Trigger(event string, payload any) {
	c.ops = append(c.ops, func(w *World) {
		w.events.trigger(event, payload)
	})
}

// apply runs every buffered op in insertion order and clears the buffer.
func (c *Commands) apply() {
	ops := c.ops
	c.ops = nil
	for _, op := range ops {
		op(c.world)
	}
}
