package ecs

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

// World owns every subsystem and is the single facade application code
// drives: spawn/kill entities, attach components and resources, register
// plugins and systems, and step schedules (spec.md §4.10).
type World struct {
	log *logrus.Entry

	entities   *entityManager
	components *componentStore
	resources  *resourceStore
	events     *eventManager
	schedules  *scheduleRunner
	commands   *Commands

	plugins     map[string]bool
	pluginOrder []Plugin

	startupRun bool
}

// New constructs an empty World. log may be nil, in which case a
// standalone logrus logger is used.
func New(log *logrus.Logger) *World {
	if log == nil {
		log = logrus.New()
	}
	w := &World{
		log:     log.WithField("component", "ecs.World"),
		plugins: make(map[string]bool),
	}
	w.entities = newEntityManager(w)
	w.components = newComponentStore()
	w.resources = newResourceStore()
	w.events = newEventManager(w.log)
	w.schedules = newScheduleRunner()
	w.commands = newCommands(w)
	return w
}

// ---- entities ----

// Spawn creates a live entity immediately, outside of any command buffer.
func (w *World) Spawn() Entity { return w.entities.spawn() }

// IsAlive reports whether e still names a live entity in this World.
func (w *World) IsAlive(e Entity) bool { return w.entities.isAlive(e) }

// Kill destroys e immediately, cascading component removal.
func (w *World) Kill(e Entity) bool { return w.killNow(e) }

func (w *World) killNow(e Entity) bool {
	if !w.entities.isAlive(e) {
		w.logDeadEntity(e)
		return false
	}
	w.components.removeAll(e.id)
	return w.entities.kill(e)
}

func (w *World) logDeadEntity(e Entity) {
	w.log.WithField("entity", e.String()).Warn("operation on dead or stale entity handle, ignoring")
}

// LivingEntities returns every currently-alive handle.
func (w *World) LivingEntities() []Entity { return w.entities.living() }

// EntityCount reports the number of currently-alive entities.
func (w *World) EntityCount() int { return w.entities.count() }

// ---- components ----

// Set attaches or overwrites component T on e.
func Set[T any](w *World, e Entity, value T) {
	if !w.entities.isAlive(e) {
		w.logDeadEntity(e)
		return
	}
	addComponent[T](w.components, e.id, value)
}

// Get returns a pointer to e's component T, or a ComponentNotFound error
// (also for a dead or stale handle).
func Get[T any](w *World, e Entity) (*T, error) {
	var ptr *T
	ok := w.entities.isAlive(e)
	if ok {
		ptr, ok = getComponent[T](w.components, e.id)
	}
	if !ok {
		return nil, errComponentNotFound(e, reflect.TypeFor[T]().String())
	}
	return ptr, nil
}

// RegisterComponent declares T's column up front, idempotently (spec.md
// §4.2 register<T>()). Columns are otherwise created implicitly on first
// Set[T], so calling this is optional; it exists for callers that want a
// component type to show up (e.g. in diagnostics) before anything is ever
// attached.
func RegisterComponent[T any](w *World) { registerColumn[T](w.components) }

// Has reports whether e currently carries component T.
func Has[T any](w *World, e Entity) bool {
	return w.entities.isAlive(e) && hasComponent[T](w.components, e.id)
}

// Remove detaches component T from e, reporting whether it was present.
func Remove[T any](w *World, e Entity) bool {
	return w.entities.isAlive(e) && removeComponent[T](w.components, e.id)
}

// ---- resources ----

// SetResource installs or replaces the singleton value of type T.
func SetResource[T any](w *World, value T) { setResource[T](w.resources, value) }

// GetResource returns a read-only copy of the resource of type T.
func GetResource[T any](w *World) (T, error) {
	v, ok := getResource[T](w.resources)
	if !ok {
		return v, errResourceNotFound(reflect.TypeFor[T]().String())
	}
	return v, nil
}

// HasResource reports whether a resource of type T is registered.
func HasResource[T any](w *World) bool { return hasResource[T](w.resources) }

// ---- events ----

// RegisterEvent declares name as a known event, idempotently, recording
// description for introspection (spec.md §4.5, §3 Event record).
func (w *World) RegisterEvent(name, description string) {
	w.events.register(name, description)
}

// AddHook subscribes fn to name immediately (outside of any command buffer).
func (w *World) AddHook(name string, fn Hook) { w.events.addHook(name, fn) }

// Trigger enqueues payload under name immediately.
func (w *World) Trigger(name string, payload any) { w.events.trigger(name, payload) }

// ---- commands ----

// CommandBuffer returns the World's shared deferred command buffer.
func (w *World) CommandBuffer() *Commands { return w.commands }

// ---- systems & schedules ----

// AddSystem registers sys onto the named stage immediately.
func (w *World) AddSystem(stage string, sys System) { w.schedules.add(stage, sys) }

// ---- lifecycle ----

// Startup checks every added plugin's dependencies, runs every system
// registered on the Startup stage, then drains commands and events, per
// spec.md §4.10. A second call is a no-op. Returns a PluginDependencyMissing
// error without running anything if a dependency is unmet.
func (w *World) Startup() error {
	if w.startupRun {
		return nil
	}
	if err := w.CheckDependencies(); err != nil {
		return err
	}
	w.startupRun = true
	w.runStage(StageStartup)
	w.commands.apply()
	w.events.drain(w)
	return nil
}

// Update runs PreUpdate, Update and PostUpdate, draining commands at every
// stage boundary and the event queue after PostUpdate (spec.md §4.10).
func (w *World) Update() {
	for _, stage := range []string{StagePreUpdate, StageUpdate, StagePostUpdate} {
		w.runStage(stage)
		w.commands.apply()
	}
	w.events.drain(w)
}

// Render runs PreRender, Render and PostRender, draining commands at every
// stage boundary and the event queue after PostRender.
func (w *World) Render() {
	for _, stage := range []string{StagePreRender, StageRender, StagePostRender} {
		w.runStage(stage)
		w.commands.apply()
	}
	w.events.drain(w)
}

// Shutdown runs every system registered on the Shutdown stage, once.
func (w *World) Shutdown() {
	w.runStage(StageShutdown)
	w.commands.apply()
}

// runStage executes a single named stage, recovering a panicking system so
// one broken system aborts only its own stage rather than the whole tick.
func (w *World) runStage(stage string) {
	defer func() {
		if r := recover(); r != nil {
			w.log.WithField("stage", stage).WithField("panic", r).Error("system panicked, aborting stage")
		}
	}()
	w.schedules.run(w, stage)
}
