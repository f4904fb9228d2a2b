package ecs

// Plugin is a named, self-contained unit of registration: resources,
// components, systems, events and hooks it wires into a World when added.
// Title is the identity used for idempotence and dependency checks
// (spec.md §4.9).
type Plugin struct {
	Title       string
	Description string
	Deps        []string
	Plug        func(w *World)
}

// Bundle groups several plugins so callers can add a themed set (say,
// "physics") in one call.
type Bundle struct {
	Title   string
	Plugins []Plugin
}

// Add registers every plugin in the bundle onto w, in order.
func (b Bundle) Add(w *World) {
	for _, p := range b.Plugins {
		w.AddPlugin(p)
	}
}

// AddPlugin registers p exactly once per title; a second AddPlugin with the
// same title logs a warning and does nothing else (spec.md §4.9's
// idempotent registration).
func (w *World) AddPlugin(p Plugin) {
	if w.plugins[p.Title] {
		w.log.WithField("plugin", p.Title).Warn("plugin already registered, skipping")
		return
	}
	w.plugins[p.Title] = true
	w.pluginOrder = append(w.pluginOrder, p)
	if p.Plug != nil {
		p.Plug(w)
	}
}

// CheckDependencies verifies every added plugin's Deps are themselves
// registered, returning a PluginDependencyMissing error naming the first
// violation found. Startup runs this check itself before the Startup stage.
func (w *World) CheckDependencies() error {
	for _, p := range w.pluginOrder {
		var missing []string
		for _, dep := range p.Deps {
			if !w.plugins[dep] {
				missing = append(missing, dep)
			}
		}
		if len(missing) > 0 {
			return errPluginDependencyMissing(p.Title, missing)
		}
	}
	return nil
}
