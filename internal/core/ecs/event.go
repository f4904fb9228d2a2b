package ecs

import (
	"github.com/sirupsen/logrus"
)

// Hook is a subscriber callback invoked once per drained event of the name
// it was registered against. Hooks run in registration order.
type Hook func(w *World, payload any)

type eventManager struct {
	log   *logrus.Entry
	known map[string]string // name -> description
	hooks map[string][]Hook
	queue []queuedEvent
}

type queuedEvent struct {
	name    string
	payload any
}

func newEventManager(log *logrus.Entry) *eventManager {
	return &eventManager{
		log:   log,
		known: make(map[string]string),
		hooks: make(map[string][]Hook),
	}
}

// register declares name as a known event with description, per spec.md
// §4.5 / §3's Event record. Idempotent: re-registering an already-known
// name is a benign, logged no-op rather than overwriting its description.
func (m *eventManager) register(name, description string) {
	if _, ok := m.known[name]; ok {
		m.log.WithField("event", name).Warn("event already registered, ignoring")
		return
	}
	m.known[name] = description
}

// addHook subscribes fn to name, registering name implicitly (with an empty
// description) if needed.
func (m *eventManager) addHook(name string, fn Hook) {
	if _, ok := m.known[name]; !ok {
		m.known[name] = ""
	}
	m.hooks[name] = append(m.hooks[name], fn)
}

// trigger enqueues payload for delivery at the next drain point. Triggering
// an unregistered name is a benign, absorbed failure: logged and dropped
// rather than returned as an error (spec.md §4.5 edge cases).
func (m *eventManager) trigger(name string, payload any) {
	if _, ok := m.known[name]; !ok {
		m.log.WithField("event", name).Warn("trigger on unregistered event name, dropping")
		return
	}
	m.queue = append(m.queue, queuedEvent{name: name, payload: payload})
}

// drain delivers every queued event to its hooks in FIFO order until the
// queue is empty, including events triggered by hooks during the drain.
// Hooks for a given name run in subscription order.
func (m *eventManager) drain(w *World) {
	for len(m.queue) > 0 {
		pending := m.queue
		m.queue = nil
		for _, ev := range pending {
			for _, h := range m.hooks[ev.name] {
				h(w, ev.payload)
			}
		}
	}
}
