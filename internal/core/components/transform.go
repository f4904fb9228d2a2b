// Package components holds the plain-data component types a demo World
// attaches to entities. None of them carry behavior; systems in
// internal/core/systems operate on them through ecs.Query claims.
package components

// Vec2 is a 2D vector shared by every spatial component.
type Vec2 struct {
	X, Y float64
}

// Position is an entity's world-space location.
type Position struct {
	Vec2
}

// Velocity is an entity's linear speed, consumed by the movement system.
type Velocity struct {
	Vec2
}
