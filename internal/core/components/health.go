package components

// Health tracks an entity's hit points and passive regeneration.
type Health struct {
	Current          int
	Max              int
	Shield           int
	Invincible       bool
	RegenerationRate float64
}

// Alive reports whether the entity still has hit points left.
func (h Health) Alive() bool { return h.Current > 0 }
