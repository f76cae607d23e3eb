package entity

import "github.com/younwookim/splitshot/internal/domain/geom"

// Sentry is a stationary shooter.
// Cooldown counts ticks until the sentry may try to fire again.
type Sentry struct {
	ID       EntityID
	Pos      geom.Vec2
	Cooldown int
	Variant  Variant
}

// Ready reports whether the cooldown has run out
func (s *Sentry) Ready() bool {
	return s.Cooldown <= 0
}

// Tick decrements a positive cooldown by one
func (s *Sentry) Tick() {
	if s.Cooldown > 0 {
		s.Cooldown--
	}
}
