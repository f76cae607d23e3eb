package system

import (
	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
)

// PhysicsSystem moves platforms and the body and resolves body collisions
type PhysicsSystem struct {
	config *config.BodyConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.BodyConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update advances platforms, integrates the body and resolves its contacts
func (s *PhysicsSystem) Update(w *entity.World) {
	s.advancePlatforms(w)

	if w.Body == nil {
		return
	}
	integrate(&w.Body.Pos, &w.Body.Vel, s.config.Gravity)
	s.resolvePlatforms(w)
	s.resolveBounds(w)
}

func (s *PhysicsSystem) advancePlatforms(w *entity.World) {
	for _, p := range w.Platforms {
		p.Advance()
	}
}

// resolvePlatforms pushes the body out of every overlapping platform along the
// axis of least penetration. Landing on a moving platform carries the body with it.
func (s *PhysicsSystem) resolvePlatforms(w *entity.World) {
	body := w.Body
	body.Grounded = false

	for _, p := range w.Platforms {
		rect := p.Rect()
		if !geom.Overlaps(body.Rect(), rect) {
			continue
		}

		pen := geom.PenetrationAxis(body.Rect(), rect)
		body.Pos = body.Pos.Add(pen.Correction)

		switch pen.Axis {
		case geom.AxisTop:
			body.Vel.Y = 0
			body.Grounded = true
			body.Pos.X += p.VX
		case geom.AxisBottom:
			body.Vel.Y = 0
		case geom.AxisLeft, geom.AxisRight:
			body.Vel.X = 0
		}
	}
}

// resolveBounds keeps the body above the floor and between the walls
func (s *PhysicsSystem) resolveBounds(w *entity.World) {
	body := w.Body

	if body.Rect().Bottom() > w.Height {
		body.Pos.Y = w.Height - body.Height
		body.Vel.Y = 0
		body.Grounded = true
		body.Sliding = false
	}
	if body.Pos.X < 0 {
		body.Pos.X = 0
	}
	if body.Rect().Right() > w.Width {
		body.Pos.X = w.Width - body.Width
	}
}

// integrate applies one tick of gravity and velocity
func integrate(pos, vel *geom.Vec2, gravity float64) {
	vel.Y += gravity
	*pos = pos.Add(*vel)
}
