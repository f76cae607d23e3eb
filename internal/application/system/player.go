package system

import (
	"math"

	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
)

// PlayerSystem turns an Intent into body velocity and pose
type PlayerSystem struct {
	config *config.BodyConfig
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.BodyConfig) *PlayerSystem {
	return &PlayerSystem{config: cfg}
}

// Update applies one tick of intent to the body
func (s *PlayerSystem) Update(body *entity.Body, in Intent) {
	s.handleMovement(body, in)
	s.handleJump(body, in)
	s.handleSlide(body)

	// Height only; the feet line does not move
	body.SetCrouch(in.Down)
}

// handleMovement sets horizontal velocity unless a slide is carrying the body
func (s *PlayerSystem) handleMovement(body *entity.Body, in Intent) {
	if body.Sliding {
		return
	}

	body.Vel.X = in.Horizontal() * s.config.MoveSpeed

	if in.Down && body.Vel.X != 0 {
		body.Sliding = true
		body.Vel.X *= s.config.SlideBoost
	}
}

// handleJump launches a grounded body and cancels any slide
func (s *PlayerSystem) handleJump(body *entity.Body, in Intent) {
	if !in.Jump || !body.Grounded {
		return
	}
	body.Vel.Y = s.config.JumpVelocity
	body.Grounded = false
	body.Sliding = false
}

// handleSlide decays slide speed and ends the slide below the stop speed
func (s *PlayerSystem) handleSlide(body *entity.Body) {
	if !body.Sliding {
		return
	}
	body.Vel.X *= 1 - s.config.SlideFriction
	if math.Abs(body.Vel.X) < s.config.SlideStopSpeed {
		body.Sliding = false
	}
}
