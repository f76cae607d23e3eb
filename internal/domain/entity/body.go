package entity

import "github.com/younwookim/splitshot/internal/domain/geom"

// Body represents the controllable body.
// Pos is the top-left corner of the current collision box.
type Body struct {
	ID     EntityID
	Pos    geom.Vec2
	Vel    geom.Vec2
	Width  float64
	Height float64

	StandHeight  float64
	CrouchHeight float64

	Grounded  bool
	Sliding   bool
	Crouching bool

	Health    int
	MaxHealth int
}

// NewBody creates a standing body at pixel position (x, y) with full health
func NewBody(x, y, width, standHeight, crouchHeight float64, maxHealth int) *Body {
	return &Body{
		ID:           BodyID,
		Pos:          geom.Vec2{X: x, Y: y},
		Width:        width,
		Height:       standHeight,
		StandHeight:  standHeight,
		CrouchHeight: crouchHeight,
		Health:       maxHealth,
		MaxHealth:    maxHealth,
	}
}

// Rect returns the collision box at the current height
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Width, H: b.Height}
}

// Center returns the center of the current collision box
func (b *Body) Center() geom.Vec2 {
	return b.Rect().Center()
}

// SetCrouch switches between crouch and stand height.
// Only the height changes; the feet line stays where it is.
func (b *Body) SetCrouch(crouch bool) {
	target := b.StandHeight
	if crouch {
		target = b.CrouchHeight
	}
	b.Crouching = crouch
	if target == b.Height {
		return
	}
	b.Pos.Y += b.Height - target
	b.Height = target
}

// TakeDamage subtracts damage from health, clamped at zero.
// Returns true if the body is out of health.
func (b *Body) TakeDamage(damage int) bool {
	b.Health -= damage
	if b.Health < 0 {
		b.Health = 0
	}
	return b.Health == 0
}

// IsAlive returns true if health > 0
func (b *Body) IsAlive() bool {
	return b.Health > 0
}

// BodyState is the public view of a body, also used as the relay blob
type BodyState struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Grounded  bool    `json:"onGround"`
	Sliding   bool    `json:"sliding"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
}

// State returns the public fields of the body
func (b *Body) State() BodyState {
	return BodyState{
		X:         b.Pos.X,
		Y:         b.Pos.Y,
		Width:     b.Width,
		Height:    b.Height,
		VX:        b.Vel.X,
		VY:        b.Vel.Y,
		Grounded:  b.Grounded,
		Sliding:   b.Sliding,
		Health:    b.Health,
		MaxHealth: b.MaxHealth,
	}
}
