package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/splitshot/internal/domain/entity"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks tuning values that would break the simulation
func (c *TuningConfig) Validate() error {
	if c.Display.TPS <= 0 {
		return invalid("display.tps must be positive")
	}
	if c.Display.Scale <= 0 {
		return invalid("display.scale must be positive")
	}

	b := c.Body
	if b.Width <= 0 || b.StandHeight <= 0 {
		return invalid("body size must be positive")
	}
	if b.CrouchHeight <= 0 || b.CrouchHeight > b.StandHeight {
		return invalid("body.crouchHeight must be in (0, standHeight]")
	}
	if b.MaxHealth <= 0 {
		return invalid("body.maxHealth must be positive")
	}
	if b.SlideFriction < 0 || b.SlideFriction >= 1 {
		return invalid("body.slideFriction must be in [0, 1)")
	}

	p := c.Projectile
	if p.LaunchSpeed <= 0 {
		return invalid("projectile.launchSpeed must be positive")
	}
	if p.BounceLimit < 1 {
		return invalid("projectile.bounceLimit must be at least 1")
	}
	if p.BounceFactor < 0 || p.BounceFactor > 1 {
		return invalid("projectile.bounceFactor must be in [0, 1]")
	}
	if p.Friction < 0 || p.Friction > 1 {
		return invalid("projectile.friction must be in [0, 1]")
	}

	if c.Sentry.FireRate < 1 {
		return invalid("sentry.fireRate must be at least 1")
	}
	if c.Sentry.SightSamples < 2 {
		return invalid("sentry.sightSamples must be at least 2")
	}
	return nil
}

// Validate checks the arena layout
func (c *ArenaConfig) Validate() error {
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		return invalid("arena %s: size must be positive", c.ID)
	}

	for i, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return invalid("arena %s: platform %d has non-positive size", c.ID, i)
		}
		if p.VX == 0 {
			continue
		}
		if p.Bounds == nil {
			return invalid("arena %s: moving platform %d has no bounds", c.ID, i)
		}
		if p.X < p.Bounds.MinX || p.X+p.Width > p.Bounds.MaxX {
			return invalid("arena %s: platform %d starts outside its bounds", c.ID, i)
		}
	}

	for i, s := range c.Sentries {
		if _, err := entity.ParseVariant(s.Variant); err != nil {
			return invalid("arena %s: sentry %d: %v", c.ID, i, err)
		}
		if s.Cooldown < 0 {
			return invalid("arena %s: sentry %d has negative cooldown", c.ID, i)
		}
	}
	return nil
}
