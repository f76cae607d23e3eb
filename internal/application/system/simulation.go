package system

import (
	"log/slog"

	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
)

// Simulation advances a world by one fixed tick.
// Order: player intent, platforms and body, shots, projectiles.
type Simulation struct {
	tuning  *config.TuningConfig
	player  *PlayerSystem
	physics *PhysicsSystem
	combat  *CombatSystem
	logger  *slog.Logger
}

// SimulationOption configures a Simulation
type SimulationOption func(*Simulation)

// WithLogger logs shots and splits at debug level
func WithLogger(logger *slog.Logger) SimulationOption {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// NewSimulation wires the systems from the tuning config
func NewSimulation(tuning *config.TuningConfig, opts ...SimulationOption) *Simulation {
	s := &Simulation{
		tuning:  tuning,
		player:  NewPlayerSystem(&tuning.Body),
		physics: NewPhysicsSystem(&tuning.Body),
		combat:  NewCombatSystem(&tuning.Projectile, &tuning.Sentry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tuning returns the tuning the simulation was built with
func (s *Simulation) Tuning() *config.TuningConfig {
	return s.tuning
}

// Step advances w in place by one tick
func (s *Simulation) Step(w *entity.World, in Intent) CombatReport {
	if w.Body != nil {
		s.player.Update(w.Body, in)
	}
	s.physics.Update(w)
	report := s.combat.Update(w, in)
	w.Tick++

	if s.logger != nil && (report.SentryShots > 0 || report.Splits > 0 || report.PlayerShots > 0) {
		s.logger.Debug("combat",
			"tick", w.Tick,
			"playerShots", report.PlayerShots,
			"sentryShots", report.SentryShots,
			"splits", report.Splits,
			"projectiles", w.CountProjectiles(),
		)
	}
	return report
}

// Advance returns the world one tick after w; w itself is left untouched
func (s *Simulation) Advance(w *entity.World, in Intent) *entity.World {
	next := w.Clone()
	s.Step(next, in)
	return next
}

// Snapshot returns the render snapshot of w
func (s *Simulation) Snapshot(w *entity.World) entity.Snapshot {
	return w.Snapshot(s.tuning.Projectile.BounceLimit)
}
