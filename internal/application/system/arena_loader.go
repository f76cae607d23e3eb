package system

import (
	"fmt"

	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
)

// LoadArena converts an ArenaConfig into a fresh World with a standing body at the spawn point
func LoadArena(cfg *config.ArenaConfig, body *config.BodyConfig) (*entity.World, error) {
	b := entity.NewBody(
		cfg.BodySpawn.X, cfg.BodySpawn.Y,
		body.Width, body.StandHeight, body.CrouchHeight,
		body.MaxHealth,
	)
	w := entity.NewWorld(cfg.Size.Width, cfg.Size.Height, b)

	for _, p := range cfg.Platforms {
		platform := &entity.Platform{
			Pos:    geom.Vec2{X: p.X, Y: p.Y},
			Width:  p.Width,
			Height: p.Height,
			VX:     p.VX,
		}
		if p.Bounds != nil {
			platform.Bounded = true
			platform.MinX = p.Bounds.MinX
			platform.MaxX = p.Bounds.MaxX
		}
		w.AddPlatform(platform)
	}

	for i, s := range cfg.Sentries {
		variant, err := entity.ParseVariant(s.Variant)
		if err != nil {
			return nil, fmt.Errorf("failed to load sentry %d: %w", i, err)
		}
		w.AddSentry(geom.Vec2{X: s.X, Y: s.Y}, variant, s.Cooldown)
	}

	return w, nil
}
