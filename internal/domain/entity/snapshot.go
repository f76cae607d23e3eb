package entity

import "github.com/younwookim/splitshot/internal/domain/geom"

// BodyView is the drawable pose of the body
type BodyView struct {
	Rect      geom.Rect
	Health    int
	MaxHealth int
	Crouching bool
	Sliding   bool
}

// ProjectileView is the drawable state of a projectile
type ProjectileView struct {
	Pos     geom.Vec2
	Radius  float64
	Variant Variant
	Alpha   float64
}

// SentryView is the drawable state of a sentry
type SentryView struct {
	Pos     geom.Vec2
	Variant Variant
}

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	Tick        uint64
	Width       float64
	Height      float64
	Body        BodyView
	Platforms   []geom.Rect
	Projectiles []ProjectileView
	Sentries    []SentryView
}

// Snapshot copies the drawable state of the world.
// bounceLimit drives the projectile alpha.
func (w *World) Snapshot(bounceLimit int) Snapshot {
	snap := Snapshot{
		Tick:        w.Tick,
		Width:       w.Width,
		Height:      w.Height,
		Platforms:   w.PlatformRects(),
		Projectiles: make([]ProjectileView, 0, len(w.Projectiles)),
		Sentries:    make([]SentryView, 0, len(w.Sentries)),
	}
	if w.Body != nil {
		snap.Body = BodyView{
			Rect:      w.Body.Rect(),
			Health:    w.Body.Health,
			MaxHealth: w.Body.MaxHealth,
			Crouching: w.Body.Crouching,
			Sliding:   w.Body.Sliding,
		}
	}
	for _, p := range w.Projectiles {
		if !p.Active() {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Pos:     p.Pos,
			Radius:  p.Radius,
			Variant: p.Variant,
			Alpha:   p.Alpha(bounceLimit),
		})
	}
	for _, s := range w.Sentries {
		snap.Sentries = append(snap.Sentries, SentryView{Pos: s.Pos, Variant: s.Variant})
	}
	return snap
}
