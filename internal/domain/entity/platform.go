package entity

import "github.com/younwookim/splitshot/internal/domain/geom"

// Platform is a solid rectangle that may oscillate horizontally.
// When Bounded, the platform's extent [X, X+Width] stays inside [MinX, MaxX].
type Platform struct {
	Pos    geom.Vec2
	Width  float64
	Height float64
	VX     float64

	Bounded    bool
	MinX, MaxX float64
}

// Rect returns the platform rectangle
func (p *Platform) Rect() geom.Rect {
	return geom.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Advance moves the platform one tick along its oscillation.
// Leaving the bounds reflects the platform back onto the bound and flips
// the sign of VX; the speed itself is never changed.
func (p *Platform) Advance() {
	if p.VX == 0 {
		return
	}
	p.Pos.X += p.VX
	if !p.Bounded {
		return
	}

	if p.Pos.X < p.MinX {
		p.Pos.X = p.MinX
		p.VX = -p.VX
	} else if p.Pos.X+p.Width > p.MaxX {
		p.Pos.X = p.MaxX - p.Width
		p.VX = -p.VX
	}
}
