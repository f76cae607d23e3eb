package entity

import "github.com/younwookim/splitshot/internal/domain/geom"

// World is the complete simulation state advanced by one tick at a time.
// Width and Height are the canvas bounds: walls at 0 and Width, floor at Height.
type World struct {
	Width  float64
	Height float64

	Body        *Body
	Platforms   []*Platform
	Projectiles []*Projectile
	Sentries    []*Sentry

	Tick   uint64
	nextID EntityID
}

// NewWorld creates an empty world with the given canvas size and body
func NewWorld(width, height float64, body *Body) *World {
	return &World{
		Width:       width,
		Height:      height,
		Body:        body,
		Platforms:   make([]*Platform, 0, 8),
		Projectiles: make([]*Projectile, 0, 64),
		Sentries:    make([]*Sentry, 0, 4),
		nextID:      firstDynamicID,
	}
}

// NewEntityID returns a new unique id (never recycled)
func (w *World) NewEntityID() EntityID {
	if w.nextID < firstDynamicID {
		w.nextID = firstDynamicID
	}
	id := w.nextID
	w.nextID++
	return id
}

// AddPlatform appends a platform
func (w *World) AddPlatform(p *Platform) {
	w.Platforms = append(w.Platforms, p)
}

// AddSentry creates a sentry at pos firing the given variant
func (w *World) AddSentry(pos geom.Vec2, variant Variant, cooldown int) *Sentry {
	s := &Sentry{ID: w.NewEntityID(), Pos: pos, Variant: variant, Cooldown: cooldown}
	w.Sentries = append(w.Sentries, s)
	return s
}

// SpawnProjectile creates a flying projectile and appends it
func (w *World) SpawnProjectile(pos, vel geom.Vec2, owner EntityID, variant Variant) *Projectile {
	p := NewProjectile(w.NewEntityID(), pos, vel, owner, variant)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// PlatformRects returns the current platform rectangles
func (w *World) PlatformRects() []geom.Rect {
	rects := make([]geom.Rect, len(w.Platforms))
	for i, p := range w.Platforms {
		rects[i] = p.Rect()
	}
	return rects
}

// CountProjectiles returns the number of live projectiles
func (w *World) CountProjectiles() int {
	return len(w.Projectiles)
}

// Clone returns a deep copy that shares no entities with w
func (w *World) Clone() *World {
	c := &World{
		Width:       w.Width,
		Height:      w.Height,
		Platforms:   make([]*Platform, len(w.Platforms)),
		Projectiles: make([]*Projectile, len(w.Projectiles)),
		Sentries:    make([]*Sentry, len(w.Sentries)),
		Tick:        w.Tick,
		nextID:      w.nextID,
	}
	if w.Body != nil {
		body := *w.Body
		c.Body = &body
	}
	for i, p := range w.Platforms {
		cp := *p
		c.Platforms[i] = &cp
	}
	for i, p := range w.Projectiles {
		cp := *p
		c.Projectiles[i] = &cp
	}
	for i, s := range w.Sentries {
		cs := *s
		c.Sentries[i] = &cs
	}
	return c
}
