package system

import (
	"math"

	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
)

// fallbackAim is used when the aim vector has no length
var fallbackAim = geom.Vec2{X: 0, Y: -1}

// CombatReport counts what happened during one combat update
type CombatReport struct {
	PlayerShots int
	SentryShots int
	Splits      int
	Hits        int
	Expired     int
}

// CombatSystem fires projectiles and runs their lifecycle
type CombatSystem struct {
	projectile *config.ProjectileConfig
	sentry     *config.SentryConfig
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(projectile *config.ProjectileConfig, sentry *config.SentryConfig) *CombatSystem {
	return &CombatSystem{
		projectile: projectile,
		sentry:     sentry,
	}
}

// Update fires player and sentry shots, then moves and resolves every projectile
func (s *CombatSystem) Update(w *entity.World, in Intent) CombatReport {
	var report CombatReport
	report.PlayerShots = s.firePlayer(w, in)
	report.SentryShots = s.updateSentries(w)
	s.updateProjectiles(w, &report)
	return report
}

// firePlayer spawns one body-owned projectile per fire trigger, aimed at the aim point
func (s *CombatSystem) firePlayer(w *entity.World, in Intent) int {
	if w.Body == nil {
		return 0
	}
	fires := in.Fires()
	if len(fires) == 0 {
		return 0
	}

	origin := w.Body.Center()
	vel := s.launchVelocity(origin, in.Aim())
	for _, v := range fires {
		w.SpawnProjectile(origin, vel, w.Body.ID, v)
	}
	return len(fires)
}

// updateSentries runs cooldowns and fires every sentry that can see the body
func (s *CombatSystem) updateSentries(w *entity.World) int {
	if w.Body == nil {
		return 0
	}

	target := w.Body.Center()
	shots := 0
	for _, sentry := range w.Sentries {
		if !sentry.Ready() {
			sentry.Tick()
			continue
		}
		if !s.LineOfSight(w, sentry.Pos, target) {
			continue
		}
		w.SpawnProjectile(sentry.Pos, s.launchVelocity(sentry.Pos, target), entity.SentryOwner, sentry.Variant)
		sentry.Cooldown = s.sentry.FireRate
		shots++
	}
	return shots
}

// LineOfSight samples the segment from -> to and reports whether no sample
// lies inside a platform
func (s *CombatSystem) LineOfSight(w *entity.World, from, to geom.Vec2) bool {
	points := geom.SamplePoints(from, to, s.sentry.SightSamples)
	for _, p := range w.Platforms {
		rect := p.Rect()
		for _, pt := range points {
			if rect.Contains(pt) {
				return false
			}
		}
	}
	return true
}

// launchVelocity aims from origin at target with the launch speed.
// A zero-length aim fires straight up.
func (s *CombatSystem) launchVelocity(origin, target geom.Vec2) geom.Vec2 {
	dir, ok := target.Sub(origin).Normalize()
	if !ok {
		dir = fallbackAim
	}
	return dir.Scale(s.projectile.LaunchSpeed)
}

// updateProjectiles integrates and resolves every projectile present at the
// start of the update. Split children join the world afterwards and first move
// on the next tick.
func (s *CombatSystem) updateProjectiles(w *entity.World, report *CombatReport) {
	var children []*entity.Projectile

	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		p := w.Projectiles[i]
		if !p.Active() {
			continue
		}

		integrate(&p.Pos, &p.Vel, p.Gravity)
		children = append(children, s.resolveProjectile(w, p, report)...)
	}

	live := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active() {
			live = append(live, p)
		}
	}
	// clear the tail so dropped projectiles can be collected
	for i := len(live); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = append(live, children...)
}

// resolveProjectile runs the platform, body and world checks for one projectile
// and returns any split children
func (s *CombatSystem) resolveProjectile(w *entity.World, p *entity.Projectile, report *CombatReport) []*entity.Projectile {
	collided := false
	for _, plat := range w.Platforms {
		pen, ok := geom.CirclePenetration(p.Pos, p.Radius, plat.Rect())
		if !ok {
			continue
		}
		collided = true
		if p.Splits() {
			return s.split(w, p, report)
		}
		if s.bounce(p, pen, report) {
			return nil
		}
	}
	// a platform contact ends this projectile's checks for the tick
	if collided {
		return nil
	}

	if body := w.Body; body != nil && p.Owner != body.ID {
		if pen, ok := geom.CirclePenetration(p.Pos, p.Radius, body.Rect()); ok {
			if p.Splits() {
				return s.split(w, p, report)
			}
			body.TakeDamage(s.projectile.ContactDamage)
			report.Hits++
			if s.bounce(p, pen, report) {
				return nil
			}
		}
	}

	if depth := p.Pos.Y + p.Radius - w.Height; depth > 0 {
		if p.Splits() {
			return s.split(w, p, report)
		}
		pen := geom.Penetration{Axis: geom.AxisTop, Depth: depth, Correction: geom.Vec2{Y: -depth}}
		if s.bounce(p, pen, report) {
			return nil
		}
	}

	if pen, ok := wallPenetration(p, w.Width); ok {
		if p.Splits() {
			return s.split(w, p, report)
		}
		s.bounce(p, pen, report)
	}
	return nil
}

// wallPenetration reports contact with the left or right canvas edge
func wallPenetration(p *entity.Projectile, width float64) (geom.Penetration, bool) {
	if depth := p.Radius - p.Pos.X; depth > 0 {
		return geom.Penetration{Axis: geom.AxisRight, Depth: depth, Correction: geom.Vec2{X: depth}}, true
	}
	if depth := p.Pos.X + p.Radius - width; depth > 0 {
		return geom.Penetration{Axis: geom.AxisLeft, Depth: depth, Correction: geom.Vec2{X: -depth}}, true
	}
	return geom.Penetration{}, false
}

// bounce counts a bounce and reflects the projectile off the contact.
// At the bounce cap the projectile is removed untouched and bounce returns true.
func (s *CombatSystem) bounce(p *entity.Projectile, pen geom.Penetration, report *CombatReport) (removed bool) {
	if p.RegisterBounce(s.projectile.BounceLimit) {
		report.Expired++
		return true
	}

	p.Pos = p.Pos.Add(pen.Correction)
	if pen.Axis.Vertical() {
		p.Vel.Y *= -s.projectile.BounceFactor
	} else {
		p.Vel.X *= -s.projectile.BounceFactor
	}
	p.Vel = p.Vel.Scale(s.projectile.Friction)

	if math.Abs(p.Vel.X) < s.projectile.RestSpeed {
		p.Vel.X = 0
	}
	if math.Abs(p.Vel.Y) < s.projectile.RestSpeed {
		p.Vel.Y = 0
	}
	return false
}

// split replaces p with SplitCount children of its child variant at its position
func (s *CombatSystem) split(w *entity.World, p *entity.Projectile, report *CombatReport) []*entity.Projectile {
	child := p.Variant.Spec().Child
	vels := p.SplitInto(s.projectile.LaunchSpeed)

	children := make([]*entity.Projectile, len(vels))
	for i, v := range vels {
		children[i] = entity.NewProjectile(w.NewEntityID(), p.Pos, v, p.Owner, child)
	}
	report.Splits++
	return children
}
