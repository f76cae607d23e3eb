package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
)

func createTestCombat() *CombatSystem {
	tuning := createTestTuning()
	return NewCombatSystem(&tuning.Projectile, &tuning.Sentry)
}

// createCombatWorld has the body standing at (50, 340) and one ledge at (400, 250)
func createCombatWorld() *entity.World {
	body := entity.NewBody(50, 340, 20, 40, 20, 100)
	ledge := &entity.Platform{Pos: geom.Vec2{X: 400, Y: 250}, Width: 120, Height: 10}
	return createTestWorld(body, ledge)
}

func spawn(w *entity.World, x, y, vx, vy float64, owner entity.EntityID, v entity.Variant) *entity.Projectile {
	return w.SpawnProjectile(geom.Vec2{X: x, Y: y}, geom.Vec2{X: vx, Y: vy}, owner, v)
}

func TestCombatSystem_BounceOffPlatform(t *testing.T) {
	sys := createTestCombat()
	w := createCombatWorld()
	p := spawn(w, 450, 240, 1, 5, entity.SentryOwner, entity.VariantNormal)

	sys.Update(w, Intent{})

	require.Equal(t, 1, w.CountProjectiles())
	assert.Equal(t, 1, p.Bounces)
	assert.InDelta(t, 245.0, p.Pos.Y, 1e-9)
	assert.InDelta(t, 0.9, p.Vel.X, 1e-9)
	assert.InDelta(t, -5.2*0.7*0.9, p.Vel.Y, 1e-9)
}

func TestCombatSystem_BounceCapRemovesWithoutMutation(t *testing.T) {
	sys := createTestCombat()
	w := createCombatWorld()
	p := spawn(w, 450, 240, 1, 5, entity.SentryOwner, entity.VariantNormal)
	p.Bounces = 4

	report := sys.Update(w, Intent{})

	assert.Equal(t, 0, w.CountProjectiles())
	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, 5, p.Bounces)
	assert.Equal(t, entity.Removed, p.State)
	// integrated, never reflected
	assert.InDelta(t, 245.2, p.Pos.Y, 1e-9)
	assert.InDelta(t, 1.0, p.Vel.X, 1e-9)
	assert.InDelta(t, 5.2, p.Vel.Y, 1e-9)
}

func TestCombatSystem_SplitOnPlatform(t *testing.T) {
	tests := []struct {
		name      string
		variant   entity.Variant
		wantChild entity.Variant
	}{
		{"split makes normals", entity.VariantSplit, entity.VariantNormal},
		{"splitSquared makes splits", entity.VariantSplitSquared, entity.VariantSplit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestCombat()
			w := createCombatWorld()
			parent := spawn(w, 450, 240, 1, 5, entity.SentryOwner, tt.variant)

			report := sys.Update(w, Intent{})

			assert.Equal(t, 1, report.Splits)
			assert.False(t, parent.Active())
			require.Equal(t, entity.SplitCount, w.CountProjectiles())

			step := 2 * math.Pi / entity.SplitCount
			for i, c := range w.Projectiles {
				assert.Equal(t, tt.wantChild, c.Variant)
				assert.Equal(t, entity.SentryOwner, c.Owner)
				assert.Equal(t, 0, c.Bounces)
				assert.Equal(t, parent.Pos, c.Pos, "children start at the parent and move next tick")
				assert.InDelta(t, 8.0, c.Vel.Len(), 1e-9)
				assert.InDelta(t, math.Cos(float64(i)*step)*8, c.Vel.X, 1e-9)
				assert.InDelta(t, math.Sin(float64(i)*step)*8, c.Vel.Y, 1e-9)
			}
		})
	}
}

func TestCombatSystem_BodyContact(t *testing.T) {
	t.Run("own projectile is ignored", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		p := spawn(w, 60, 350, 0, 0, entity.BodyID, entity.VariantNormal)

		sys.Update(w, Intent{})

		assert.Equal(t, 100, w.Body.Health)
		assert.Equal(t, 0, p.Bounces)
		assert.True(t, p.Active())
	})

	t.Run("sentry projectile damages and bounces", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		p := spawn(w, 60, 350, 0, 0, entity.SentryOwner, entity.VariantNormal)

		report := sys.Update(w, Intent{})

		assert.Equal(t, 95, w.Body.Health)
		assert.Equal(t, 1, report.Hits)
		assert.Equal(t, 1, p.Bounces)
		assert.InDelta(t, 45.0, p.Pos.X, 1e-9)
	})

	t.Run("health clamps at zero", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		w.Body.Health = 3
		spawn(w, 60, 350, 0, 0, entity.SentryOwner, entity.VariantNormal)

		sys.Update(w, Intent{})

		assert.Equal(t, 0, w.Body.Health)
		assert.False(t, w.Body.IsAlive())
	})

	t.Run("splitting projectile splits instead of damaging", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		spawn(w, 60, 350, 0, 0, entity.SentryOwner, entity.VariantSplitSquared)

		report := sys.Update(w, Intent{})

		assert.Equal(t, 100, w.Body.Health)
		assert.Equal(t, 1, report.Splits)
		assert.Equal(t, entity.SplitCount, w.CountProjectiles())
	})

	t.Run("platform contact skips the body check", func(t *testing.T) {
		sys := createTestCombat()
		body := entity.NewBody(50, 340, 20, 40, 20, 100)
		roof := &entity.Platform{Pos: geom.Vec2{X: 40, Y: 330}, Width: 40, Height: 10}
		w := createTestWorld(body, roof)
		p := spawn(w, 60, 336, 0, 0, entity.SentryOwner, entity.VariantNormal)

		sys.Update(w, Intent{})

		assert.Equal(t, 100, body.Health)
		assert.Equal(t, 1, p.Bounces)
		assert.InDelta(t, 345.0, p.Pos.Y, 1e-9)
	})
}

func TestCombatSystem_WorldBounds(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		vx, vy  float64
		wantPos geom.Vec2
		wantVel geom.Vec2
	}{
		{"floor", 300, 394, 2, 3, geom.Vec2{X: 302, Y: 395}, geom.Vec2{X: 1.8, Y: -3.2 * 0.7 * 0.9}},
		{"floor snaps slow components", 300, 394, 0.05, 1, geom.Vec2{X: 300.05, Y: 395}, geom.Vec2{X: 0, Y: -1.2 * 0.7 * 0.9}},
		{"left wall", 3, 100, -2, 0, geom.Vec2{X: 5, Y: 100.2}, geom.Vec2{X: 2 * 0.7 * 0.9, Y: 0.2 * 0.9}},
		{"right wall", 797, 100, 2, 0, geom.Vec2{X: 795, Y: 100.2}, geom.Vec2{X: -2 * 0.7 * 0.9, Y: 0.2 * 0.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestCombat()
			w := createCombatWorld()
			p := spawn(w, tt.x, tt.y, tt.vx, tt.vy, entity.SentryOwner, entity.VariantNormal)

			sys.Update(w, Intent{})

			assert.Equal(t, 1, p.Bounces)
			assert.InDelta(t, tt.wantPos.X, p.Pos.X, 1e-9)
			assert.InDelta(t, tt.wantPos.Y, p.Pos.Y, 1e-9)
			assert.InDelta(t, tt.wantVel.X, p.Vel.X, 1e-9)
			assert.InDelta(t, tt.wantVel.Y, p.Vel.Y, 1e-9)
		})
	}

	t.Run("split at floor", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		spawn(w, 300, 385, 0, 3, entity.SentryOwner, entity.VariantSplit)

		report := sys.Update(w, Intent{})

		assert.Equal(t, 1, report.Splits)
		assert.Equal(t, entity.SplitCount, w.CountProjectiles())
	})
}

func TestCombatSystem_Sentry(t *testing.T) {
	t.Run("clear sight fires at body center", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		sentry := w.AddSentry(geom.Vec2{X: 700, Y: 100}, entity.VariantSplit, 0)

		shots := sys.updateSentries(w)

		assert.Equal(t, 1, shots)
		assert.Equal(t, 90, sentry.Cooldown)
		require.Equal(t, 1, w.CountProjectiles())

		p := w.Projectiles[0]
		assert.Equal(t, entity.SentryOwner, p.Owner)
		assert.Equal(t, entity.VariantSplit, p.Variant)
		assert.Equal(t, sentry.Pos, p.Pos)

		want, ok := w.Body.Center().Sub(sentry.Pos).Normalize()
		require.True(t, ok)
		assert.InDelta(t, want.X*8, p.Vel.X, 1e-9)
		assert.InDelta(t, want.Y*8, p.Vel.Y, 1e-9)
	})

	t.Run("blocked sight holds fire", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		w.AddPlatform(&entity.Platform{Pos: geom.Vec2{X: 300, Y: 150}, Width: 100, Height: 100})
		sentry := w.AddSentry(geom.Vec2{X: 700, Y: 100}, entity.VariantNormal, 0)

		shots := sys.updateSentries(w)

		assert.Equal(t, 0, shots)
		assert.Equal(t, 0, sentry.Cooldown)
		assert.Equal(t, 0, w.CountProjectiles())
	})

	t.Run("cooldown counts down before firing", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()
		sentry := w.AddSentry(geom.Vec2{X: 700, Y: 100}, entity.VariantNormal, 2)

		assert.Equal(t, 0, sys.updateSentries(w))
		assert.Equal(t, 1, sentry.Cooldown)
		assert.Equal(t, 0, sys.updateSentries(w))
		assert.Equal(t, 0, sentry.Cooldown)
		assert.Equal(t, 1, sys.updateSentries(w))
		assert.Equal(t, 90, sentry.Cooldown)
	})
}

func TestCombatSystem_LineOfSight(t *testing.T) {
	sys := createTestCombat()
	w := createCombatWorld()

	assert.True(t, sys.LineOfSight(w, geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}))
	assert.False(t, sys.LineOfSight(w, geom.Vec2{X: 460, Y: 200}, geom.Vec2{X: 460, Y: 300}))
	// edges are not inside
	assert.True(t, sys.LineOfSight(w, geom.Vec2{X: 300, Y: 250}, geom.Vec2{X: 600, Y: 250}))
}

func TestCombatSystem_PlayerFire(t *testing.T) {
	tests := []struct {
		name    string
		aim     geom.Vec2
		wantVel geom.Vec2
	}{
		{"aim right", geom.Vec2{X: 160, Y: 360}, geom.Vec2{X: 8}},
		{"aim at center fires up", geom.Vec2{X: 60, Y: 360}, geom.Vec2{Y: -8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestCombat()
			w := createCombatWorld()

			n := sys.firePlayer(w, Intent{AimX: tt.aim.X, AimY: tt.aim.Y, FirePrimary: true})

			require.Equal(t, 1, n)
			p := w.Projectiles[0]
			assert.Equal(t, entity.BodyID, p.Owner)
			assert.Equal(t, w.Body.Center(), p.Pos)
			assert.False(t, math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y))
			assert.InDelta(t, tt.wantVel.X, p.Vel.X, 1e-9)
			assert.InDelta(t, tt.wantVel.Y, p.Vel.Y, 1e-9)
		})
	}

	t.Run("each trigger fires its variant", func(t *testing.T) {
		sys := createTestCombat()
		w := createCombatWorld()

		n := sys.firePlayer(w, Intent{AimX: 0, AimY: 0, FirePrimary: true, FireSecondary: true, FireTertiary: true})

		require.Equal(t, 3, n)
		assert.Equal(t, entity.VariantNormal, w.Projectiles[0].Variant)
		assert.Equal(t, entity.VariantSplit, w.Projectiles[1].Variant)
		assert.Equal(t, entity.VariantSplitSquared, w.Projectiles[2].Variant)
	})
}
