package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
)

func createTestSimulation() *Simulation {
	return NewSimulation(createTestTuning())
}

func loadDefaultArena(t testing.TB) *entity.World {
	cfg, err := config.NewLoader("../../../cmd/arena/configs").LoadAll("default")
	require.NoError(t, err)
	w, err := LoadArena(cfg.Arena, &cfg.Tuning.Body)
	require.NoError(t, err)
	return w
}

func TestSimulation_JumpFromGround(t *testing.T) {
	sim := createTestSimulation()
	w := createTestWorld(createGroundedBody(), groundPlatform())

	sim.Step(w, Intent{})
	require.True(t, w.Body.Grounded)

	sim.Step(w, Intent{Jump: true})

	assert.False(t, w.Body.Grounded)
	assert.Equal(t, -10.0+0.5, w.Body.Vel.Y)
	assert.Equal(t, 340.0-9.5, w.Body.Pos.Y)
}

func TestSimulation_TickCounter(t *testing.T) {
	sim := createTestSimulation()
	w := createTestWorld(createGroundedBody(), groundPlatform())

	for range 3 {
		sim.Step(w, Intent{})
	}
	assert.Equal(t, uint64(3), w.Tick)
}

func TestSimulation_AdvanceLeavesInputUntouched(t *testing.T) {
	sim := createTestSimulation()
	w := loadDefaultArena(t)
	w.Sentries[0].Cooldown = 0
	before := w.Clone()

	next := sim.Advance(w, Intent{Right: true, FirePrimary: true, AimX: 400, AimY: 0})

	assert.Equal(t, before, w)
	assert.Equal(t, uint64(1), next.Tick)
	assert.NotEqual(t, w.Body.Pos, next.Body.Pos)
	assert.NotEmpty(t, next.Projectiles)
}

func TestSimulation_Deterministic(t *testing.T) {
	sim := createTestSimulation()
	a := loadDefaultArena(t)
	b := loadDefaultArena(t)

	script := []Intent{
		{Right: true},
		{Right: true, Down: true},
		{Jump: true},
		{Left: true, FireSecondary: true, AimX: 700, AimY: 100},
		{FireTertiary: true, AimX: 0, AimY: 400},
	}
	for i := range 600 {
		in := script[i%len(script)]
		sim.Step(a, in)
		b = sim.Advance(b, in)
	}

	assert.Equal(t, a, b)
}

func TestSimulation_Snapshot(t *testing.T) {
	sim := createTestSimulation()
	w := loadDefaultArena(t)

	snap := sim.Snapshot(w)

	assert.Equal(t, w.Width, snap.Width)
	assert.Len(t, snap.Platforms, len(w.Platforms))
	assert.Len(t, snap.Sentries, len(w.Sentries))
}

func intentGen() *rapid.Generator[Intent] {
	return rapid.Custom(func(t *rapid.T) Intent {
		return Intent{
			Left:          rapid.Bool().Draw(t, "left"),
			Right:         rapid.Bool().Draw(t, "right"),
			Down:          rapid.Bool().Draw(t, "down"),
			Jump:          rapid.Bool().Draw(t, "jump"),
			AimX:          rapid.Float64Range(-100, 900).Draw(t, "aimX"),
			AimY:          rapid.Float64Range(-100, 500).Draw(t, "aimY"),
			FirePrimary:   rapid.IntRange(0, 9).Draw(t, "f1") == 0,
			FireSecondary: rapid.IntRange(0, 29).Draw(t, "f2") == 0,
			FireTertiary:  rapid.IntRange(0, 59).Draw(t, "f3") == 0,
		}
	})
}

func TestSimulation_Invariants(t *testing.T) {
	tuning := createTestTuning()
	sim := NewSimulation(tuning)
	limit := tuning.Projectile.BounceLimit
	arena := loadDefaultArena(t)

	rapid.Check(t, func(rt *rapid.T) {
		w := arena.Clone()
		intents := rapid.SliceOfN(intentGen(), 1, 400).Draw(rt, "intents")

		for _, in := range intents {
			sim.Step(w, in)

			for _, p := range w.Projectiles {
				if !p.Active() {
					rt.Fatalf("inactive projectile %d left in world", p.ID)
				}
				if p.Bounces >= limit {
					rt.Fatalf("projectile %d at %d bounces survived the tick", p.ID, p.Bounces)
				}
				if math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y) || math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y) {
					rt.Fatalf("projectile %d has NaN state", p.ID)
				}
			}

			for i, p := range w.Platforms {
				if p.Bounded && (p.Pos.X < p.MinX || p.Pos.X+p.Width > p.MaxX) {
					rt.Fatalf("platform %d left its bounds at x=%v", i, p.Pos.X)
				}
			}

			b := w.Body
			if b.Health < 0 || b.Health > b.MaxHealth {
				rt.Fatalf("health %d out of range", b.Health)
			}
			if b.Width != tuning.Body.Width {
				rt.Fatalf("body width changed to %v", b.Width)
			}
			if b.Pos.X < 0 || b.Rect().Right() > w.Width || b.Rect().Bottom() > w.Height {
				rt.Fatalf("body escaped the canvas: %+v", b.Rect())
			}
		}
	})
}

func BenchmarkSimulation_Step(b *testing.B) {
	sim := createTestSimulation()
	base := loadDefaultArena(b)
	in := Intent{Right: true, AimX: 700, AimY: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := base.Clone()
		for range 60 {
			sim.Step(w, in)
		}
	}
}

func BenchmarkSimulation_StepCrowded(b *testing.B) {
	sim := createTestSimulation()
	w := loadDefaultArena(b)
	for i := range 200 {
		w.SpawnProjectile(geom.Vec2{X: float64(20 + i*3), Y: 50}, geom.Vec2{X: 1, Y: 0}, entity.SentryOwner, entity.VariantNormal)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim.Step(w, Intent{})
	}
}
