package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWorld() *World {
	w := NewWorld(800, 400, createTestBody())
	w.AddPlatform(&Platform{Pos: vec(0, 380), Width: 800, Height: 20})
	w.AddPlatform(&Platform{Pos: vec(150, 300), Width: 100, Height: 10, VX: 1, Bounded: true, MinX: 150, MaxX: 300})
	w.AddSentry(vec(700, 100), VariantSplit, 0)
	return w
}

func TestWorld_NewEntityID(t *testing.T) {
	w := NewWorld(800, 400, createTestBody())

	seen := map[EntityID]bool{}
	for range 100 {
		id := w.NewEntityID()
		assert.NotEqual(t, NoEntity, id)
		assert.NotEqual(t, BodyID, id)
		assert.NotEqual(t, SentryOwner, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestWorld_SpawnProjectile(t *testing.T) {
	w := createTestWorld()

	p := w.SpawnProjectile(vec(10, 10), vec(8, 0), BodyID, VariantNormal)

	require.Equal(t, 1, w.CountProjectiles())
	assert.Same(t, p, w.Projectiles[0])
	assert.Equal(t, BodyID, p.Owner)
}

func TestWorld_Clone(t *testing.T) {
	w := createTestWorld()
	w.SpawnProjectile(vec(10, 10), vec(8, 0), SentryOwner, VariantNormal)
	w.Tick = 42

	c := w.Clone()

	assert.Equal(t, w.Tick, c.Tick)
	assert.Equal(t, w.Body.Pos, c.Body.Pos)
	assert.Equal(t, w.NewEntityID(), c.NewEntityID())

	c.Body.Pos.X = 999
	c.Platforms[1].Pos.X = 999
	c.Projectiles[0].Pos.X = 999
	c.Sentries[0].Cooldown = 999
	c.SpawnProjectile(vec(0, 0), vec(0, 0), BodyID, VariantNormal)

	assert.Equal(t, 50.0, w.Body.Pos.X)
	assert.Equal(t, 150.0, w.Platforms[1].Pos.X)
	assert.Equal(t, 10.0, w.Projectiles[0].Pos.X)
	assert.Equal(t, 0, w.Sentries[0].Cooldown)
	assert.Equal(t, 1, w.CountProjectiles())
}

func TestWorld_Snapshot(t *testing.T) {
	w := createTestWorld()
	w.SpawnProjectile(vec(10, 10), vec(8, 0), SentryOwner, VariantSplit)
	gone := w.SpawnProjectile(vec(20, 20), vec(0, 0), SentryOwner, VariantNormal)
	gone.State = Removed

	snap := w.Snapshot(5)

	assert.Equal(t, 800.0, snap.Width)
	assert.Equal(t, w.Body.Rect(), snap.Body.Rect)
	assert.Len(t, snap.Platforms, 2)
	require.Len(t, snap.Projectiles, 1)
	assert.Equal(t, 12.0, snap.Projectiles[0].Radius)
	assert.Equal(t, VariantSplit, snap.Projectiles[0].Variant)
	require.Len(t, snap.Sentries, 1)
	assert.Equal(t, vec(700, 100), snap.Sentries[0].Pos)
}

func TestSentry_Tick(t *testing.T) {
	s := &Sentry{Cooldown: 2}

	assert.False(t, s.Ready())
	s.Tick()
	s.Tick()
	assert.True(t, s.Ready())
	s.Tick()
	assert.Equal(t, 0, s.Cooldown)
}
