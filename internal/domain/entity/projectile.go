package entity

import (
	"fmt"
	"math"

	"github.com/younwookim/splitshot/internal/domain/geom"
)

// Variant is the closed set of projectile kinds
type Variant int

const (
	VariantNormal Variant = iota
	VariantSplit
	VariantSplitSquared
)

// SplitCount is the number of children a splitting projectile fans out into
const SplitCount = 9

// VariantSpec holds the per-variant constants fixed at spawn
type VariantSpec struct {
	Radius  float64
	Gravity float64 // added to VY every tick
	Splits  bool
	Child   Variant // variant of split children, only meaningful if Splits
}

var variantSpecs = [...]VariantSpec{
	VariantNormal:       {Radius: 5, Gravity: 0.2},
	VariantSplit:        {Radius: 12, Gravity: 0.4, Splits: true, Child: VariantNormal},
	VariantSplitSquared: {Radius: 16, Gravity: 0.6, Splits: true, Child: VariantSplit},
}

// Spec returns the lookup-table entry for the variant.
// Unknown values fall back to Normal.
func (v Variant) Spec() VariantSpec {
	if v < VariantNormal || int(v) >= len(variantSpecs) {
		return variantSpecs[VariantNormal]
	}
	return variantSpecs[v]
}

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantNormal:
		return "normal"
	case VariantSplit:
		return "split"
	case VariantSplitSquared:
		return "splitSquared"
	default:
		return "unknown"
	}
}

// ParseVariant converts a config string into a Variant
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "normal", "":
		return VariantNormal, nil
	case "split":
		return VariantSplit, nil
	case "splitSquared":
		return VariantSplitSquared, nil
	default:
		return VariantNormal, fmt.Errorf("unknown projectile variant %q", s)
	}
}

// ProjectileState is the lifecycle state of a projectile
type ProjectileState int

const (
	Flying ProjectileState = iota
	Splitting
	Removed
)

// Projectile is a ballistic circle
type Projectile struct {
	ID      EntityID
	Pos     geom.Vec2
	Vel     geom.Vec2
	Owner   EntityID
	Variant Variant
	Radius  float64
	Gravity float64
	Bounces int
	State   ProjectileState
}

// NewProjectile creates a flying projectile; radius and gravity come from the variant
func NewProjectile(id EntityID, pos, vel geom.Vec2, owner EntityID, variant Variant) *Projectile {
	spec := variant.Spec()
	return &Projectile{
		ID:      id,
		Pos:     pos,
		Vel:     vel,
		Owner:   owner,
		Variant: variant,
		Radius:  spec.Radius,
		Gravity: spec.Gravity,
		State:   Flying,
	}
}

// Splits reports whether any contact splits this projectile instead of bouncing it
func (p *Projectile) Splits() bool {
	return p.Variant.Spec().Splits
}

// Active returns true while the projectile is flying
func (p *Projectile) Active() bool {
	return p.State == Flying
}

// RegisterBounce counts one bounce and reports whether the cap was reached.
// Reaching the cap removes the projectile.
func (p *Projectile) RegisterBounce(limit int) (expired bool) {
	if p.Bounces < limit {
		p.Bounces++
	}
	if p.Bounces >= limit {
		p.State = Removed
		return true
	}
	return false
}

// SplitInto marks the projectile as splitting and returns the velocity of each child:
// SplitCount directions spaced 2π/SplitCount apart, each with the given speed.
func (p *Projectile) SplitInto(speed float64) []geom.Vec2 {
	p.State = Splitting
	vels := make([]geom.Vec2, SplitCount)
	for i := range SplitCount {
		angle := float64(i) / SplitCount * 2 * math.Pi
		vels[i] = geom.FromAngle(angle, speed)
	}
	return vels
}

// Alpha returns the draw opacity, dimming as the projectile uses up its bounces.
// It is presentation only and has no effect on expiry.
func (p *Projectile) Alpha(limit int) float64 {
	if limit <= 0 {
		return 1
	}
	remaining := float64(limit-p.Bounces) / float64(limit)
	return 0.4 + 0.6*remaining
}
