package system

import (
	"github.com/younwookim/splitshot/internal/domain/entity"
	"github.com/younwookim/splitshot/internal/domain/geom"
)

// Intent is the player's desired action for one tick, sampled once by the driver.
// Aim is an absolute arena position.
type Intent struct {
	Left  bool `json:"l,omitempty"`
	Right bool `json:"r,omitempty"`
	Down  bool `json:"d,omitempty"`
	Jump  bool `json:"j,omitempty"`

	AimX float64 `json:"ax,omitempty"`
	AimY float64 `json:"ay,omitempty"`

	FirePrimary   bool `json:"f1,omitempty"`
	FireSecondary bool `json:"f2,omitempty"`
	FireTertiary  bool `json:"f3,omitempty"`
}

// Aim returns the aim point
func (i Intent) Aim() geom.Vec2 {
	return geom.Vec2{X: i.AimX, Y: i.AimY}
}

// Fires returns the variants triggered this tick, in trigger order
func (i Intent) Fires() []entity.Variant {
	var out []entity.Variant
	if i.FirePrimary {
		out = append(out, entity.VariantNormal)
	}
	if i.FireSecondary {
		out = append(out, entity.VariantSplit)
	}
	if i.FireTertiary {
		out = append(out, entity.VariantSplitSquared)
	}
	return out
}

// Horizontal returns -1, 0 or 1. Right wins when both directions are held.
func (i Intent) Horizontal() float64 {
	dir := 0.0
	if i.Left {
		dir = -1
	}
	if i.Right {
		dir = 1
	}
	return dir
}
