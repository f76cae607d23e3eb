package geom

// Axis names the side of the obstacle along which a shape is pushed out
type Axis int

const (
	AxisNone Axis = iota
	AxisTop
	AxisBottom
	AxisLeft
	AxisRight
)

// String returns the string representation of the axis
func (a Axis) String() string {
	switch a {
	case AxisTop:
		return "top"
	case AxisBottom:
		return "bottom"
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	default:
		return "none"
	}
}

// Vertical reports whether the axis resolves along y
func (a Axis) Vertical() bool {
	return a == AxisTop || a == AxisBottom
}

// Penetration describes how to separate a shape from an obstacle.
// Correction is the displacement that moves the shape flush with the chosen side.
type Penetration struct {
	Axis       Axis
	Depth      float64
	Correction Vec2
}

// Depths holds the four intrusion depths of a into b
type Depths struct {
	Top, Bottom, Left, Right float64
}

// DepthsOf computes the four intrusion depths of a into b:
// top is how far a sinks past b's top edge, bottom how far a rises past b's bottom,
// left how far a reaches past b's left edge, right past b's right edge.
func DepthsOf(a, b Rect) Depths {
	return Depths{
		Top:    a.Bottom() - b.Top(),
		Bottom: b.Bottom() - a.Top(),
		Left:   a.Right() - b.Left(),
		Right:  b.Right() - a.Left(),
	}
}

// Min selects the axis of minimal depth.
// Equal depths resolve in the fixed order top, bottom, left, right.
func (d Depths) Min() Penetration {
	p := Penetration{Axis: AxisTop, Depth: d.Top, Correction: Vec2{Y: -d.Top}}
	if d.Bottom < p.Depth {
		p = Penetration{Axis: AxisBottom, Depth: d.Bottom, Correction: Vec2{Y: d.Bottom}}
	}
	if d.Left < p.Depth {
		p = Penetration{Axis: AxisLeft, Depth: d.Left, Correction: Vec2{X: -d.Left}}
	}
	if d.Right < p.Depth {
		p = Penetration{Axis: AxisRight, Depth: d.Right, Correction: Vec2{X: d.Right}}
	}
	return p
}

// PenetrationAxis returns the minimum-penetration axis of a into b.
// Callers check Overlaps first; for disjoint rects the result is meaningless.
func PenetrationAxis(a, b Rect) Penetration {
	return DepthsOf(a, b).Min()
}

// CirclePenetration resolves a circle against a rect by expanding the rect by r
// and treating the circle center as a point. ok is false when they do not touch.
func CirclePenetration(center Vec2, r float64, b Rect) (p Penetration, ok bool) {
	pt := PointRect(center)
	expanded := b.Expand(r)
	if !Overlaps(pt, expanded) {
		return Penetration{}, false
	}
	return PenetrationAxis(pt, expanded), true
}
