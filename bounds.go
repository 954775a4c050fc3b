package ink

import "errors"

// ErrNoPoints is returned when bounds are requested for an empty point
// set. Callers must guarantee non-empty input; a silently returned zero
// bounds would poison downstream placement math.
var ErrNoPoints = errors.New("ink: empty point set")

// Bounds is an axis-aligned bounding box. Width and Height are always
// MaxX-MinX and MaxY-MinY; construct through BoundsOf or the Bounds
// methods so the record stays normalized.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
	Width      float64
	Height     float64
}

// NewBounds creates a normalized Bounds from two opposite corners.
func NewBounds(x0, y0, x1, y1 float64) Bounds {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Bounds{
		MinX:   x0,
		MinY:   y0,
		MaxX:   x1,
		MaxY:   y1,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

// BoundsOf computes the axis-aligned envelope of a point set.
// Returns ErrNoPoints for an empty set.
func BoundsOf(pts []Point) (Bounds, error) {
	if len(pts) == 0 {
		return Bounds{}, ErrNoPoints
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return NewBounds(minX, minY, maxX, maxY), nil
}

// RotatedBoundsOf computes the envelope of a point set with each point
// pre-rotated by rotation radians about the set's own center.
// Returns ErrNoPoints for an empty set.
func RotatedBoundsOf(pts []Point, rotation float64) (Bounds, error) {
	if rotation == 0 {
		return BoundsOf(pts)
	}
	local, err := BoundsOf(pts)
	if err != nil {
		return Bounds{}, err
	}
	center := local.Center()
	rotated := make([]Point, len(pts))
	for i, p := range pts {
		rotated[i] = p.RotateAround(center, rotation)
	}
	return BoundsOf(rotated)
}

// Translate returns the bounds shifted by delta.
func (b Bounds) Translate(delta Point) Bounds {
	return Bounds{
		MinX:   b.MinX + delta.X,
		MinY:   b.MinY + delta.Y,
		MaxX:   b.MaxX + delta.X,
		MaxY:   b.MaxY + delta.Y,
		Width:  b.Width,
		Height: b.Height,
	}
}

// Expand returns the bounds grown by amount on every side.
// Negative amounts shrink; the result is re-normalized.
func (b Bounds) Expand(amount float64) Bounds {
	return NewBounds(b.MinX-amount, b.MinY-amount, b.MaxX+amount, b.MaxY+amount)
}

// Union returns the minimal bounds containing both.
func (b Bounds) Union(o Bounds) Bounds {
	return NewBounds(
		min(b.MinX, o.MinX),
		min(b.MinY, o.MinY),
		max(b.MaxX, o.MaxX),
		max(b.MaxY, o.MaxY),
	)
}

// Contains reports whether o lies entirely inside b.
// Touching edges count as contained.
func (b Bounds) Contains(o Bounds) bool {
	return b.MinX <= o.MinX && b.MinY <= o.MinY &&
		b.MaxX >= o.MaxX && b.MaxY >= o.MaxY
}

// ContainsPoint reports whether p lies inside b, edges included.
func (b Bounds) ContainsPoint(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY
}

// Overlaps reports whether the two boxes share any area.
// Zero-area contact (touching edges) counts as overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Point {
	return Pt(b.MinX+b.Width/2, b.MinY+b.Height/2)
}
