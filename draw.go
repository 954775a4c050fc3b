package ink

// DrawUtil realizes the shape contract for freehand strokes.
// All geometry methods consult the derived-geometry caches, so
// repeated calls with an unchanged point sequence do no recomputation.
type DrawUtil struct{}

var _ Util = (*DrawUtil)(nil)

// localBounds returns the bounds of the shape's points in local space.
func (u *DrawUtil) localBounds(s *Shape) (Bounds, error) {
	if len(s.points) == 0 {
		return Bounds{}, ErrNoPoints
	}
	pts := s.points
	b := boundsCache.GetOrCreate(s.geomKey(), func() Bounds {
		b, _ := BoundsOf(pts)
		return b
	})
	return b, nil
}

// Bounds returns the shape's unrotated bounds in parent space.
func (u *DrawUtil) Bounds(s *Shape) (Bounds, error) {
	b, err := u.localBounds(s)
	if err != nil {
		return Bounds{}, err
	}
	return b.Translate(s.Point), nil
}

// RotatedBounds returns the parent-space bounds of the point set
// pre-rotated by the shape's rotation about its own center.
func (u *DrawUtil) RotatedBounds(s *Shape) (Bounds, error) {
	if s.Rotation == 0 {
		return u.Bounds(s)
	}
	if len(s.points) == 0 {
		return Bounds{}, ErrNoPoints
	}
	pts := s.points
	rotation := s.Rotation
	b := rotatedBoundsCache.GetOrCreate(rotatedKey{s.geomKey(), rotation}, func() Bounds {
		b, _ := RotatedBoundsOf(pts, rotation)
		return b
	})
	return b.Translate(s.Point), nil
}

// Center returns the center of the shape's bounds.
func (u *DrawUtil) Center(s *Shape) (Point, error) {
	b, err := u.Bounds(s)
	if err != nil {
		return Point{}, err
	}
	return b.Center(), nil
}

// ShouldRender reports whether the shape needs repainting: true iff
// the point sequence identity or the style changed.
func (u *DrawUtil) ShouldRender(prev, next *Shape) bool {
	return prev.geomKey() != next.geomKey() || prev.Style != next.Style
}

// Render produces the drawable output for a stroke.
//
// A finished stroke whose spread is degenerate relative to its own
// thickness (a tap with no drag) renders as a single dot sized from
// the style's Size. An empty point sequence, valid only mid-draw,
// yields a fixed degenerate path.
func (u *DrawUtil) Render(s *Shape, ctx RenderContext) (*Drawable, error) {
	style := s.Style
	paint := PaintColor(style.Color, ctx.DarkMode)
	pts := s.points

	if len(pts) == 0 {
		return &Drawable{
			Path:        OutlinePath(nil),
			Fill:        false,
			StrokeWidth: style.StrokeWidth,
			Color:       paint,
		}, nil
	}

	b, err := u.localBounds(s)
	if err != nil {
		return nil, err
	}

	verySmall := b.Width <= style.Size/2 && b.Height <= style.Size/2
	if s.IsDone && (len(pts) < 3 || verySmall) {
		dot := NewPath()
		dot.Dot(b.Center(), style.Size/2)
		return &Drawable{
			Path:        dot,
			Fill:        true,
			StrokeWidth: style.StrokeWidth,
			Color:       paint,
		}, nil
	}

	opts := style.strokeOptions(pts, s.IsDone)
	path := outlineCache.GetOrCreate(strokeKey{s.geomKey(), style, s.IsDone}, func() *Path {
		return OutlinePath(StrokeOutline(pts, opts))
	})
	return &Drawable{
		Path:        path,
		Fill:        style.IsFilled,
		StrokeWidth: style.StrokeWidth,
		Color:       paint,
	}, nil
}

// Indicator produces the lightweight centerline path drawn around a
// selected stroke. It skips pressure entirely and is intentionally a
// coarser approximation than the rendered outline.
func (u *DrawUtil) Indicator(s *Shape) (*Path, error) {
	pts := s.points
	if len(pts) == 0 {
		return IndicatorPath(nil, StrokeOptions{}), nil
	}
	opts := s.Style.strokeOptions(pts, s.IsDone)
	path := indicatorCache.GetOrCreate(strokeKey{s.geomKey(), s.Style, s.IsDone}, func() *Path {
		return IndicatorPath(pts, opts)
	})
	return path, nil
}

// HitTestPoint reports whether a parent-space point hits the stroke.
// Any point within the stroke's bounds counts as a hit; the permissive
// policy favors easy selection over pixel-exact containment.
func (u *DrawUtil) HitTestPoint(s *Shape, p Point) bool {
	b, err := u.Bounds(s)
	if err != nil {
		return false
	}
	return b.ContainsPoint(p)
}

// HitTestBounds reports whether the stroke intersects, contains, or is
// contained by the query box. A rotated stroke is tested against its
// points rotated into parent space; an unrotated one against its
// axis-aligned bounds with a polyline-crossing check for partial
// overlap.
func (u *DrawUtil) HitTestBounds(s *Shape, query Bounds) bool {
	if len(s.points) == 0 {
		return false
	}

	if s.Rotation == 0 {
		b, err := u.Bounds(s)
		if err != nil {
			return false
		}
		if query.Contains(b) || b.Contains(query) {
			return true
		}
		if !b.Overlaps(query) {
			return false
		}
		local := query.Translate(s.Point.Neg())
		return len(IntersectPolylineBounds(s.points, local)) > 0
	}

	rb, err := u.RotatedBounds(s)
	if err != nil {
		return false
	}
	if query.Contains(rb) || rb.Contains(query) {
		return true
	}
	world := translatePoints(u.rotatedPoints(s), s.Point)
	return len(IntersectPolylineBounds(world, query)) > 0
}

// rotatedPoints returns the shape's points rotated by its rotation
// about the local bounds center, still in local space.
func (u *DrawUtil) rotatedPoints(s *Shape) []Point {
	pts := s.points
	rotation := s.Rotation
	return rotatedPointsCache.GetOrCreate(rotatedKey{s.geomKey(), rotation}, func() []Point {
		b, _ := BoundsOf(pts)
		center := b.Center()
		out := make([]Point, len(pts))
		for i, p := range pts {
			out[i] = p.RotateAround(center, rotation)
		}
		return out
	})
}

// Transform maps every point proportionally from the initial shape's
// local bounds into target, flipping an axis when its scale factor is
// negative, and recomputes the local origin so the result's bounds
// align to target.
func (u *DrawUtil) Transform(s *Shape, target Bounds, info TransformInfo) (*ShapeChange, error) {
	initial := info.Initial
	if initial == nil {
		initial = s
	}
	ib, err := u.localBounds(initial)
	if err != nil {
		return nil, err
	}

	src := initial.points
	pts := make([]Point, len(src))
	for i, p := range src {
		nx := 0.0
		if ib.Width > 0 {
			nx = (p.X - ib.MinX) / ib.Width
		}
		if info.ScaleX < 0 {
			nx = 1 - nx
		}
		ny := 0.0
		if ib.Height > 0 {
			ny = (p.Y - ib.MinY) / ib.Height
		}
		if info.ScaleY < 0 {
			ny = 1 - ny
		}
		pts[i] = Point{
			X:        target.Width * nx,
			Y:        target.Height * ny,
			Pressure: p.Pressure,
		}
	}

	nb, err := BoundsOf(pts)
	if err != nil {
		return nil, err
	}
	point := Pt(target.MinX-nb.MinX, target.MinY-nb.MinY)
	return &ShapeChange{Point: &point, Points: pts}, nil
}

// TransformSingle is the single-shape resize form; for freehand
// strokes it is identical to the general transform.
func (u *DrawUtil) TransformSingle(s *Shape, target Bounds, info TransformInfo) (*ShapeChange, error) {
	return u.Transform(s, target, info)
}

// OnSessionComplete re-origins the points so the local bounding box's
// top-left corner is the local origin, compensating Point by the same
// offset. Applying it twice is a no-op.
func (u *DrawUtil) OnSessionComplete(s *Shape) (*ShapeChange, error) {
	b, err := u.localBounds(s)
	if err != nil {
		return nil, err
	}
	offset := Pt(b.MinX, b.MinY)
	pts := translatePoints(s.points, offset.Neg())
	point := s.Point.Add(offset)
	return &ShapeChange{Point: &point, Points: pts}, nil
}
