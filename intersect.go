package ink

// Intersection describes a single intersection found by one of the
// intersection queries. Label names the entity that was hit (a box
// side, or "bounds" for a box/box overlap region).
type Intersection struct {
	Label  string
	Points []Point
}

// boxSide is one edge of an axis-aligned box.
type boxSide struct {
	label  string
	p0, p1 Point
}

func sidesOf(b Bounds) [4]boxSide {
	tl := Pt(b.MinX, b.MinY)
	tr := Pt(b.MaxX, b.MinY)
	br := Pt(b.MaxX, b.MaxY)
	bl := Pt(b.MinX, b.MaxY)
	return [4]boxSide{
		{"top", tl, tr},
		{"right", tr, br},
		{"bottom", br, bl},
		{"left", bl, tl},
	}
}

// intersectSegmentSegment returns the intersection point of two line
// segments. Endpoint contact counts as an intersection so that
// selection gestures stay forgiving.
func intersectSegmentSegment(a0, a1, b0, b1 Point) (Point, bool) {
	ab := a1.Sub(a0)
	cd := b1.Sub(b0)
	ac := b0.Sub(a0)

	denom := ab.X*cd.Y - ab.Y*cd.X
	if denom == 0 {
		return Point{}, false
	}
	t := (ac.X*cd.Y - ac.Y*cd.X) / denom
	u := (ac.X*ab.Y - ac.Y*ab.X) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a0.Add(ab.Mul(t)), true
}

// IntersectBoundsBounds returns the overlap of two boxes as a single
// intersection holding the overlap region's corners. Touching boxes
// (zero-area overlap) count as intersecting. An empty result means the
// boxes are disjoint.
func IntersectBoundsBounds(a, b Bounds) []Intersection {
	if !a.Overlaps(b) {
		return nil
	}
	minX := max(a.MinX, b.MinX)
	minY := max(a.MinY, b.MinY)
	maxX := min(a.MaxX, b.MaxX)
	maxY := min(a.MaxY, b.MaxY)
	return []Intersection{{
		Label: "bounds",
		Points: []Point{
			Pt(minX, minY),
			Pt(maxX, minY),
			Pt(maxX, maxY),
			Pt(minX, maxY),
		},
	}}
}

// IntersectBoundsPolyline tests each polyline segment against the four
// sides of the box. A segment that crosses the box is detected even
// when every polyline vertex lies outside it. The polyline's interior
// being fully inside the box yields no intersections; callers handle
// containment with Bounds.Contains.
func IntersectBoundsPolyline(b Bounds, pts []Point) []Intersection {
	var hits []Intersection
	for _, side := range sidesOf(b) {
		var found []Point
		for i := 1; i < len(pts); i++ {
			if p, ok := intersectSegmentSegment(side.p0, side.p1, pts[i-1], pts[i]); ok {
				found = append(found, p)
			}
		}
		if len(found) > 0 {
			hits = append(hits, Intersection{Label: side.label, Points: found})
		}
	}
	return hits
}

// IntersectPolylineBounds is the symmetric form of
// IntersectBoundsPolyline, used when the box has already been
// translated into the polyline's local frame.
func IntersectPolylineBounds(pts []Point, b Bounds) []Intersection {
	return IntersectBoundsPolyline(b, pts)
}
