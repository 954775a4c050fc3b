package ink

import "math"

// round2 rounds a point's coordinates to two decimal places.
// Indicator paths are rounded so repeated renders emit identical
// command streams for unchanged geometry.
func round2(p Point) Point {
	return Point{
		X:        math.Round(p.X*100) / 100,
		Y:        math.Round(p.Y*100) / 100,
		Pressure: p.Pressure,
	}
}

// PathElement represents a single drawing command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Dot draws a filled circle. Degenerate strokes (a tap with no drag)
// render as a single Dot rather than an outline path.
type Dot struct {
	Center Point
	Radius float64
}

func (Dot) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a sequence of drawing commands for the rendering
// surface. The host walks Elements and translates each command to its
// own drawing API.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve through a control point.
func (p *Path) QuadraticTo(ctrl, pt Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// Dot adds a filled circle centered on pt.
func (p *Path) Dot(pt Point, radius float64) {
	p.elements = append(p.elements, Dot{Center: pt, Radius: radius})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(m.TransformPoint(e.Point))
		case LineTo:
			result.LineTo(m.TransformPoint(e.Point))
		case QuadTo:
			result.QuadraticTo(m.TransformPoint(e.Control), m.TransformPoint(e.Point))
		case Dot:
			result.Dot(m.TransformPoint(e.Center), e.Radius)
		case Close:
			result.Close()
		}
	}
	return result
}

// OutlinePath converts a closed outline polygon into drawing commands:
// a quadratic curve through the midpoint of each consecutive pair of
// outline points, closed back to the start. Fewer than three points
// yield a trivial path (a single move, or a move to the origin for an
// empty outline).
func OutlinePath(outline []Point) *Path {
	p := NewPath()
	if len(outline) == 0 {
		p.MoveTo(Pt(0, 0))
		return p
	}
	if len(outline) < 3 {
		p.MoveTo(outline[0])
		return p
	}
	p.MoveTo(outline[0])
	for i := range outline {
		next := outline[(i+1)%len(outline)]
		p.QuadraticTo(outline[i], outline[i].Mid(next))
	}
	p.Close()
	return p
}

// IndicatorPath builds the lightweight centerline path used for
// selection indicators: an open quadratic curve through the midpoints
// of consecutive resampled points, with coordinates rounded to two
// decimal places. Pressure-aware thickness is intentionally skipped;
// this is a coarser approximation than the rendered outline.
func IndicatorPath(pts []Point, opts StrokeOptions) *Path {
	p := NewPath()
	stroked := StrokePoints(pts, opts)
	if len(stroked) == 0 {
		p.MoveTo(Pt(0, 0))
		return p
	}
	if len(stroked) < 3 {
		p.MoveTo(round2(stroked[0].Point))
		return p
	}
	p.MoveTo(round2(stroked[0].Point))
	for i := 0; i < len(stroked)-1; i++ {
		cur := stroked[i].Point
		next := stroked[i+1].Point
		p.QuadraticTo(round2(cur), round2(cur.Mid(next)))
	}
	return p
}
