package ink

import "math"

// NeutralPressure is the pressure assigned to points produced by
// devices that do not report pressure (mouse, trackpad).
const NeutralPressure = 0.5

// Point represents a 2D point with an optional pen pressure.
// Pressure is in [0, 1]; NeutralPressure when simulated.
type Point struct {
	X, Y     float64
	Pressure float64
}

// Pt is a convenience function to create a Point with neutral pressure.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, Pressure: NeutralPressure}
}

// Ptp creates a Point with an explicit pressure.
func Ptp(x, y, pressure float64) Point {
	return Point{X: x, Y: y, Pressure: pressure}
}

// Add returns the sum of two points (vector addition).
// The receiver's pressure is carried through.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Pressure: p.Pressure}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Pressure: p.Pressure}
}

// Neg returns the negation of the point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y, Pressure: p.Pressure}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Pressure: p.Pressure}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s, Pressure: p.Pressure}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero point if the vector has zero length.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{Pressure: p.Pressure}
	}
	return Point{X: p.X / length, Y: p.Y / length, Pressure: p.Pressure}
}

// Perp returns the perpendicular vector (rotated 90 degrees
// counter-clockwise in a y-down coordinate system).
func (p Point) Perp() Point {
	return Point{X: p.Y, Y: -p.X, Pressure: p.Pressure}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q. Pressure interpolates too.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X:        p.X + (q.X-p.X)*t,
		Y:        p.Y + (q.Y-p.Y)*t,
		Pressure: p.Pressure + (q.Pressure-p.Pressure)*t,
	}
}

// Mid returns the midpoint of two points.
func (p Point) Mid(q Point) Point {
	return p.Lerp(q, 0.5)
}

// RotateAround returns the point rotated by angle radians about pivot,
// using the standard counter-clockwise convention.
func (p Point) RotateAround(pivot Point, angle float64) Point {
	sin := math.Sin(angle)
	cos := math.Cos(angle)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X:        pivot.X + dx*cos - dy*sin,
		Y:        pivot.Y + dx*sin + dy*cos,
		Pressure: p.Pressure,
	}
}

// Approx returns true if two points are approximately equal within
// epsilon. Pressure is ignored.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// translatePoints returns a copy of pts with delta added to each point.
func translatePoints(pts []Point, delta Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(delta)
	}
	return out
}
