package ink

import (
	"math"
	"testing"
)

func TestPoint_Creation(t *testing.T) {
	p := Pt(3, 4)
	if p.X != 3 || p.Y != 4 {
		t.Errorf("Pt(3, 4) = %v", p)
	}
	if p.Pressure != NeutralPressure {
		t.Errorf("Pt pressure = %v, want %v", p.Pressure, NeutralPressure)
	}

	q := Ptp(1, 2, 0.8)
	if q.Pressure != 0.8 {
		t.Errorf("Ptp pressure = %v, want 0.8", q.Pressure)
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Point
		expect Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(5, 7).Sub(Pt(2, 3)), Pt(3, 4)},
		{"neg", Pt(1, -2).Neg(), Pt(-1, 2)},
		{"mul", Pt(1, 2).Mul(3), Pt(3, 6)},
		{"div", Pt(4, 6).Div(2), Pt(2, 3)},
		{"mid", Pt(0, 0).Mid(Pt(10, 4)), Pt(5, 2)},
		{"lerp", Pt(0, 0).Lerp(Pt(10, 10), 0.25), Pt(2.5, 2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-10) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestPoint_Distance(t *testing.T) {
	d := Pt(0, 0).Distance(Pt(3, 4))
	if math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestPoint_Normalize(t *testing.T) {
	n := Pt(3, 4).Normalize()
	if !n.Approx(Pt(0.6, 0.8), 1e-10) {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", n)
	}

	zero := Pt(0, 0).Normalize()
	if !zero.Approx(Pt(0, 0), 1e-10) {
		t.Errorf("Normalize(zero) = %v, want zero", zero)
	}
}

func TestPoint_RotateAround(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		pivot  Point
		angle  float64
		expect Point
	}{
		{"quarter about origin", Pt(1, 0), Pt(0, 0), math.Pi / 2, Pt(0, 1)},
		{"half about origin", Pt(1, 0), Pt(0, 0), math.Pi, Pt(-1, 0)},
		{"about pivot", Pt(2, 1), Pt(1, 1), math.Pi / 2, Pt(1, 2)},
		{"zero angle", Pt(3, 7), Pt(1, 1), 0, Pt(3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RotateAround(tt.pivot, tt.angle)
			if !got.Approx(tt.expect, 1e-10) {
				t.Errorf("RotateAround = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestPoint_LerpPressure(t *testing.T) {
	a := Ptp(0, 0, 0)
	b := Ptp(10, 0, 1)
	mid := a.Lerp(b, 0.5)
	if math.Abs(mid.Pressure-0.5) > 1e-10 {
		t.Errorf("Lerp pressure = %v, want 0.5", mid.Pressure)
	}
}
