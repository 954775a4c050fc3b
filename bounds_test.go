package ink

import (
	"errors"
	"math"
	"testing"
)

func boundsApprox(a, b Bounds, epsilon float64) bool {
	return math.Abs(a.MinX-b.MinX) < epsilon &&
		math.Abs(a.MinY-b.MinY) < epsilon &&
		math.Abs(a.MaxX-b.MaxX) < epsilon &&
		math.Abs(a.MaxY-b.MaxY) < epsilon &&
		math.Abs(a.Width-b.Width) < epsilon &&
		math.Abs(a.Height-b.Height) < epsilon
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name   string
		pts    []Point
		expect Bounds
	}{
		{"single", []Point{Pt(3, 4)}, NewBounds(3, 4, 3, 4)},
		{"triangle", []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, NewBounds(0, 0, 10, 10)},
		{"negative", []Point{Pt(-5, -2), Pt(5, 2)}, NewBounds(-5, -2, 5, 2)},
		{"duplicates", []Point{Pt(1, 1), Pt(1, 1), Pt(1, 1)}, NewBounds(1, 1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BoundsOf(tt.pts)
			if err != nil {
				t.Fatalf("BoundsOf: %v", err)
			}
			if !boundsApprox(got, tt.expect, 1e-10) {
				t.Errorf("BoundsOf = %+v, want %+v", got, tt.expect)
			}
		})
	}
}

func TestBoundsOf_Empty(t *testing.T) {
	_, err := BoundsOf(nil)
	if !errors.Is(err, ErrNoPoints) {
		t.Errorf("BoundsOf(nil) err = %v, want ErrNoPoints", err)
	}

	_, err = RotatedBoundsOf(nil, 1)
	if !errors.Is(err, ErrNoPoints) {
		t.Errorf("RotatedBoundsOf(nil) err = %v, want ErrNoPoints", err)
	}
}

func TestNewBounds_Normalizes(t *testing.T) {
	b := NewBounds(10, 8, 2, 4)
	if b.MinX != 2 || b.MaxX != 10 || b.MinY != 4 || b.MaxY != 8 {
		t.Errorf("NewBounds did not normalize: %+v", b)
	}
	if b.Width != 8 || b.Height != 4 {
		t.Errorf("Width/Height = %v/%v, want 8/4", b.Width, b.Height)
	}
}

func TestRotatedBoundsOf(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}

	// Zero rotation matches the plain envelope.
	plain, _ := BoundsOf(pts)
	rotated, err := RotatedBoundsOf(pts, 0)
	if err != nil {
		t.Fatalf("RotatedBoundsOf: %v", err)
	}
	if !boundsApprox(plain, rotated, 1e-10) {
		t.Errorf("rotation 0: %+v != %+v", rotated, plain)
	}

	// A quarter turn about the segment center (5, 0) makes the
	// horizontal segment vertical.
	quarter, err := RotatedBoundsOf(pts, math.Pi/2)
	if err != nil {
		t.Fatalf("RotatedBoundsOf: %v", err)
	}
	expect := NewBounds(5, -5, 5, 5)
	if !boundsApprox(quarter, expect, 1e-9) {
		t.Errorf("quarter turn = %+v, want %+v", quarter, expect)
	}
}

func TestBounds_Translate(t *testing.T) {
	b := NewBounds(0, 0, 10, 10).Translate(Pt(5, -3))
	expect := NewBounds(5, -3, 15, 7)
	if !boundsApprox(b, expect, 1e-10) {
		t.Errorf("Translate = %+v, want %+v", b, expect)
	}
}

func TestBounds_Contains(t *testing.T) {
	outer := NewBounds(0, 0, 10, 10)
	tests := []struct {
		name   string
		inner  Bounds
		expect bool
	}{
		{"inside", NewBounds(2, 2, 8, 8), true},
		{"equal", NewBounds(0, 0, 10, 10), true},
		{"touching edge", NewBounds(0, 0, 10, 5), true},
		{"poking out", NewBounds(5, 5, 15, 8), false},
		{"disjoint", NewBounds(20, 20, 30, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.expect {
				t.Errorf("Contains = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestBounds_Overlaps(t *testing.T) {
	a := NewBounds(0, 0, 10, 10)
	tests := []struct {
		name   string
		b      Bounds
		expect bool
	}{
		{"overlap", NewBounds(5, 5, 15, 15), true},
		{"touching corner", NewBounds(10, 10, 20, 20), true},
		{"touching edge", NewBounds(10, 0, 20, 10), true},
		{"disjoint", NewBounds(11, 0, 20, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.expect {
				t.Errorf("Overlaps = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestBounds_Center(t *testing.T) {
	c := NewBounds(0, 0, 10, 20).Center()
	if !c.Approx(Pt(5, 10), 1e-10) {
		t.Errorf("Center = %v, want (5, 10)", c)
	}
}

func TestBounds_Union(t *testing.T) {
	u := NewBounds(0, 0, 5, 5).Union(NewBounds(3, 3, 10, 8))
	expect := NewBounds(0, 0, 10, 8)
	if !boundsApprox(u, expect, 1e-10) {
		t.Errorf("Union = %+v, want %+v", u, expect)
	}
}
