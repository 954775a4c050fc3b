package ink

import "testing"

func TestIntersectBoundsBounds(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Bounds
		expect bool
	}{
		{"overlap", NewBounds(0, 0, 10, 10), NewBounds(5, 5, 15, 15), true},
		{"contained", NewBounds(0, 0, 10, 10), NewBounds(2, 2, 8, 8), true},
		{"touching", NewBounds(0, 0, 10, 10), NewBounds(10, 0, 20, 10), true},
		{"disjoint", NewBounds(0, 0, 10, 10), NewBounds(20, 20, 30, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectBoundsBounds(tt.a, tt.b)
			if (len(got) > 0) != tt.expect {
				t.Errorf("intersections = %v, want hit=%v", got, tt.expect)
			}
		})
	}
}

func TestIntersectBoundsBounds_OverlapRegion(t *testing.T) {
	hits := IntersectBoundsBounds(NewBounds(0, 0, 10, 10), NewBounds(5, 5, 15, 15))
	if len(hits) != 1 {
		t.Fatalf("expected one intersection, got %d", len(hits))
	}
	corners := hits[0].Points
	if len(corners) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(corners))
	}
	if !corners[0].Approx(Pt(5, 5), 1e-10) || !corners[2].Approx(Pt(10, 10), 1e-10) {
		t.Errorf("overlap region corners = %v", corners)
	}
}

func TestIntersectBoundsPolyline(t *testing.T) {
	box := NewBounds(0, 0, 10, 10)
	tests := []struct {
		name   string
		pts    []Point
		expect bool
	}{
		{
			// Both endpoints outside, segment crosses the box.
			"crossing segment",
			[]Point{Pt(-5, 5), Pt(15, 5)},
			true,
		},
		{
			"entering segment",
			[]Point{Pt(-5, 5), Pt(5, 5)},
			true,
		},
		{
			"fully inside",
			[]Point{Pt(2, 2), Pt(8, 8)},
			false,
		},
		{
			"fully outside",
			[]Point{Pt(20, 20), Pt(30, 30)},
			false,
		},
		{
			"touching edge",
			[]Point{Pt(-5, 0), Pt(5, 0)},
			true,
		},
		{
			"single point",
			[]Point{Pt(5, 5)},
			false,
		},
		{
			"empty",
			nil,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectBoundsPolyline(box, tt.pts)
			if (len(got) > 0) != tt.expect {
				t.Errorf("intersections = %v, want hit=%v", got, tt.expect)
			}
		})
	}
}

func TestIntersectBoundsPolyline_SideLabels(t *testing.T) {
	box := NewBounds(0, 0, 10, 10)
	hits := IntersectBoundsPolyline(box, []Point{Pt(-5, 5), Pt(15, 5)})
	labels := map[string]bool{}
	for _, h := range hits {
		labels[h.Label] = true
	}
	if !labels["left"] || !labels["right"] {
		t.Errorf("expected left and right side hits, got %v", hits)
	}
}

func TestIntersectPolylineBounds_Symmetric(t *testing.T) {
	box := NewBounds(0, 0, 10, 10)
	pts := []Point{Pt(-5, 5), Pt(15, 5)}
	a := IntersectBoundsPolyline(box, pts)
	b := IntersectPolylineBounds(pts, box)
	if len(a) != len(b) {
		t.Errorf("symmetric forms disagree: %d vs %d", len(a), len(b))
	}
}

func TestIntersectSegmentSegment(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 Point
		expect         bool
	}{
		{"crossing", Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0), true},
		{"endpoint touch", Pt(0, 0), Pt(5, 5), Pt(5, 5), Pt(10, 0), true},
		{"parallel", Pt(0, 0), Pt(10, 0), Pt(0, 1), Pt(10, 1), false},
		{"disjoint", Pt(0, 0), Pt(1, 1), Pt(5, 5), Pt(6, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := intersectSegmentSegment(tt.a0, tt.a1, tt.b0, tt.b1)
			if got != tt.expect {
				t.Errorf("intersectSegmentSegment = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestIntersectSegmentSegment_Point(t *testing.T) {
	p, ok := intersectSegmentSegment(Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0))
	if !ok {
		t.Fatal("expected intersection")
	}
	if !p.Approx(Pt(5, 5), 1e-10) {
		t.Errorf("intersection point = %v, want (5, 5)", p)
	}
}
