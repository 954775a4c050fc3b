package ink

import "testing"

func TestDefaultStrokeOptions(t *testing.T) {
	o := DefaultStrokeOptions()
	if o.Size != 16 {
		t.Errorf("Size = %v, want 16", o.Size)
	}
	if o.Thinning != 0.5 || o.Smoothing != 0.5 || o.Streamline != 0.5 {
		t.Errorf("shape parameters = %v/%v/%v, want 0.5 each",
			o.Thinning, o.Smoothing, o.Streamline)
	}
	if !o.CapStart || !o.CapEnd {
		t.Error("default caps are not round")
	}
	if o.TaperStart != 0 || o.TaperEnd != 0 {
		t.Error("default tapers are not disabled")
	}
}

func TestStrokeOptionsSetters(t *testing.T) {
	base := DefaultStrokeOptions()

	o := base.
		WithSize(32).
		WithThinning(-0.25).
		WithSmoothing(0.8).
		WithStreamline(0.1).
		WithTaper(10, 20).
		WithCaps(false, true).
		WithSimulatePressure(true).
		WithLast(true)

	if o.Size != 32 || o.Thinning != -0.25 || o.Smoothing != 0.8 || o.Streamline != 0.1 {
		t.Errorf("chained setters lost a value: %+v", o)
	}
	if o.TaperStart != 10 || o.TaperEnd != 20 {
		t.Errorf("tapers = %v/%v", o.TaperStart, o.TaperEnd)
	}
	if o.CapStart || !o.CapEnd {
		t.Errorf("caps = %v/%v", o.CapStart, o.CapEnd)
	}
	if !o.SimulatePressure || !o.Last {
		t.Error("boolean setters not applied")
	}

	// Setters copy; the base stays untouched.
	if base != DefaultStrokeOptions() {
		t.Errorf("base options mutated: %+v", base)
	}
}
