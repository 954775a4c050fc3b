package ink

// StrokeOptions defines how a raw point sequence is turned into a
// pressure-shaped outline. It encapsulates every outline-related
// property in a single struct, following the gg Stroke pattern of a
// value type with copy-on-write setters.
type StrokeOptions struct {
	// Size is the base stroke diameter. Default: 16
	Size float64

	// Thinning controls how strongly pressure thins the line, in
	// [-1, 1]. Negative values invert the effect (low pressure
	// thickens). Default: 0.5
	Thinning float64

	// Smoothing softens the outline edge, in [0, 1]. Default: 0.5
	Smoothing float64

	// Streamline weights input resampling toward the running average,
	// in [0, 1]. Higher values smooth jitter at the cost of fidelity.
	// Default: 0.5
	Streamline float64

	// TaperStart is the distance over which the stroke tapers in from
	// its start. Zero disables the start taper.
	TaperStart float64

	// TaperEnd is the distance over which the stroke tapers out toward
	// its end. Zero disables the end taper.
	TaperEnd float64

	// CapStart selects a rounded start cap when true, flat when false.
	// Ignored while TaperStart is non-zero. Default: true
	CapStart bool

	// CapEnd selects a rounded end cap when true, flat when false.
	// Ignored while TaperEnd is non-zero. Default: true
	CapEnd bool

	// SimulatePressure replaces reported pressure with a speed-based
	// estimate. Set for devices that always report NeutralPressure.
	SimulatePressure bool

	// Last marks the stroke as finished. A finished stroke gets its
	// full end cap; an unfinished one is left open at the pen position.
	Last bool
}

// DefaultStrokeOptions returns StrokeOptions with default settings:
// a 16-unit pressure-sensitive stroke with round caps and no tapers.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Size:       16,
		Thinning:   0.5,
		Smoothing:  0.5,
		Streamline: 0.5,
		CapStart:   true,
		CapEnd:     true,
	}
}

// WithSize returns a copy of the options with the given base size.
func (o StrokeOptions) WithSize(size float64) StrokeOptions {
	o.Size = size
	return o
}

// WithThinning returns a copy of the options with the given thinning.
func (o StrokeOptions) WithThinning(thinning float64) StrokeOptions {
	o.Thinning = thinning
	return o
}

// WithSmoothing returns a copy of the options with the given smoothing.
func (o StrokeOptions) WithSmoothing(smoothing float64) StrokeOptions {
	o.Smoothing = smoothing
	return o
}

// WithStreamline returns a copy of the options with the given
// streamline factor.
func (o StrokeOptions) WithStreamline(streamline float64) StrokeOptions {
	o.Streamline = streamline
	return o
}

// WithTaper returns a copy of the options with the given start and end
// taper distances.
func (o StrokeOptions) WithTaper(start, end float64) StrokeOptions {
	o.TaperStart = start
	o.TaperEnd = end
	return o
}

// WithCaps returns a copy of the options with the given cap shapes.
func (o StrokeOptions) WithCaps(start, end bool) StrokeOptions {
	o.CapStart = start
	o.CapEnd = end
	return o
}

// WithSimulatePressure returns a copy of the options with pressure
// simulation enabled or disabled.
func (o StrokeOptions) WithSimulatePressure(simulate bool) StrokeOptions {
	o.SimulatePressure = simulate
	return o
}

// WithLast returns a copy of the options with the finished flag set.
func (o StrokeOptions) WithLast(last bool) StrokeOptions {
	o.Last = last
	return o
}
