package ink

import "math"

// StrokePoint is one resampled point along a stroke's centerline.
type StrokePoint struct {
	// Point is the resampled position.
	Point Point

	// Pressure is the effective pressure at this point.
	Pressure float64

	// Vector is the unit direction from this point back toward the
	// previous one.
	Vector Point

	// Distance is the distance to the previous point.
	Distance float64

	// RunningLength is the total length of the stroke up to this point.
	RunningLength float64
}

// rateOfPressureChange limits how fast simulated pressure may move
// toward its speed-based target between consecutive points.
const rateOfPressureChange = 0.275

// StrokePoints resamples a raw input polyline into streamlined stroke
// points. The streamline factor pulls each sample toward the previous
// one: higher values smooth out jitter, lower values stay faithful to
// the raw input. Very short leading segments are skipped until the
// stroke has traveled at least its own size, which keeps taps from
// producing noisy micro-strokes.
func StrokePoints(pts []Point, opts StrokeOptions) []StrokePoint {
	if len(pts) == 0 {
		return nil
	}

	// Interpolation weight toward the raw input. Streamline 0 follows
	// the input exactly; streamline 1 trails far behind it.
	t := 0.15 + (1-opts.Streamline)*0.85

	// A two-point stroke is interpolated into a short run so the
	// outline has something to offset against.
	if len(pts) == 2 {
		expanded := make([]Point, 0, 5)
		expanded = append(expanded, pts[0])
		for i := 1; i < 5; i++ {
			expanded = append(expanded, pts[0].Lerp(pts[1], float64(i)/4))
		}
		pts = expanded
	}

	// A single point gets a phantom neighbor one unit away.
	if len(pts) == 1 {
		pts = []Point{pts[0], pts[0].Add(Pt(1, 1))}
	}

	out := make([]StrokePoint, 1, len(pts))
	out[0] = StrokePoint{
		Point:    pts[0],
		Pressure: clampPressure(pts[0].Pressure),
		Vector:   Pt(1, 1),
	}

	reachedMinimum := false
	runningLength := 0.0
	prev := out[0]
	last := len(pts) - 1

	for i := 1; i < len(pts); i++ {
		var point Point
		if opts.Last && i == last {
			// The final point of a finished stroke lands exactly on
			// the raw input.
			point = pts[i]
		} else {
			point = prev.Point.Lerp(pts[i], t)
		}
		if point.X == prev.Point.X && point.Y == prev.Point.Y {
			continue
		}

		distance := point.Distance(prev.Point)
		runningLength += distance

		if i < last && !reachedMinimum {
			if runningLength < opts.Size {
				continue
			}
			reachedMinimum = true
		}

		prev = StrokePoint{
			Point:         point,
			Pressure:      clampPressure(pts[i].Pressure),
			Vector:        prev.Point.Sub(point).Normalize(),
			Distance:      distance,
			RunningLength: runningLength,
		}
		out = append(out, prev)
	}

	// The first point inherits the direction of the second, once known.
	if len(out) > 1 {
		out[0].Vector = out[1].Vector
	}
	return out
}

// strokeRadius computes the half-thickness of the stroke for a given
// pressure. Thinning scales the radius on either side of the neutral
// pressure; negative thinning inverts the effect.
func strokeRadius(size, thinning, pressure float64) float64 {
	return size * (0.5 - thinning*(0.5-pressure))
}

// StrokeOutline converts a raw point sequence into a closed outline
// polygon: the centerline is resampled (StrokePoints), a thickness
// profile is computed from pressure, thinning and tapers, and the
// centerline is offset perpendicular to its tangent on both sides.
// The two edges are stitched with end caps into one closed polygon.
//
// Fewer than one point, or a non-positive size, yields nil. A stroke
// whose resampled length collapses to a single point is returned as a
// small circle of outline points (the "dot" case).
func StrokeOutline(pts []Point, opts StrokeOptions) []Point {
	return outlineFromStrokePoints(StrokePoints(pts, opts), opts)
}

// outlineFromStrokePoints builds the closed outline polygon around an
// already-resampled centerline.
func outlineFromStrokePoints(points []StrokePoint, opts StrokeOptions) []Point {
	if len(points) == 0 || opts.Size <= 0 {
		return nil
	}

	totalLength := points[len(points)-1].RunningLength
	taperStart := opts.TaperStart
	taperEnd := opts.TaperEnd

	// Squared minimum spacing between emitted edge points.
	minDistance := opts.Size * opts.Smoothing
	minDistanceSq := minDistance * minDistance

	leftPts := make([]Point, 0, len(points))
	rightPts := make([]Point, 0, len(points))

	// Seed the simulated pressure from the first few samples so the
	// stroke does not start at full width on a fast flick.
	prevPressure := points[0].Pressure
	for _, sp := range points[:min(len(points), 10)] {
		pressure := sp.Pressure
		if opts.SimulatePressure {
			sp2 := min(1, sp.Distance/opts.Size)
			rp := min(1, 1-sp2)
			pressure = min(1, prevPressure+(rp-prevPressure)*(sp2*rateOfPressureChange))
		}
		prevPressure = (prevPressure + pressure) / 2
	}

	radius := strokeRadius(opts.Size, opts.Thinning, points[len(points)-1].Pressure)
	firstRadius := -1.0
	prevVector := points[0].Vector
	pl := points[0].Point
	pr := pl
	prevSharp := false

	for i, sp := range points {
		// Trailing samples within a few units of the end are dropped;
		// the end cap covers them.
		if i < len(points)-1 && totalLength-sp.RunningLength < 3 {
			continue
		}

		pressure := sp.Pressure
		if opts.Thinning != 0 {
			if opts.SimulatePressure {
				sp2 := min(1, sp.Distance/opts.Size)
				rp := min(1, 1-sp2)
				pressure = min(1, prevPressure+(rp-prevPressure)*(sp2*rateOfPressureChange))
			}
			radius = strokeRadius(opts.Size, opts.Thinning, pressure)
		} else {
			radius = opts.Size / 2
		}
		if firstRadius < 0 {
			firstRadius = radius
		}

		// Taper multipliers near the stroke ends.
		ts := 1.0
		if taperStart > 0 && sp.RunningLength < taperStart {
			ts = easeOutQuad(sp.RunningLength / taperStart)
		}
		te := 1.0
		if taperEnd > 0 && totalLength-sp.RunningLength < taperEnd {
			te = easeOutCubic((totalLength - sp.RunningLength) / taperEnd)
		}
		radius = max(0.01, radius*min(ts, te))

		nextVector := sp.Vector
		if i < len(points)-1 {
			nextVector = points[i+1].Vector
		}
		nextDot := 1.0
		if i < len(points)-1 {
			nextDot = sp.Vector.Dot(nextVector)
		}
		prevDot := sp.Vector.Dot(prevVector)

		sharp := prevDot < 0 && !prevSharp
		nextSharp := nextDot < 0

		// A sharp corner gets a half circle of cap points on both
		// edges so the offset edges do not cross.
		if sharp || nextSharp {
			offset := prevVector.Perp().Mul(radius)
			for t := 0.0; t <= 1.0; t += 1.0 / 13 {
				tl := sp.Point.Sub(offset).RotateAround(sp.Point, math.Pi*t)
				leftPts = append(leftPts, tl)
				pl = tl
				tr := sp.Point.Add(offset).RotateAround(sp.Point, -math.Pi*t)
				rightPts = append(rightPts, tr)
				pr = tr
			}
			if nextSharp {
				prevSharp = true
			}
			continue
		}
		prevSharp = false

		if i == len(points)-1 {
			offset := sp.Vector.Perp().Mul(radius)
			leftPts = append(leftPts, sp.Point.Sub(offset))
			rightPts = append(rightPts, sp.Point.Add(offset))
			continue
		}

		// Offset perpendicular to the local tangent, averaged with the
		// next direction to round off shallow turns.
		offset := nextVector.Lerp(sp.Vector, nextDot).Perp().Mul(radius)
		tl := sp.Point.Sub(offset)
		if i <= 1 || distanceSq(pl, tl) > minDistanceSq {
			leftPts = append(leftPts, tl)
			pl = tl
		}
		tr := sp.Point.Add(offset)
		if i <= 1 || distanceSq(pr, tr) > minDistanceSq {
			rightPts = append(rightPts, tr)
			pr = tr
		}

		prevPressure = pressure
		prevVector = sp.Vector
	}

	firstPoint := points[0].Point
	lastPoint := firstPoint.Add(Pt(1, 1))
	if len(points) > 1 {
		lastPoint = points[len(points)-1].Point
	}

	// A stroke that never escaped its own size renders as a dot.
	if len(points) == 1 {
		if taperStart == 0 && taperEnd == 0 || opts.Last {
			r := firstRadius
			if r < 0 {
				r = radius
			}
			start := firstPoint.Add(firstPoint.Sub(lastPoint).Perp().Normalize().Mul(-r))
			dot := make([]Point, 0, 13)
			for t := 1.0 / 13; t <= 1.0; t += 1.0 / 13 {
				dot = append(dot, start.RotateAround(firstPoint, 2*math.Pi*t))
			}
			return dot
		}
	}

	var startCap, endCap []Point

	if taperStart == 0 && len(rightPts) > 0 {
		if opts.CapStart {
			for t := 1.0 / 13; t <= 1.0; t += 1.0 / 13 {
				startCap = append(startCap, rightPts[0].RotateAround(firstPoint, math.Pi*t))
			}
		} else if len(leftPts) > 0 {
			corners := leftPts[0].Sub(rightPts[0])
			offsetA := corners.Mul(0.5)
			offsetB := corners.Mul(0.51)
			startCap = append(startCap,
				firstPoint.Sub(offsetA),
				firstPoint.Sub(offsetB),
				firstPoint.Add(offsetB),
				firstPoint.Add(offsetA),
			)
		}
	}

	direction := points[len(points)-1].Vector.Neg().Perp()
	if taperEnd > 0 {
		endCap = append(endCap, lastPoint)
	} else if opts.CapEnd {
		start := lastPoint.Add(direction.Mul(radius))
		for t := 1.0 / 13; t <= 1.0; t += 1.0 / 13 {
			endCap = append(endCap, start.RotateAround(lastPoint, math.Pi*t))
		}
	} else {
		endCap = append(endCap,
			lastPoint.Add(direction.Mul(radius)),
			lastPoint.Add(direction.Mul(radius*0.99)),
			lastPoint.Sub(direction.Mul(radius*0.99)),
			lastPoint.Sub(direction.Mul(radius)),
		)
	}

	// Stitch: down the left edge, around the end cap, back up the
	// right edge, around the start cap.
	outline := make([]Point, 0, len(leftPts)+len(rightPts)+len(startCap)+len(endCap))
	outline = append(outline, leftPts...)
	outline = append(outline, endCap...)
	for i := len(rightPts) - 1; i >= 0; i-- {
		outline = append(outline, rightPts[i])
	}
	outline = append(outline, startCap...)
	return outline
}

func clampPressure(p float64) float64 {
	if p < 0 {
		return NeutralPressure
	}
	return min(p, 1)
}

func distanceSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// easeOutQuad is the taper-in easing for the stroke start.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// easeOutCubic is the taper-out easing for the stroke end.
func easeOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}
