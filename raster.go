package ink

import (
	"image"
	"image/draw"
	"math"

	xvector "golang.org/x/image/vector"
)

// quadSteps is the number of line segments used to flatten one
// quadratic curve for rasterization.
const quadSteps = 16

// dotSteps is the number of segments used to flatten a Dot element.
const dotSteps = 24

// flattenPath converts a path into polyline subpaths. Quadratic curves
// are subdivided uniformly; Dot elements become closed circles.
func flattenPath(p *Path) [][]Point {
	var subpaths [][]Point
	var cur []Point
	var start Point

	flush := func() {
		if len(cur) > 1 {
			subpaths = append(subpaths, cur)
		}
		cur = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			start = e.Point
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case QuadTo:
			if len(cur) == 0 {
				cur = []Point{e.Control}
			}
			from := cur[len(cur)-1]
			for i := 1; i <= quadSteps; i++ {
				t := float64(i) / quadSteps
				a := from.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				cur = append(cur, a.Lerp(b, t))
			}
		case Dot:
			flush()
			circle := make([]Point, 0, dotSteps+1)
			for i := 0; i <= dotSteps; i++ {
				angle := 2 * math.Pi * float64(i) / dotSteps
				circle = append(circle, Pt(
					e.Center.X+e.Radius*math.Cos(angle),
					e.Center.Y+e.Radius*math.Sin(angle),
				))
			}
			subpaths = append(subpaths, circle)
		case Close:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return subpaths
}

// strokeSubpaths widens a polyline into filled quads, one per segment.
// This is a preview-quality approximation: joins are not rounded.
func strokeSubpaths(subpaths [][]Point, width float64) [][]Point {
	half := max(width, 1) / 2
	var out [][]Point
	for _, sub := range subpaths {
		for i := 1; i < len(sub); i++ {
			a, b := sub[i-1], sub[i]
			n := b.Sub(a).Normalize().Perp().Mul(half)
			out = append(out, []Point{
				a.Add(n), b.Add(n), b.Sub(n), a.Sub(n), a.Add(n),
			})
		}
	}
	return out
}

// Rasterize renders a drawable into an RGBA image of the given size,
// for thumbnails and previews. The drawable's path coordinates are
// used as pixel coordinates; transform the path first to place it.
func Rasterize(d *Drawable, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if d == nil || d.Path == nil || d.Path.IsEmpty() {
		return img
	}

	subpaths := flattenPath(d.Path)
	if !d.Fill {
		subpaths = strokeSubpaths(subpaths, d.StrokeWidth)
	}

	r := xvector.NewRasterizer(width, height)
	r.DrawOp = draw.Over
	drew := false
	for _, sub := range subpaths {
		if len(sub) < 2 {
			continue
		}
		r.MoveTo(float32(sub[0].X), float32(sub[0].Y))
		for _, p := range sub[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
		drew = true
	}
	if !drew {
		return img
	}

	src := image.NewUniform(d.Color.Color())
	r.Draw(img, img.Bounds(), src, image.Point{})
	return img
}
