package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/ink"
)

// PDFOptions controls PDF page setup.
type PDFOptions struct {
	// Orientation is "P" (portrait) or "L" (landscape). Default "P".
	Orientation string

	// PageSize is a gofpdf size name such as "A4" or "Letter".
	// Default "A4".
	PageSize string

	// Scale converts canvas units to PDF points. Default 1.
	Scale float64

	// DarkMode selects the dark palette for paint colors.
	DarkMode bool
}

func (o PDFOptions) withDefaults() PDFOptions {
	if o.Orientation == "" {
		o.Orientation = "P"
	}
	if o.PageSize == "" {
		o.PageSize = "A4"
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
	return o
}

// PDF writes the given shapes onto a single PDF page. Each shape is
// rendered through its registered util and placed with its parent
// space origin and rotation; a shape whose render fails is skipped,
// not fatal, matching the engine's paint-pass contract.
func PDF(w io.Writer, shapes []*ink.Shape, opts PDFOptions) error {
	opts = opts.withDefaults()

	pdf := gofpdf.New(opts.Orientation, "pt", opts.PageSize, "")
	pdf.AddPage()

	for _, s := range shapes {
		u, ok := ink.UtilFor(s.Type)
		if !ok {
			return fmt.Errorf("export: no util registered for shape type %q", s.Type)
		}
		d, err := u.Render(s, ink.RenderContext{DarkMode: opts.DarkMode})
		if err != nil {
			ink.Logger().Warn("export: skipping shape",
				slog.String("shape", s.ID),
				slog.Any("err", err))
			continue
		}
		drawShape(pdf, s, d, opts.Scale)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// placement builds the local-to-page matrix for a shape: rotate about
// the local bounds center, translate to the parent-space origin, then
// scale to page units.
func placement(s *ink.Shape, scale float64) ink.Matrix {
	m := ink.Translate(s.Point.X, s.Point.Y)
	if s.Rotation != 0 {
		if b, err := ink.BoundsOf(s.Points()); err == nil {
			c := b.Center()
			rotate := ink.Translate(c.X, c.Y).
				Multiply(ink.Rotate(s.Rotation)).
				Multiply(ink.Translate(-c.X, -c.Y))
			m = m.Multiply(rotate)
		}
	}
	return ink.Scale(scale, scale).Multiply(m)
}

func drawShape(pdf *gofpdf.Fpdf, s *ink.Shape, d *ink.Drawable, scale float64) {
	path := d.Path.Transform(placement(s, scale))

	r, g, b := int(d.Color.R*255), int(d.Color.G*255), int(d.Color.B*255)
	pdf.SetFillColor(r, g, b)
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(d.StrokeWidth * scale)

	style := "D"
	if d.Fill {
		style = "F"
	}

	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case ink.MoveTo:
			pdf.MoveTo(e.Point.X, e.Point.Y)
			open = true
		case ink.LineTo:
			pdf.LineTo(e.Point.X, e.Point.Y)
		case ink.QuadTo:
			pdf.CurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case ink.Dot:
			if open {
				pdf.DrawPath(style)
				open = false
			}
			pdf.Circle(e.Center.X, e.Center.Y, e.Radius*scale, "F")
		case ink.Close:
			pdf.ClosePath()
		}
	}
	if open {
		pdf.DrawPath(style)
	}
}
