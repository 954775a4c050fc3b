// Package export renders settled shapes to host-facing formats: SVG
// path data for web embedding and single-page PDF documents.
package export

import (
	"strconv"
	"strings"

	"github.com/gogpu/ink"
)

// SVGPathData converts a path's drawing commands into SVG path data.
// Dot elements are emitted as two half-circle arcs.
func SVGPathData(p *ink.Path) string {
	if p == nil || p.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case ink.MoveTo:
			cmd(&b, "M", e.Point.X, e.Point.Y)
		case ink.LineTo:
			cmd(&b, "L", e.Point.X, e.Point.Y)
		case ink.QuadTo:
			cmd(&b, "Q", e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case ink.Dot:
			cmd(&b, "M", e.Center.X-e.Radius, e.Center.Y)
			cmd(&b, "A", e.Radius, e.Radius, 0, 1, 0, e.Center.X+e.Radius, e.Center.Y)
			cmd(&b, "A", e.Radius, e.Radius, 0, 1, 0, e.Center.X-e.Radius, e.Center.Y)
			cmd(&b, "Z")
		case ink.Close:
			cmd(&b, "Z")
		}
	}
	return b.String()
}

func cmd(b *strings.Builder, op string, args ...float64) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(op)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(a, 'f', -1, 64))
	}
}
