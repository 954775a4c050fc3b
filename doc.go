// Package ink is a shape engine for freehand vector strokes on an
// infinite canvas.
//
// # Overview
//
// ink turns ordered sequences of pressure-tagged points into
// pressure-shaped outlines, computes axis-aligned and rotated bounding
// geometry, answers selection queries, and applies resize transforms.
// It is consumed as a library by a host canvas/document system; ink
// itself owns no document store, selection UI, or rendering surface.
//
// # Quick Start
//
//	import "github.com/gogpu/ink"
//
//	// Begin a stroke when the draw gesture starts.
//	shape := ink.NewDrawShape("", ink.Pt(120, 80), ink.Pt(0, 0))
//
//	// Append points as the pointer moves.
//	shape.AppendPoint(ink.Ptp(10, 4, 0.7))
//
//	// Finalize when the gesture ends.
//	util, _ := ink.UtilFor(shape.Type)
//	change, _ := util.OnSessionComplete(shape)
//	shape.Apply(change)
//	shape.IsDone = true
//
//	// Paint.
//	drawable, _ := util.Render(shape, ink.RenderContext{})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Point, Bounds, Path, StrokeOptions, Shape, Util
//   - Intersection queries for selection gestures
//   - internal/cache: identity-keyed memoization of derived geometry
//   - preset: named stroke styles loaded from YAML
//   - export: PDF and SVG output for settled shapes
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, counter-clockwise
//
// # Concurrency
//
// Geometry computation is synchronous and runs on the calling
// goroutine. The derived-geometry caches tolerate concurrent readers,
// but each shape expects a single writer at a time; the host
// serializes interactions per shape.
package ink
