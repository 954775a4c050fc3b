package ink

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// TypeDraw is the shape type tag for freehand strokes.
const TypeDraw = "draw"

// ErrStrokeDone is returned when points are appended to a stroke that
// has already been completed. A settled stroke never returns to the
// drafting state.
var ErrStrokeDone = errors.New("ink: stroke already completed")

// Style controls the outline shape and paint of a stroke.
type Style struct {
	// Size is the base stroke diameter.
	Size float64

	// StrokeWidth is the width used when the outline is stroked
	// rather than filled, and for the selection indicator.
	StrokeWidth float64

	// Thinning is the pressure response, in [-1, 1].
	Thinning float64

	// Streamline is the input smoothing strength, in [0, 1].
	Streamline float64

	// Smoothing is the outline edge softening, in [0, 1].
	Smoothing float64

	// TaperStart and TaperEnd are the taper distances at each end.
	TaperStart float64
	TaperEnd   float64

	// CapStart and CapEnd select rounded (true) or flat caps.
	CapStart bool
	CapEnd   bool

	// IsFilled fills the outline polygon; false strokes it as a
	// single-width line.
	IsFilled bool

	// Color names the paint color in the canvas palette.
	Color ColorStyle
}

// DefaultStyle returns the style applied to new strokes.
func DefaultStyle() Style {
	return Style{
		Size:        16,
		StrokeWidth: 2,
		Thinning:    0.5,
		Streamline:  0.5,
		Smoothing:   0.5,
		CapStart:    true,
		CapEnd:      true,
		IsFilled:    true,
		Color:       ColorBlack,
	}
}

// strokeOptions maps a style onto outline generator options for a
// stroke in the given completion state. Pressure is simulated when the
// input reports only the neutral value.
func (s Style) strokeOptions(pts []Point, isDone bool) StrokeOptions {
	simulate := len(pts) > 1 && pts[1].Pressure == NeutralPressure
	return StrokeOptions{
		Size:             s.Size,
		Thinning:         s.Thinning,
		Smoothing:        s.Smoothing,
		Streamline:       s.Streamline,
		TaperStart:       s.TaperStart,
		TaperEnd:         s.TaperEnd,
		CapStart:         s.CapStart,
		CapEnd:           s.CapEnd,
		SimulatePressure: simulate,
		Last:             isDone,
	}
}

// nextGeomID issues identity handles for point sequences. A shape's
// handle changes whenever its point sequence is rebound, which is what
// keys the derived-geometry caches.
var nextGeomID atomic.Uint64

// Shape is one shape instance in the canvas document.
//
// The draw lifecycle is: drafting (IsDone false, points append-only) →
// finalizing (one OnSessionComplete call) → settled (IsDone true).
// From settled, Transform and TransformSingle may run any number of
// times; there is no way back to drafting.
//
// The point sequence is held behind accessors so that every edit
// rebinds it under a fresh identity handle. Mutating a snapshot
// returned by Points would go unnoticed by the caches; treat it as
// read-only.
type Shape struct {
	ID         string
	Type       string
	Name       string
	ParentID   string
	ChildIndex float64

	// Point is the shape-local origin in parent space.
	Point Point

	// Rotation is the shape's rotation in radians.
	Rotation float64

	// IsDone marks the stroke as no longer actively drawn.
	IsDone bool

	Style Style

	points []Point
	geomID uint64
}

// NewShapeID returns a fresh unique shape identifier.
func NewShapeID() string {
	return uuid.NewString()
}

// NewDrawShape creates a freehand stroke shape at the given parent
// space origin from one or more initial gesture points. An empty id is
// replaced with a fresh NewShapeID.
func NewDrawShape(id string, point Point, pts ...Point) *Shape {
	if id == "" {
		id = NewShapeID()
	}
	s := &Shape{
		ID:    id,
		Type:  TypeDraw,
		Name:  "Draw",
		Point: point,
		Style: DefaultStyle(),
	}
	s.rebind(append([]Point(nil), pts...))
	return s
}

// Points returns the shape's point sequence in shape-local, unrotated,
// unscaled space. The returned slice must not be modified.
func (s *Shape) Points() []Point {
	return s.points
}

// AppendPoint adds a gesture point while the stroke is being drawn.
// Returns ErrStrokeDone once the stroke has been completed.
func (s *Shape) AppendPoint(p Point) error {
	if s.IsDone {
		return ErrStrokeDone
	}
	next := make([]Point, len(s.points)+1)
	copy(next, s.points)
	next[len(s.points)] = p
	s.rebind(next)
	return nil
}

// SetPoints replaces the point sequence. The slice is copied.
func (s *Shape) SetPoints(pts []Point) {
	s.rebind(append([]Point(nil), pts...))
}

// rebind installs a new point sequence under a fresh identity handle.
func (s *Shape) rebind(pts []Point) {
	ReleaseShape(s)
	s.points = pts
	s.geomID = nextGeomID.Add(1)
}

// geomKey returns the shape's identity handle, assigning one lazily
// for shapes built as struct literals.
func (s *Shape) geomKey() uint64 {
	if s.geomID == 0 {
		s.geomID = nextGeomID.Add(1)
	}
	return s.geomID
}

// Apply merges a partial-shape change produced by a Util operation.
func (s *Shape) Apply(change *ShapeChange) {
	if change == nil {
		return
	}
	if change.Points != nil {
		s.rebind(change.Points)
	}
	if change.Point != nil {
		s.Point = *change.Point
	}
}

// RenderContext carries the host state a render call may depend on.
type RenderContext struct {
	DarkMode bool
}

// TransformInfo describes an in-progress resize or rotate gesture.
type TransformInfo struct {
	// Initial is the pre-transform shape snapshot.
	Initial *Shape

	// ScaleX and ScaleY are the gesture's scale factors. Negative
	// values flip the shape on that axis.
	ScaleX, ScaleY float64
}

// ShapeChange is a partial shape update returned by Util operations
// that edit geometry. Nil fields are left unchanged.
type ShapeChange struct {
	Point  *Point
	Points []Point
}

// Drawable is the render output for one shape: a drawing-command path
// plus the paint parameters the host needs to draw it.
type Drawable struct {
	Path *Path

	// Fill selects filling the outline polygon; false means stroke
	// the path as a single-width line.
	Fill bool

	// StrokeWidth is the line width when Fill is false.
	StrokeWidth float64

	// Color is the resolved paint color for the active theme.
	Color RGBA
}

// Util is the behavior contract a shape type implements to participate
// in the canvas. The host dispatches on the shape's Type tag through
// the registry.
type Util interface {
	// Bounds returns the shape's axis-aligned bounds in parent space,
	// ignoring rotation.
	Bounds(s *Shape) (Bounds, error)

	// RotatedBounds returns the bounds of the shape's points after
	// applying the shape's rotation.
	RotatedBounds(s *Shape) (Bounds, error)

	// Center returns the center of the shape's bounds.
	Center(s *Shape) (Point, error)

	// ShouldRender reports whether a repaint is needed going from prev
	// to next: true iff the point sequence or style changed.
	ShouldRender(prev, next *Shape) bool

	// Render produces the shape's drawable output.
	Render(s *Shape, ctx RenderContext) (*Drawable, error)

	// Indicator produces the lightweight selection-outline path.
	Indicator(s *Shape) (*Path, error)

	// HitTestPoint reports whether a parent-space point hits the shape.
	HitTestPoint(s *Shape, p Point) bool

	// HitTestBounds reports whether the shape intersects, contains, or
	// is contained by the query box, accounting for rotation.
	HitTestBounds(s *Shape, query Bounds) bool

	// Transform maps the shape's points proportionally from the
	// initial shape's bounds into target, respecting axis flips.
	Transform(s *Shape, target Bounds, info TransformInfo) (*ShapeChange, error)

	// TransformSingle is the single-shape variant of Transform.
	TransformSingle(s *Shape, target Bounds, info TransformInfo) (*ShapeChange, error)

	// OnSessionComplete normalizes the shape when its draw gesture
	// ends, re-origining the points so local bounds touch the origin.
	OnSessionComplete(s *Shape) (*ShapeChange, error)
}

// Registry of shape utils by type tag. New shape types plug in at
// runtime with RegisterUtil.
var (
	utilsMu sync.RWMutex
	utils   = map[string]Util{}
)

// RegisterUtil installs the Util for a shape type, replacing any
// existing registration.
func RegisterUtil(shapeType string, u Util) {
	utilsMu.Lock()
	defer utilsMu.Unlock()
	utils[shapeType] = u
}

// UtilFor returns the registered Util for a shape type.
func UtilFor(shapeType string) (Util, bool) {
	utilsMu.RLock()
	defer utilsMu.RUnlock()
	u, ok := utils[shapeType]
	return u, ok
}

func init() {
	RegisterUtil(TypeDraw, &DrawUtil{})
}
