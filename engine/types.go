package engine

// This file contains the core type definitions for the polyline offsetting
// and wall-outline engine: the value types shared across every pipeline
// stage (arc math, raw-offset builder, slicing, wall-outline network).

// ==============================================================================
// Core Geometry Types
// ==============================================================================

// Point2D is a point with 64-bit float coordinates.
type Point2D struct {
	X, Y float64
}

// Vector2D is a displacement with 64-bit float components. It shares
// Point2D's representation but is distinguished by intent.
type Vector2D struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point2D) Add(v Vector2D) Point2D {
	return Point2D{p.X + v.X, p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point2D) Sub(q Point2D) Vector2D {
	return Vector2D{p.X - q.X, p.Y - q.Y}
}

// Len returns the Euclidean length of v.
func (v Vector2D) Len() float64 {
	return hypot(v.X, v.Y)
}

// Scale returns v scaled by s.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{v.X * s, v.Y * s}
}

// Normalized returns v divided by its length, or the zero vector if v is
// shorter than TOLERANCE.
func (v Vector2D) Normalized() Vector2D {
	l := v.Len()
	if l < TOLERANCE {
		return Vector2D{}
	}
	return Vector2D{v.X / l, v.Y / l}
}

// LeftNormal returns the left-hand normal of v: (-dy, dx).
func (v Vector2D) LeftNormal() Vector2D {
	return Vector2D{-v.Y, v.X}
}

// Dot returns the dot product of v and w.
func (v Vector2D) Dot(w Vector2D) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar (z-component) cross product of v and w.
func (v Vector2D) Cross(w Vector2D) float64 {
	return v.X*w.Y - v.Y*w.X
}

// PointsEqual reports whether a and b coincide within TOLERANCE.
func PointsEqual(a, b Point2D) bool {
	return hypot(a.X-b.X, a.Y-b.Y) < TOLERANCE
}

// ==============================================================================
// Bulge-Encoded Polyline
// ==============================================================================

// PolylineVertex is a (x, y, bulge) triple. Bulge zero means a straight-line
// segment to the next vertex; a nonzero bulge encodes a circular arc via
// bulge = tan(sweep/4): positive sweeps counter-clockwise, negative sweeps
// clockwise, and |bulge| == 1 is an exact semicircle.
type PolylineVertex struct {
	X, Y  float64
	Bulge float64
}

// Point returns the vertex's position as a Point2D.
func (v PolylineVertex) Point() Point2D {
	return Point2D{v.X, v.Y}
}

// IsArc reports whether the segment starting at this vertex is a circular
// arc rather than a straight line.
func (v PolylineVertex) IsArc() bool {
	return abs(v.Bulge) > 1e-12
}

// LineVertex returns a vertex with bulge zero (straight segment to next).
func LineVertex(x, y float64) PolylineVertex {
	return PolylineVertex{X: x, Y: y}
}

// ArcVertex returns a vertex whose outgoing segment is a circular arc with
// the given bulge.
func ArcVertex(x, y, bulge float64) PolylineVertex {
	return PolylineVertex{X: x, Y: y, Bulge: bulge}
}

// Polyline is a sequence of PolylineVertex plus a closed flag. Segment
// count is len(Vertices) if Closed, len(Vertices)-1 otherwise.
type Polyline struct {
	Vertices []PolylineVertex
	Closed   bool
}

// NewPolylineFromPoints builds a line-only Polyline (all bulges zero) from
// plain points.
func NewPolylineFromPoints(points []Point2D, closed bool) Polyline {
	verts := make([]PolylineVertex, len(points))
	for i, p := range points {
		verts[i] = LineVertex(p.X, p.Y)
	}
	return Polyline{Vertices: verts, Closed: closed}
}

// SegmentCount returns the number of segments described by the polyline.
func (p Polyline) SegmentCount() int {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// ==============================================================================
// Pipeline-Internal Types
// ==============================================================================

// OffsetSegment is the parallel-offset version of a single polyline
// segment, produced by the raw-offset builder (component C) from a
// PolylineVertex pair.
type OffsetSegment struct {
	Start, End       Point2D
	Bulge            float64
	TangentAtStart   Vector2D
	TangentAtEnd     Vector2D
	OriginalSegIndex int // index of the source segment in the input polyline
}

// IsArc reports whether this offset segment is a circular arc.
func (s OffsetSegment) IsArc() bool {
	return abs(s.Bulge) > 1e-12
}

// Intersection is one self-crossing between non-adjacent polyline
// segments of a raw offset.
type Intersection struct {
	SegI, SegJ int     // SegI < SegJ
	TI, TJ     float64 // parameters in [0,1] along each segment
	Point      Point2D
}

// Tolerances used throughout the engine. A single base TOLERANCE anchors
// every scaled variant; each constant's comment says where it is used.
const (
	// TOLERANCE is the base numeric tolerance for point/scalar equality.
	TOLERANCE = 1e-10

	// endpointTolerance is used for parametric endpoint tests (t within
	// this of 0 or 1 counts as "at the endpoint").
	endpointTolerance = TOLERANCE * 100

	// traceDedupTolerance is used for point deduplication during
	// boundary tracing. Compared against a squared distance, not a
	// linear one.
	traceDedupTolerance = TOLERANCE * 1e4

	// stitchTolerance is the slice-endpoint matching tolerance used by
	// the stitch step. Three orders of magnitude looser than TOLERANCE;
	// see DESIGN.md for why this is retained as-is.
	stitchTolerance = 1e-4

	// flatCapCosine defines "near-180 degree reversal" for corner
	// resolution: tangent dot products below this trigger a flat cap.
	flatCapCosine = -0.98

	// miterLimitFactor caps miter extensions (as a multiple of |d|)
	// before falling back to a bevel.
	miterLimitFactor = 4.0

	// bulgeEpsilon is the threshold below which a bulge is treated as
	// exactly zero (a line segment rather than an arc).
	bulgeEpsilon = 1e-12
)
