package engine

// This file contains polygon-level primitives: signed area via the
// shoelace formula and canonical-start rotation for deterministic output
// ordering (invariant 1 and invariant 7 in SPEC_FULL.md §8).

// SignedArea2D computes the signed area of a polygon given as plain
// points (shoelace formula). Positive for counter-clockwise, negative
// for clockwise. Returns 0 for fewer than 3 points.
func SignedArea2D(points []Point2D) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum * 0.5
}

// LeftmostBottom returns the leftmost vertex (smallest x, ties broken by
// smallest y) of points. Panics if points is empty, matching the
// precondition every caller in this package already enforces.
func LeftmostBottom(points []Point2D) Point2D {
	best := points[0]
	for _, pt := range points[1:] {
		if pt.X < best.X-TOLERANCE || (abs(pt.X-best.X) < TOLERANCE && pt.Y < best.Y) {
			best = pt
		}
	}
	return best
}

// RotateToCanonicalStart rotates a closed polygon so it begins at its
// leftmost-bottommost vertex, for deterministic output ordering.
func RotateToCanonicalStart(points []Point2D) []Point2D {
	if len(points) < 2 {
		out := make([]Point2D, len(points))
		copy(out, points)
		return out
	}
	best := 0
	for i := 1; i < len(points); i++ {
		pt := points[i]
		b := points[best]
		if pt.X < b.X-TOLERANCE || (abs(pt.X-b.X) < TOLERANCE && pt.Y < b.Y) {
			best = i
		}
	}
	if best == 0 {
		out := make([]Point2D, len(points))
		copy(out, points)
		return out
	}
	rotated := make([]Point2D, 0, len(points))
	rotated = append(rotated, points[best:]...)
	rotated = append(rotated, points[:best]...)
	return rotated
}

// SegmentDirection returns the normalized direction from a to b, or
// ErrInvalidInput wrapped with a descriptive message if the segment has
// zero length.
func SegmentDirection(a, b Point2D) (Vector2D, error) {
	d := b.Sub(a)
	length := d.Len()
	if length < TOLERANCE {
		return Vector2D{}, wrapInvalid("zero-length segment between (%g, %g) and (%g, %g)", a.X, a.Y, b.X, b.Y)
	}
	return Vector2D{X: d.X / length, Y: d.Y / length}, nil
}
