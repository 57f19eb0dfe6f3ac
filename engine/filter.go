package engine

import "math"

// This file implements component E's first stage: discarding slices that
// lie too close to the original polyline, which are artifacts of the
// offset construction rather than valid offset geometry.

// FilterSlices keeps only the slices whose midpoint is at least half the
// offset distance away from original. This threshold is looser than
// TOLERANCE by design: valid offset geometry lies the full offset
// distance from original, while artifact slices lie much closer.
func FilterSlices(slices []Slice, original Polyline, distance float64) []Slice {
	threshold := abs(distance) * 0.5

	var kept []Slice
	for _, s := range slices {
		if len(s.Vertices) < 2 {
			continue
		}
		mid := s.Vertices[len(s.Vertices)/2]
		if minDistToPolyline(Point2D{X: mid.X, Y: mid.Y}, original) >= threshold {
			kept = append(kept, s)
		}
	}
	return kept
}

// minDistToPolyline returns the minimum distance from p to any segment of
// pline.
func minDistToPolyline(p Point2D, pline Polyline) float64 {
	n := len(pline.Vertices)
	segCount := pline.SegmentCount()
	minD := math.MaxFloat64

	for i := 0; i < segCount; i++ {
		v0 := pline.Vertices[i]
		v1 := pline.Vertices[(i+1)%n]

		var d float64
		if !v0.IsArc() {
			d = PointToSegmentDist(p, v0.Point(), v1.Point())
		} else {
			center, radius, startAngle, sweep := ArcFromBulge(v0.X, v0.Y, v1.X, v1.Y, v0.Bulge)
			d = PointToArcDist(p, center, radius, startAngle, sweep)
		}

		if d < minD {
			minD = d
		}
	}

	return minD
}
