package engine

// This file implements component B: tessellation and reversal of the
// bulge-encoded Polyline type defined in types.go.

// Tessellate converts the polyline to a dense []Point2D, subdividing arc
// segments to within tolerance of their true curve. Line segments
// contribute only their endpoints. The first and last points of the
// result are exactly the polyline's first and last vertex positions
// (invariant 9).
func (p Polyline) Tessellate(tolerance float64) []Point2D {
	n := len(p.Vertices)
	if n == 0 {
		return nil
	}

	segCount := p.SegmentCount()
	points := make([]Point2D, 0, n*2)

	for i := 0; i < segCount; i++ {
		v0 := p.Vertices[i]
		v1 := p.Vertices[(i+1)%n]

		if i == 0 {
			points = append(points, Point2D{X: v0.X, Y: v0.Y})
		}

		if !v0.IsArc() {
			points = append(points, Point2D{X: v1.X, Y: v1.Y})
			continue
		}

		center, radius, startAngle, sweep := ArcFromBulge(v0.X, v0.Y, v1.X, v1.Y, v0.Bulge)
		if radius < bulgeEpsilon {
			points = append(points, Point2D{X: v1.X, Y: v1.Y})
			continue
		}

		nSub := arcSubdivisionCount(radius, abs(sweep), tolerance)
		for j := 1; j < nSub; j++ {
			t := float64(j) / float64(nSub)
			points = append(points, ArcPointAt(center, radius, startAngle, sweep, t))
		}
		points = append(points, Point2D{X: v1.X, Y: v1.Y})
	}

	return points
}

// Reversed returns a new polyline with vertex order reversed and bulges
// negated so that each arc's sweep direction flips (§3, §4.B, invariant
// 2). The bulge stored at reversed position j describes the arc from
// reversed-position j to j+1; for j < m-1 that equals the negation of the
// original bulge at position m-2-j; the final reversed vertex carries no
// outgoing arc and so has bulge 0.
func (p Polyline) Reversed() Polyline {
	m := len(p.Vertices)
	if m == 0 {
		return p
	}
	newVerts := make([]PolylineVertex, m)
	for j := 0; j < m; j++ {
		origIdx := m - 1 - j
		bulge := 0.0
		if j < m-1 {
			bulge = -p.Vertices[m-2-j].Bulge
		}
		orig := p.Vertices[origIdx]
		newVerts[j] = PolylineVertex{X: orig.X, Y: orig.Y, Bulge: bulge}
	}
	return Polyline{Vertices: newVerts, Closed: p.Closed}
}
