package engine

import (
	"math"
	"sort"
)

// This file implements component D's second stage: cutting a raw offset
// polyline into slices at every self-intersection point.

// Slice is a contiguous run of a raw offset polyline between two
// self-intersection points.
type Slice struct {
	Vertices []PolylineVertex
	// StartIdx and EndIdx index into the Intersection slice this slice
	// was built from, identifying the intersections that bound it.
	StartIdx, EndIdx int
}

// BuildSlices cuts pline at every point named in intersections, producing
// the sub-paths between consecutive cut points (in walk order around the
// polyline). Returns nil if there are no intersections or no vertices.
func BuildSlices(pline Polyline, intersections []Intersection) []Slice {
	if len(intersections) == 0 || len(pline.Vertices) == 0 {
		return nil
	}

	n := len(pline.Vertices)
	segCount := pline.SegmentCount()

	type split struct {
		seg   int
		t     float64
		ixIdx int
	}
	splits := make([]split, 0, len(intersections)*2)
	for idx, ix := range intersections {
		splits = append(splits, split{seg: ix.SegI, t: ix.TI, ixIdx: idx})
		splits = append(splits, split{seg: ix.SegJ, t: ix.TJ, ixIdx: idx})
	}
	sort.Slice(splits, func(a, b int) bool {
		if splits[a].seg != splits[b].seg {
			return splits[a].seg < splits[b].seg
		}
		return splits[a].t < splits[b].t
	})

	var slices []Slice
	total := len(splits)

	for i := 0; i < total; i++ {
		start := splits[i]
		end := splits[(i+1)%total]

		verts := buildSliceVerts(pline.Vertices, n, segCount, start.seg, start.t, end.seg, end.t)
		if len(verts) >= 2 {
			slices = append(slices, Slice{Vertices: verts, StartIdx: start.ixIdx, EndIdx: end.ixIdx})
		}
	}

	return slices
}

// buildSliceVerts builds the vertex chain from (segStart, tStart) to
// (segEnd, tEnd), preserving arc curvature for any segment the slice
// wholly or partially covers.
func buildSliceVerts(vertices []PolylineVertex, n, segCount, segStart int, tStart float64, segEnd int, tEnd float64) []PolylineVertex {
	var verts []PolylineVertex

	if segStart == segEnd {
		startPos := pointOnSegment(vertices, n, segStart, tStart)
		endPos := pointOnSegment(vertices, n, segEnd, tEnd)
		bulge := subBulge(vertices[segStart].Bulge, tStart, tEnd)
		verts = append(verts, PolylineVertex{X: startPos.X, Y: startPos.Y, Bulge: bulge})
		verts = append(verts, LineVertex(endPos.X, endPos.Y))
		return verts
	}

	startPos := pointOnSegment(vertices, n, segStart, tStart)
	startBulge := subBulge(vertices[segStart].Bulge, tStart, 1.0)
	verts = append(verts, PolylineVertex{X: startPos.X, Y: startPos.Y, Bulge: startBulge})

	seg := (segStart + 1) % segCount
	for seg != segEnd {
		v := vertices[seg]
		verts = append(verts, PolylineVertex{X: v.X, Y: v.Y, Bulge: v.Bulge})
		seg = (seg + 1) % segCount
	}

	vEndStart := vertices[segEnd]
	endBulge := subBulge(vEndStart.Bulge, 0.0, tEnd)
	verts = append(verts, PolylineVertex{X: vEndStart.X, Y: vEndStart.Y, Bulge: endBulge})

	endPos := pointOnSegment(vertices, n, segEnd, tEnd)
	verts = append(verts, LineVertex(endPos.X, endPos.Y))

	return verts
}

// pointOnSegment evaluates the position at parameter t along segment
// segIdx, linearly for a line or via ArcPointAt for an arc.
func pointOnSegment(vertices []PolylineVertex, n, segIdx int, t float64) Point2D {
	v0 := vertices[segIdx]
	v1 := vertices[(segIdx+1)%n]

	if !v0.IsArc() {
		return Point2D{X: v0.X + t*(v1.X-v0.X), Y: v0.Y + t*(v1.Y-v0.Y)}
	}

	center, radius, startAngle, sweep := ArcFromBulge(v0.X, v0.Y, v1.X, v1.Y, v0.Bulge)
	return ArcPointAt(center, radius, startAngle, sweep, t)
}

// subBulge computes the bulge of the sub-arc spanning [tStart, tEnd] of a
// segment with the given original bulge. Returns 0 for line segments.
func subBulge(originalBulge, tStart, tEnd float64) float64 {
	if abs(originalBulge) < bulgeEpsilon {
		return 0
	}
	sweep := 4.0 * math.Atan(originalBulge)
	subSweep := sweep * (tEnd - tStart)
	return math.Tan(subSweep / 4.0)
}
