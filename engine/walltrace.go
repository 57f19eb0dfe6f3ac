package engine

import "math"

// This file implements component F's final stage: walking the offset
// edges of a wall-outline network into closed boundary polylines. Each
// boundary is traced by always taking the sharpest available right turn
// at every node, which for a set of edges built by BuildOffsetEdges
// produces the wall's outer boundary as a counter-clockwise loop and
// each inner boundary (hole) as a clockwise loop.

// TraceBoundaries walks edges into one or more closed polylines. A walk
// that does not return to its starting point is discarded, as is a
// closed loop with fewer than 3 points.
func TraceBoundaries(edges []OffsetEdge) []Polyline {
	points, adjacency := buildTraceGraph(edges)

	used := make([]bool, len(edges))
	var boundaries []Polyline

	for {
		startEdge, ok := findStartEdge(edges, used)
		if !ok {
			break
		}
		loop := traceOneBoundary(points, adjacency, edges, used, startEdge)
		if len(loop) >= 3 {
			boundaries = append(boundaries, Polyline{Vertices: loop, Closed: true})
		}
	}

	debugLog("TraceBoundaries: %d edges -> %d boundaries", len(edges), len(boundaries))

	return boundaries
}

type traceArm struct {
	edgeIdx int
	dir     Vector2D
}

func buildTraceGraph(edges []OffsetEdge) ([]Point2D, [][]traceArm) {
	var points []Point2D
	ensurePoint := func(p Point2D) int {
		for i, existing := range points {
			dx := existing.X - p.X
			dy := existing.Y - p.Y
			if dx*dx+dy*dy < traceDedupTolerance {
				return i
			}
		}
		points = append(points, p)
		return len(points) - 1
	}

	starts := make([]int, len(edges))
	for i, e := range edges {
		starts[i] = ensurePoint(e.Start)
		ensurePoint(e.End)
	}

	adjacency := make([][]traceArm, len(points))
	for i, e := range edges {
		dir := Vector2D{X: e.End.X - e.Start.X, Y: e.End.Y - e.Start.Y}
		adjacency[starts[i]] = append(adjacency[starts[i]], traceArm{edgeIdx: i, dir: dir})
	}

	return points, adjacency
}

// findStartEdge picks the lowest-y-then-x unused edge's start point as a
// deterministic trace origin.
func findStartEdge(edges []OffsetEdge, used []bool) (int, bool) {
	best := -1
	for i, e := range edges {
		if used[i] {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := edges[best]
		if e.Start.Y < b.Start.Y-TOLERANCE || (abs(e.Start.Y-b.Start.Y) < TOLERANCE && e.Start.X < b.Start.X) {
			best = i
		}
	}
	return best, best >= 0
}

func traceOneBoundary(points []Point2D, adjacency [][]traceArm, edges []OffsetEdge, used []bool, startEdge int) []PolylineVertex {
	startPointIdx := endPointIdx(points, edges[startEdge].Start)
	var loop []PolylineVertex

	currentEdge := startEdge
	currentPoint := startPointIdx

	for {
		used[currentEdge] = true
		loop = append(loop, LineVertex(points[currentPoint].X, points[currentPoint].Y))

		nextPoint := endPointIdx(points, edges[currentEdge].End)
		if nextPoint == startPointIdx && len(loop) > 1 {
			break
		}

		incomingDir := Vector2D{X: edges[currentEdge].End.X - edges[currentEdge].Start.X, Y: edges[currentEdge].End.Y - edges[currentEdge].Start.Y}

		next, ok := pickNextEdge(adjacency, used, nextPoint, incomingDir)
		if !ok {
			return nil
		}
		currentEdge = next
		currentPoint = nextPoint
	}

	return loop
}

func endPointIdx(points []Point2D, p Point2D) int {
	for i, existing := range points {
		dx := existing.X - p.X
		dy := existing.Y - p.Y
		if dx*dx+dy*dy < traceDedupTolerance {
			return i
		}
	}
	return -1
}

// pickNextEdge chooses, among the unused edges leaving node, the one
// whose direction is the smallest positive counter-clockwise turn away
// from straight-back along incomingDir. An exact U-turn (delta 0) is
// treated as a full turn (2*pi) so any genuine turn is preferred over
// doubling back.
func pickNextEdge(adjacency [][]traceArm, used []bool, node int, incomingDir Vector2D) (int, bool) {
	reverseAngle := math.Atan2(-incomingDir.Y, -incomingDir.X)

	best := -1
	bestDelta := math.Inf(1)
	for _, a := range adjacency[node] {
		if used[a.edgeIdx] {
			continue
		}

		angle := math.Atan2(a.dir.Y, a.dir.X)
		delta := normalizeAngle(angle - reverseAngle)
		if delta <= TOLERANCE {
			delta = 2 * math.Pi
		}
		if delta < bestDelta {
			bestDelta = delta
			best = a.edgeIdx
		}
	}
	return best, best >= 0
}

func normalizeAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
