package engine

import (
	"math"
	"sort"
)

// This file implements component F's third stage: offsetting every
// sub-segment of a network to both sides by halfWidth, resolving corners
// at junction nodes by intersecting adjacent arms' offset lines, and
// capping dead ends square.

// OffsetEdge is one edge of the traced wall-outline boundary: either a
// side edge running alongside an original sub-segment, or a cap edge
// closing off a dead end.
type OffsetEdge struct {
	Start, End Point2D
}

// offsetLineData holds the left/right parallel lines for one sub-segment,
// indexed the same as Network.SubSegments.
type offsetLineData struct {
	dir                  Vector2D
	leftStart, leftEnd   Point2D
	rightStart, rightEnd Point2D
}

// BuildOffsetEdges produces the side and cap edges of a wall outline at
// the given half-width, from a previously built network. halfWidth is
// applied to both sides, giving a centered wall; asymmetric walls are
// not exposed at this layer since no SPEC_FULL.md component currently
// needs them, but offsetLineData already carries distinct left/right
// points so adding that is a small extension.
func BuildOffsetEdges(net Network, halfWidth float64) []OffsetEdge {
	lines := make([]offsetLineData, len(net.SubSegments))
	for i, ss := range net.SubSegments {
		lines[i] = computeOffsetLines(ss, halfWidth, halfWidth)
	}

	edges := make([]OffsetEdge, 0, len(net.SubSegments)*2)
	for i := range net.SubSegments {
		edges = append(edges, OffsetEdge{Start: lines[i].leftEnd, End: lines[i].leftStart})
		edges = append(edges, OffsetEdge{Start: lines[i].rightStart, End: lines[i].rightEnd})
	}

	resolveAllEndpoints(net, lines, edges)
	appendDeadEndCaps(net, lines, &edges)

	return edges
}

func computeOffsetLines(ss SubSegment, leftWidth, rightWidth float64) offsetLineData {
	dx := ss.End.X - ss.Start.X
	dy := ss.End.Y - ss.Start.Y
	length := hypot(dx, dy)
	dir := Vector2D{X: dx / length, Y: dy / length}
	ln := dir.LeftNormal()

	return offsetLineData{
		dir:        dir,
		leftStart:  Point2D{X: ss.Start.X + leftWidth*ln.X, Y: ss.Start.Y + leftWidth*ln.Y},
		leftEnd:    Point2D{X: ss.End.X + leftWidth*ln.X, Y: ss.End.Y + leftWidth*ln.Y},
		rightStart: Point2D{X: ss.Start.X - rightWidth*ln.X, Y: ss.Start.Y - rightWidth*ln.Y},
		rightEnd:   Point2D{X: ss.End.X - rightWidth*ln.X, Y: ss.End.Y - rightWidth*ln.Y},
	}
}

// arm is one sub-segment as seen from a particular node: the direction it
// leaves that node in, and whether the node is the sub-segment's Start or
// End (which determines which offset-line endpoints to intersect).
type arm struct {
	subSegIdx int
	outgoing  bool // true if node is ss.StartNode (segment points away from node)
	angle     float64
}

func armsAtNode(net Network, nodeIdx int) []arm {
	var arms []arm
	for i, ss := range net.SubSegments {
		if ss.StartNode == nodeIdx {
			dx, dy := ss.End.X-ss.Start.X, ss.End.Y-ss.Start.Y
			arms = append(arms, arm{subSegIdx: i, outgoing: true, angle: math.Atan2(dy, dx)})
		}
		if ss.EndNode == nodeIdx {
			dx, dy := ss.Start.X-ss.End.X, ss.Start.Y-ss.End.Y
			arms = append(arms, arm{subSegIdx: i, outgoing: false, angle: math.Atan2(dy, dx)})
		}
	}
	return arms
}

// offsetLineAtNode returns the (left, right) points of sub-segment arm's
// offset lines nearest to the node, oriented so "left"/"right" are always
// relative to the direction the arm leaves the node in. For an incoming
// arm (node is the sub-segment's end), that outward direction is the
// reverse of the sub-segment's own forward direction, so its native
// left/right roles swap.
func offsetLineAtNode(lines []offsetLineData, a arm) (left, right Point2D) {
	ld := lines[a.subSegIdx]
	if a.outgoing {
		return ld.leftStart, ld.rightStart
	}
	return ld.rightEnd, ld.leftEnd
}

func setOffsetLineAtNode(edges []OffsetEdge, lines []offsetLineData, a arm, left, right Point2D) {
	ld := &lines[a.subSegIdx]
	if a.outgoing {
		ld.leftStart, ld.rightStart = left, right
	} else {
		ld.rightEnd, ld.leftEnd = left, right
	}
	rewriteEdgesForSubSeg(edges, lines, a.subSegIdx)
}

// rewriteEdgesForSubSeg keeps the flattened edges slice in sync after
// offsetLineData for a sub-segment is updated in place by corner
// resolution. Sub-segment i owns edges[2i] (left, end→start) and
// edges[2i+1] (right, start→end).
func rewriteEdgesForSubSeg(edges []OffsetEdge, lines []offsetLineData, idx int) {
	ld := lines[idx]
	edges[2*idx] = OffsetEdge{Start: ld.leftEnd, End: ld.leftStart}
	edges[2*idx+1] = OffsetEdge{Start: ld.rightStart, End: ld.rightEnd}
}

// resolveAllEndpoints walks every non-dead-end node, sorts its arms by
// angle, and intersects each arm's left offset line with the next arm's
// right offset line to produce a mitered corner point shared by both.
func resolveAllEndpoints(net Network, lines []offsetLineData, edges []OffsetEdge) {
	for nodeIdx, node := range net.Nodes {
		if node.Kind == NodeDeadEnd {
			continue
		}
		arms := armsAtNode(net, nodeIdx)
		if len(arms) < 2 {
			continue
		}
		sort.Slice(arms, func(i, j int) bool { return arms[i].angle < arms[j].angle })

		n := len(arms)
		for i := 0; i < n; i++ {
			cur := arms[i]
			next := arms[(i+1)%n]

			curLeft, _ := offsetLineAtNode(lines, cur)
			_, nextRight := offsetLineAtNode(lines, next)

			curDir := lines[cur.subSegIdx].dir
			nextDir := lines[next.subSegIdx].dir
			if !cur.outgoing {
				curDir = Vector2D{X: -curDir.X, Y: -curDir.Y}
			}
			if !next.outgoing {
				nextDir = Vector2D{X: -nextDir.X, Y: -nextDir.Y}
			}

			corner, ok := intersectOffsetLines(curLeft, curDir, nextRight, nextDir, node.Point)
			if !ok {
				continue
			}

			_, curRight := offsetLineAtNode(lines, cur)
			nextLeft, _ := offsetLineAtNode(lines, next)
			setOffsetLineAtNode(edges, lines, cur, corner, curRight)
			setOffsetLineAtNode(edges, lines, next, nextLeft, corner)
		}
	}
}

// intersectOffsetLines intersects the line through p1 (direction d1) with
// the line through p2 (direction d2), falling back to node when the lines
// are parallel (a straight run through this node).
func intersectOffsetLines(p1 Point2D, d1 Vector2D, p2 Point2D, d2 Vector2D, node Point2D) (Point2D, bool) {
	t, _, ok := LineLineIntersect(p1, d1, p2, d2)
	if !ok {
		return node, false
	}
	return Point2D{X: p1.X + d1.X*t, Y: p1.Y + d1.Y*t}, true
}

// appendDeadEndCaps closes off every dead-end node with a perpendicular
// cap edge between its left and right offset points. Unlike corner
// resolution, the cap direction is defined in the sub-segment's own
// native frame (left_start/right_start at a start dead end, right_end/
// left_end at an end dead end), not the arm-relative frame.
func appendDeadEndCaps(net Network, lines []offsetLineData, edges *[]OffsetEdge) {
	for nodeIdx, node := range net.Nodes {
		if node.Kind != NodeDeadEnd {
			continue
		}
		arms := armsAtNode(net, nodeIdx)
		if len(arms) != 1 {
			continue
		}
		ld := lines[arms[0].subSegIdx]
		if arms[0].outgoing {
			*edges = append(*edges, OffsetEdge{Start: ld.leftStart, End: ld.rightStart})
		} else {
			*edges = append(*edges, OffsetEdge{Start: ld.rightEnd, End: ld.leftEnd})
		}
	}
}
