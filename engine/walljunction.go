package engine

import "sort"

// This file implements component F's second stage: building a connectivity
// network out of the unique segments produced by DecomposeCenterlines,
// splitting segments at points where they cross another segment, and
// classifying the resulting nodes.

// NodeKind classifies a network node by how many sub-segments meet there.
type NodeKind int

const (
	// NodeJunction is a node where three or more sub-segments meet, or
	// that lies on a point where two segments meet or cross, including a
	// corner where two segments share an endpoint.
	NodeJunction NodeKind = iota
	// NodeInterior is a node where exactly two sub-segments meet end to
	// end along what is otherwise a straight run.
	NodeInterior
	// NodeDeadEnd is a node where exactly one sub-segment terminates.
	NodeDeadEnd
)

// Node is a point in the wall-outline network, tagged with its kind.
type Node struct {
	Point Point2D
	Kind  NodeKind
}

// SubSegment is one piece of a UniqueSegment after splitting at every
// crossing point, referencing its endpoint nodes by index into
// Network.Nodes.
type SubSegment struct {
	Start, End         Point2D
	StartNode, EndNode int
}

// Network is the full connectivity graph built from a set of unique
// centerline segments.
type Network struct {
	Nodes       []Node
	SubSegments []SubSegment
}

// BuildNetwork finds every crossing between the given segments, splits
// each segment at its interior crossing points, and classifies the
// resulting nodes by valence.
func BuildNetwork(segments []UniqueSegment) Network {
	var net Network

	crossings := findCrossingPoints(segments)

	for _, seg := range segments {
		params := splitParamsFor(seg, crossings)

		prevPt := seg.Start
		prevNode := ensureNode(&net, seg.Start)
		for _, t := range params {
			pt := Point2D{X: seg.Start.X + t*(seg.End.X-seg.Start.X), Y: seg.Start.Y + t*(seg.End.Y-seg.Start.Y)}
			node := ensureNode(&net, pt)
			net.SubSegments = append(net.SubSegments, SubSegment{Start: prevPt, End: pt, StartNode: prevNode, EndNode: node})
			prevPt, prevNode = pt, node
		}
		endNode := ensureNode(&net, seg.End)
		net.SubSegments = append(net.SubSegments, SubSegment{Start: prevPt, End: seg.End, StartNode: prevNode, EndNode: endNode})
	}

	classifyNodes(&net, crossings)
	return net
}

// findCrossingPoints returns every point where two distinct, non-collinear
// segments intersect within their bounds.
func findCrossingPoints(segments []UniqueSegment) []Point2D {
	var points []Point2D
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			a, b := segments[i], segments[j]
			pt, _, _, ok := SegmentSegmentIntersect(a.Start, a.End, b.Start, b.End)
			if !ok {
				continue
			}
			points = appendUniquePoint(points, pt)
		}
	}
	return points
}

func appendUniquePoint(points []Point2D, p Point2D) []Point2D {
	for _, existing := range points {
		dx := existing.X - p.X
		dy := existing.Y - p.Y
		if dx*dx+dy*dy < endpointTolerance {
			return points
		}
	}
	return append(points, p)
}

// splitParamsFor returns the sorted, deduplicated interior parameters
// along seg where a crossing point lands strictly inside the segment.
func splitParamsFor(seg UniqueSegment, crossings []Point2D) []float64 {
	dx := seg.End.X - seg.Start.X
	dy := seg.End.Y - seg.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq < TOLERANCE*TOLERANCE {
		return nil
	}

	var params []float64
	for _, p := range crossings {
		t := ((p.X-seg.Start.X)*dx + (p.Y-seg.Start.Y)*dy) / lenSq
		if t < endpointTolerance || t > 1-endpointTolerance {
			continue
		}
		projX := seg.Start.X + t*dx
		projY := seg.Start.Y + t*dy
		if hypot(projX-p.X, projY-p.Y) > TOLERANCE*10 {
			continue
		}

		dup := false
		for _, existing := range params {
			if abs(existing-t) < endpointTolerance {
				dup = true
				break
			}
		}
		if !dup {
			params = append(params, t)
		}
	}

	sort.Float64s(params)
	return params
}

// ensureNode returns the index of the node at p, creating one if none
// exists within endpointTolerance. Node kind is assigned later by
// classifyNodes, once every sub-segment has been built and valence is
// known.
func ensureNode(net *Network, p Point2D) int {
	for i, n := range net.Nodes {
		dx := n.Point.X - p.X
		dy := n.Point.Y - p.Y
		if dx*dx+dy*dy < endpointTolerance {
			return i
		}
	}
	net.Nodes = append(net.Nodes, Node{Point: p})
	return len(net.Nodes) - 1
}

// classifyNodes sets each node's Kind from its valence (number of
// connected sub-segments) and whether it coincides with a detected
// crossing point.
func classifyNodes(net *Network, crossings []Point2D) {
	valence := make([]int, len(net.Nodes))
	for _, ss := range net.SubSegments {
		valence[ss.StartNode]++
		valence[ss.EndNode]++
	}

	isCrossing := make([]bool, len(net.Nodes))
	for i, n := range net.Nodes {
		for _, c := range crossings {
			dx := n.Point.X - c.X
			dy := n.Point.Y - c.Y
			if dx*dx+dy*dy < endpointTolerance {
				isCrossing[i] = true
				break
			}
		}
	}

	for i := range net.Nodes {
		switch {
		case isCrossing[i] || valence[i] >= 3:
			net.Nodes[i].Kind = NodeJunction
		case valence[i] == 2:
			net.Nodes[i].Kind = NodeInterior
		default:
			net.Nodes[i].Kind = NodeDeadEnd
		}
	}
}
