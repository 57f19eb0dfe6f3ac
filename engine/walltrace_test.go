package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceBoundariesSingleSegmentRectangle(t *testing.T) {
	net := BuildNetwork([]UniqueSegment{{Start: Point2D{X: 0, Y: 0}, End: Point2D{X: 4, Y: 0}}})
	edges := BuildOffsetEdges(net, 1)

	boundaries := TraceBoundaries(edges)
	require.Len(t, boundaries, 1)
	b := boundaries[0]
	assert.True(t, b.Closed)
	require.Len(t, b.Vertices, 4)

	want := []Point2D{{X: 0, Y: -1}, {X: 4, Y: -1}, {X: 4, Y: 1}, {X: 0, Y: 1}}
	for i, w := range want {
		assert.InDelta(t, w.X, b.Vertices[i].X, 1e-9, "vertex %d", i)
		assert.InDelta(t, w.Y, b.Vertices[i].Y, 1e-9, "vertex %d", i)
	}

	pts := make([]Point2D, len(b.Vertices))
	for i, v := range b.Vertices {
		pts[i] = v.Point()
	}
	assert.InDelta(t, 8.0, math.Abs(SignedArea2D(pts)), 1e-9)
}

func TestTraceBoundariesNoEdges(t *testing.T) {
	assert.Nil(t, TraceBoundaries(nil))
}

func TestTraceBoundariesDiscardsDegenerateLoop(t *testing.T) {
	// Two edges forming a back-and-forth (not a real polygon) trace to a
	// 2-point loop, discarded as degenerate.
	edges := []OffsetEdge{
		{Start: Point2D{X: 0, Y: 0}, End: Point2D{X: 1, Y: 0}},
		{Start: Point2D{X: 1, Y: 0}, End: Point2D{X: 0, Y: 0}},
	}
	assert.Empty(t, TraceBoundaries(edges))
}

func TestPickNextEdgePrefersSharpestRightTurn(t *testing.T) {
	adjacency := [][]traceArm{
		{
			{edgeIdx: 0, dir: Vector2D{X: 0, Y: 1}},  // left turn relative to incoming (1,0)
			{edgeIdx: 1, dir: Vector2D{X: -1, Y: 0}}, // U-turn (back the way we came)
			{edgeIdx: 2, dir: Vector2D{X: 0, Y: -1}}, // right turn, the sharpest genuine turn
		},
	}
	used := make([]bool, 3)
	next, ok := pickNextEdge(adjacency, used, 0, Vector2D{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 2, next)
}

func TestNormalizeAngleWraps(t *testing.T) {
	assert.InDelta(t, math.Pi/2, normalizeAngle(math.Pi/2), 1e-9)
	assert.InDelta(t, 0.0, normalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, normalizeAngle(-math.Pi/2), 1e-9)
}
