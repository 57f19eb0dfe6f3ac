package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeCenterlinesSingleSegment(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}}, false)
	segs := DecomposeCenterlines([]Polyline{p})
	require.Len(t, segs, 1)
	assert.Equal(t, Point2D{X: 0, Y: 0}, segs[0].Start)
	assert.Equal(t, Point2D{X: 4, Y: 0}, segs[0].End)
}

func TestDecomposeCenterlinesMergesOverlap(t *testing.T) {
	// A wall walked forward then partly back along the same line: (0,0)->
	// (4,0)->(2,0) should merge into the single extent (0,0)-(4,0).
	p := Polyline{
		Vertices: []PolylineVertex{LineVertex(0, 0), LineVertex(4, 0), LineVertex(2, 0)},
		Closed:   false,
	}
	segs := DecomposeCenterlines([]Polyline{p})
	require.Len(t, segs, 1)
	minX := minF(segs[0].Start.X, segs[0].End.X)
	maxX := maxF(segs[0].Start.X, segs[0].End.X)
	assert.InDelta(t, 0.0, minX, 1e-9)
	assert.InDelta(t, 4.0, maxX, 1e-9)
}

func TestDecomposeCenterlinesSeparateLinesStaySeparate(t *testing.T) {
	a := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}}, false)
	b := NewPolylineFromPoints([]Point2D{{X: 0, Y: 4}, {X: 4, Y: 4}}, false)
	segs := DecomposeCenterlines([]Polyline{a, b})
	assert.Len(t, segs, 2)
}

func TestDecomposeCenterlinesSkipsZeroLength(t *testing.T) {
	p := Polyline{
		Vertices: []PolylineVertex{LineVertex(0, 0), LineVertex(0, 0), LineVertex(2, 0)},
		Closed:   false,
	}
	segs := DecomposeCenterlines([]Polyline{p})
	require.Len(t, segs, 1)
}

func TestDecomposeCenterlinesClosedWraps(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, true)
	segs := DecomposeCenterlines([]Polyline{p})
	// Three non-collinear segments stay distinct.
	assert.Len(t, segs, 3)
}

func TestSameSupportingLineDetectsCollinear(t *testing.T) {
	k1 := supportingLineKey(Point2D{X: 0, Y: 0}, Point2D{X: 4, Y: 0})
	k2 := supportingLineKey(Point2D{X: 2, Y: 0}, Point2D{X: 6, Y: 0})
	assert.True(t, sameSupportingLine(k1, k2))
}

func TestSameSupportingLineRejectsOffset(t *testing.T) {
	k1 := supportingLineKey(Point2D{X: 0, Y: 0}, Point2D{X: 4, Y: 0})
	k2 := supportingLineKey(Point2D{X: 0, Y: 1}, Point2D{X: 4, Y: 1})
	assert.False(t, sameSupportingLine(k1, k2))
}

func TestMergeIntervalsOverlapping(t *testing.T) {
	got := mergeIntervals([][2]float64{{0, 4}, {2, 6}, {10, 12}})
	want := [][2]float64{{0, 6}, {10, 12}}
	assert.Equal(t, want, got)
}

func TestMergeIntervalsEmpty(t *testing.T) {
	assert.Nil(t, mergeIntervals(nil))
}
