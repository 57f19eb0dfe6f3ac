package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquareClosed() Polyline {
	return NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, true)
}

func TestBuildRawOffsetInsetSquare(t *testing.T) {
	raw, err := BuildRawOffset(unitSquareClosed(), 1)
	require.NoError(t, err)
	require.Len(t, raw.Vertices, 4)
	assert.True(t, raw.Closed)

	want := []Point2D{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}
	for i, w := range want {
		assert.InDelta(t, w.X, raw.Vertices[i].X, 1e-9, "vertex %d X", i)
		assert.InDelta(t, w.Y, raw.Vertices[i].Y, 1e-9, "vertex %d Y", i)
	}
}

func TestBuildRawOffsetOpenPolylineEndpointsPreserved(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, false)
	raw, err := BuildRawOffset(p, 1)
	require.NoError(t, err)
	require.Len(t, raw.Vertices, 3)
	assert.False(t, raw.Closed)
	// First vertex is the first segment's offset start, unaffected by any corner join.
	assert.InDelta(t, 0.0, raw.Vertices[0].X, 1e-9)
	assert.InDelta(t, 1.0, raw.Vertices[0].Y, 1e-9)
	// Last vertex is the last segment's offset end.
	assert.InDelta(t, 3.0, raw.Vertices[2].X, 1e-9)
	assert.InDelta(t, 4.0, raw.Vertices[2].Y, 1e-9)
}

func TestBuildRawOffsetNoSegments(t *testing.T) {
	_, err := BuildRawOffset(Polyline{Vertices: []PolylineVertex{LineVertex(0, 0)}}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperationFailed)
}

func TestBuildRawOffsetFlatCapOnReversal(t *testing.T) {
	// A polyline that folds back on itself (180-degree reversal) must
	// produce a flat-cap gap bridge rather than a miter to infinity.
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 2}}, false)
	raw, err := BuildRawOffset(p, 1)
	require.NoError(t, err)
	// A flat cap emits two vertices for the corner instead of one miter vertex.
	assert.GreaterOrEqual(t, len(raw.Vertices), 5)
}

func TestBuildRawOffsetArcSegmentCollapses(t *testing.T) {
	p := Polyline{
		Vertices: []PolylineVertex{ArcVertex(0, 0, 1), LineVertex(2, 0), LineVertex(2, 2)},
		Closed:   false,
	}
	// Offsetting the semicircular arc (radius 1) inward by more than its
	// radius collapses it.
	_, err := BuildRawOffset(p, -2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperationFailed)
}
