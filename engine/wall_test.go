package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallOutlineSingleCenterline(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}}, false)
	results, err := NewWallOutline([]Polyline{p}, 1).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Closed)
	assert.Len(t, results[0].Vertices, 4)
}

func TestWallOutlineMergesMultipleCenterlines(t *testing.T) {
	// A second centerline starting on the interior of the first forms a
	// T-junction once merged.
	a := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 8, Y: 0}}, false)
	b := NewPolylineFromPoints([]Point2D{{X: 4, Y: 0}, {X: 4, Y: 4}}, false)
	results, err := NewWallOutline([]Polyline{a, b}, 1).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Closed)
}

func TestWallOutlineZeroHalfWidthPassthrough(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}}, false)
	results, err := NewWallOutline([]Polyline{p}, 0).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, p, results[0])
}

func TestWallOutlineNoValidInput(t *testing.T) {
	_, err := NewWallOutline([]Polyline{{Vertices: []PolylineVertex{LineVertex(0, 0)}}}, 1).Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWallOutlineClosedSquareCenterline(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}}, true)
	results, err := NewWallOutline([]Polyline{p}, 1).Execute(context.Background())
	require.NoError(t, err)
	// A closed square centerline offsets into two nested boundaries: the
	// outer wall face and the inner one.
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Closed)
	}
}
