package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStitchSlicesClosesTriangle(t *testing.T) {
	slices := []Slice{
		{Vertices: []PolylineVertex{LineVertex(0, 0), LineVertex(1, 0)}},
		{Vertices: []PolylineVertex{LineVertex(1, 0), LineVertex(1, 1)}},
		{Vertices: []PolylineVertex{LineVertex(1, 1), LineVertex(0, 0)}},
	}
	results := StitchSlices(slices, true)
	require.Len(t, results, 1)
	r := results[0]
	assert.True(t, r.Closed)
	require.Len(t, r.Vertices, 3)
	assert.Equal(t, Point2D{X: 0, Y: 0}, r.Vertices[0].Point())
	assert.Equal(t, Point2D{X: 1, Y: 0}, r.Vertices[1].Point())
	assert.Equal(t, Point2D{X: 1, Y: 1}, r.Vertices[2].Point())
}

func TestStitchSlicesOpenChainStaysOpen(t *testing.T) {
	slices := []Slice{
		{Vertices: []PolylineVertex{LineVertex(0, 0), LineVertex(1, 0)}},
		{Vertices: []PolylineVertex{LineVertex(1, 0), LineVertex(2, 0)}},
	}
	results := StitchSlices(slices, false)
	require.Len(t, results, 1)
	assert.False(t, results[0].Closed)
	assert.Len(t, results[0].Vertices, 3)
}

func TestStitchSlicesEmpty(t *testing.T) {
	assert.Nil(t, StitchSlices(nil, true))
}

func TestStitchSlicesKeepsShortOpenChain(t *testing.T) {
	// Only closed chains need >= 3 vertices; an open chain is kept
	// regardless of length.
	slices := []Slice{{Vertices: []PolylineVertex{LineVertex(0, 0), LineVertex(1, 0)}}}
	results := StitchSlices(slices, false)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Vertices, 2)
}
