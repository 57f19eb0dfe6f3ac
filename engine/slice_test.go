package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlicesBowtie(t *testing.T) {
	pline := bowtiePline()
	hits := FindSelfIntersections(pline)
	require.Len(t, hits, 1)

	slices := BuildSlices(pline, hits)
	require.Len(t, slices, 2)

	for _, s := range slices {
		require.Len(t, s.Vertices, 4)
		first, last := s.Vertices[0], s.Vertices[len(s.Vertices)-1]
		assert.InDelta(t, first.X, last.X, 1e-9)
		assert.InDelta(t, first.Y, last.Y, 1e-9)
		assert.InDelta(t, 1.0, first.X, 1e-9)
		assert.InDelta(t, 1.0, first.Y, 1e-9)
	}
}

func TestBuildSlicesNoIntersections(t *testing.T) {
	assert.Nil(t, BuildSlices(unitSquareClosed(), nil))
}

func TestSubBulgeZeroForLine(t *testing.T) {
	assert.Zero(t, subBulge(0, 0.2, 0.8))
}

func TestSubBulgeHalvesSemicircle(t *testing.T) {
	// A full semicircle (bulge 1, sweep pi) split exactly in half should
	// have a sub-sweep of pi/2, i.e. bulge = tan(pi/8).
	got := subBulge(1, 0, 0.5)
	want := 0.4142135623730951 // tan(pi/8)
	assert.InDelta(t, want, got, 1e-9)
}
