package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointToSegmentDistPerpendicular(t *testing.T) {
	d := PointToSegmentDist(Point2D{X: 1, Y: 1}, Point2D{X: 0, Y: 0}, Point2D{X: 2, Y: 0})
	assert.InDelta(t, 1.0, d, 1e-9)
}

func TestPointToSegmentDistBeyondEndpoint(t *testing.T) {
	d := PointToSegmentDist(Point2D{X: 5, Y: 0}, Point2D{X: 0, Y: 0}, Point2D{X: 2, Y: 0})
	assert.InDelta(t, 3.0, d, 1e-9)
}

func TestPointToSegmentDistZeroLength(t *testing.T) {
	d := PointToSegmentDist(Point2D{X: 3, Y: 4}, Point2D{X: 0, Y: 0}, Point2D{X: 0, Y: 0})
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestPointToArcDistOnRay(t *testing.T) {
	// Full circle radius 1 centered at origin; point at distance 3 along +X.
	d := PointToArcDist(Point2D{X: 3, Y: 0}, Point2D{X: 0, Y: 0}, 1, 0, 2*math.Pi)
	assert.InDelta(t, 2.0, d, 1e-9)
}

func TestPointToArcDistOutsideSweep(t *testing.T) {
	// Quarter arc from angle 0 to pi/2; point at angle pi (outside sweep)
	// should measure to the nearer endpoint.
	d := PointToArcDist(Point2D{X: -1, Y: 0}, Point2D{X: 0, Y: 0}, 1, 0, math.Pi/2)
	ep0 := Point2D{X: 1, Y: 0}
	ep1 := Point2D{X: 0, Y: 1}
	want := minF(hypot(-1-ep0.X, 0-ep0.Y), hypot(-1-ep1.X, 0-ep1.Y))
	assert.InDelta(t, want, d, 1e-9)
}
