package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTessellateLineOnly(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, false)
	pts := p.Tessellate(0.01)
	assert.Equal(t, []Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, pts)
}

func TestTessellateEmpty(t *testing.T) {
	p := Polyline{}
	assert.Nil(t, p.Tessellate(0.01))
}

func TestTessellateArcEndpointsExact(t *testing.T) {
	p := Polyline{
		Vertices: []PolylineVertex{ArcVertex(0, 0, 1), LineVertex(2, 0)},
		Closed:   false,
	}
	pts := p.Tessellate(0.01)
	assert.InDelta(t, 0.0, pts[0].X, 1e-9)
	assert.InDelta(t, 0.0, pts[0].Y, 1e-9)
	last := pts[len(pts)-1]
	assert.InDelta(t, 2.0, last.X, 1e-9)
	assert.InDelta(t, 0.0, last.Y, 1e-9)
	// A semicircular bulge should subdivide into more than 2 points.
	assert.Greater(t, len(pts), 2)
}

func TestTessellateClosedPolylineWraps(t *testing.T) {
	p := Polyline{
		Vertices: []PolylineVertex{LineVertex(0, 0), LineVertex(1, 0), LineVertex(1, 1)},
		Closed:   true,
	}
	pts := p.Tessellate(0.01)
	// 3 segments in a closed triangle: (0,0)->(1,0)->(1,1)->(0,0).
	assert.Equal(t, []Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}, pts)
}

func TestReversedLineOnly(t *testing.T) {
	p := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, false)
	r := p.Reversed()
	assert.Equal(t, []PolylineVertex{LineVertex(2, 0), LineVertex(1, 0), LineVertex(0, 0)}, r.Vertices)
}

func TestReversedNegatesBulge(t *testing.T) {
	p := Polyline{
		Vertices: []PolylineVertex{ArcVertex(0, 0, 0.5), LineVertex(2, 0)},
		Closed:   false,
	}
	r := p.Reversed()
	// Reversed: [ (2,0,bulge=-0.5), (0,0,bulge=0) ]
	assert.InDelta(t, 2.0, r.Vertices[0].X, 1e-9)
	assert.InDelta(t, -0.5, r.Vertices[0].Bulge, 1e-9)
	assert.InDelta(t, 0.0, r.Vertices[1].X, 1e-9)
	assert.Zero(t, r.Vertices[1].Bulge)
}

func TestReversedEmpty(t *testing.T) {
	r := Polyline{}.Reversed()
	assert.Empty(t, r.Vertices)
}

func TestSegmentCount(t *testing.T) {
	open := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, false)
	assert.Equal(t, 2, open.SegmentCount())

	closed := NewPolylineFromPoints([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, true)
	assert.Equal(t, 3, closed.SegmentCount())

	assert.Zero(t, Polyline{Vertices: []PolylineVertex{LineVertex(0, 0)}}.SegmentCount())
}
