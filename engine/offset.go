package engine

import (
	"context"
	"math"
	"sort"
)

// PolylineOffset performs the slice-and-filter parallel offset of a single
// polyline (component C through E, plus the open-polyline spoke/wall-
// outline dispatch). Construct with NewPolylineOffset and call Execute.
type PolylineOffset struct {
	pline    Polyline
	distance float64
}

// NewPolylineOffset creates a new polyline offset operation.
func NewPolylineOffset(pline Polyline, distance float64) *PolylineOffset {
	return &PolylineOffset{pline: pline, distance: distance}
}

// Execute runs the offset, returning one or more result polylines. ctx is
// checked between pipeline phases; a canceled ctx aborts with its error.
//
// Possible errors: ErrInvalidInput if the polyline has fewer than 2
// vertices; ErrOperationFailed if the offset collapses entirely (every
// slice is filtered away or stitching produces no closed/open chains).
func (o *PolylineOffset) Execute(ctx context.Context) ([]Polyline, error) {
	if len(o.pline.Vertices) < 2 {
		return nil, wrapInvalid("at least 2 vertices required for polyline offset")
	}

	if abs(o.distance) < TOLERANCE {
		return []Polyline{o.pline}, nil
	}

	if o.pline.Closed {
		return o.executeClosed(ctx)
	}
	return o.executeOpen(ctx)
}

// executeClosed runs the standard slice-and-filter pipeline on a closed
// polyline (§4.C through §4.E).
func (o *PolylineOffset) executeClosed(ctx context.Context) ([]Polyline, error) {
	debugLogPhase("raw offset")
	raw, err := BuildRawOffset(o.pline, o.distance)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	debugLogPhase("self-intersect")
	intersections := FindSelfIntersections(raw)
	if len(intersections) == 0 {
		return []Polyline{raw}, nil
	}

	debugLogPhase("slice")
	slices := BuildSlices(raw, intersections)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	debugLogPhase("filter")
	valid := FilterSlices(slices, o.pline, o.distance)

	debugLogPhase("stitch")
	result := StitchSlices(valid, true)

	if len(result) == 0 {
		return nil, wrapFailed("offset collapsed completely")
	}
	return result, nil
}

// executeOpen handles open polylines via the both-sides buffer approach:
// a spoke-pattern fast path for centerline networks radiating from a
// shared vertex, falling back to the general wall-outline pipeline
// (component F) for everything else.
func (o *PolylineOffset) executeOpen(ctx context.Context) ([]Polyline, error) {
	absD := abs(o.distance)

	if center, ok := findSpokeCenter(o.pline); ok {
		tips := extractArmTips(o.pline, center)
		if len(tips) >= 2 {
			outline, err := buildSpokeOutline(center, tips, absD)
			if err == nil {
				return []Polyline{outline}, nil
			}
		}
	}

	wall := NewWallOutline([]Polyline{o.pline}, absD)
	return wall.Execute(ctx)
}

// findSpokeCenter finds a vertex that appears more than once in pline,
// indicating a spoke pattern (arms radiating from a shared center).
func findSpokeCenter(pline Polyline) (Point2D, bool) {
	const tolSq = 1e-8
	verts := pline.Vertices
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			dx := verts[i].X - verts[j].X
			dy := verts[i].Y - verts[j].Y
			if dx*dx+dy*dy < tolSq {
				return Point2D{X: verts[i].X, Y: verts[i].Y}, true
			}
		}
	}
	return Point2D{}, false
}

// extractArmTips returns the unique vertex positions of pline that are
// not the spoke center.
func extractArmTips(pline Polyline, center Point2D) []Point2D {
	const tolSq = 1e-8
	var tips []Point2D
	for _, v := range pline.Vertices {
		dx := v.X - center.X
		dy := v.Y - center.Y
		if dx*dx+dy*dy < tolSq {
			continue
		}
		dup := false
		for _, t := range tips {
			if (v.X-t.X)*(v.X-t.X)+(v.Y-t.Y)*(v.Y-t.Y) < tolSq {
				dup = true
				break
			}
		}
		if !dup {
			tips = append(tips, Point2D{X: v.X, Y: v.Y})
		}
	}
	return tips
}

// buildSpokeOutline builds a closed polygon outline around spoke arms
// radiating from center at distance d: for each arm, a left-tip and
// right-tip vertex at the arm's end, connected through a center vertex
// at the intersection of the adjacent arms' offset edges. Arms are
// ordered by angle descending for a clockwise outline.
func buildSpokeOutline(center Point2D, tips []Point2D, d float64) (Polyline, error) {
	type arm struct {
		tip   Point2D
		dir   Vector2D
		angle float64
	}
	arms := make([]arm, 0, len(tips))
	for _, tip := range tips {
		dx := tip.X - center.X
		dy := tip.Y - center.Y
		length := hypot(dx, dy)
		if length < TOLERANCE {
			continue
		}
		dir := Vector2D{X: dx / length, Y: dy / length}
		arms = append(arms, arm{tip: tip, dir: dir, angle: math.Atan2(dy, dx)})
	}

	if len(arms) < 2 {
		return Polyline{}, wrapFailed("spoke needs at least 2 arms")
	}

	sort.Slice(arms, func(i, j int) bool { return arms[i].angle > arms[j].angle })

	n := len(arms)
	outline := make([]PolylineVertex, 0, 3*n)

	for i := 0; i < n; i++ {
		tip, dir := arms[i].tip, arms[i].dir
		nextDir := arms[(i+1)%n].dir

		ln := dir.LeftNormal()

		outline = append(outline, LineVertex(tip.X+d*ln.X, tip.Y+d*ln.Y))
		outline = append(outline, LineVertex(tip.X-d*ln.X, tip.Y-d*ln.Y))

		lnNext := nextDir.LeftNormal()
		baseRight := Point2D{X: center.X - d*ln.X, Y: center.Y - d*ln.Y}
		baseLeft := Point2D{X: center.X + d*lnNext.X, Y: center.Y + d*lnNext.Y}

		if t, _, ok := LineLineIntersect(baseRight, dir, baseLeft, nextDir); ok {
			pt := Point2D{X: baseRight.X + dir.X*t, Y: baseRight.Y + dir.Y*t}
			outline = append(outline, LineVertex(pt.X, pt.Y))
		} else {
			outline = append(outline, LineVertex((baseRight.X+baseLeft.X)*0.5, (baseRight.Y+baseLeft.Y)*0.5))
		}
	}

	return Polyline{Vertices: outline, Closed: true}, nil
}
