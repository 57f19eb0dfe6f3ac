package engine

import "math"

// This file contains the intersection primitives component A dispatches
// to: line-line, bounded segment-segment, line-arc, and arc-arc. None of
// these use robust/exact arithmetic (the teacher's Int128 cross-product
// machinery is deliberately not carried over here — see DESIGN.md); a
// plain float64 TOLERANCE is sufficient for the offset pipeline's needs
// and keeps the determinism invariant simple to reason about.

// LineLineIntersect solves the parametric line-line system p1+t*d1 ==
// p2+u*d2 and returns (t, u, true), or ok=false if the lines are
// parallel (cross product of directions below TOLERANCE).
func LineLineIntersect(p1 Point2D, d1 Vector2D, p2 Point2D, d2 Vector2D) (t, u float64, ok bool) {
	cross := d1.X*d2.Y - d1.Y*d2.X
	if abs(cross) < TOLERANCE {
		return 0, 0, false
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	t = (dx*d2.Y - dy*d2.X) / cross
	u = (dx*d1.Y - dy*d1.X) / cross
	return t, u, true
}

// SegmentSegmentIntersect computes the bounded intersection of segments
// a0-a1 and b0-b1, returning the crossing point and both parameters
// clamped to [0,1]. ok is false when the segments are parallel or the
// unbounded intersection falls outside [0,1] on either segment (beyond a
// small TOLERANCE epsilon).
func SegmentSegmentIntersect(a0, a1, b0, b1 Point2D) (point Point2D, t, u float64, ok bool) {
	da := Vector2D{X: a1.X - a0.X, Y: a1.Y - a0.Y}
	db := Vector2D{X: b1.X - b0.X, Y: b1.Y - b0.Y}

	cross := da.X*db.Y - da.Y*db.X
	if abs(cross) < TOLERANCE {
		return Point2D{}, 0, 0, false
	}

	dx := b0.X - a0.X
	dy := b0.Y - a0.Y
	tRaw := (dx*db.Y - dy*db.X) / cross
	uRaw := (dx*da.Y - dy*da.X) / cross

	eps := TOLERANCE
	if tRaw < -eps || tRaw > 1+eps || uRaw < -eps || uRaw > 1+eps {
		return Point2D{}, 0, 0, false
	}

	tClamped := clamp01(tRaw)
	pt := Point2D{X: a0.X + da.X*tClamped, Y: a0.Y + da.Y*tClamped}
	return pt, tClamped, clamp01(uRaw), true
}

// LineArcHit is one intersection between a line segment and a circular
// arc: TSeg is the parameter on the segment, TArc the parameter on the arc.
type LineArcHit struct {
	Point    Point2D
	TSeg     float64
	TArc     float64
}

// LineArcIntersect finds every intersection between segment (ax0,ay0)-
// (ax1,ay1) and the arc centered at (cx,cy) with the given radius,
// startAngle, and sweep. Substitutes the parametric line into the circle
// equation and keeps only roots whose angle lies within the arc's sweep.
func LineArcIntersect(ax0, ay0, ax1, ay1, cx, cy, radius, startAngle, sweep float64) []LineArcHit {
	var results []LineArcHit
	if radius < TOLERANCE || abs(sweep) < TOLERANCE {
		return results
	}

	dx := ax1 - ax0
	dy := ay1 - ay0
	segLenSq := dx*dx + dy*dy
	if segLenSq < TOLERANCE*TOLERANCE {
		return results
	}

	fx := ax0 - cx
	fy := ay0 - cy
	a := segLenSq
	b := 2.0 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - radius*radius
	discriminant := b*b - 4.0*a*c

	if discriminant < -TOLERANCE {
		return results
	}
	discSqrt := math.Sqrt(math.Max(discriminant, 0))

	var tRoots []float64
	if discSqrt < TOLERANCE*100 {
		tRoots = []float64{-b / (2.0 * a)}
	} else {
		tRoots = []float64{(-b - discSqrt) / (2.0 * a), (-b + discSqrt) / (2.0 * a)}
	}

	eps := TOLERANCE
	for _, tSeg := range tRoots {
		if tSeg < -eps || tSeg > 1+eps {
			continue
		}
		tSeg = clamp01(tSeg)

		px := ax0 + tSeg*dx
		py := ay0 + tSeg*dy

		angle := math.Atan2(py-cy, px-cx)
		if tArc, ok := angleToArcParam(angle, startAngle, sweep); ok {
			results = append(results, LineArcHit{Point: Point2D{X: px, Y: py}, TSeg: tSeg, TArc: tArc})
		}
	}

	return results
}

// ArcArcHit is one intersection between two circular arcs: T1 and T2 are
// the parameters on each arc.
type ArcArcHit struct {
	Point  Point2D
	T1, T2 float64
}

// ArcArcIntersect finds every intersection between two circular arcs
// using the chord-of-intersection construction, filtered by both arcs'
// sweep ranges. Concentric circles and disjoint/contained circles return
// no hits.
func ArcArcIntersect(c1 Point2D, r1, start1, sweep1 float64, c2 Point2D, r2, start2, sweep2 float64) []ArcArcHit {
	var results []ArcArcHit
	if r1 < TOLERANCE || r2 < TOLERANCE {
		return results
	}

	dx := c2.X - c1.X
	dy := c2.Y - c1.Y
	distSq := dx*dx + dy*dy
	dist := math.Sqrt(distSq)

	if dist < TOLERANCE {
		return results
	}

	sum := r1 + r2
	diff := abs(r1 - r2)
	if dist > sum+TOLERANCE || dist < diff-TOLERANCE {
		return results
	}

	a := (r1*r1 - r2*r2 + distSq) / (2.0 * dist)
	hSq := r1*r1 - a*a
	if hSq < -TOLERANCE {
		return results
	}
	h := math.Sqrt(math.Max(hSq, 0))

	mx := c1.X + a*dx/dist
	my := c1.Y + a*dy/dist

	px := -dy / dist
	py := dx / dist

	type candidate struct{ x, y float64 }
	var candidates []candidate
	if h < TOLERANCE {
		candidates = []candidate{{mx, my}}
	} else {
		candidates = []candidate{{mx + h*px, my + h*py}, {mx - h*px, my - h*py}}
	}

	eps := TOLERANCE
	for _, cand := range candidates {
		angle1 := math.Atan2(cand.y-c1.Y, cand.x-c1.X)
		angle2 := math.Atan2(cand.y-c2.Y, cand.x-c2.X)

		t1, ok1 := angleToArcParam(angle1, start1, sweep1)
		t2, ok2 := angleToArcParam(angle2, start2, sweep2)
		if !ok1 || !ok2 {
			continue
		}

		d1 := hypot(cand.x-c1.X, cand.y-c1.Y)
		d2 := hypot(cand.x-c2.X, cand.y-c2.Y)
		if abs(d1-r1) < eps && abs(d2-r2) < eps {
			results = append(results, ArcArcHit{Point: Point2D{X: cand.x, Y: cand.y}, T1: t1, T2: t2})
		}
	}

	return results
}

// angleToArcParam converts an absolute angle to an arc parameter t in
// [0,1], or ok=false if the angle is outside the arc's angular range.
func angleToArcParam(angle, startAngle, sweep float64) (t float64, ok bool) {
	eps := TOLERANCE * 100

	delta := angle - startAngle

	if sweep > 0 {
		for delta < -eps {
			delta += 2 * math.Pi
		}
		for delta > 2*math.Pi+eps {
			delta -= 2 * math.Pi
		}
	} else {
		for delta > eps {
			delta -= 2 * math.Pi
		}
		for delta < -2*math.Pi-eps {
			delta += 2 * math.Pi
		}
	}

	t = delta / sweep
	if t >= -eps && t <= 1+eps {
		return clamp01(t), true
	}
	return 0, false
}

// angleInArcRange reports whether angle falls within the arc's angular
// range, without computing a parameter value. Used by the distance
// primitives in distance.go.
func angleInArcRange(angle, startAngle, sweep float64) bool {
	eps := TOLERANCE
	delta := angle - startAngle

	if sweep > 0 {
		for delta < -eps {
			delta += 2 * math.Pi
		}
		for delta > 2*math.Pi+eps {
			delta -= 2 * math.Pi
		}
		return delta >= -eps && delta <= sweep+eps
	}
	for delta > eps {
		delta -= 2 * math.Pi
	}
	for delta < -2*math.Pi-eps {
		delta += 2 * math.Pi
	}
	return delta <= eps && delta >= sweep-eps
}
