package engine

import "sort"

// This file implements component D's first stage: finding every
// self-intersection between non-adjacent segments of a raw offset
// polyline, dispatching to the line-line/line-arc/arc-arc primitives in
// intersect.go.

// FindSelfIntersections returns every self-intersection between
// non-adjacent segments of pline, sorted by (seg_i, t_i). Intersections
// where both parameters land at segment endpoints are vertex touches,
// not genuine crossings, and are skipped. Polylines with fewer than 3
// segments cannot self-intersect and return nil.
func FindSelfIntersections(pline Polyline) []Intersection {
	n := len(pline.Vertices)
	segCount := pline.SegmentCount()
	if segCount < 3 {
		return nil
	}

	eps := TOLERANCE * 100

	var results []Intersection

	for i := 0; i < segCount; i++ {
		iNext := (i + 1) % n

		for j := i + 2; j < segCount; j++ {
			if pline.Closed && i == 0 && j == segCount-1 {
				continue
			}

			jNext := (j + 1) % n
			vi0, vi1 := pline.Vertices[i], pline.Vertices[iNext]
			vj0, vj1 := pline.Vertices[j], pline.Vertices[jNext]

			hits := intersectSegments(vi0, vi1, vj0, vj1)

			for _, hit := range hits {
				tAtEnd := hit.t < eps || hit.t > 1-eps
				uAtEnd := hit.u < eps || hit.u > 1-eps
				if tAtEnd && uAtEnd {
					continue
				}
				results = append(results, Intersection{
					SegI: i, SegJ: j,
					TI: hit.t, TJ: hit.u,
					Point: hit.point,
				})
			}
		}
	}

	sortIntersections(results)
	return results
}

type segHit struct {
	point Point2D
	t, u  float64
}

// intersectSegments dispatches to the line-line, line-arc, arc-line, or
// arc-arc primitive depending on whether each segment is an arc.
func intersectSegments(vi0, vi1, vj0, vj1 PolylineVertex) []segHit {
	iIsArc := vi0.IsArc()
	jIsArc := vj0.IsArc()

	switch {
	case !iIsArc && !jIsArc:
		pt, t, u, ok := SegmentSegmentIntersect(vi0.Point(), vi1.Point(), vj0.Point(), vj1.Point())
		if !ok {
			return nil
		}
		return []segHit{{point: pt, t: t, u: u}}

	case !iIsArc && jIsArc:
		center, radius, startAngle, sweep := ArcFromBulge(vj0.X, vj0.Y, vj1.X, vj1.Y, vj0.Bulge)
		lineHits := LineArcIntersect(vi0.X, vi0.Y, vi1.X, vi1.Y, center.X, center.Y, radius, startAngle, sweep)
		hits := make([]segHit, len(lineHits))
		for k, h := range lineHits {
			hits[k] = segHit{point: h.Point, t: h.TSeg, u: h.TArc}
		}
		return hits

	case iIsArc && !jIsArc:
		center, radius, startAngle, sweep := ArcFromBulge(vi0.X, vi0.Y, vi1.X, vi1.Y, vi0.Bulge)
		lineHits := LineArcIntersect(vj0.X, vj0.Y, vj1.X, vj1.Y, center.X, center.Y, radius, startAngle, sweep)
		hits := make([]segHit, len(lineHits))
		for k, h := range lineHits {
			hits[k] = segHit{point: h.Point, t: h.TArc, u: h.TSeg}
		}
		return hits

	default:
		c1, r1, s1, sw1 := ArcFromBulge(vi0.X, vi0.Y, vi1.X, vi1.Y, vi0.Bulge)
		c2, r2, s2, sw2 := ArcFromBulge(vj0.X, vj0.Y, vj1.X, vj1.Y, vj0.Bulge)
		arcHits := ArcArcIntersect(c1, r1, s1, sw1, c2, r2, s2, sw2)
		hits := make([]segHit, len(arcHits))
		for k, h := range arcHits {
			hits[k] = segHit{point: h.Point, t: h.T1, u: h.T2}
		}
		return hits
	}
}

// sortIntersections orders results by (SegI, TI) ascending.
func sortIntersections(results []Intersection) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.SegI != b.SegI {
			return a.SegI < b.SegI
		}
		return a.TI < b.TI
	})
}
