package engine

import (
	"math"
	"sort"
)

// This file implements component F's first stage: decomposing one or more
// centerline polylines into a minimal set of non-overlapping line
// segments, merging collinear overlaps (e.g. a penetrating wall walked
// forward then back along itself).

// UniqueSegment is one line segment of the decomposed centerline network.
type UniqueSegment struct {
	Start, End Point2D
}

// DecomposeCenterlines collects every line segment from plines, groups
// them by supporting line, and merges overlapping extents into a minimal
// set of unique segments. Arc segments are not supported in centerline
// networks (§9 REDESIGN FLAGS / Non-goals) and are skipped.
func DecomposeCenterlines(plines []Polyline) []UniqueSegment {
	var raw []UniqueSegment
	for _, pline := range plines {
		raw = append(raw, collectRawSegments(pline)...)
	}
	return mergeToUniqueSegments(raw)
}

func collectRawSegments(pline Polyline) []UniqueSegment {
	verts := pline.Vertices
	if len(verts) < 2 {
		return nil
	}
	segCount := pline.SegmentCount()
	var raw []UniqueSegment
	for i := 0; i < segCount; i++ {
		if verts[i].IsArc() {
			continue
		}
		a := verts[i].Point()
		nextI := i + 1
		if pline.Closed {
			nextI = (i + 1) % len(verts)
		}
		b := verts[nextI].Point()
		if hypot(b.X-a.X, b.Y-a.Y) < TOLERANCE {
			continue
		}
		raw = append(raw, UniqueSegment{Start: a, End: b})
	}
	return raw
}

// lineKey is a canonical (origin, direction) representation of a line, used
// to group collinear segments for merging.
type lineKey struct {
	origin Point2D
	dir    Vector2D
}

type supportingLine struct {
	key       lineKey
	intervals [][2]float64
}

func supportingLineKey(a, b Point2D) lineKey {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := hypot(dx, dy)
	nx, ny := dx/length, dy/length

	if nx < -TOLERANCE || (abs(nx) < TOLERANCE && ny < 0) {
		nx, ny = -nx, -ny
	}

	dot := a.X*nx + a.Y*ny
	origin := Point2D{X: a.X - dot*nx, Y: a.Y - dot*ny}

	return lineKey{origin: origin, dir: Vector2D{X: nx, Y: ny}}
}

func (k lineKey) project(p Point2D) float64 {
	return (p.X-k.origin.X)*k.dir.X + (p.Y-k.origin.Y)*k.dir.Y
}

func (k lineKey) unproject(t float64) Point2D {
	return Point2D{X: k.origin.X + t*k.dir.X, Y: k.origin.Y + t*k.dir.Y}
}

func sameSupportingLine(a, b lineKey) bool {
	cross := a.dir.X*b.dir.Y - a.dir.Y*b.dir.X
	if abs(cross) > TOLERANCE*100 {
		return false
	}
	dot := a.dir.X*b.dir.X + a.dir.Y*b.dir.Y
	if dot < 1.0-TOLERANCE*100 {
		return false
	}
	d := (a.origin.X-b.origin.X)*(a.origin.X-b.origin.X) + (a.origin.Y-b.origin.Y)*(a.origin.Y-b.origin.Y)
	return d < TOLERANCE*100
}

func mergeIntervals(intervals [][2]float64) [][2]float64 {
	if len(intervals) == 0 {
		return nil
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i][0] < intervals[j][0] })
	merged := [][2]float64{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv[0] <= last[1]+TOLERANCE {
			last[1] = math.Max(last[1], iv[1])
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

func mergeToUniqueSegments(raw []UniqueSegment) []UniqueSegment {
	if len(raw) == 0 {
		return nil
	}

	var groups []supportingLine
	for _, seg := range raw {
		key := supportingLineKey(seg.Start, seg.End)
		tA, tB := key.project(seg.Start), key.project(seg.End)
		tMin, tMax := math.Min(tA, tB), math.Max(tA, tB)

		merged := false
		for i := range groups {
			if sameSupportingLine(groups[i].key, key) {
				groups[i].intervals = append(groups[i].intervals, [2]float64{tMin, tMax})
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, supportingLine{key: key, intervals: [][2]float64{{tMin, tMax}}})
		}
	}

	var result []UniqueSegment
	for _, g := range groups {
		for _, iv := range mergeIntervals(g.intervals) {
			result = append(result, UniqueSegment{Start: g.key.unproject(iv[0]), End: g.key.unproject(iv[1])})
		}
	}
	return result
}
