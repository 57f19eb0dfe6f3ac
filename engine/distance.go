package engine

import "math"

// This file contains point-to-segment and point-to-arc distance
// primitives, used by the filter step (component E) to classify slices
// by their distance from the original, un-offset polyline.

// PointToSegmentDist returns the minimum distance from p to the segment
// a-b.
func PointToSegmentDist(p, a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy

	if lenSq < 1e-20 {
		return hypot(p.X-a.X, p.Y-a.Y)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = clamp01(t)

	closestX := a.X + t*dx
	closestY := a.Y + t*dy

	return hypot(p.X-closestX, p.Y-closestY)
}

// PointToArcDist returns the minimum distance from p to a circular arc.
// If p's angle relative to the center falls within the arc's sweep, the
// distance is ||p-center|-radius|; otherwise it is the nearer of the two
// endpoint distances.
func PointToArcDist(p, center Point2D, radius, startAngle, sweep float64) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y
	distToCenter := hypot(dx, dy)

	angle := math.Atan2(dy, dx)
	if angleInArcRange(angle, startAngle, sweep) {
		return abs(distToCenter - radius)
	}

	endAngle := startAngle + sweep
	ep0 := Point2D{X: center.X + radius*math.Cos(startAngle), Y: center.Y + radius*math.Sin(startAngle)}
	ep1 := Point2D{X: center.X + radius*math.Cos(endAngle), Y: center.Y + radius*math.Sin(endAngle)}

	d0 := hypot(p.X-ep0.X, p.Y-ep0.Y)
	d1 := hypot(p.X-ep1.X, p.Y-ep1.Y)

	return minF(d0, d1)
}
