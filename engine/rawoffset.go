package engine

// This file implements component C: the raw-offset builder. It produces
// the untrimmed offset polyline by offsetting every segment independently
// (offsetOneSegment) and resolving each corner between
// consecutive offset segments (doFlatCap / doMiter / doBevel / the
// parallel-tangent fallback), mirroring the teacher's group-based
// DoBevel/DoMiter/DoSquare corner-method split in offset.go, generalized
// from integer polygon joins to the bulge-encoded line/arc segments of
// this domain.

// rawOffsetBuilder accumulates the raw offset's vertices as it walks the
// input polyline's corners.
type rawOffsetBuilder struct {
	distance float64
	segs     []OffsetSegment
	verts    []PolylineVertex
}

// BuildRawOffset offsets every segment of pline by distance and connects
// the results at each corner, producing the untrimmed raw offset
// polyline. Fails with ErrOperationFailed if pline has no segments or any
// segment collapses under the offset.
func BuildRawOffset(pline Polyline, distance float64) (Polyline, error) {
	n := len(pline.Vertices)
	segCount := pline.SegmentCount()
	if segCount == 0 {
		return Polyline{}, wrapFailed("no segments to offset")
	}

	b := &rawOffsetBuilder{distance: distance, segs: make([]OffsetSegment, 0, segCount)}

	for i := 0; i < segCount; i++ {
		v0 := pline.Vertices[i]
		v1 := pline.Vertices[(i+1)%n]

		seg, err := b.offsetOneSegment(v0, v1, i)
		if err != nil {
			return Polyline{}, err
		}
		b.segs = append(b.segs, seg)
	}

	b.verts = make([]PolylineVertex, 0, n*2)

	if pline.Closed {
		for i := 0; i < segCount; i++ {
			prev := segCount - 1
			if i > 0 {
				prev = i - 1
			}
			b.resolveCorner(b.segs[prev], b.segs[i], pline.Vertices[i].X, pline.Vertices[i].Y)
		}
	} else {
		first := b.segs[0]
		b.verts = append(b.verts, PolylineVertex{X: first.Start.X, Y: first.Start.Y, Bulge: first.Bulge})

		for i := 1; i < segCount; i++ {
			b.resolveCorner(b.segs[i-1], b.segs[i], pline.Vertices[i].X, pline.Vertices[i].Y)
		}

		last := b.segs[segCount-1]
		b.verts = append(b.verts, LineVertex(last.End.X, last.End.Y))
	}

	debugLog("BuildRawOffset: %d input segs -> %d raw offset verts", segCount, len(b.verts))

	return Polyline{Vertices: b.verts, Closed: pline.Closed}, nil
}

// offsetOneSegment offsets a single line or arc segment by b.distance.
func (b *rawOffsetBuilder) offsetOneSegment(v0, v1 PolylineVertex, origIndex int) (OffsetSegment, error) {
	if !v0.IsArc() {
		dir, err := SegmentDirection(v0.Point(), v1.Point())
		if err != nil {
			return OffsetSegment{}, err
		}
		normal := dir.LeftNormal()

		start := Point2D{X: v0.X + normal.X*b.distance, Y: v0.Y + normal.Y*b.distance}
		end := Point2D{X: v1.X + normal.X*b.distance, Y: v1.Y + normal.Y*b.distance}

		return OffsetSegment{
			Start: start, End: end,
			TangentAtStart: dir, TangentAtEnd: dir,
			OriginalSegIndex: origIndex,
		}, nil
	}

	ox0, oy0, ox1, oy1, ob, ok := OffsetArcSegment(v0.X, v0.Y, v1.X, v1.Y, v0.Bulge, b.distance)
	if !ok {
		return OffsetSegment{}, wrapFailed("arc segment collapsed during offset")
	}

	_, _, startAngle, sweep := ArcFromBulge(ox0, oy0, ox1, oy1, ob)
	startDir := ArcTangentAt(startAngle, sweep, 0)
	endDir := ArcTangentAt(startAngle, sweep, 1)

	return OffsetSegment{
		Start: Point2D{X: ox0, Y: oy0}, End: Point2D{X: ox1, Y: oy1},
		Bulge:            ob,
		TangentAtStart:   startDir,
		TangentAtEnd:     endDir,
		OriginalSegIndex: origIndex,
	}, nil
}

// resolveCorner appends the vertex/vertices that join segPrev's end to
// segNext's start, classifying the corner as a flat cap, miter, bevel, or
// parallel-tangent fallback (§4.C). The last vertex it appends always
// carries segNext's bulge, so the subsequent arc (if any) begins
// correctly.
func (b *rawOffsetBuilder) resolveCorner(segPrev, segNext OffsetSegment, origX, origY float64) {
	dirPrev := segPrev.TangentAtEnd
	dirNext := segNext.TangentAtStart
	cosAngle := dirPrev.Dot(dirNext)

	if cosAngle < flatCapCosine {
		b.doFlatCap(segPrev, segNext)
		return
	}

	t, _, ok := LineLineIntersect(segPrev.End, dirPrev, segNext.Start, dirNext)
	if !ok {
		b.doParallelFallback(segNext, dirPrev, origX, origY)
		return
	}

	cornerX := segPrev.End.X + dirPrev.X*t
	cornerY := segPrev.End.Y + dirPrev.Y*t

	dx := cornerX - origX
	dy := cornerY - origY
	miterDistSq := dx*dx + dy*dy
	limit := miterLimitFactor * abs(b.distance)

	if miterDistSq > limit*limit {
		b.doBevel(segPrev, segNext)
		return
	}

	b.doMiter(cornerX, cornerY, segNext.Bulge)
}

// doFlatCap emits a two-vertex gap bridge at a near-180-degree reversal.
func (b *rawOffsetBuilder) doFlatCap(segPrev, segNext OffsetSegment) {
	debugLog("resolveCorner: flat cap at %v -> %v", segPrev.End, segNext.Start)
	b.verts = append(b.verts, LineVertex(segPrev.End.X, segPrev.End.Y))
	b.verts = append(b.verts, PolylineVertex{X: segNext.Start.X, Y: segNext.Start.Y, Bulge: segNext.Bulge})
}

// doBevel emits the same two vertices as a flat cap, when a miter
// intersection exists but exceeds the miter limit.
func (b *rawOffsetBuilder) doBevel(segPrev, segNext OffsetSegment) {
	debugLog("resolveCorner: bevel at %v -> %v (miter limit exceeded)", segPrev.End, segNext.Start)
	b.verts = append(b.verts, LineVertex(segPrev.End.X, segPrev.End.Y))
	b.verts = append(b.verts, PolylineVertex{X: segNext.Start.X, Y: segNext.Start.Y, Bulge: segNext.Bulge})
}

// doMiter emits a single vertex at the extended-tangent-line
// intersection, carrying the next segment's bulge.
func (b *rawOffsetBuilder) doMiter(cornerX, cornerY, nextBulge float64) {
	b.verts = append(b.verts, PolylineVertex{X: cornerX, Y: cornerY, Bulge: nextBulge})
}

// doParallelFallback handles the degenerate case where the tangent lines
// are parallel and the line-line intersection is undefined: offset the
// original corner point along the previous segment's left-normal.
func (b *rawOffsetBuilder) doParallelFallback(segNext OffsetSegment, dirPrev Vector2D, origX, origY float64) {
	normal := dirPrev.Normalized().LeftNormal()
	if normal == (Vector2D{}) {
		normal = Vector2D{X: 0, Y: 1}
	}
	b.verts = append(b.verts, PolylineVertex{
		X: origX + normal.X*b.distance, Y: origY + normal.Y*b.distance,
		Bulge: segNext.Bulge,
	})
}
