package engine

// This file implements component E's second stage: stitching filtered
// slices back into one or more closed or open polylines by greedily
// chaining each slice's end to the nearest unused slice's start.

// stitchToleranceSq is the squared endpoint-matching tolerance used while
// chaining slices; looser than TOLERANCE because slice endpoints
// accumulate floating-point drift through the arc-subdivision math in
// slice.go.
const stitchToleranceSq = stitchTolerance * stitchTolerance

// StitchSlices chains slices end-to-start into complete polylines. A chain
// is closed when its own first and last vertices coincide. When
// inputClosed is true, chains that do not close are discarded, so every
// result matches the original polyline's closed topology.
func StitchSlices(slices []Slice, inputClosed bool) []Polyline {
	if len(slices) == 0 {
		return nil
	}

	n := len(slices)
	used := make([]bool, n)
	var results []Polyline

	for start := 0; start < n; start++ {
		if used[start] {
			continue
		}
		used[start] = true

		chain := append([]PolylineVertex(nil), slices[start].Vertices...)

		for {
			endPt := chain[len(chain)-1]

			best := -1
			bestDistSq := stitchToleranceSq
			for cand := 0; cand < n; cand++ {
				if used[cand] {
					continue
				}
				candStart := slices[cand].Vertices[0]
				dx := candStart.X - endPt.X
				dy := candStart.Y - endPt.Y
				distSq := dx*dx + dy*dy
				if distSq < bestDistSq {
					bestDistSq = distSq
					best = cand
				}
			}

			if best < 0 {
				break
			}
			used[best] = true
			chain = append(chain, slices[best].Vertices[1:]...)
		}

		if len(chain) < 2 {
			continue
		}

		first, last := chain[0], chain[len(chain)-1]
		dx := last.X - first.X
		dy := last.Y - first.Y
		endpointsCoincide := dx*dx+dy*dy < stitchToleranceSq

		if endpointsCoincide {
			chain = chain[:len(chain)-1]
		}

		if inputClosed && !endpointsCoincide {
			continue
		}

		isClosed := endpointsCoincide

		if !isClosed || len(chain) >= 3 {
			results = append(results, Polyline{Vertices: chain, Closed: isClosed})
		}
	}

	debugLog("StitchSlices: %d filtered slices -> %d stitched polylines", n, len(results))

	return results
}
