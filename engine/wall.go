package engine

import "context"

// WallOutline computes the two-sided offset boundary of one or more
// centerline polylines treated as a connected wall network: segments
// from every input are merged so that intersections between separate
// walls (a partition meeting an outer wall, a T-junction, a penetrating
// wall) are trimmed and corner-resolved correctly, rather than each
// polyline being offset independently. This is component F, used by
// PolylineOffset.executeOpen as the general fallback once the
// spoke-pattern fast path doesn't apply, and directly by callers who
// already have a set of centerlines (see cmd/wallkitctl's wall
// subcommand).
type WallOutline struct {
	plines    []Polyline
	halfWidth float64
}

// NewWallOutline creates a wall-outline operation over plines at the
// given half-width (the distance from each centerline to either edge of
// the wall). Pass multiple plines to merge their networks.
func NewWallOutline(plines []Polyline, halfWidth float64) *WallOutline {
	return &WallOutline{plines: plines, halfWidth: halfWidth}
}

// Execute runs the wall-outline pipeline: decompose centerlines into
// unique segments, build the connectivity network, offset every segment
// to both sides with corners resolved at junctions, and trace the
// resulting edges into closed boundary polylines. ctx is checked between
// phases; a canceled ctx aborts with its error.
//
// Possible errors: ErrInvalidInput if no input polyline has at least 2
// vertices; ErrOperationFailed if decomposition or tracing yields no
// results.
func (w *WallOutline) Execute(ctx context.Context) ([]Polyline, error) {
	var valid []Polyline
	for _, p := range w.plines {
		if len(p.Vertices) >= 2 {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil, wrapInvalid("at least one polyline with 2 or more vertices required")
	}

	if abs(w.halfWidth) < TOLERANCE {
		return valid, nil
	}

	debugLogPhase("decompose")
	segments := DecomposeCenterlines(valid)
	if len(segments) == 0 {
		return nil, wrapFailed("wall outline decompose produced no segments")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	debugLogPhase("build network")
	network := BuildNetwork(segments)

	debugLogPhase("offset edges")
	edges := BuildOffsetEdges(network, abs(w.halfWidth))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	debugLogPhase("trace")
	boundaries := TraceBoundaries(edges)
	if len(boundaries) == 0 {
		return nil, wrapFailed("wall outline trace produced no results")
	}

	return boundaries, nil
}
