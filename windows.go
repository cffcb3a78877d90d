package fundfx

import (
	"fmt"
	"slices"
)

// DefaultStepDays is the span of one fetch window against the
// fund-price source, which cannot serve arbitrarily long ranges in a
// single request.
const DefaultStepDays = 60

// Boundaries generates the ordered, duplicate-free list of dates that
// delimit the fetch windows between start and asOf.
//
// Starting at start, a boundary is emitted every stepDays. Each 60-day
// boundary after the first is followed by a one-day catch-up boundary
// (previous boundary + 1 day), so that consuming the list pairwise
// leaves no multi-day gap at the window seams. The as-of date is always
// the last element.
//
// When start is not before asOf the loop never runs and the result is
// the singleton [asOf]; Windows turns that degenerate case into
// ErrInvalidRange.
func Boundaries(start, asOf Date, stepDays int) []Date {
	if stepDays <= 0 {
		stepDays = DefaultStepDays
	}

	var list []Date
	var prev Date
	hasPrev := false
	// Track explicitly whether prev holds the initial start boundary.
	// Comparing date values instead would misfire if a later boundary
	// happened to equal the start date again.
	prevIsFirst := false
	first := true

	for cur := start; cur.Before(asOf); cur = cur.Add(stepDays) {
		list = append(list, cur)
		if hasPrev && !prevIsFirst {
			list = append(list, prev.Add(1))
		}
		prev, hasPrev, prevIsFirst = cur, true, first
		first = false
	}
	if hasPrev && !prevIsFirst {
		list = append(list, prev.Add(1))
	}
	list = append(list, asOf)

	slices.SortFunc(list, Date.Compare)
	return slices.Compact(list)
}

// Windows plans the fetch windows for the analysis range by consuming
// the boundary list in consecutive pairs.
//
// An unpaired trailing boundary (possible on odd-length lists) becomes
// a final single-day window rather than being dropped: the as-of date
// is the valuation the whole report is relative to, so its price is
// worth one extra one-day request.
//
// Returns ErrInvalidRange when start is not strictly before asOf.
func Windows(start, asOf Date, stepDays int) ([]Range, error) {
	if !start.Before(asOf) {
		return nil, fmt.Errorf("cannot plan windows from %s to %s: %w", start, asOf, ErrInvalidRange)
	}

	bounds := Boundaries(start, asOf, stepDays)
	windows := make([]Range, 0, len(bounds)/2+1)
	for i := 0; i+1 < len(bounds); i += 2 {
		windows = append(windows, Range{From: bounds[i], To: bounds[i+1]})
	}
	if len(bounds)%2 != 0 {
		last := bounds[len(bounds)-1]
		windows = append(windows, Range{From: last, To: last})
	}
	return windows, nil
}
