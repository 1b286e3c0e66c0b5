package solver

// reconcileGlobal applies the Case A / Case B global mine-count check
// (spec §4.5): it compares the combined frontiers' min/max mine totals
// against the game's remaining mine budget to force marks on non-frontier
// unknowns, then clamps the aggregate totals.
func reconcileGlobal(view *boardView, totalMines, marked int, nonFrontier []Coordinate, minTotal, maxTotal int, expected float64) (markedMine, markedSafe []Coordinate, minOut, maxOut int, expOut float64) {
	g := totalMines - marked
	x := len(nonFrontier)

	minOut, maxOut, expOut = minTotal, maxTotal, expected

	switch {
	case x > 0 && g-maxTotal == x:
		// Case A: even with the frontiers holding their maximum, the mines
		// left over number exactly |X|; all non-frontier cells must be mines.
		markedMine = append(markedMine, nonFrontier...)
	case x > 0 && g == minTotal:
		// Case B: every remaining mine must lie inside the frontiers at
		// the minimum; all non-frontier cells are safe.
		markedSafe = append(markedSafe, nonFrontier...)
	}

	if maxOut > g {
		maxOut = g
	}
	if minOut < g-x {
		minOut = g - x
	}
	if expOut < float64(minOut) {
		expOut = float64(minOut)
	}
	if expOut > float64(maxOut) {
		expOut = float64(maxOut)
	}
	return markedMine, markedSafe, minOut, maxOut, expOut
}

// splitFrontierExact reports whether every frontier has no overlap (each
// unknown adjacent to exactly one numbered square), in which case the
// exact total mines across frontiers can be computed without enumeration
// by summing each numbered square's remaining count (spec §4.5's
// split-frontier check). AnalyzeBoard uses this to tighten the aggregate
// min/max/expected totals before reconcileGlobal runs, which sharpens
// Case A/B triggering on boards with no overlapping constraints.
func splitFrontierExact(view *boardView, frontiers []*frontier) (exact int, ok bool) {
	for _, f := range frontiers {
		overlapCount := make(map[Coordinate]int)
		for _, n := range f.numbered {
			for _, u := range view.neighbors(n, isUnknown) {
				overlapCount[u]++
			}
		}
		for _, c := range overlapCount {
			if c > 1 {
				return 0, false
			}
		}
		for _, n := range f.numbered {
			info := view.get(n)
			known := len(view.neighbors(n, isKnownMine))
			exact += info.Value - known
		}
	}
	return exact, true
}
