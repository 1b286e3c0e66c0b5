package solver

import "math/rand/v2"

// selectTiebreak picks one coordinate from candidates, preferring corners,
// then edges, then any, with uniform-random tiebreak within the winning
// tier (spec §4.6).
func selectTiebreak(candidates []Coordinate, rows, cols int, rng *rand.Rand) Coordinate {
	var corners, edges, rest []Coordinate
	for _, c := range candidates {
		switch {
		case isCorner(c, rows, cols):
			corners = append(corners, c)
		case isEdge(c, rows, cols):
			edges = append(edges, c)
		default:
			rest = append(rest, c)
		}
	}
	for _, tier := range [][]Coordinate{corners, edges, rest} {
		if len(tier) > 0 {
			return tier[rng.IntN(len(tier))]
		}
	}
	return candidates[rng.IntN(len(candidates))]
}

func isCorner(c Coordinate, rows, cols int) bool {
	return isExtreme(c.Row, rows) && isExtreme(c.Col, cols)
}

func isEdge(c Coordinate, rows, cols int) bool {
	rowExtreme := isExtreme(c.Row, rows)
	colExtreme := isExtreme(c.Col, cols)
	return rowExtreme != colExtreme
}

func isExtreme(v, span int) bool {
	return v == 0 || v == span-1
}

// selectMove implements the Move Selector policy of spec §4.6: drain
// safeUnrevealed first; else compare the best frontier probability against
// the outside-frontier probability and pick accordingly; else fall back to
// a uniform-random Unknown.
func selectMove(view *boardView, safeUnrevealed map[Coordinate]bool, squaresByProb map[float64][]Coordinate, nonFrontier []Coordinate, g int, expected float64, rng *rand.Rand) (Coordinate, bool) {
	for c := range safeUnrevealed {
		return c, true
	}

	outsideProb := posInf
	if len(nonFrontier) > 0 {
		outsideProb = (float64(g) - expected) / float64(len(nonFrontier))
	}

	bestFrontierProb := posInf
	for p := range squaresByProb {
		if p < bestFrontierProb {
			bestFrontierProb = p
		}
	}

	rows, cols := view.oracle.Rows(), view.oracle.Cols()

	if bestFrontierProb <= outsideProb && bestFrontierProb != posInf {
		return selectTiebreak(squaresByProb[bestFrontierProb], rows, cols, rng), true
	}
	if outsideProb != posInf {
		return selectTiebreak(nonFrontier, rows, cols, rng), true
	}

	var any []Coordinate
	view.allCoordinates(func(c Coordinate) {
		if view.get(c).Kind == Unknown {
			any = append(any, c)
		}
	})
	if len(any) == 0 {
		return Coordinate{}, false
	}
	return any[rng.IntN(len(any))], true
}

const posInf = 1e18
