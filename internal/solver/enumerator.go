package solver

import "sort"

// partialSolution is a (Mines, Forbidden) bit-vector pair over a frontier's
// unknown ordering (spec §3). Forbidden marks positions that must not be a
// mine for this partial to extend; it is not simply the complement of
// Mines, since a partial solution may cover only a subset of the frontier.
type partialSolution struct {
	Mines, Forbidden bitset
}

// constraint is one numbered square's contribution to a frontier: its
// remaining-mine count r and the frontier-local indices of its adjacent
// unknowns.
type constraint struct {
	coord     Coordinate
	r         int
	positions []int
}

// buildConstraints derives one constraint per numbered square in f.
func buildConstraints(view *boardView, f *frontier) []constraint {
	constraints := make([]constraint, 0, len(f.numbered))
	for _, nc := range f.numbered {
		info := view.get(nc)
		known := len(view.neighbors(nc, isKnownMine))
		r := info.Value - known
		var positions []int
		for _, u := range view.neighbors(nc, isUnknown) {
			positions = append(positions, f.indexOf(u))
		}
		constraints = append(constraints, constraint{coord: nc, r: r, positions: positions})
	}
	return constraints
}

// seedConstraint enumerates every partial solution satisfying one
// constraint: every size-r subset of its positions is a candidate mine
// placement (spec §4.4's per-constraint seeding).
func seedConstraint(width int, c constraint) []partialSolution {
	if len(c.positions) == 0 {
		return nil
	}
	if c.r == 0 {
		forbidden := newBitset(width)
		for _, p := range c.positions {
			forbidden.set(p)
		}
		return []partialSolution{{Mines: newBitset(width), Forbidden: forbidden}}
	}
	if c.r < 0 || c.r > len(c.positions) {
		return nil
	}

	var out []partialSolution
	combinations(len(c.positions), c.r, func(chosen []int) {
		mines := newBitset(width)
		forbidden := newBitset(width)
		chosenSet := make(map[int]bool, len(chosen))
		for _, idx := range chosen {
			chosenSet[idx] = true
			mines.set(c.positions[idx])
		}
		for idx, p := range c.positions {
			if !chosenSet[idx] {
				forbidden.set(p)
			}
		}
		out = append(out, partialSolution{Mines: mines, Forbidden: forbidden})
	})
	return out
}

// combinations invokes yield once per size-k subset of {0,...,n-1},
// expressed as the subset's sorted indices.
func combinations(n, k int, yield func(chosen []int)) {
	if k < 0 || k > n {
		return
	}
	chosen := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, chosen)
			yield(cp)
			return
		}
		for i := start; i < n; i++ {
			chosen[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

// mergePair combines two partial-solution sets, keeping only combinations
// where neither partial forbids a position the other requires (spec
// §4.4's conflict test), and deduplicating identical results.
func mergePair(a, b []partialSolution) []partialSolution {
	seen := make(map[string]bool)
	var out []partialSolution
	for _, pa := range a {
		for _, pb := range b {
			forbidden := pa.Forbidden.or(pb.Forbidden)
			mines := pa.Mines.or(pb.Mines)
			if !forbidden.disjoint(mines) {
				continue
			}
			key := bitsetKey(mines) + "|" + bitsetKey(forbidden)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, partialSolution{Mines: mines, Forbidden: forbidden})
		}
	}
	return out
}

func bitsetKey(b bitset) string {
	buf := make([]byte, len(b.words)*8)
	for i, w := range b.words {
		for j := 0; j < 8; j++ {
			buf[i*8+j] = byte(w >> (8 * j))
		}
	}
	return string(buf)
}

// enumerateFrontier runs the full per-constraint seeding, distance-ordered
// pairwise merge, and global-mine pruning for one frontier, returning the
// surviving partial solutions.
func enumerateFrontier(view *boardView, f *frontier, totalMines, marked int) ([]partialSolution, error) {
	width := len(f.unknowns)
	constraints := buildConstraints(view, f)

	var anchor Coordinate
	if len(f.numbered) > 0 {
		anchor = f.numbered[0]
	}
	sort.SliceStable(constraints, func(i, j int) bool {
		return chebyshev(constraints[i].coord, anchor) < chebyshev(constraints[j].coord, anchor)
	})

	var sets [][]partialSolution
	for _, c := range constraints {
		seeded := seedConstraint(width, c)
		if seeded == nil {
			continue
		}
		sets = append(sets, seeded)
	}
	if len(sets) == 0 {
		if width == 0 {
			return nil, nil
		}
		return nil, contradictionf("frontier with %d unknowns has no usable constraints", width)
	}

	for len(sets) > 1 {
		var next [][]partialSolution
		for i := 0; i < len(sets); i += 2 {
			if i+1 == len(sets) {
				next = append(next, sets[i])
				continue
			}
			merged := mergePair(sets[i], sets[i+1])
			if len(merged) == 0 {
				return nil, contradictionf("frontier anchored at %s has no consistent solution", anchor)
			}
			next = append(next, merged)
		}
		sets = next
	}

	survivors := sets[0]
	budget := totalMines - marked
	pruned := survivors[:0]
	for _, p := range survivors {
		if p.Mines.popcount() <= budget {
			pruned = append(pruned, p)
		}
	}
	if len(pruned) == 0 {
		return nil, contradictionf("frontier anchored at %s: no solution fits remaining mine budget", anchor)
	}
	return pruned, nil
}

// frontierResult is the per-unknown and aggregate outcome of enumerating
// one frontier (spec §4.4's per-unknown tallies and aggregation).
type frontierResult struct {
	forcedMine []Coordinate
	forcedSafe []Coordinate
	probOf     map[Coordinate]float64
	minMines   int
	maxMines   int
	expected   float64
}

func summarizeFrontier(f *frontier, survivors []partialSolution) frontierResult {
	res := frontierResult{probOf: make(map[Coordinate]float64)}
	n := len(survivors)
	if n == 0 {
		return res
	}

	counts := make([]int, len(f.unknowns))
	total := 0
	minPop, maxPop := -1, -1
	for _, p := range survivors {
		pc := p.Mines.popcount()
		total += pc
		if minPop == -1 || pc < minPop {
			minPop = pc
		}
		if pc > maxPop {
			maxPop = pc
		}
		for i := range f.unknowns {
			if p.Mines.test(i) {
				counts[i]++
			}
		}
	}

	for i, coord := range f.unknowns {
		switch counts[i] {
		case 0:
			res.forcedSafe = append(res.forcedSafe, coord)
		case n:
			res.forcedMine = append(res.forcedMine, coord)
		default:
			res.probOf[coord] = float64(counts[i]) / float64(n)
		}
	}
	res.minMines = minPop
	res.maxMines = maxPop
	res.expected = float64(total) / float64(n)
	return res
}
