package solver

// propagator runs the local deduction rule (spec §4.2) over every numbered
// square with at least one Unknown neighbor, mutating the boardView's
// mines/safeUnrevealed sets in place until a fixpoint.
type propagator struct {
	view       *boardView
	totalMines int
}

// propagateNumber applies the single-cell forcing rule to one numbered
// square (i,j) with value n. It reports whether it changed any mark.
func (p *propagator) propagateNumber(coord Coordinate, n int) (bool, error) {
	unknowns := p.view.neighbors(coord, isUnknown)
	known := p.view.neighbors(coord, isKnownMine)
	k := len(known)
	u := len(unknowns)
	r := n - k

	if r < 0 || r > u {
		return false, contradictionf("cell %s: n=%d known=%d unknown=%d (r=%d)", coord, n, k, u, r)
	}
	if u == 0 {
		return false, nil
	}

	changed := false
	switch {
	case r == 0:
		for _, c := range unknowns {
			if !p.view.safeUnrevealed[c] {
				p.view.safeUnrevealed[c] = true
				changed = true
			}
		}
	case r == u:
		for _, c := range unknowns {
			if !p.view.mines[c] {
				p.view.mines[c] = true
				changed = true
			}
		}
	case r == p.totalMines-len(p.view.mines):
		// every remaining game mine must already be among this cell's
		// adjacent unknowns; any Unknown elsewhere is forced safe.
		p.view.allCoordinates(func(c Coordinate) {
			if p.view.get(c).Kind != Unknown {
				return
			}
			if chebyshev(coord, c) <= 1 {
				return
			}
			if !p.view.safeUnrevealed[c] {
				p.view.safeUnrevealed[c] = true
				changed = true
			}
		})
	}
	return changed, nil
}

// sweep performs one forward (or, if reverse, backward) pass over numbered
// squares with at least one Unknown neighbor.
func (p *propagator) sweep(numbered []Coordinate, reverse bool) (bool, error) {
	changed := false
	order := numbered
	if reverse {
		order = make([]Coordinate, len(numbered))
		for i, c := range numbered {
			order[len(numbered)-1-i] = c
		}
	}
	for _, coord := range order {
		info := p.view.get(coord)
		if info.Kind != Number {
			continue
		}
		if len(p.view.neighbors(coord, isUnknown)) == 0 {
			continue
		}
		c, err := p.propagateNumber(coord, info.Value)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

// propagateToFixpoint repeatedly sweeps forward then reversed (spec §4.2's
// iteration order) until a full forward+reverse pass produces no new marks.
func (p *propagator) propagateToFixpoint(numbered []Coordinate) error {
	for {
		fwd, err := p.sweep(numbered, false)
		if err != nil {
			return err
		}
		rev, err := p.sweep(numbered, true)
		if err != nil {
			return err
		}
		if !fwd && !rev {
			return nil
		}
	}
}

// numberedWithOpenNeighbors collects every Number cell on the board that
// still has at least one Unknown neighbor.
func numberedWithOpenNeighbors(view *boardView) []Coordinate {
	var out []Coordinate
	view.allCoordinates(func(c Coordinate) {
		info := view.get(c)
		if info.Kind != Number {
			return
		}
		if len(view.neighbors(c, isUnknown)) > 0 {
			out = append(out, c)
		}
	})
	return out
}
