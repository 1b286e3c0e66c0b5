// Package solver implements the constraint-propagating Minesweeper solver
// core: local propagation, frontier decomposition, per-frontier bit-vector
// enumeration, global mine-count reconciliation, and move selection. It
// never imports a concrete game engine; it drives any collaborator
// satisfying Oracle.
package solver

import (
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// defaultMaxFrontierWidth bounds exhaustive per-frontier enumeration.
// Frontiers wider than this degrade to an approximate, non-enumerated
// analysis rather than blocking the turn loop (spec §9's "cap frontier
// size with a fallback enumerator" note).
const defaultMaxFrontierWidth = 28

// ErrGameOver is returned by DetermineMove once the oracle reports the
// game has ended; callers should stop the turn loop, not retry.
var ErrGameOver = errors.New("solver: game already over")

// Config configures a Solver instance.
type Config struct {
	// RNG drives move-selector tiebreaks. A nil RNG gets a randomly
	// seeded default (spec §5: "one instance per solver").
	RNG *rand.Rand
	// Logger receives diagnostic output (spec §6.3). A nil Logger is a
	// no-op.
	Logger *zap.Logger
	// MaxFrontierWidth bounds exhaustive enumeration; <= 0 uses the
	// package default.
	MaxFrontierWidth int
}

// Result is the outcome of a single PlayGame call.
type Result struct {
	Won      bool
	Moves    int
	Duration time.Duration
}

// Summary aggregates the outcome of a PlayGames batch.
type Summary struct {
	Games   int
	Wins    int
	Results []Result
}

// Solver holds all session state for one game: proven mines, proven but
// unrevealed safes, the current per-square probability distribution, and
// aggregate mine-count bounds (spec §3's "Solver session state").
type Solver struct {
	oracle Oracle

	mines          map[Coordinate]bool
	safeUnrevealed map[Coordinate]bool
	squaresByProb  map[float64][]Coordinate

	nonFrontierUnknowns []Coordinate
	minMineTotal        int
	maxMineTotal        int
	expectedMineTotal   float64
	lastMove            Coordinate

	rng              *rand.Rand
	diag             diagnostics
	maxFrontierWidth int
}

// New creates a Solver bound to oracle with the given configuration.
func New(oracle Oracle, cfg Config) (*Solver, error) {
	s := &Solver{}
	if err := s.NextGame(oracle); err != nil {
		return nil, err
	}
	s.rng = cfg.RNG
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.diag = newDiagnostics(cfg.Logger)
	s.maxFrontierWidth = cfg.MaxFrontierWidth
	if s.maxFrontierWidth <= 0 {
		s.maxFrontierWidth = defaultMaxFrontierWidth
	}
	return s, nil
}

// NextGame resets all session state and rebinds the solver to a fresh
// oracle, validating its reported dimensions (spec §4.7, §7 ConfigInvalid).
func (s *Solver) NextGame(oracle Oracle) error {
	if oracle.Rows() <= 0 || oracle.Cols() <= 0 {
		return configInvalidf("rows=%d cols=%d", oracle.Rows(), oracle.Cols())
	}
	if oracle.TotalMines() <= 0 || oracle.TotalMines() >= oracle.Rows()*oracle.Cols() {
		return configInvalidf("mines=%d out of range for %dx%d board", oracle.TotalMines(), oracle.Rows(), oracle.Cols())
	}
	s.oracle = oracle
	s.mines = make(map[Coordinate]bool)
	s.safeUnrevealed = make(map[Coordinate]bool)
	s.squaresByProb = make(map[float64][]Coordinate)
	s.nonFrontierUnknowns = nil
	s.minMineTotal, s.maxMineTotal, s.expectedMineTotal = 0, 0, 0
	s.lastMove = Coordinate{}
	return nil
}

// AnalyzeBoard recomputes all derived state: it prunes safeUnrevealed of
// coordinates the oracle has already revealed, then loops propagation,
// frontier decomposition, per-frontier enumeration, and global
// reconciliation to a fixpoint (spec §2's data-flow, §4.7).
func (s *Solver) AnalyzeBoard() error {
	for c := range s.safeUnrevealed {
		if ru, ok := s.oracle.Get(c.Row, c.Col); ok && ru != '?' {
			delete(s.safeUnrevealed, c)
		}
	}

	totalMines := s.oracle.TotalMines()
	view := newBoardView(s.oracle, s.mines, s.safeUnrevealed)

	for {
		numbered := numberedWithOpenNeighbors(view)
		prop := &propagator{view: view, totalMines: totalMines}
		if err := prop.propagateToFixpoint(numbered); err != nil {
			return err
		}

		frontiers := buildFrontiers(view, numbered)
		s.diag.frontiers(len(frontiers))

		s.squaresByProb = make(map[float64][]Coordinate)
		s.minMineTotal, s.maxMineTotal, s.expectedMineTotal = 0, 0, 0

		changed := false
		for _, f := range frontiers {
			res, err := s.analyzeFrontier(view, f)
			if err != nil {
				return err
			}
			if len(res.forcedSafe) > 0 {
				s.diag.markedSafe(res.forcedSafe, "frontier enumeration")
				for _, c := range res.forcedSafe {
					if !s.safeUnrevealed[c] {
						s.safeUnrevealed[c] = true
						changed = true
					}
				}
			}
			if len(res.forcedMine) > 0 {
				s.diag.markedMine(res.forcedMine, "frontier enumeration")
				for _, c := range res.forcedMine {
					if !s.mines[c] {
						s.mines[c] = true
						changed = true
					}
				}
			}
			for c, p := range res.probOf {
				s.squaresByProb[p] = append(s.squaresByProb[p], c)
			}
			s.minMineTotal += res.minMines
			s.maxMineTotal += res.maxMines
			s.expectedMineTotal += res.expected
		}

		s.nonFrontierUnknowns = collectNonFrontier(view, frontiers)

		if exact, ok := splitFrontierExact(view, frontiers); ok {
			s.minMineTotal, s.maxMineTotal, s.expectedMineTotal = exact, exact, float64(exact)
		}

		markMine, markSafe, minOut, maxOut, expOut := reconcileGlobal(
			view, totalMines, len(s.mines), s.nonFrontierUnknowns,
			s.minMineTotal, s.maxMineTotal, s.expectedMineTotal,
		)
		s.minMineTotal, s.maxMineTotal, s.expectedMineTotal = minOut, maxOut, expOut

		if len(markMine) > 0 {
			s.diag.markedMine(markMine, "global reconciliation")
			for _, c := range markMine {
				if !s.mines[c] {
					s.mines[c] = true
					changed = true
				}
			}
		}
		if len(markSafe) > 0 {
			s.diag.markedSafe(markSafe, "global reconciliation")
			for _, c := range markSafe {
				if !s.safeUnrevealed[c] {
					s.safeUnrevealed[c] = true
					changed = true
				}
			}
		}

		if !changed {
			return nil
		}
	}
}

// analyzeFrontier enumerates f exhaustively, or degrades to an
// approximate per-constraint estimate if f is wider than maxFrontierWidth.
func (s *Solver) analyzeFrontier(view *boardView, f *frontier) (frontierResult, error) {
	if len(f.unknowns) > s.maxFrontierWidth {
		return degradeFrontier(view, f), nil
	}
	survivors, err := enumerateFrontier(view, f, s.oracle.TotalMines(), len(s.mines))
	if err != nil {
		return frontierResult{}, err
	}
	return summarizeFrontier(f, survivors), nil
}

// degradeFrontier produces an approximate analysis for a frontier too wide
// to enumerate exhaustively: each constraint is evaluated independently
// (no pairwise merge), so overlapping unknowns get a last-write-wins
// probability rather than an exact joint distribution. This is the
// "recoverable degradation" path of spec §5/§9.
func degradeFrontier(view *boardView, f *frontier) frontierResult {
	res := frontierResult{probOf: make(map[Coordinate]float64)}
	constraints := buildConstraints(view, f)
	sumR, sumWidth := 0, 0
	for _, c := range constraints {
		if len(c.positions) == 0 {
			continue
		}
		p := float64(c.r) / float64(len(c.positions))
		for _, idx := range c.positions {
			coord := f.unknowns[idx]
			switch {
			case c.r == 0:
				res.forcedSafe = append(res.forcedSafe, coord)
			case c.r == len(c.positions):
				res.forcedMine = append(res.forcedMine, coord)
			default:
				res.probOf[coord] = p
			}
		}
		sumR += c.r
		sumWidth += len(c.positions)
	}
	res.minMines = 0
	res.maxMines = sumR
	if res.maxMines > len(f.unknowns) {
		res.maxMines = len(f.unknowns)
	}
	res.expected = float64(sumR)
	return res
}

// collectNonFrontier returns every Unknown coordinate with no numbered
// neighbor, i.e. not claimed by any frontier (spec §4.5's X).
func collectNonFrontier(view *boardView, frontiers []*frontier) []Coordinate {
	claimed := make(map[Coordinate]bool)
	for _, f := range frontiers {
		for _, u := range f.unknowns {
			claimed[u] = true
		}
	}
	var out []Coordinate
	view.allCoordinates(func(c Coordinate) {
		if view.get(c).Kind != Unknown {
			return
		}
		if claimed[c] {
			return
		}
		out = append(out, c)
	})
	return out
}

// DetermineMove consults the move-selector policy (spec §4.6) and returns
// the next coordinate to reveal. It returns ErrGameOver, not a fatal
// error, once the oracle reports the game has ended.
func (s *Solver) DetermineMove() (Coordinate, error) {
	if !s.oracle.InProgress() {
		return Coordinate{}, ErrGameOver
	}
	view := newBoardView(s.oracle, s.mines, s.safeUnrevealed)
	g := s.oracle.TotalMines() - len(s.mines)

	coord, ok := selectMove(view, s.safeUnrevealed, s.squaresByProb, s.nonFrontierUnknowns, g, s.expectedMineTotal, s.rng)
	if !ok {
		return Coordinate{}, contradictionf("no move available while game in progress")
	}
	delete(s.safeUnrevealed, coord)
	s.lastMove = coord
	s.diag.move(coord, "policy")
	return coord, nil
}

// PlayGame resets the solver to oracle and plays it to completion,
// alternating AnalyzeBoard and DetermineMove until the oracle reports the
// game over (spec §6.2, §4.7).
func (s *Solver) PlayGame(oracle Oracle) (Result, error) {
	if err := s.NextGame(oracle); err != nil {
		return Result{}, err
	}
	start := time.Now()
	moves := 0

	for s.oracle.InProgress() {
		if err := s.AnalyzeBoard(); err != nil {
			return Result{}, err
		}
		coord, err := s.DetermineMove()
		if errors.Is(err, ErrGameOver) {
			break
		}
		if err != nil {
			return Result{}, err
		}
		outcome := s.oracle.Reveal(coord.Row, coord.Col)
		moves++
		if outcome == Rejected {
			return Result{}, contradictionf("oracle rejected selected move %s", coord)
		}
		if outcome == Won || outcome == Lost {
			break
		}
	}

	// Rather than trust a possibly-stale local outcome variable (the
	// oracle may already have been terminal before this call), ask the
	// board directly: a loss is the only way a mine is ever revealed.
	won := !boardShowsRevealedMine(s.oracle)
	s.diag.gameOver(won, moves)
	return Result{Won: won, Moves: moves, Duration: time.Since(start)}, nil
}

// boardShowsRevealedMine reports whether any cell on oracle's board is a
// revealed mine, which per the Oracle contract only happens after a loss.
func boardShowsRevealedMine(oracle Oracle) bool {
	for r := 0; r < oracle.Rows(); r++ {
		for c := 0; c < oracle.Cols(); c++ {
			if ru, ok := oracle.Get(r, c); ok && ru == '*' {
				return true
			}
		}
	}
	return false
}

// PlayGames plays n independent games, each against a fresh oracle from
// newOracle, and aggregates the results (spec §2's "tournament/statistics
// harness" collaborator, wired here as a thin batch driver over PlayGame).
func PlayGames(n int, newOracle func() Oracle, cfg Config) (Summary, error) {
	if n <= 0 {
		return Summary{}, configInvalidf("games must be positive, got %d", n)
	}
	s, err := New(newOracle(), cfg)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{Results: make([]Result, 0, n)}
	for i := 0; i < n; i++ {
		res, err := s.PlayGame(newOracle())
		if err != nil {
			return summary, err
		}
		summary.Games++
		if res.Won {
			summary.Wins++
		}
		summary.Results = append(summary.Results, res)
	}
	return summary, nil
}
