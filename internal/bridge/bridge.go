// Package bridge adapts internal/mineboard.Game to the solver.Oracle
// interface. It exists so neither mineboard nor solver needs to import the
// other: mineboard stays a plain game engine, solver stays a generic
// constraint solver over any conforming Oracle, and this small package is
// the only place that knows about both concrete Outcome enums.
package bridge

import (
	"github.com/azadravec/msolve/internal/mineboard"
	"github.com/azadravec/msolve/internal/solver"
)

// GameOracle adapts a *mineboard.Game to solver.Oracle.
type GameOracle struct {
	*mineboard.Game
}

// NewGameOracle wraps a mineboard game as a solver.Oracle.
func NewGameOracle(g *mineboard.Game) GameOracle {
	return GameOracle{Game: g}
}

// Rows satisfies solver.Oracle.
func (o GameOracle) Rows() int { return o.Game.Rows() }

// Cols satisfies solver.Oracle.
func (o GameOracle) Cols() int { return o.Game.Cols() }

// TotalMines satisfies solver.Oracle.
func (o GameOracle) TotalMines() int { return o.Game.TotalMines() }

// Get satisfies solver.Oracle.
func (o GameOracle) Get(row, col int) (rune, bool) { return o.Game.Get(row, col) }

// InProgress satisfies solver.Oracle.
func (o GameOracle) InProgress() bool { return o.Game.InProgress() }

// Reveal satisfies solver.Oracle, translating mineboard.Outcome to
// solver.Outcome.
func (o GameOracle) Reveal(row, col int) solver.Outcome {
	switch o.Game.Reveal(row, col) {
	case mineboard.OK:
		return solver.Revealed
	case mineboard.Win:
		return solver.Won
	case mineboard.Loss:
		return solver.Lost
	default:
		return solver.Rejected
	}
}
