// Package mineboard implements the Minesweeper game collaborator: board
// state, mine placement, reveal/flood-fill, and win/loss detection. It is
// the "opaque collaborator" the solver package treats as a black box
// through the solver.Oracle interface — mineboard never imports solver.
package mineboard

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// Difficulty is a named board size/mine-count preset.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
)

// DifficultyConfig holds the grid dimensions and mine count for a difficulty.
type DifficultyConfig struct {
	Rows  int
	Cols  int
	Mines int
}

var difficultyPresets = map[Difficulty]DifficultyConfig{
	Beginner:     {Rows: 9, Cols: 9, Mines: 10},
	Intermediate: {Rows: 16, Cols: 16, Mines: 40},
	Expert:       {Rows: 16, Cols: 30, Mines: 99},
}

// PresetConfig returns the configuration for a named difficulty.
func PresetConfig(d Difficulty) DifficultyConfig {
	return difficultyPresets[d]
}

// ErrInvalidConfig is returned when a board is requested with rows, cols,
// or mines out of range (0 < rows, cols and 0 < mines < rows*cols).
var ErrInvalidConfig = errors.New("mineboard: invalid board configuration")

// CellState represents the visibility state of a cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// Cell represents a single cell on the minesweeper grid.
type Cell struct {
	Mine     bool
	State    CellState
	Adjacent int
}

// GameState represents the overall state of the game.
type GameState int

const (
	Playing GameState = iota
	Won
	Lost
)

// Outcome is the result of a Reveal call, mirroring spec's
// reveal(r,c) -> ok | lost | won, plus a rejection for invalid requests.
type Outcome int

const (
	// Rejected means the coordinate was out of bounds, already revealed,
	// flagged, or the game was already over; no state changed.
	Rejected Outcome = iota
	// OK means the cell (and possibly a flood of neighbors) was revealed
	// and the game continues.
	OK
	// Win means this reveal completed the board.
	Win
	// Loss means this reveal hit a mine; all mines are now shown.
	Loss
)

// Game holds the complete state of a minesweeper game.
type Game struct {
	grid          [][]Cell
	rows          int
	cols          int
	totalMines    int
	flagsUsed     int
	cellsRevealed int
	state         GameState
	firstClick    bool
	rng           *rand.Rand
}

// New creates a new game with mines not yet placed (placed on first reveal),
// using a randomly seeded source.
func New(rows, cols, mines int) (*Game, error) {
	return NewSeeded(rows, cols, mines, rand.Uint64(), rand.Uint64())
}

// NewSeeded is like New but with an explicit PCG seed pair, for reproducible
// games (property test #6: deterministic replay with a fixed seed).
func NewSeeded(rows, cols, mines int, seed1, seed2 uint64) (*Game, error) {
	if err := validateConfig(rows, cols, mines); err != nil {
		return nil, err
	}
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	return &Game{
		grid:       grid,
		rows:       rows,
		cols:       cols,
		totalMines: mines,
		firstClick: true,
		rng:        rand.New(rand.NewPCG(seed1, seed2)),
	}, nil
}

// NewWithMines creates a game with mines at specific positions, for tests.
// FirstClick is false since mines are already placed.
func NewWithMines(rows, cols int, mines [][2]int) *Game {
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	g := &Game{
		grid:       grid,
		rows:       rows,
		cols:       cols,
		totalMines: len(mines),
	}
	for _, pos := range mines {
		g.grid[pos[0]][pos[1]].Mine = true
	}
	g.computeAdjacent()
	return g
}

func validateConfig(rows, cols, mines int) error {
	if rows <= 0 || cols <= 0 || mines <= 0 || mines >= rows*cols {
		return fmt.Errorf("%w: rows=%d cols=%d mines=%d", ErrInvalidConfig, rows, cols, mines)
	}
	return nil
}

// Rows reports the board's row count.
func (g *Game) Rows() int { return g.rows }

// Cols reports the board's column count.
func (g *Game) Cols() int { return g.cols }

// TotalMines reports the board's total mine count.
func (g *Game) TotalMines() int { return g.totalMines }

// FlagsUsed reports how many cells are currently flagged.
func (g *Game) FlagsUsed() int { return g.flagsUsed }

// CellsRevealed reports how many non-mine cells have been revealed.
func (g *Game) CellsRevealed() int { return g.cellsRevealed }

// InProgress reports whether the game has neither been won nor lost.
func (g *Game) InProgress() bool { return g.state == Playing }

// State reports the current game state.
func (g *Game) State() GameState { return g.state }

// Get returns the board-oracle rune for (row, col): '?' for hidden or
// flagged cells, ' ' for a revealed zero-adjacent cell, '1'..'8' for a
// revealed numbered cell, '*' for a revealed mine (only after a loss).
// The second return value is false for out-of-bounds coordinates.
func (g *Game) Get(row, col int) (rune, bool) {
	if !g.inBounds(row, col) {
		return 0, false
	}
	cell := g.grid[row][col]
	switch cell.State {
	case Hidden, Flagged:
		return '?', true
	case Revealed:
		if cell.Mine {
			return '*', true
		}
		if cell.Adjacent == 0 {
			return ' ', true
		}
		return rune('0' + cell.Adjacent), true
	}
	return '?', true
}

// placeMines randomly places mines on the grid, excluding the safe cell and
// its 8 neighbors. Called on the first Reveal.
func (g *Game) placeMines(safeRow, safeCol int) {
	excluded := make(map[[2]int]bool)
	for _, n := range g.neighbors(safeRow, safeCol) {
		excluded[n] = true
	}
	excluded[[2]int{safeRow, safeCol}] = true

	placed := 0
	for placed < g.totalMines {
		r := g.rng.IntN(g.rows)
		c := g.rng.IntN(g.cols)
		pos := [2]int{r, c}
		if excluded[pos] || g.grid[r][c].Mine {
			continue
		}
		g.grid[r][c].Mine = true
		placed++
	}
	g.computeAdjacent()
}

// computeAdjacent calculates the adjacent mine count for every cell.
func (g *Game) computeAdjacent() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.grid[r][c].Mine {
				continue
			}
			count := 0
			for _, n := range g.neighbors(r, c) {
				if g.grid[n[0]][n[1]].Mine {
					count++
				}
			}
			g.grid[r][c].Adjacent = count
		}
	}
}

// Reveal uncovers a cell. Returns Rejected if the cell cannot be revealed
// (out of bounds, already revealed, flagged, or the game is over). On the
// first reveal of a game, mines are placed avoiding the clicked cell.
// Hitting a mine ends the game with Loss. Revealing a zero-adjacent cell
// flood-fills neighboring cells.
func (g *Game) Reveal(row, col int) Outcome {
	if !g.inBounds(row, col) || g.state != Playing {
		return Rejected
	}
	cell := &g.grid[row][col]
	if cell.State == Revealed || cell.State == Flagged {
		return Rejected
	}

	if g.firstClick {
		g.placeMines(row, col)
		g.firstClick = false
	}

	if cell.Mine {
		g.state = Lost
		g.revealAllMines()
		return Loss
	}

	g.floodReveal(row, col)
	g.checkWin()
	if g.state == Won {
		return Win
	}
	return OK
}

// floodReveal uses BFS to reveal a cell and, if it has zero adjacent mines,
// continues revealing neighbors until hitting numbered cells.
func (g *Game) floodReveal(row, col int) {
	type pos struct{ r, c int }
	queue := []pos{{row, col}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		cell := &g.grid[p.r][p.c]
		if cell.State == Revealed || cell.State == Flagged || cell.Mine {
			continue
		}

		cell.State = Revealed
		g.cellsRevealed++

		if cell.Adjacent == 0 {
			for _, n := range g.neighbors(p.r, p.c) {
				if g.grid[n[0]][n[1]].State == Hidden {
					queue = append(queue, pos{n[0], n[1]})
				}
			}
		}
	}
}

// revealAllMines shows all mine locations (called on game loss).
func (g *Game) revealAllMines() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.grid[r][c].Mine {
				g.grid[r][c].State = Revealed
			}
		}
	}
}

// ToggleFlag toggles the flag state on a hidden cell. A no-op on revealed
// cells or once the game is over.
func (g *Game) ToggleFlag(row, col int) {
	if !g.inBounds(row, col) || g.state != Playing {
		return
	}
	cell := &g.grid[row][col]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		g.flagsUsed++
	case Flagged:
		cell.State = Hidden
		g.flagsUsed--
	}
}

// checkWin sets the game state to Won if all non-mine cells are revealed.
func (g *Game) checkWin() {
	if g.cellsRevealed == g.rows*g.cols-g.totalMines {
		g.state = Won
	}
}

func (g *Game) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// neighbors returns the valid neighboring coordinates for a cell.
func (g *Game) neighbors(row, col int) [][2]int {
	var result [][2]int
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if g.inBounds(nr, nc) {
				result = append(result, [2]int{nr, nc})
			}
		}
	}
	return result
}

// Render writes a plain-text rendering of the board to w, matching the
// rune vocabulary Get exposes.
func (g *Game) Render(w io.Writer) error {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			ru, _ := g.Get(r, c)
			if _, err := fmt.Fprintf(w, "%c ", ru); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
