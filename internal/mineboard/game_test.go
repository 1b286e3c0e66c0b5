package mineboard

import "testing"

// testGrid creates a 5x5 grid with mines at specified positions.
// Default layout used by several tests:
//
//	Mines at (0,0), (0,4), (2,2), (4,0), (4,4)
//
//	M 1 0 1 M
//	1 2 1 2 1
//	0 1 M 1 0
//	1 2 1 2 1
//	M 1 0 1 M
func testGrid() *Game {
	mines := [][2]int{{0, 0}, {0, 4}, {2, 2}, {4, 0}, {4, 4}}
	return NewWithMines(5, 5, mines)
}

func TestAdjacentCounts(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name string
		row  int
		col  int
		want int
	}{
		{"edge cell (0,1) near 1 mine", 0, 1, 1},
		{"center of grid (2,2) is mine", 2, 2, 0},
		{"cell (1,1) near 2 mines", 1, 1, 2},
		{"cell (1,2) near 1 mine", 1, 2, 1},
		{"cell (1,3) near 2 mines", 1, 3, 2},
		{"edge empty (2,0)", 2, 0, 0},
		{"cell (3,1) near 2 mines", 3, 1, 2},
		{"cell (0,2) zero adjacent", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := g.grid[tt.row][tt.col]
			if cell.Mine {
				return
			}
			if cell.Adjacent != tt.want {
				t.Errorf("grid[%d][%d].Adjacent = %d, want %d", tt.row, tt.col, cell.Adjacent, tt.want)
			}
		})
	}
}

func TestRevealEmpty(t *testing.T) {
	g := testGrid()

	outcome := g.Reveal(0, 2)
	if outcome != OK {
		t.Fatalf("Reveal(0,2) = %v, want OK", outcome)
	}

	wantRevealed := [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 1}, {1, 2}, {1, 3},
	}
	for _, pos := range wantRevealed {
		cell := g.grid[pos[0]][pos[1]]
		if cell.State != Revealed {
			t.Errorf("grid[%d][%d] should be Revealed after flood-fill, got %v", pos[0], pos[1], cell.State)
		}
	}

	wantHidden := [][2]int{
		{0, 0}, {0, 4}, {2, 2}, {4, 0}, {4, 4},
		{2, 0}, {3, 0}, {4, 1},
	}
	for _, pos := range wantHidden {
		cell := g.grid[pos[0]][pos[1]]
		if cell.State == Revealed && !cell.Mine {
			t.Errorf("grid[%d][%d] should be Hidden, got Revealed", pos[0], pos[1])
		}
	}
}

func TestRevealMine(t *testing.T) {
	g := testGrid()

	outcome := g.Reveal(0, 0)
	if outcome != Loss {
		t.Fatalf("Reveal(0,0) = %v, want Loss", outcome)
	}
	if g.State() != Lost {
		t.Errorf("State() = %v, want Lost", g.State())
	}

	minePositions := [][2]int{{0, 0}, {0, 4}, {2, 2}, {4, 0}, {4, 4}}
	for _, pos := range minePositions {
		cell := g.grid[pos[0]][pos[1]]
		if cell.State != Revealed {
			t.Errorf("mine at (%d,%d) should be Revealed after loss, got %v", pos[0], pos[1], cell.State)
		}
	}
}

func TestToggleFlag(t *testing.T) {
	g := testGrid()

	g.ToggleFlag(1, 0)
	if g.grid[1][0].State != Flagged {
		t.Error("cell should be Flagged after ToggleFlag")
	}
	if g.FlagsUsed() != 1 {
		t.Errorf("FlagsUsed() = %d, want 1", g.FlagsUsed())
	}

	if outcome := g.Reveal(1, 0); outcome != Rejected {
		t.Errorf("Reveal on flagged cell = %v, want Rejected", outcome)
	}

	g.ToggleFlag(1, 0)
	if g.grid[1][0].State != Hidden {
		t.Error("cell should be Hidden after second ToggleFlag")
	}
	if g.FlagsUsed() != 0 {
		t.Errorf("FlagsUsed() = %d, want 0", g.FlagsUsed())
	}

	g.Reveal(1, 0)
	g.ToggleFlag(1, 0)
	if g.grid[1][0].State != Revealed {
		t.Error("should not be able to flag a revealed cell")
	}
}

func TestWinDetection(t *testing.T) {
	g := testGrid()

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.grid[r][c].Mine {
				g.Reveal(r, c)
			}
		}
	}

	if g.State() != Won {
		t.Errorf("State() = %v, want Won", g.State())
	}
	if g.CellsRevealed() != 20 {
		t.Errorf("CellsRevealed() = %d, want 20", g.CellsRevealed())
	}
}

func TestFirstClickSafe(t *testing.T) {
	cfg := PresetConfig(Beginner)
	for i := 0; i < 50; i++ {
		g, err := NewSeeded(cfg.Rows, cfg.Cols, cfg.Mines, uint64(i), uint64(i*7+1))
		if err != nil {
			t.Fatalf("NewSeeded: %v", err)
		}
		row := i % cfg.Rows
		col := (i * 3) % cfg.Cols

		outcome := g.Reveal(row, col)

		if outcome == Loss {
			t.Errorf("first click at (%d,%d) hit a mine on iteration %d", row, col, i)
		}
		if g.firstClick {
			t.Error("firstClick should be false after first Reveal")
		}
	}
}

func TestBoundsCheck(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name string
		row  int
		col  int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 5, 0},
		{"col too large", 0, 5},
		{"both negative", -1, -1},
		{"both too large", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if outcome := g.Reveal(tt.row, tt.col); outcome != Rejected {
				t.Errorf("Reveal(%d,%d) = %v, want Rejected", tt.row, tt.col, outcome)
			}
		})
	}
}

func TestNewWithMinesComputation(t *testing.T) {
	g := NewWithMines(3, 3, [][2]int{{1, 1}})

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				if !g.grid[r][c].Mine {
					t.Error("center cell should be a mine")
				}
				continue
			}
			if g.grid[r][c].Adjacent != 1 {
				t.Errorf("grid[%d][%d].Adjacent = %d, want 1", r, c, g.grid[r][c].Adjacent)
			}
		}
	}
}

func TestRevealAlreadyRevealed(t *testing.T) {
	g := testGrid()

	g.Reveal(1, 0)
	before := g.CellsRevealed()

	if outcome := g.Reveal(1, 0); outcome != Rejected {
		t.Errorf("Reveal on already-revealed cell = %v, want Rejected", outcome)
	}
	if g.CellsRevealed() != before {
		t.Error("CellsRevealed should not change on double reveal")
	}
}

func TestRevealAfterGameOver(t *testing.T) {
	g := testGrid()

	g.Reveal(0, 0)
	if g.State() != Lost {
		t.Fatal("expected Lost state")
	}

	if outcome := g.Reveal(1, 0); outcome != Rejected {
		t.Errorf("Reveal after game over = %v, want Rejected", outcome)
	}
}

func TestToggleFlagAfterGameOver(t *testing.T) {
	g := testGrid()

	g.Reveal(0, 0)
	before := g.FlagsUsed()

	g.ToggleFlag(1, 0)
	if g.FlagsUsed() != before {
		t.Error("should not be able to flag after game over")
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name             string
		rows, cols, mine int
	}{
		{"zero rows", 0, 5, 1},
		{"zero cols", 5, 0, 1},
		{"zero mines", 5, 5, 0},
		{"too many mines", 3, 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rows, tt.cols, tt.mine); err == nil {
				t.Errorf("New(%d,%d,%d) = nil error, want ErrInvalidConfig", tt.rows, tt.cols, tt.mine)
			}
		})
	}
}

func TestGetOutOfBounds(t *testing.T) {
	g := testGrid()
	if _, ok := g.Get(-1, 0); ok {
		t.Error("Get(-1,0) should report out of bounds")
	}
	if _, ok := g.Get(0, 10); ok {
		t.Error("Get(0,10) should report out of bounds")
	}
}
