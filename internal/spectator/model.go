// Package spectator implements a Bubble Tea viewer that watches the
// solver play a game move by move. Unlike internal/minesweeper's old
// model, input never drives a reveal directly: the viewer only steps or
// auto-plays a move log the solver produces, matching the "no input
// loop" boundary in the solver's scope.
package spectator

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/azadravec/msolve/internal/bridge"
	"github.com/azadravec/msolve/internal/mineboard"
	"github.com/azadravec/msolve/internal/solver"
)

type phase int

const (
	phaseDifficulty phase = iota
	phaseWatching
	phaseGameOver
)

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// moveRecord is one entry in the replay log: the coordinate chosen and
// the outcome it produced.
type moveRecord struct {
	coord   solver.Coordinate
	outcome solver.Outcome
}

// Model is the Bubble Tea model for watching the solver play.
type Model struct {
	game   *mineboard.Game
	oracle bridge.GameOracle
	s      *solver.Solver

	diff      mineboard.Difficulty
	log       []moveRecord
	width     int
	height    int
	autoPlay  bool
	phase     phase
	done      bool
	lastError error
}

// New creates a fresh spectator model at the difficulty selection screen.
func New() Model {
	return Model{phase: phaseDifficulty}
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Done returns true when the viewer wants to exit.
func (m Model) Done() bool {
	return m.done
}

// Update handles input and advances the replay.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.phase == phaseWatching && m.autoPlay && m.game.InProgress() {
			m.step()
			if !m.game.InProgress() {
				m.phase = phaseGameOver
				return m, nil
			}
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseDifficulty:
			return m.updateDifficulty(key)
		case phaseWatching:
			return m.updateWatching(key)
		case phaseGameOver:
			return m.updateGameOver(key)
		}
	}
	return m, nil
}

func (m Model) updateDifficulty(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		return m.startGame(mineboard.Beginner)
	case "2":
		return m.startGame(mineboard.Intermediate)
	case "3":
		return m.startGame(mineboard.Expert)
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

func (m Model) startGame(diff mineboard.Difficulty) (tea.Model, tea.Cmd) {
	cfg := mineboard.PresetConfig(diff)
	game, err := mineboard.New(cfg.Rows, cfg.Cols, cfg.Mines)
	if err != nil {
		m.lastError = err
		return m, nil
	}
	oracle := bridge.NewGameOracle(game)
	s, err := solver.New(oracle, solver.Config{})
	if err != nil {
		m.lastError = err
		return m, nil
	}

	m.diff = diff
	m.game = game
	m.oracle = oracle
	m.s = s
	m.log = nil
	m.phase = phaseWatching
	m.autoPlay = false
	m.lastError = nil
	return m, nil
}

func (m *Model) step() {
	if err := m.s.AnalyzeBoard(); err != nil {
		m.lastError = err
		return
	}
	coord, err := m.s.DetermineMove()
	if err != nil {
		m.lastError = err
		return
	}
	outcome := m.oracle.Reveal(coord.Row, coord.Col)
	m.log = append(m.log, moveRecord{coord: coord, outcome: outcome})
}

func (m Model) updateWatching(key string) (tea.Model, tea.Cmd) {
	switch key {
	case " ", "enter", "n":
		if m.game.InProgress() {
			m.step()
			if !m.game.InProgress() {
				m.phase = phaseGameOver
			}
		}
	case "a":
		m.autoPlay = !m.autoPlay
		if m.autoPlay {
			return m, tickCmd()
		}
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

func (m Model) updateGameOver(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n":
		return m.startGame(m.diff)
	case "d":
		m.phase = phaseDifficulty
		m.game = nil
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

// View renders the complete viewer screen.
func (m Model) View() string {
	switch m.phase {
	case phaseDifficulty:
		return m.viewDifficulty()
	case phaseWatching, phaseGameOver:
		return m.viewGame()
	}
	return ""
}

func (m Model) viewDifficulty() string {
	sections := []string{
		titleStyle.Render("M S O L V E"),
		"",
		headerStyle.Render("Select A Board To Watch"),
		"",
		optionStyle.Render("  [1]  Beginner      9 x 9    10 mines"),
		optionStyle.Render("  [2]  Intermediate  16 x 16  40 mines"),
		optionStyle.Render("  [3]  Expert        16 x 30  99 mines"),
		"",
		footerStyle.Render("Q Quit"),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewGame() string {
	if m.game == nil {
		return ""
	}

	diffNames := map[mineboard.Difficulty]string{
		mineboard.Beginner:     "Beginner",
		mineboard.Intermediate: "Intermediate",
		mineboard.Expert:       "Expert",
	}
	title := titleStyle.Render(fmt.Sprintf("Watching - %s", diffNames[m.diff]))

	remaining := m.game.TotalMines() - m.game.FlagsUsed()
	status := statusStyle.Render(fmt.Sprintf("Mines: %d  Moves: %d  Auto: %v", remaining, len(m.log), m.autoPlay))

	sections := []string{title, "", status, "", m.renderGrid(), ""}

	if m.lastError != nil {
		sections = append(sections, loseStyle.Render("solver error: "+m.lastError.Error()), "")
	}

	if m.phase == phaseGameOver {
		switch m.game.State() {
		case mineboard.Won:
			sections = append(sections, winStyle.Render("SOLVED"))
		case mineboard.Lost:
			sections = append(sections, loseStyle.Render("SOLVER HIT A MINE"))
		}
		sections = append(sections, "")
	}

	var footer string
	if m.phase == phaseGameOver {
		footer = "N New Game | D Difficulty | Q Quit"
	} else {
		footer = "Space/Enter Step | A Toggle Auto-Play | Q Quit"
	}
	sections = append(sections, footerStyle.Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderGrid() string {
	var lastCoord solver.Coordinate
	hasLast := len(m.log) > 0
	if hasLast {
		lastCoord = m.log[len(m.log)-1].coord
	}

	var rows []string
	for r := 0; r < m.game.Rows(); r++ {
		var cells []string
		for c := 0; c < m.game.Cols(); c++ {
			ru, _ := m.game.Get(r, c)
			isLast := hasLast && lastCoord.Row == r && lastCoord.Col == c
			cells = append(cells, m.cellStyle(ru, isLast).Render(m.renderCell(ru)))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCell(ru rune) string {
	switch ru {
	case '?':
		return "##"
	case '*':
		return "* "
	case ' ':
		return "  "
	default:
		return fmt.Sprintf("%c ", ru)
	}
}

func (m Model) cellStyle(ru rune, isLast bool) lipgloss.Style {
	base := lipgloss.NewStyle().Width(2)
	if isLast {
		base = base.Background(lipgloss.Color("#444444")).Bold(true)
	}
	return base.Foreground(cellForeground(ru))
}

func cellForeground(ru rune) lipgloss.Color {
	switch ru {
	case '?':
		return lipgloss.Color("#808080")
	case '*':
		return lipgloss.Color("#FF0000")
	default:
		if ru >= '1' && ru <= '8' {
			return numberColor(int(ru - '0'))
		}
		return lipgloss.Color("#FFFFFF")
	}
}

func numberColor(n int) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E632"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E632"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)
