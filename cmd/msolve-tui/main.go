// Command msolve-tui watches the solver play Minesweeper interactively.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/azadravec/msolve/internal/spectator"
)

func main() {
	p := tea.NewProgram(
		spectator.New(),
		tea.WithAltScreen(),
		tea.WithFPS(30),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
