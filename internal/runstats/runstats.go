// Package runstats persists aggregate solver performance per board
// preset: games played, games won, total moves, and total duration. It
// adapts internal/scores' persistence shape to batch solver runs instead
// of per-game high scores.
package runstats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// PresetStats accumulates outcomes for every game played against one
// board preset.
type PresetStats struct {
	Played       int           `json:"played"`
	Won          int           `json:"won"`
	TotalMoves   int           `json:"total_moves"`
	TotalElapsed time.Duration `json:"total_elapsed_ns"`
	BestMoves    int           `json:"best_moves,omitempty"`
	LastUpdated  string        `json:"last_updated"`
}

// WinRate returns the fraction of played games won, or 0 if none played.
func (p PresetStats) WinRate() float64 {
	if p.Played == 0 {
		return 0
	}
	return float64(p.Won) / float64(p.Played)
}

// Store manages runstats persistence, keyed by board preset name.
type Store struct {
	path  string
	Stats map[string]*PresetStats `json:"stats"`
}

// Load reads run statistics from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads run statistics from a specific path. If path is empty,
// uses ~/.msolve/runstats.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Stats: make(map[string]*PresetStats)}, err
		}
		path = filepath.Join(home, ".msolve", "runstats.json")
	}

	s := &Store{path: path, Stats: make(map[string]*PresetStats)}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Stats); err != nil {
		return s, err
	}
	if s.Stats == nil {
		s.Stats = make(map[string]*PresetStats)
	}
	return s, nil
}

// Save writes run statistics to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record folds one game's outcome into the named preset's stats.
func (s *Store) Record(preset string, won bool, moves int, elapsed time.Duration) {
	p, ok := s.Stats[preset]
	if !ok {
		p = &PresetStats{}
		s.Stats[preset] = p
	}
	p.Played++
	if won {
		p.Won++
		if p.BestMoves == 0 || moves < p.BestMoves {
			p.BestMoves = moves
		}
	}
	p.TotalMoves += moves
	p.TotalElapsed += elapsed
	p.LastUpdated = time.Now().Format("2006-01-02T15:04:05Z07:00")
}

// Get returns the accumulated stats for a preset, or nil if none recorded.
func (s *Store) Get(preset string) *PresetStats {
	return s.Stats[preset]
}
