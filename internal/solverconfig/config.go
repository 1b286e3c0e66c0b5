// Package solverconfig persists user-tunable solver settings: which board
// preset to play, the enumeration width guard, and the diagnostic log
// level, the way internal/settings persisted animation/theme preferences.
package solverconfig

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/azadravec/msolve/internal/mineboard"
)

// LogLevel selects the verbosity of solver diagnostics.
type LogLevel string

const (
	LogQuiet LogLevel = "quiet"
	LogInfo  LogLevel = "info"
	LogDebug LogLevel = "debug"
)

// Config stores user preferences persisted to disk.
type Config struct {
	BoardPreset      string   `json:"board_preset"`
	MaxFrontierWidth int      `json:"max_frontier_width"`
	LogLevel         LogLevel `json:"log_level"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BoardPreset:      "beginner",
		MaxFrontierWidth: 28,
		LogLevel:         LogInfo,
	}
}

var presetByName = map[string]mineboard.Difficulty{
	"beginner":     mineboard.Beginner,
	"intermediate": mineboard.Intermediate,
	"expert":       mineboard.Expert,
}

// BoardConfig resolves the named preset to board dimensions, falling back
// to Beginner for an unrecognized name.
func (c Config) BoardConfig() mineboard.DifficultyConfig {
	d, ok := presetByName[c.BoardPreset]
	if !ok {
		d = mineboard.Beginner
	}
	return mineboard.PresetConfig(d)
}

// RandomPreset picks a uniformly random board preset name, for batch runs
// that want varied board sizes rather than a single fixed one.
func RandomPreset(rng *rand.Rand) string {
	names := []string{"beginner", "intermediate", "expert"}
	return names[rng.IntN(len(names))]
}

// Store manages settings persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads settings from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads settings from a specific path. If path is empty, uses
// ~/.msolve/solverconfig.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			c := DefaultConfig()
			return &Store{Config: c}, err
		}
		path = filepath.Join(home, ".msolve", "solverconfig.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the settings to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize ensures all config values are valid, falling back to defaults.
func (s *Store) normalize() {
	if _, ok := presetByName[s.Config.BoardPreset]; !ok {
		s.Config.BoardPreset = "beginner"
	}
	switch s.Config.LogLevel {
	case LogQuiet, LogInfo, LogDebug:
	default:
		s.Config.LogLevel = LogInfo
	}
	if s.Config.MaxFrontierWidth <= 0 {
		s.Config.MaxFrontierWidth = 28
	}
}
