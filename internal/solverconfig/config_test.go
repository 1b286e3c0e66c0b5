package solverconfig

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/azadravec/msolve/internal/mineboard"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.BoardPreset != "beginner" {
		t.Errorf("BoardPreset = %q, want %q", c.BoardPreset, "beginner")
	}
	if c.MaxFrontierWidth != 28 {
		t.Errorf("MaxFrontierWidth = %d, want 28", c.MaxFrontierWidth)
	}
	if c.LogLevel != LogInfo {
		t.Errorf("LogLevel = %q, want %q", c.LogLevel, LogInfo)
	}
}

func TestBoardConfig(t *testing.T) {
	tests := []struct {
		preset string
		want   mineboard.DifficultyConfig
	}{
		{"beginner", mineboard.PresetConfig(mineboard.Beginner)},
		{"intermediate", mineboard.PresetConfig(mineboard.Intermediate)},
		{"expert", mineboard.PresetConfig(mineboard.Expert)},
		{"bogus", mineboard.PresetConfig(mineboard.Beginner)},
	}
	for _, tt := range tests {
		c := Config{BoardPreset: tt.preset}
		if got := c.BoardConfig(); got != tt.want {
			t.Errorf("BoardConfig(%q) = %+v, want %+v", tt.preset, got, tt.want)
		}
	}
}

func TestLoadFromMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solverconfig.json")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if s.Config.BoardPreset != "beginner" {
		t.Errorf("BoardPreset = %q, want default %q", s.Config.BoardPreset, "beginner")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solverconfig.json")

	s, _ := LoadFrom(path)
	s.Config.BoardPreset = "expert"
	s.Config.MaxFrontierWidth = 20
	s.Config.LogLevel = LogDebug

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Config.BoardPreset != "expert" {
		t.Errorf("BoardPreset = %q, want %q", loaded.Config.BoardPreset, "expert")
	}
	if loaded.Config.MaxFrontierWidth != 20 {
		t.Errorf("MaxFrontierWidth = %d, want 20", loaded.Config.MaxFrontierWidth)
	}
	if loaded.Config.LogLevel != LogDebug {
		t.Errorf("LogLevel = %q, want %q", loaded.Config.LogLevel, LogDebug)
	}
}

func TestNormalizeInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solverconfig.json")

	data := []byte(`{
		"board_preset": "nightmare",
		"max_frontier_width": -5,
		"log_level": "shout"
	}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Config.BoardPreset != "beginner" {
		t.Errorf("BoardPreset = %q, want default %q", s.Config.BoardPreset, "beginner")
	}
	if s.Config.MaxFrontierWidth != 28 {
		t.Errorf("MaxFrontierWidth = %d, want default 28", s.Config.MaxFrontierWidth)
	}
	if s.Config.LogLevel != LogInfo {
		t.Errorf("LogLevel = %q, want default %q", s.Config.LogLevel, LogInfo)
	}
}

func TestRandomPresetIsValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 20; i++ {
		name := RandomPreset(rng)
		if _, ok := presetByName[name]; !ok {
			t.Errorf("RandomPreset produced unrecognized preset %q", name)
		}
	}
}
