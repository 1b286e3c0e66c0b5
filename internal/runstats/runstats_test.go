package runstats

import (
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "runstats.json")
	return &Store{path: path, Stats: make(map[string]*PresetStats)}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if s.Get("beginner") != nil {
		t.Error("expected nil for a preset with no recorded games")
	}
}

func TestRecordAccumulates(t *testing.T) {
	s := tempStore(t)
	s.Record("beginner", true, 12, 5*time.Second)
	s.Record("beginner", false, 3, 1*time.Second)
	s.Record("beginner", true, 8, 4*time.Second)

	p := s.Get("beginner")
	if p == nil {
		t.Fatal("expected stats for beginner")
	}
	if p.Played != 3 {
		t.Errorf("Played = %d, want 3", p.Played)
	}
	if p.Won != 2 {
		t.Errorf("Won = %d, want 2", p.Won)
	}
	if p.TotalMoves != 23 {
		t.Errorf("TotalMoves = %d, want 23", p.TotalMoves)
	}
	if p.BestMoves != 8 {
		t.Errorf("BestMoves = %d, want 8 (the shortest win)", p.BestMoves)
	}
	if got := p.WinRate(); got < 0.666 || got > 0.667 {
		t.Errorf("WinRate = %f, want ~0.667", got)
	}
}

func TestRecordKeepsPresetsIndependent(t *testing.T) {
	s := tempStore(t)
	s.Record("beginner", true, 10, time.Second)
	s.Record("expert", false, 50, time.Minute)

	if s.Get("beginner").Played != 1 {
		t.Error("beginner stats should be independent of expert")
	}
	if s.Get("expert").Won != 0 {
		t.Error("expert loss should not affect win count")
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := tempStore(t)
	s.Record("intermediate", true, 40, 10*time.Second)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(s.path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	p := loaded.Get("intermediate")
	if p == nil || p.Played != 1 || p.Won != 1 {
		t.Errorf("got %+v, want Played=1 Won=1", p)
	}
}

func TestWinRateNoGames(t *testing.T) {
	var p PresetStats
	if got := p.WinRate(); got != 0 {
		t.Errorf("WinRate with no games = %f, want 0", got)
	}
}
