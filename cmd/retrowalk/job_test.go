package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeJobFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadJobDefaults(t *testing.T) {
	path := writeJobFile(t, `
positions:
  - fen: "8/8/8/8/8/8/8/4K2k w - - 0 1"
`)
	j, err := loadJob(path)
	if err != nil {
		t.Fatalf("loadJob: %v", err)
	}
	if j.Depth != 1 {
		t.Errorf("Depth = %d, want default 1", j.Depth)
	}
	if j.Workers != 1 {
		t.Errorf("Workers = %d, want default 1", j.Workers)
	}
	if len(j.Positions) != 1 {
		t.Fatalf("len(Positions) = %d, want 1", len(j.Positions))
	}
}

func TestLoadJobExplicitDepthAndWorkers(t *testing.T) {
	path := writeJobFile(t, `
positions:
  - fen: "8/8/8/8/8/8/8/4K2k w - - 0 1"
depth: 3
workers: 4
`)
	j, err := loadJob(path)
	if err != nil {
		t.Fatalf("loadJob: %v", err)
	}
	if j.Depth != 3 || j.Workers != 4 {
		t.Errorf("Depth/Workers = %d/%d, want 3/4", j.Depth, j.Workers)
	}
}

func TestLoadJobRejectsEmptyPositions(t *testing.T) {
	path := writeJobFile(t, "positions: []\n")
	if _, err := loadJob(path); err == nil {
		t.Fatalf("expected error for a job with no positions")
	}
}

func TestLoadJobMissingFile(t *testing.T) {
	if _, err := loadJob(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Fatalf("expected error for a missing job file")
	}
}

func TestExtendedFENWithoutPockets(t *testing.T) {
	p := startPosition{FEN: "8/8/8/8/8/8/8/4K2k w - - 0 1"}
	if got, want := p.extendedFEN(), p.FEN; got != want {
		t.Fatalf("extendedFEN() = %q, want %q", got, want)
	}
}

func TestExtendedFENWithPockets(t *testing.T) {
	p := startPosition{FEN: "8/8/8/8/8/8/8/4K2k w - - 0 1", WhitePocket: "2P", BlackPocket: "q"}
	want := "8/8/8/8/8/8/8/4K2k w - - 0 1 2P q"
	if got := p.extendedFEN(); got != want {
		t.Fatalf("extendedFEN() = %q, want %q", got, want)
	}
}
