package config

import "testing"

func TestDefaultConfigIsWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Cols < minCols || cfg.Cols > maxCols {
		t.Fatalf("default Cols=%d out of bounds", cfg.Cols)
	}
	if cfg.Rows < minRows || cfg.Rows > maxRows {
		t.Fatalf("default Rows=%d out of bounds", cfg.Rows)
	}
}

func TestClampRejectsOutOfRangeValues(t *testing.T) {
	cfg := Config{Cols: 1, Rows: 10000, ScrollBuf: -5}
	clamp(&cfg)
	if cfg.Cols != minCols {
		t.Fatalf("Cols should clamp up to %d, got %d", minCols, cfg.Cols)
	}
	if cfg.Rows != maxRows {
		t.Fatalf("Rows should clamp down to %d, got %d", maxRows, cfg.Rows)
	}
	if cfg.ScrollBuf != 0 {
		t.Fatalf("negative ScrollBuf should clamp to 0, got %d", cfg.ScrollBuf)
	}
}

func TestClampFillsEmptyShell(t *testing.T) {
	cfg := Config{Cols: 80, Rows: 24}
	clamp(&cfg)
	if cfg.Shell == "" {
		t.Fatalf("empty shell should be filled in by clamp")
	}
}
