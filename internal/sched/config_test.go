package sched

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", "does-not-exist.yml"} {
		cfg := Load(path)
		if cfg.Workers != 4 || cfg.PollMS != 50 {
			t.Errorf("Load(%q) = %+v, want defaults", path, cfg)
		}
		if cfg.WeightTable() != nil {
			t.Errorf("Load(%q) weight table = %v, want nil", path, cfg.WeightTable())
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
workers: 2
poll_ms: 10
weights:
  high: 200
  "75": 80
  urgent: 5
  low: 0
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Workers != 2 || cfg.PollMS != 10 {
		t.Errorf("Load() = %+v, want workers 2, poll_ms 10", cfg)
	}

	table := cfg.WeightTable()
	if len(table) != 2 {
		t.Fatalf("weight table = %v, want 2 entries", table)
	}
	// Keys are tiers, so lookups go through normalization in the queue;
	// compare by resolved tier here.
	for p, w := range table {
		switch {
		case p.Equal(High):
			if w != 200 {
				t.Errorf("high weight = %d, want 200", w)
			}
		case p.Equal(Custom(75)):
			if w != 80 {
				t.Errorf("custom(75) weight = %d, want 80", w)
			}
		default:
			t.Errorf("unexpected table entry %s=%d", p, w)
		}
	}
}

func TestLoadClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("workers: -1\npoll_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(path)
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want clamp to 4", cfg.Workers)
	}
	if cfg.PollMS != 50 {
		t.Errorf("PollMS = %d, want clamp to 50", cfg.PollMS)
	}
}
