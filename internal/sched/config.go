package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml.
type Config struct {
	Workers int               `yaml:"workers"` // consumer goroutines (4 by default)
	PollMS  int               `yaml:"poll_ms"` // idle poll interval in milliseconds (50 by default)
	Weights map[string]uint32 `yaml:"weights"` // tier name (or bare weight) -> selection weight
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		Workers: 4,
		PollMS:  50,
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.PollMS <= 0 {
		cfg.PollMS = 50
	}

	return cfg
}

// WeightTable converts the configured weight overrides. Unknown tier
// names and zero weights are skipped.
func (c Config) WeightTable() WeightTable {
	if len(c.Weights) == 0 {
		return nil
	}
	table := make(WeightTable, len(c.Weights))
	for name, w := range c.Weights {
		p, err := ParsePriority(name)
		if err != nil || w == 0 {
			continue
		}
		table[p] = w
	}
	return table
}
