package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/lvltsp/scenario"
	"github.com/katalvlaran/lvltsp/tsp"
	"gopkg.in/yaml.v3"
)

// Config is the YAML file accepted by -config.
//
//	scenario:
//	  difficulty: hard
//	  seed: 7
//	  count: 15
//	solver:
//	  algorithm: bb
//	  time_limit: 30s
//	bench:
//	  runs: 20
type Config struct {
	Scenario scenario.Spec `yaml:"scenario"`
	Solver   SolverConfig  `yaml:"solver"`
	Bench    BenchConfig   `yaml:"bench"`
}

// SolverConfig mirrors tsp.Options minus the logger.
type SolverConfig struct {
	Algorithm   tsp.Algorithm `yaml:"algorithm"`
	TimeLimit   time.Duration `yaml:"time_limit"`
	StartCity   int           `yaml:"start_city"`
	Seed        uint64        `yaml:"seed"`
	RandomTries int           `yaml:"random_tries"`
}

// BenchConfig enables batch mode when Runs > 0.
type BenchConfig struct {
	Runs int `yaml:"runs"`
}

// defaultConfig is a 12-city Normal scenario solved by branch and bound.
func defaultConfig() Config {
	return Config{
		Scenario: scenario.Spec{
			Difficulty: scenario.Normal,
			Seed:       1,
			Count:      12,
		},
		Solver: SolverConfig{
			Algorithm: tsp.BranchAndBoundAlgo,
			TimeLimit: tsp.DefaultTimeLimit,
			Seed:      1,
		},
	}
}

// Options converts the solver section into tsp.Options.
func (c SolverConfig) Options() tsp.Options {
	return tsp.Options{
		Algo:        c.Algorithm,
		TimeLimit:   c.TimeLimit,
		StartCity:   c.StartCity,
		Seed:        c.Seed,
		RandomTries: c.RandomTries,
	}
}

// decodeConfig reads YAML from r on top of defaultConfig. Keys missing from
// the file keep their defaults; unknown keys are rejected.
func decodeConfig(r io.Reader) (Config, error) {
	cfg := defaultConfig()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Bench.Runs < 0 {
		return Config{}, fmt.Errorf("bench runs must be >= 0, got %d", cfg.Bench.Runs)
	}

	return cfg, nil
}

// loadConfig reads the config file at path.
func loadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	return decodeConfig(file)
}
