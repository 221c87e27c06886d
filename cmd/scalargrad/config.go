package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dgalbally/scalargrad/train"
)

// DatasetConfig selects and parameterizes the toy dataset.
type DatasetConfig struct {
	Kind    string  `yaml:"kind"`
	Samples int     `yaml:"samples"`
	Noise   float64 `yaml:"noise"`
	Seed    int64   `yaml:"seed"`
}

// ModelConfig describes the MLP topology. Hidden lists the hidden-layer
// widths only; the width-1 scoring layer is always appended. An empty
// list yields a plain linear scorer.
type ModelConfig struct {
	Hidden []int `yaml:"hidden"`
	Seed   int64 `yaml:"seed"`
}

// TrainConfig drives the fit loop.
type TrainConfig struct {
	Steps    int     `yaml:"steps"`
	Alpha    float64 `yaml:"alpha"`
	LRStart  float64 `yaml:"lr_start"`
	LREnd    float64 `yaml:"lr_end"`
	LogEvery int     `yaml:"log_every"`
}

// Config aggregates one training run.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Model   ModelConfig   `yaml:"model"`
	Train   TrainConfig   `yaml:"train"`
}

// DefaultConfig mirrors the classic demo run: 100 moons samples with
// 0.1 jitter, a 2-16-16-1 network, 100 max-margin steps with the
// learning rate decaying 1.0 → 0.1.
func DefaultConfig() Config {
	return Config{
		Dataset: DatasetConfig{Kind: "moons", Samples: 100, Noise: 0.1, Seed: 42},
		Model:   ModelConfig{Hidden: []int{16, 16}, Seed: 1337},
		Train: TrainConfig{
			Steps:    100,
			Alpha:    train.DefaultAlpha,
			LRStart:  1.0,
			LREnd:    0.1,
			LogEvery: 10,
		},
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path;
// an empty path (and an empty file) yields pure defaults. Unknown keys
// are rejected so typos fail loudly instead of silently training the
// wrong run.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations after defaults and YAML merge.
func (c Config) Validate() error {
	if c.Dataset.Kind != "moons" && c.Dataset.Kind != "blobs" {
		return fmt.Errorf("config: dataset.kind %q: want \"moons\" or \"blobs\"", c.Dataset.Kind)
	}
	if c.Dataset.Samples < 2 {
		return fmt.Errorf("config: dataset.samples %d: need at least 2", c.Dataset.Samples)
	}
	if c.Dataset.Noise < 0 {
		return fmt.Errorf("config: dataset.noise %g: must be >= 0", c.Dataset.Noise)
	}
	for i, w := range c.Model.Hidden {
		if w < 1 {
			return fmt.Errorf("config: model.hidden[%d] = %d: widths must be positive", i, w)
		}
	}
	if c.Train.Steps < 1 {
		return fmt.Errorf("config: train.steps %d: need at least 1", c.Train.Steps)
	}
	if c.Train.Alpha < 0 {
		return fmt.Errorf("config: train.alpha %g: must be >= 0", c.Train.Alpha)
	}
	if c.Train.LRStart <= 0 || c.Train.LREnd < 0 || c.Train.LREnd > c.Train.LRStart {
		return fmt.Errorf("config: train.lr %g→%g: want 0 <= end <= start, start > 0",
			c.Train.LRStart, c.Train.LREnd)
	}
	if c.Train.LogEvery < 1 {
		return fmt.Errorf("config: train.log_every %d: need at least 1", c.Train.LogEvery)
	}

	return nil
}
