// Package config holds the TOML-backed application configuration.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/sile16/karaoke/internal/align"
	"github.com/sile16/karaoke/internal/transcript"
)

//go:embed sample_config.toml
var sample []byte

// Engine configures the alignment engine.
type Engine struct {
	Similarity      string   `toml:"similarity"`
	DirectThreshold float64  `toml:"direct_threshold"`
	AcceptThreshold float64  `toml:"accept_threshold"`
	MatchThreshold  float64  `toml:"match_threshold"`
	Stopwords       []string `toml:"stopwords"`
}

// Segments configures word→segment grouping.
type Segments struct {
	MaxWords         int     `toml:"max_words"`
	MaxGapSeconds    float64 `toml:"max_gap_seconds"`
	BreakPunctuation string  `toml:"break_punctuation"`
}

// Output configures the result writers.
type Output struct {
	Format     string `toml:"format"`
	RoundTimes bool   `toml:"round_times"`
	Indent     bool   `toml:"indent"`
}

// Batch configures the concurrent runner.
type Batch struct {
	Concurrency int `toml:"concurrency"`
}

// Config is the full application configuration.
type Config struct {
	Engine   Engine   `toml:"engine"`
	Segments Segments `toml:"segments"`
	Output   Output   `toml:"output"`
	Batch    Batch    `toml:"batch"`
}

// Default returns the canonical configuration; the embedded sample file
// spells out the same values.
func Default() *Config {
	return &Config{
		Engine: Engine{
			Similarity:      string(align.StrategyCharSequence),
			DirectThreshold: 0.9,
			AcceptThreshold: 0.6,
			MatchThreshold:  0.3,
			Stopwords:       align.DefaultStopwords,
		},
		Segments: Segments{
			MaxWords:         8,
			MaxGapSeconds:    1.0,
			BreakPunctuation: ".?!,",
		},
		Output: Output{
			Format:     "json",
			RoundTimes: true,
			Indent:     true,
		},
		Batch: Batch{
			Concurrency: 4,
		},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var validFormats = map[string]bool{"json": true, "srt": true, "lrc": true, "all": true}

// Validate rejects configurations the rest of the program cannot honor.
func (c *Config) Validate() error {
	switch align.Strategy(c.Engine.Similarity) {
	case align.StrategyCharSequence, align.StrategyTokenSet, "":
	default:
		return fmt.Errorf("engine.similarity: unknown strategy %q", c.Engine.Similarity)
	}
	for name, v := range map[string]float64{
		"engine.direct_threshold": c.Engine.DirectThreshold,
		"engine.accept_threshold": c.Engine.AcceptThreshold,
		"engine.match_threshold":  c.Engine.MatchThreshold,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s: %v outside [0, 1]", name, v)
		}
	}
	if c.Segments.MaxWords < 1 {
		return fmt.Errorf("segments.max_words: %d, need at least 1", c.Segments.MaxWords)
	}
	if c.Segments.MaxGapSeconds < 0 {
		return fmt.Errorf("segments.max_gap_seconds: %v is negative", c.Segments.MaxGapSeconds)
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency: %d, need at least 1", c.Batch.Concurrency)
	}
	return nil
}

// EngineOptions maps the engine section onto alignment engine options.
func (c *Config) EngineOptions() align.Options {
	return align.Options{
		Strategy:        align.Strategy(c.Engine.Similarity),
		DirectThreshold: c.Engine.DirectThreshold,
		AcceptThreshold: c.Engine.AcceptThreshold,
		MatchThreshold:  c.Engine.MatchThreshold,
		Stopwords:       c.Engine.Stopwords,
	}
}

// GroupOptions maps the segments section onto grouping options.
func (c *Config) GroupOptions() transcript.GroupOptions {
	return transcript.GroupOptions{
		MaxWords:         c.Segments.MaxWords,
		MaxGap:           c.Segments.MaxGapSeconds,
		BreakPunctuation: c.Segments.BreakPunctuation,
	}
}

// Sample returns the embedded sample configuration file.
func Sample() []byte {
	return sample
}

// WriteSample writes the sample configuration to path, refusing to clobber
// an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, sample, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
