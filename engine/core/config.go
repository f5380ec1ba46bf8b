package core

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration of the trimesh tools.
//
//	[manifold]
//	support_non_manifold_edges = false
//	print_non_manifold_edges   = true
//	[log]
//	level  = "info"
//	caller = false
//	[jobs]
//	workers = 4
//	queue   = 16
type Config struct {
	Manifold ManifoldConfig `toml:"manifold"`
	Log      LogConfig      `toml:"log"`
	Jobs     JobsConfig     `toml:"jobs"`
}

// ManifoldConfig selects between strict and tolerant manifoldness.
type ManifoldConfig struct {
	// SupportNonManifoldEdges keeps edges with 0 or more than 2 faces instead of failing the build.
	SupportNonManifoldEdges bool `toml:"support_non_manifold_edges"`
	// PrintNonManifoldEdges logs every offending edge found by the adjacency builder.
	PrintNonManifoldEdges bool `toml:"print_non_manifold_edges"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Caller bool   `toml:"caller"`
	Prefix string `toml:"prefix"`
}

type JobsConfig struct {
	Workers int `toml:"workers"`
	Queue   int `toml:"queue"`
}

// DefaultConfig returns strict manifold mode with info logging.
func DefaultConfig() Config {
	return Config{
		Manifold: ManifoldConfig{
			SupportNonManifoldEdges: false,
			PrintNonManifoldEdges:   true,
		},
		Log: LogConfig{
			Level:  "info",
			Caller: false,
		},
		Jobs: JobsConfig{
			Workers: 4,
			Queue:   16,
		},
	}
}

// LoadConfig reads the TOML file at path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data on top of DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnknownLogLevel, c.Log.Level)
	}
	if c.Jobs.Workers <= 0 {
		return fmt.Errorf("%w: jobs.workers must be positive, got %d", ErrInvalidConfig, c.Jobs.Workers)
	}
	if c.Jobs.Queue < 0 {
		return fmt.Errorf("%w: jobs.queue must not be negative, got %d", ErrInvalidConfig, c.Jobs.Queue)
	}
	return nil
}
