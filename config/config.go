package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/jsdbg/inspector/graph"
	"github.com/viant/jsdbg/sourcetree"
	"gopkg.in/yaml.v3"
)

// Config represents the debugger front end configuration
type Config struct {
	Cache  Cache             `yaml:"cache"`
	Parser graph.Config      `yaml:"parser"`
	Tree   sourcetree.Config `yaml:"tree"`
	Worker Worker            `yaml:"worker"`
	Log    Log               `yaml:"log"`
}

// Cache controls the AST cache
type Cache struct {
	MaxEntries int `yaml:"maxEntries"`
}

// Worker controls the analysis dispatcher
type Worker struct {
	Workers   int `yaml:"workers"`   // goroutines serving requests
	QueueSize int `yaml:"queueSize"` // pending requests before Call blocks
}

// Log controls the slog handler installed by the CLI
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Cache:  Cache{MaxEntries: 512},
		Parser: *graph.DefaultConfig(),
		Tree:   *sourcetree.DefaultConfig(),
		Worker: Worker{Workers: runtime.NumCPU(), QueueSize: 64},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load reads a YAML config from any afs supported URL, unset fields keep their defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	content, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	return Parse(content)
}

// Parse decodes YAML content over the defaults
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Cache.MaxEntries < 0:
		return fmt.Errorf("invalid cache.maxEntries: %d", c.Cache.MaxEntries)
	case c.Parser.MaxFileSize < 0:
		return fmt.Errorf("invalid parser.maxFileSize: %d", c.Parser.MaxFileSize)
	case c.Worker.Workers < 0:
		return fmt.Errorf("invalid worker.workers: %d", c.Worker.Workers)
	case c.Worker.QueueSize < 0:
		return fmt.Errorf("invalid worker.queueSize: %d", c.Worker.QueueSize)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log.format: %v", c.Log.Format)
	}
	return nil
}

// Logger creates a logger writing to w with the configured level and format
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Log.level()
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.Log.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, options)), nil
	}
	return slog.New(slog.NewTextHandler(w, options)), nil
}

func (l Log) level() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return level, fmt.Errorf("invalid log.level: %w", err)
	}
	return level, nil
}
