package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the full application configuration. Values come from, in
// priority order: CLI flags, SAMHITA_* environment variables, the
// config file (~/.samhita/config.yaml), then DefaultConfig.
type Config struct {
	Data        DataConfig        `yaml:"data" mapstructure:"data"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Search      SearchConfig      `yaml:"search" mapstructure:"search"`
	State       StateConfig       `yaml:"state" mapstructure:"state"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// DataConfig locates the static corpus files.
type DataConfig struct {
	// BaseURL is the root under which the per-mandala JSON files live,
	// e.g. https://example.org/data/rigveda
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Mandalas is the number of top-level collections. The Rigveda has
	// exactly 10; this is not a generalization knob for other corpora.
	Mandalas int `yaml:"mandalas" mapstructure:"mandalas"`
	// LegacyFile is the single combined file tried when every
	// per-mandala load comes back empty.
	LegacyFile string `yaml:"legacy_file" mapstructure:"legacy_file"`
}

// HTTPConfig controls the static-file fetcher.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls the collection cache layers.
type CacheConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Dir holds the session-scoped file cache.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// MemoryTTL bounds the in-memory layer; 0 keeps entries for the
	// process lifetime.
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	// SessionTTL bounds the file layer. Expiry stands in for the
	// browser-session end of the original storage model.
	SessionTTL time.Duration `yaml:"session_ttl" mapstructure:"session_ttl"`
}

// SearchConfig tunes the fuzzy index.
type SearchConfig struct {
	// Threshold is the shared match-looseness constant: 0 demands
	// exact tokens, higher values admit more edit distance.
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	// HistorySize caps the recorded recent-query list.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`
}

// StateConfig locates durable user state (bookmarks, history, theme).
type StateConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ConcurrencyConfig sizes the aggregate loader's worker pool.
type ConcurrencyConfig struct {
	FetchWorkers int `yaml:"fetch_workers" mapstructure:"fetch_workers"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	JSON    bool `yaml:"json" mapstructure:"json"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".samhita")

	return &Config{
		Data: DataConfig{
			BaseURL:    "https://rigveda.veda-tools.org/data/rigveda",
			Mandalas:   10,
			LegacyFile: "verses.json",
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "Samhita/0.1 (+https://github.com/veda-tools/samhita)",
			MaxBodyBytes:      8_000_000,
			RequestsPerSecond: 8,
			Burst:             4,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Dir:        filepath.Join(base, "cache"),
			MemoryTTL:  0,
			SessionTTL: 12 * time.Hour,
		},
		Search: SearchConfig{
			Threshold:   0.4,
			HistorySize: 5,
		},
		State: StateConfig{
			Dir: filepath.Join(base, "state"),
		},
		Concurrency: ConcurrencyConfig{
			FetchWorkers: 4,
		},
		Output: OutputConfig{},
	}
}
