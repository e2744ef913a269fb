package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	News        NewsConfig        `yaml:"news"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior
type HTTPConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	HTTPProxy  string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy string        `yaml:"https_proxy,omitempty"`
}

// CacheConfig controls the pattern-index cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	MatchWorkers int `yaml:"match_workers"`
}

// NewsConfig controls the article source
type NewsConfig struct {
	BaseURL           string  `yaml:"base_url"`
	WindowHours       int     `yaml:"window_hours"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	RespectRobots     bool    `yaml:"respect_robots"`
}

// CatalogConfig controls where entity catalogs are loaded from
type CatalogConfig struct {
	Driver   string   `yaml:"driver"` // "json" or "sqlite"
	Path     string   `yaml:"path"`
	Surnames []string `yaml:"surnames,omitempty"` // overrides the built-in common-surname set
}

// LLMConfig controls the optional mention-digest summarizer
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"` // "" disables, "openai" enables
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"-"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:   20 * time.Second,
			UserAgent: "Scoracle/1.0 (+https://github.com/albapepper/Scoracle-sub000)",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			MatchWorkers: 4,
		},
		News: NewsConfig{
			BaseURL:           "https://news.google.com",
			WindowHours:       48,
			RequestsPerSecond: 1,
			RespectRobots:     true,
		},
		Catalog: CatalogConfig{
			Driver: "json",
			Path:   "catalog.json",
		},
		Output: OutputConfig{},
	}
}
