// Package config holds the service configuration: a YAML file with
// environment overrides, defaults matching the retrieval engine's tuned
// constants.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all tourbot configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Session   SessionConfig   `yaml:"session"`
	Data      DataConfig      `yaml:"data"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LLMConfig configures the generator client.
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // openrouter, or any openai-compatible
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	Referer     string  `yaml:"referer"`
	Title       string  `yaml:"title"`
	Timeout     string  `yaml:"timeout"`
}

// ParsedTimeout returns the request timeout, defaulting to 60s when the
// value is absent or malformed.
func (c LLMConfig) ParsedTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// RetrievalConfig holds the fuzzy-matching and payload-cap tuning. The
// defaults are the values the assistant was tuned with; changing them shifts
// recall and precision, not correctness.
type RetrievalConfig struct {
	MatchThreshold  float64 `yaml:"match_threshold"`  // per-corpus accept bound
	RejectThreshold float64 `yaml:"reject_threshold"` // resolver fuzzy-fallback reject bound
	Destinations    int     `yaml:"destinations"`
	Foods           int     `yaml:"foods"`
	Tours           int     `yaml:"tours"`
	Policies        int     `yaml:"policies"`
	Tips            int     `yaml:"tips"`
	RecentUserTurns int     `yaml:"recent_user_turns"`
}

// SessionConfig configures conversation state.
type SessionConfig struct {
	HistoryLimit int    `yaml:"history_limit"`
	RedisAddr    string `yaml:"redis_addr"` // empty means in-memory store
	RedisDB      int    `yaml:"redis_db"`
	RedisTTL     string `yaml:"redis_ttl"`
}

// ParsedRedisTTL returns the session TTL; zero (no expiry) on absence.
func (c SessionConfig) ParsedRedisTTL() time.Duration {
	d, err := time.ParseDuration(c.RedisTTL)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// DataConfig locates the corpus files.
type DataConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":5000"},
		LLM: LLMConfig{
			Provider:    "openrouter",
			BaseURL:     "https://openrouter.ai/api/v1",
			Model:       "google/gemma-2-9b-it",
			Temperature: 0.7,
			Referer:     "http://localhost:5173",
			Title:       "Tour Recommendation Chatbot",
			Timeout:     "60s",
		},
		Retrieval: RetrievalConfig{
			MatchThreshold:  0.35,
			RejectThreshold: 0.6,
			Destinations:    5,
			Foods:           6,
			Tours:           4,
			Policies:        3,
			Tips:            4,
			RecentUserTurns: 1,
		},
		Session: SessionConfig{HistoryLimit: 10},
		Data:    DataConfig{Dir: "data", Watch: true},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads the YAML config at path, falling back to defaults when the file
// does not exist, then applies environment overrides. A .env file in the
// working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			c.Server.Addr = ":" + v
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Session.RedisAddr = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
}
