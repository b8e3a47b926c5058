package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "SENTIMENT_SCANNER_CONFIG"
	feedEndpointEnv = "NEWS_FEED_ENDPOINT"
	oracleURLEnv    = "PATTERN_ORACLE_URL"
	oracleKeyEnv    = "PATTERN_ORACLE_API_KEY"
	logLevelEnv     = "LOG_LEVEL"

	defaultTimeoutSeconds = 30
)

// Config holds high-level settings required across the application.
type Config struct {
	Feed    FeedConfig    `yaml:"feed"`
	Oracle  OracleConfig  `yaml:"oracle"`
	Logging LoggingConfig `yaml:"logging"`
}

// FeedConfig describes the live search-feed endpoint and request shaping.
type FeedConfig struct {
	Endpoint       string `yaml:"endpoint"`
	UserAgent      string `yaml:"userAgent"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	Language       string `yaml:"language"`
	Country        string `yaml:"country"`
	Edition        string `yaml:"edition"`
}

// Timeout resolves the bounded request timeout, defaulting to 30s.
func (f FeedConfig) Timeout() time.Duration {
	if f.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// OracleConfig defines how to contact the external polarity scoring service.
type OracleConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(feedEndpointEnv); v != "" {
		c.Feed.Endpoint = v
	}

	if v := os.Getenv(oracleURLEnv); v != "" {
		c.Oracle.Endpoint = v
	}

	if v := os.Getenv(oracleKeyEnv); v != "" {
		c.Oracle.APIKey = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Feed.Endpoint != "" {
		base.Feed.Endpoint = override.Feed.Endpoint
	}
	if override.Feed.UserAgent != "" {
		base.Feed.UserAgent = override.Feed.UserAgent
	}
	if override.Feed.TimeoutSeconds > 0 {
		base.Feed.TimeoutSeconds = override.Feed.TimeoutSeconds
	}
	if override.Feed.Language != "" {
		base.Feed.Language = override.Feed.Language
	}
	if override.Feed.Country != "" {
		base.Feed.Country = override.Feed.Country
	}
	if override.Feed.Edition != "" {
		base.Feed.Edition = override.Feed.Edition
	}

	if override.Oracle.Endpoint != "" {
		base.Oracle.Endpoint = override.Oracle.Endpoint
	}
	if override.Oracle.APIKey != "" {
		base.Oracle.APIKey = override.Oracle.APIKey
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Feed: FeedConfig{
			Endpoint:       "https://news.google.com/rss/search",
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			TimeoutSeconds: defaultTimeoutSeconds,
			Language:       "en",
			Country:        "US",
			Edition:        "US:en",
		},
		Oracle: OracleConfig{
			Endpoint: "",
			APIKey:   "",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
