// Package config loads runtime settings for the htnlp command and server.
//
// Settings come from an optional YAML file, then HTNLP_* environment
// variables override individual fields, then defaults fill what is left.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kreyol-ai/ht-lang-nlp/internal/config/raw"
	"github.com/kreyol-ai/ht-lang-nlp/normalize"
)

// Config holds all settings.
type Config struct {
	Cleaner    string           `yaml:"cleaner"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Phonemizer PhonemizerConfig `yaml:"phonemizer"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PhonemizerConfig configures the espeak-ng backend.
type PhonemizerConfig struct {
	Binary  string        `yaml:"binary"`
	Voice   string        `yaml:"voice"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads the YAML file at path, applies environment overrides and
// defaults, and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	ApplyEnv(&cfg, raw.New())
	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides fields of cfg from variables in env.
// Unset variables leave the field as it is.
func ApplyEnv(cfg *Config, env raw.Conf) {
	cfg.Cleaner = env.Get("CLEANER", cfg.Cleaner)

	srv := env.Prefix("SERVER_")
	cfg.Server.Host = srv.Get("HOST", cfg.Server.Host)
	cfg.Server.Port = srv.GetInt("PORT", cfg.Server.Port)
	cfg.Server.ReadTimeout = srv.GetDuration("READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.MaxBodyBytes = int64(srv.GetInt("MAX_BODY_BYTES", int(cfg.Server.MaxBodyBytes)))

	log := env.Prefix("LOG_")
	cfg.Log.Level = log.Get("LEVEL", cfg.Log.Level)
	cfg.Log.Format = log.Get("FORMAT", cfg.Log.Format)

	ph := env.Prefix("PHONEMIZER_")
	cfg.Phonemizer.Binary = ph.Get("BINARY", cfg.Phonemizer.Binary)
	cfg.Phonemizer.Voice = ph.Get("VOICE", cfg.Phonemizer.Voice)
	cfg.Phonemizer.Timeout = ph.GetDuration("TIMEOUT", cfg.Phonemizer.Timeout)
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if _, err := normalize.Lookup(c.Cleaner); err != nil {
		errs = append(errs, err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("config: server.port %d out of range", c.Server.Port))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log.format %q must be console or json", c.Log.Format))
	}
	return errors.Join(errs...)
}
