package config

import (
	"time"

	"github.com/kreyol-ai/ht-lang-nlp/normalize"
	"github.com/kreyol-ai/ht-lang-nlp/phonemize"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Cleaner == "" {
		cfg.Cleaner = normalize.DefaultCleaner
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Phonemizer.Binary == "" {
		cfg.Phonemizer.Binary = phonemize.DefaultBinary
	}
	if cfg.Phonemizer.Voice == "" {
		cfg.Phonemizer.Voice = phonemize.DefaultVoice
	}
	if cfg.Phonemizer.Timeout == 0 {
		cfg.Phonemizer.Timeout = phonemize.DefaultTimeout
	}
}
