package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kreyol-ai/ht-lang-nlp/normalize"
	"github.com/kreyol-ai/ht-lang-nlp/phonemize"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
cleaner: basic
server:
  host: "127.0.0.1"
  port: 9000
  read_timeout: 3s
log:
  format: json
phonemizer:
  voice: fr
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cleaner != "basic" {
		t.Errorf("Cleaner = %q, want basic", cfg.Cleaner)
	}
	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v, want 3s", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "info" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Phonemizer.Voice != "fr" || cfg.Phonemizer.Binary != phonemize.DefaultBinary {
		t.Errorf("Phonemizer = %+v", cfg.Phonemizer)
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cleaner != normalize.DefaultCleaner {
		t.Errorf("Cleaner = %q, want %q", cfg.Cleaner, normalize.DefaultCleaner)
	}
	if cfg.Server.Port != 8080 || cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("Server = %+v", cfg.Server)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTNLP_CLEANER", "transliteration")
	t.Setenv("HTNLP_SERVER_PORT", "9100")
	t.Setenv("HTNLP_LOG_LEVEL", "debug")
	t.Setenv("HTNLP_PHONEMIZER_TIMEOUT", "2s")

	path := writeConfig(t, "cleaner: basic\nserver:\n  port: 9000\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cleaner != "transliteration" {
		t.Errorf("Cleaner = %q, want transliteration", cfg.Cleaner)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Phonemizer.Timeout != 2*time.Second {
		t.Errorf("Phonemizer.Timeout = %v, want 2s", cfg.Phonemizer.Timeout)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) returned nil error")
	}

	if _, err := Load(writeConfig(t, "server: [")); err == nil {
		t.Error("Load(malformed) returned nil error")
	}

	_, err := Load(writeConfig(t, "cleaner: english_cleaners\n"))
	if !errors.Is(err, normalize.ErrUnknownCleaner) {
		t.Errorf("Load(unknown cleaner) error = %v, want ErrUnknownCleaner", err)
	}

	if _, err := Load(writeConfig(t, "log:\n  format: xml\n")); err == nil {
		t.Error("Load(bad log format) returned nil error")
	}

	if _, err := Load(writeConfig(t, "server:\n  port: 70000\n")); err == nil {
		t.Error("Load(bad port) returned nil error")
	}
}
