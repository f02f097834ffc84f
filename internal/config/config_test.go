package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SECGEN_LOCALE", "SECGEN_LOG_LEVEL", "SECGEN_DEFAULT_FORMAT"} {
		old, had := os.LookupEnv(key)
		_ = os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, old)
			}
		})
	}

	cfg := Load()
	if cfg.Locale != "ru_RU" {
		t.Fatalf("default locale = %q", cfg.Locale)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level = %q", cfg.LogLevel)
	}
	if cfg.DefaultFormat != "json" {
		t.Fatalf("default format = %q", cfg.DefaultFormat)
	}
	if cfg.DefaultRows <= 0 {
		t.Fatalf("default rows = %d", cfg.DefaultRows)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SECGEN_LOCALE", "en_US")
	t.Setenv("SECGEN_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Locale != "en_US" {
		t.Fatalf("locale = %q, want env override", cfg.Locale)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want env override", cfg.LogLevel)
	}
}
