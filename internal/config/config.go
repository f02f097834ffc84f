package config

import (
	"os"
)

type Config struct {
	Locale        string
	LogLevel      string
	DefaultFormat string
	DefaultRows   int
}

func Load() *Config {
	return &Config{
		Locale:        getEnv("SECGEN_LOCALE", "ru_RU"),
		LogLevel:      getEnv("SECGEN_LOG_LEVEL", "info"),
		DefaultFormat: getEnv("SECGEN_DEFAULT_FORMAT", "json"),
		DefaultRows:   10,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
