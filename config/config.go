package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DatabaseURL  string
	HTTPAddr     string
	LogLevel     string
	LogFormat    string
	MaxBodyBytes int
}

// Load reads configuration from the environment. When envFile is non-empty it
// is loaded first; variables already set in the environment take precedence.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", envFile).Msg("could not load env file")
		}
	}

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		HTTPAddr:     envOrDefault("HTTP_ADDR", ":3000"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		LogFormat:    envOrDefault("LOG_FORMAT", "json"),
		MaxBodyBytes: envIntOrDefault("MAX_BODY_BYTES", 4*1024*1024),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer, using default")
		return def
	}
	return n
}
