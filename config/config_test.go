package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT", "MAX_BODY_BYTES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load("")

	if cfg.DatabaseURL != "" {
		t.Errorf("expected empty database url, got %s", cfg.DatabaseURL)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Errorf("expected default addr ':3000', got %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected default log format 'json', got %s", cfg.LogFormat)
	}
	if cfg.MaxBodyBytes != 4*1024*1024 {
		t.Errorf("expected default body limit 4MiB, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/decisions")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("MAX_BODY_BYTES", "1024")

	cfg := Load("")

	if cfg.DatabaseURL != "postgres://localhost/decisions" {
		t.Errorf("unexpected database url %s", cfg.DatabaseURL)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("unexpected addr %s", cfg.HTTPAddr)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("unexpected body limit %d", cfg.MaxBodyBytes)
	}
}

func TestLoad_InvalidInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_BODY_BYTES", "lots")

	if cfg := Load(""); cfg.MaxBodyBytes != 4*1024*1024 {
		t.Errorf("expected fallback to default, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9999")

	path := filepath.Join(t.TempDir(), ".env")
	content := "LOG_LEVEL=debug\nHTTP_ADDR=:1111\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from env file, got %s", cfg.LogLevel)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("expected environment to win over env file, got %s", cfg.HTTPAddr)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	cfg := Load(filepath.Join(t.TempDir(), "absent.env"))
	if cfg.HTTPAddr != ":3000" {
		t.Errorf("expected defaults, got %s", cfg.HTTPAddr)
	}
}
