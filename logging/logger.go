// Package logging sets up zerolog for the service and the console narration
// stream used by the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	TimeFormat string
}

// DefaultConfig returns the service defaults.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "json",
		TimeFormat: time.RFC3339,
	}
}

// Init initializes the global zerolog logger.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = cfg.TimeFormat
	zerolog.SetGlobalLevel(parseLevel(cfg.Level, zerolog.InfoLevel))

	var output io.Writer = os.Stdout
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.Kitchen,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Logger()
}

// WithComponent returns a logger with a component tag.
func WithComponent(component string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Logger()
}

// Narrator returns a timestamp-free console logger for progress lines
// printed between the CLI banners. Levels are rendered as markers.
func Narrator(w io.Writer, level string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel:  formatMarker,
		FieldsExclude: []string{
			"count", "rules", "node", "type", "cycle",
		},
	}
	return zerolog.New(cw).Level(parseLevel(level, zerolog.DebugLevel))
}

func formatMarker(i any) string {
	switch i {
	case zerolog.LevelDebugValue:
		return "   ├─"
	case zerolog.LevelInfoValue:
		return "✅"
	case zerolog.LevelWarnValue:
		return "⚠️ "
	case zerolog.LevelErrorValue:
		return "❌"
	}
	return "  "
}

func parseLevel(s string, def zerolog.Level) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return def
	}
	return level
}
