// Package logger builds the zerolog instance shared by the server and the
// CLI. Deployed instances log JSON to stdout; console format is for local
// development only.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and output format.
type Config struct {
	Level  string // debug, info, warn or error; anything else falls back to info
	Format string // json (default) or console
}

// New builds the process-wide logger. The caller decides whether to install
// it as the zerolog global.
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stdout

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
