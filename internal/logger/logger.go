package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the console logger at info level so startup, including
// config loading, is logged before Configure applies the loaded settings.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	Configure("console", "info")
}

// Configure applies LOG_FORMAT and LOG_LEVEL. "json" writes structured lines
// to stdout; anything else uses the console writer on stderr.
func Configure(format, level string) {
	log.Logger = New(format, os.Stdout, os.Stderr)
	SetLevel(level)
}

// New builds a logger for format writing JSON to jsonOut or console text to
// consoleOut.
func New(format string, jsonOut, consoleOut io.Writer) zerolog.Logger {
	if format == "json" {
		return zerolog.New(jsonOut).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: consoleOut, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

// SetLevel parses level and applies it globally, defaulting to info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
