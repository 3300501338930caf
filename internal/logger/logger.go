// Package logger provides a configurable logger shared across components.
//
// The root logger uses github.com/rs/zerolog with a console writer and is
// silenced under `go test`.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetLevel adjusts the global minimum level.
func SetLevel(lvl zerolog.Level) {
	logger = logger.Level(lvl)
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sublogger for a component.
func Logger() zerolog.Logger {
	return logger
}
