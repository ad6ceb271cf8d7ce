package main

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

// setupLogging configures the package-level logger to write human-readable
// output to stderr at info level, or debug level when verbose is set.
func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}
