package solver

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level default logger, in the spirit of gnark's
// logger package: a component gets a sensible console logger unless
// the embedding program disables or replaces it.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

// SetLogger replaces the package-level default logger used by Solvers
// created without an explicit WithLogger option.
func SetLogger(l zerolog.Logger) {
	log = l
}

// DisableLogging silences the package-level default logger.
func DisableLogging() {
	log = zerolog.Nop()
}
