package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger maps -v counts onto levels: none warn, -v info, -vv debug,
// -vvv and up trace. Without -v the configured level applies.
func newLogger(w io.Writer, verbose int, configured string) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbose >= 3:
		level = zerolog.TraceLevel
	case verbose == 2:
		level = zerolog.DebugLevel
	case verbose == 1:
		level = zerolog.InfoLevel
	case configured != "":
		if l, err := zerolog.ParseLevel(configured); err == nil {
			level = l
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
