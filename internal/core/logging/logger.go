// Package logging derives component loggers from the global zerolog logger.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Op returns a debug event for a named operation on the given logger. Callers
// add fields and finish with Msg.
func Op(l zerolog.Logger, op string) *zerolog.Event {
	return l.Debug().Str("op", op)
}
