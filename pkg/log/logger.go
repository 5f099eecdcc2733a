// Package log provides structured logging for goml machine learning operations.
//
// The package is a thin wrapper around zerolog. It exposes a package-level
// logger with ML-specific attribute keys and acts as the sink for library
// warnings (e.g. ConvergenceWarning) raised through pkg/errors.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goml-kit/goml/pkg/errors"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.New(os.Stderr).With().Timestamp().Str(ComponentKey, "goml").Logger()
)

func init() {
	// Route library warnings into the structured logger. Warning types in
	// pkg/errors implement zerolog.LogObjectMarshaler, so the full warning
	// context ends up as structured fields rather than a flat string.
	errors.SetZerologWarnFunc(func(warning error) {
		l := GetLogger()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			l.Warn().Object("warning", obj).Msg(warning.Error())
			return
		}
		l.Warn().Err(warning).Msg("goml warning")
	})
}

// GetLogger returns the current package-level logger.
func GetLogger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the package-level logger. Useful for tests and for
// applications that want to control output destination and level.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// SetOutput redirects the package-level logger to the given writer,
// keeping the existing context fields.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = logger.Output(w)
}

// SetLevel sets the minimum level of the package-level logger.
// Solvers log per-fit summaries at debug level, so raising the level to
// zerolog.WarnLevel silences everything except warnings and errors.
func SetLevel(level zerolog.Level) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = logger.Level(level)
}
