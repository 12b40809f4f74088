// Package logging provides the package-level leveled logger used across
// the solver: the same call-site shape as a conventional hand-rolled
// logger (Debug/Info/Warn/Error plus cell- and constraint-scoped
// helpers), backed by zerolog instead of a bespoke formatter.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level mirrors zerolog's level type so callers of this package never need
// to import zerolog directly.
type Level = zerolog.Level

const (
	DEBUG = zerolog.DebugLevel
	INFO  = zerolog.InfoLevel
	WARN  = zerolog.WarnLevel
	ERROR = zerolog.ErrorLevel
)

var (
	mu  sync.Mutex
	log zerolog.Logger
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}).
		Level(INFO).
		With().Timestamp().Logger()
}

// SetLevel sets the minimum level the logger will emit.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(level)
}

// SetOutput redirects log output, replacing the console writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	level := log.GetLevel()
	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

// Info logs an info message.
func Info(format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}

// Fatal logs at fatal level and terminates the process, matching the
// original logger's Fatal semantics.
func Fatal(format string, args ...interface{}) {
	log.Fatal().Msgf(format, args...)
}

// DebugCell logs cell-scoped debug information, rows and columns given
// zero-based and rendered one-based.
func DebugCell(row, col int, format string, args ...interface{}) {
	log.Debug().Str("cell", cellLabel(row, col)).Msgf(format, args...)
}

// InfoCell logs cell-scoped info.
func InfoCell(row, col int, format string, args ...interface{}) {
	log.Info().Str("cell", cellLabel(row, col)).Msgf(format, args...)
}

// DebugConstraint logs constraint-scoped debug information.
func DebugConstraint(name string, format string, args ...interface{}) {
	log.Debug().Str("constraint", name).Msgf(format, args...)
}

// InfoConstraint logs constraint-scoped info.
func InfoConstraint(name string, format string, args ...interface{}) {
	log.Info().Str("constraint", name).Msgf(format, args...)
}

// SolvingStep logs a named solving-technique step.
func SolvingStep(technique string, format string, args ...interface{}) {
	log.Info().Str("technique", technique).Msgf(format, args...)
}

// CandidateElimination logs a single candidate elimination.
func CandidateElimination(row, col, candidate int, reason string) {
	log.Debug().Str("cell", cellLabel(row, col)).Int("candidate", candidate).Str("reason", reason).
		Msg("candidate eliminated")
}

// CellSolved logs a single cell's resolution.
func CellSolved(row, col, value int, reason string) {
	log.Info().Str("cell", cellLabel(row, col)).Int("value", value).Str("reason", reason).
		Msg("cell solved")
}

func cellLabel(row, col int) string {
	const digits = "123456789"
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return "R?C?"
	}
	return "R" + string(digits[row]) + "C" + string(digits[col])
}
