// Package config holds the tunable knobs for the solving engine: worker
// parallelism, progress reporting cadence, and the constraint framework's
// caching and scope limits.
package config

import (
	"runtime"
	"time"
)

// Config bundles the engine's tunables. Zero-value fields are replaced by
// Default()'s values; there is no reflection-based binding here, just a
// plain struct, since nothing in the retrieved pack offers a config
// library this module could plausibly use for five scalar fields.
type Config struct {
	// Workers is the number of goroutines fanned out across during
	// DenseMultiCell preprocessing.
	Workers int

	// ProgressInterval is the minimum spacing between progress ticks sent
	// on a Driver's progress channel during a solve.
	ProgressInterval time.Duration

	// ConstraintCacheSize bounds each DenseMultiCell's AvailableCandidates
	// memoization cache.
	ConstraintCacheSize int

	// MaxScopeCells bounds how many cells a single DenseMultiCell-based
	// constraint may span.
	MaxScopeCells int

	// StallLimit is the number of consecutive quickdrop passes that make
	// no progress before the solver treats a board as stalled.
	StallLimit int
}

// Default returns the engine's default configuration.
func Default() Config {
	return Config{
		Workers:             runtime.GOMAXPROCS(0),
		ProgressInterval:    100 * time.Millisecond,
		ConstraintCacheSize: 4096,
		MaxScopeCells:       7,
		StallLimit:          3,
	}
}
