// Package engine is the external-facing entry point: it turns wire-level
// puzzle and constraint descriptions into a single solve or true-candidate
// sweep, wiring the config, constraint, board, and solver packages
// together behind a small, stable boundary.
package engine

import (
	"context"
	"time"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/grid"
	"github.com/eftil/sudoku-core/logging"
	"github.com/eftil/sudoku-core/solver"
)

// Progress re-exports the solver's progress snapshot type so callers
// never need to import the solver package directly.
type Progress = solver.Progress

// Engine runs solves against its own Driver, so that two Engines never
// share search counters or clocks.
type Engine struct {
	cfg    config.Config
	driver *solver.Driver
}

// New builds an Engine using cfg for its tunables.
func New(cfg config.Config) *Engine {
	return &Engine{cfg: cfg, driver: solver.NewDriver(cfg)}
}

// Solve finds one assignment satisfying puzzle and every constraint
// spec, or reports why none could be found (ErrUnsatisfiable,
// IncompatiblePuzzleError, ErrCancelled) or built (ConstraintTooLargeError).
func (e *Engine) Solve(ctx context.Context, puzzle grid.NumBoard, specs []ConstraintSpec, progress chan<- Progress) (*grid.NumBoard, error) {
	constraints, err := BuildConstraints(specs, e.cfg)
	if err != nil {
		return nil, err
	}

	logging.Info("solve: starting with %d extra constraints", len(constraints))
	result, err := e.driver.Solve(ctx, puzzle, constraints, progress, true)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

// TrueCandidates proves, for every cell and digit, whether some
// completion of puzzle under the given constraints places that digit
// there, returning the resulting tri-state board.
func (e *Engine) TrueCandidates(ctx context.Context, puzzle grid.NumBoard, specs []ConstraintSpec, progress chan<- Progress) (*grid.TufBoard, error) {
	constraints, err := BuildConstraints(specs, e.cfg)
	if err != nil {
		return nil, err
	}

	logging.Info("true-candidates: starting with %d extra constraints", len(constraints))
	result, err := e.driver.SolveTrueCandidates(ctx, puzzle, constraints, progress)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

// ResetCounters zeroes the engine's search-node counter and restarts its
// elapsed-time clock.
func (e *Engine) ResetCounters() {
	e.driver.ResetCounters()
}

// ReadCounters reports the search-node count and elapsed time since the
// last reset.
func (e *Engine) ReadCounters() (nodes int64, elapsed time.Duration) {
	return e.driver.ReadCounters()
}
