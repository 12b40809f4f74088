package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/eftil/sudoku-core/board"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/ordinal"
	"github.com/eftil/sudoku-core/solver"
)

// IncompatiblePuzzleError is returned when a puzzle's given digits
// conflict with each other or with an extra constraint before search
// ever begins.
type IncompatiblePuzzleError = board.IncompatibleError

// ConstraintTooLargeError is returned when a constraint descriptor's
// scope exceeds the dense-multi-cell preprocessing cap.
type ConstraintTooLargeError = constraint.ConstraintTooLargeError

// DomainError is the error ordinal.NewChecked reports for a coefficient
// outside the bound this module enforces on ordinal coefficients. Ordinal
// Add and Mul do not report it, so Solve and TrueCandidates never return it.
type DomainError = ordinal.DomainError

// ErrUnsatisfiable is returned when no assignment exists satisfying the
// puzzle and its constraints.
var ErrUnsatisfiable = solver.ErrUnsatisfiable

// ErrCancelled wraps a context cancellation observed mid-solve. Use
// errors.Is(err, engine.ErrCancelled) to detect it; the underlying
// context.Canceled or context.DeadlineExceeded is also reachable via
// errors.Is on the same returned error.
var ErrCancelled = errors.New("engine: solve was cancelled")

// translate adapts an internal error into the engine's documented error
// surface, wrapping context cancellation into ErrCancelled. Every other
// error (IncompatiblePuzzleError, ErrUnsatisfiable, ConstraintTooLargeError,
// DomainError) already carries the right shape and passes through as-is.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return err
}
