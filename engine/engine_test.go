package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/engine"
	"github.com/eftil/sudoku-core/grid"
)

func TestEngineSolveWithOrdinalArrow(t *testing.T) {
	e := engine.New(config.Default())

	// Single-cell sum/product groups act as identity operands: placing the
	// same digit in both (legal, they share no row/column/block) always
	// satisfies the constraint.
	specs := []engine.ConstraintSpec{
		engine.OrdinalArrow{
			SumCells:     []grid.Position{{Row: 1, Col: 1}},
			ProductCells: []grid.Position{{Row: 5, Col: 5}},
		},
	}

	result, err := e.Solve(context.Background(), grid.NumBoard{}, specs, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	for r := 0; r < 9; r++ {
		assert.True(t, grid.HasUniqueNonZeros(result[r][:]))
	}
}

func TestEngineSolveConstraintTooLarge(t *testing.T) {
	e := engine.New(config.Default())

	positions := make([]grid.Position, 8)
	for i := range positions {
		positions[i] = grid.Position{Row: 0, Col: i}
	}
	specs := []engine.ConstraintSpec{engine.Renban{Cells: positions}}

	_, err := e.Solve(context.Background(), grid.NumBoard{}, specs, nil)
	require.Error(t, err)
	var tooLarge *engine.ConstraintTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}

func TestEngineSolveIncompatiblePuzzle(t *testing.T) {
	e := engine.New(config.Default())
	var puzzle grid.NumBoard
	puzzle[2][2] = 5
	puzzle[2][3] = 5

	_, err := e.Solve(context.Background(), puzzle, nil, nil)
	require.Error(t, err)
	var incompatible *engine.IncompatiblePuzzleError
	require.ErrorAs(t, err, &incompatible)
}

func TestEngineSolveCancellationWrapsSentinel(t *testing.T) {
	e := engine.New(config.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Solve(ctx, grid.NumBoard{}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngineCounters(t *testing.T) {
	e := engine.New(config.Default())
	e.ResetCounters()
	_, err := e.Solve(context.Background(), grid.NumBoard{}, nil, nil)
	require.NoError(t, err)

	nodes, elapsed := e.ReadCounters()
	assert.Greater(t, nodes, int64(0))
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
}
