package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/grid"
)

func TestKillerRejectsBadTargetSum(t *testing.T) {
	_, err := constraint.NewKiller([]grid.Position{{Row: 0, Col: 0}}, 0, config.Default())
	require.Error(t, err)
	_, err = constraint.NewKiller([]grid.Position{{Row: 0, Col: 0}}, 46, config.Default())
	require.Error(t, err)
}

func TestKillerIgnoresRepeatsAndChecksSumOnly(t *testing.T) {
	positions := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	k, err := constraint.NewKiller(positions, 10, config.Default())
	require.NoError(t, err)

	var board grid.NumBoard
	board[0][0] = 5
	board[0][1] = 5 // repeated digit, but Killer alone doesn't check uniqueness
	assert.True(t, k.IsValid(board))

	board[0][1] = 6
	assert.False(t, k.IsValid(board))
}

func TestKillerUniqueRejectsRepeats(t *testing.T) {
	positions := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	k, err := constraint.NewKillerUnique(positions, 10, config.Default())
	require.NoError(t, err)

	var board grid.NumBoard
	board[0][0] = 5
	board[0][1] = 5
	assert.False(t, k.IsValid(board))

	board[0][1] = 5
	board[0][0] = 4
	board[0][1] = 6
	assert.True(t, k.IsValid(board))
}
