package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/grid"
)

func TestRenbanAcceptsConsecutiveRun(t *testing.T) {
	positions := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	rb, err := constraint.NewRenban(positions, config.Default())
	require.NoError(t, err)

	var board grid.NumBoard
	board[0][0] = 5
	board[0][1] = 3
	board[0][2] = 4
	assert.True(t, rb.IsValid(board))

	board[0][2] = 6
	assert.False(t, rb.IsValid(board), "5,3,6 is not consecutive")
}

func TestRenbanRejectsRepeats(t *testing.T) {
	positions := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	rb, err := constraint.NewRenban(positions, config.Default())
	require.NoError(t, err)

	var board grid.NumBoard
	board[0][0] = 4
	board[0][1] = 4
	assert.False(t, rb.IsValid(board))
}
