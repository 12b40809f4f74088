package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/grid"
)

func TestGermanWhispersRequiresTwoCells(t *testing.T) {
	_, err := constraint.NewGermanWhispers([]grid.Position{{Row: 0, Col: 0}}, config.Default())
	require.Error(t, err)
}

func TestGermanWhispersEnforcesGapOfFive(t *testing.T) {
	positions := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	gw, err := constraint.NewGermanWhispers(positions, config.Default())
	require.NoError(t, err)

	var board grid.NumBoard
	board[0][0] = 1
	board[0][1] = 6
	board[0][2] = 2
	assert.False(t, gw.IsValid(board), "2 and 6 differ by only 4")

	board[0][2] = 1
	assert.True(t, gw.IsValid(board))
}
