package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/grid"
)

func TestOrdinalArrowRequiresBothGroups(t *testing.T) {
	_, err := constraint.NewOrdinalArrow(nil, []grid.Position{{Row: 0, Col: 0}}, config.Default())
	require.Error(t, err)
	_, err = constraint.NewOrdinalArrow([]grid.Position{{Row: 0, Col: 0}}, nil, config.Default())
	require.Error(t, err)
}

func TestOrdinalArrowSumEqualsProduct(t *testing.T) {
	sumPos := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	prodPos := []grid.Position{{Row: 0, Col: 2}}
	oa, err := constraint.NewOrdinalArrow(sumPos, prodPos, config.Default())
	require.NoError(t, err)

	var board grid.NumBoard
	// digit 3 -> w, digit 3 -> w; w + w = w*2. digit 6 -> w*2. So sum == prod.
	board[0][0] = 3
	board[0][1] = 3
	board[0][2] = 6
	assert.True(t, oa.IsValid(board))

	board[0][2] = 5
	assert.False(t, oa.IsValid(board))
}

func TestOrdinalArrowSingleCellGroupsActAsIdentityOperands(t *testing.T) {
	sumPos := []grid.Position{{Row: 1, Col: 0}}
	prodPos := []grid.Position{{Row: 1, Col: 1}}
	oa, err := constraint.NewOrdinalArrow(sumPos, prodPos, config.Default())
	require.NoError(t, err)

	var board grid.NumBoard
	board[1][0] = 4
	board[1][1] = 4
	assert.True(t, oa.IsValid(board))
}

func TestOrdinalArrowScopeIsSumThenProd(t *testing.T) {
	sumPos := []grid.Position{{Row: 2, Col: 0}, {Row: 2, Col: 1}}
	prodPos := []grid.Position{{Row: 2, Col: 2}, {Row: 2, Col: 3}}
	oa, err := constraint.NewOrdinalArrow(sumPos, prodPos, config.Default())
	require.NoError(t, err)

	assert.Equal(t, sumPos, oa.SumPositions())
	assert.Equal(t, prodPos, oa.ProdPositions())
}
