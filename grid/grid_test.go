package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eftil/sudoku-core/grid"
)

func TestPeersOfCornerCell(t *testing.T) {
	peers := grid.Peers(grid.Position{Row: 0, Col: 0})
	// 8 in the row + 8 in the col + 4 new in the block = 20.
	assert.Len(t, peers, 20)
	for _, p := range peers {
		assert.True(t, grid.IsPeer(grid.Position{Row: 0, Col: 0}, p))
	}
}

func TestIsPeerSameCellFalse(t *testing.T) {
	p := grid.Position{Row: 4, Col: 4}
	assert.False(t, grid.IsPeer(p, p))
}

func TestIsPeerAcrossBlocks(t *testing.T) {
	assert.False(t, grid.IsPeer(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 4, Col: 4}))
	assert.True(t, grid.IsPeer(grid.Position{Row: 4, Col: 4}, grid.Position{Row: 3, Col: 3}))
}

func TestHasUniqueNonZeros(t *testing.T) {
	assert.True(t, grid.HasUniqueNonZeros([]int{0, 1, 2, 0, 3}))
	assert.False(t, grid.HasUniqueNonZeros([]int{1, 2, 1}))
	assert.False(t, grid.HasUniqueNonZeros([]int{10}))
}

func TestCandBoardAndAllTrue(t *testing.T) {
	all := grid.AllTrue()
	pos := grid.Position{Row: 2, Col: 2}
	assert.Equal(t, 9, all.Count(pos))

	var mask grid.CandBoard
	mask[2][2][4] = true // only digit 5 live everywhere else false
	all.And(mask)
	assert.Equal(t, 1, all.Count(pos))
	assert.True(t, all.Has(pos, 5))
	assert.False(t, all.Has(pos, 1))
}

func TestTufBoardToCandBoard(t *testing.T) {
	var tuf grid.TufBoard
	tuf[0][0][0] = 1
	tuf[0][0][1] = -1
	tuf[0][0][2] = 0

	cand := tuf.ToCandBoard()
	pos := grid.Position{Row: 0, Col: 0}
	assert.True(t, cand.Has(pos, 1))
	assert.False(t, cand.Has(pos, 2))
	assert.True(t, cand.Has(pos, 3))
}

func TestBlockPositionsCoverBoard(t *testing.T) {
	seen := map[grid.Position]bool{}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			for _, p := range grid.BlockPositions(br, bc) {
				assert.False(t, seen[p], "position %v covered twice", p)
				seen[p] = true
			}
		}
	}
	assert.Len(t, seen, 81)
}
