package constraint

import (
	"fmt"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/grid"
)

// Renban requires a line's digits to be pairwise distinct and to form a
// consecutive run once sorted, with no fixed order along the line.
type Renban struct {
	*DenseMultiCell
}

// NewRenban builds a Renban line over positions.
func NewRenban(positions []grid.Position, cfg config.Config) (*Renban, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("constraint: renban line must have at least one cell")
	}

	predicate := func(tuple []int) bool {
		if !grid.HasUniqueNonZeros(tuple) {
			return false
		}
		min, max := tuple[0], tuple[0]
		for _, v := range tuple[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		return max-min+1 == len(tuple)
	}

	base, err := NewDenseMultiCell("Renban", positions, predicate, cfg)
	if err != nil {
		return nil, err
	}
	return &Renban{DenseMultiCell: base}, nil
}
