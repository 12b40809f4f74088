package constraint

import (
	"fmt"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/grid"
	"github.com/eftil/sudoku-core/ordinal"
)

// OrdinalArrow requires that the ordinal sum of one group of cells equal
// the ordinal product of a second, disjoint group, where each digit 1..9
// maps to an ordinal via its base-3 expansion below omega^3. The scope is
// the concatenation of the sum group followed by the product group.
type OrdinalArrow struct {
	*DenseMultiCell
	sumLen int
}

// NewOrdinalArrow builds an OrdinalArrow constraint over sumPositions
// (whose ordinals are added) and prodPositions (whose ordinals are
// multiplied), requiring the two totals to be equal.
func NewOrdinalArrow(sumPositions, prodPositions []grid.Position, cfg config.Config) (*OrdinalArrow, error) {
	if len(sumPositions) == 0 {
		return nil, fmt.Errorf("constraint: ordinal arrow needs at least one sum cell")
	}
	if len(prodPositions) == 0 {
		return nil, fmt.Errorf("constraint: ordinal arrow needs at least one product cell")
	}

	sumLen := len(sumPositions)
	positions := make([]grid.Position, 0, sumLen+len(prodPositions))
	positions = append(positions, sumPositions...)
	positions = append(positions, prodPositions...)

	predicate := func(tuple []int) bool {
		sum := ordinal.OrdinalSum(tuple[:sumLen])
		prod := ordinal.OrdinalProduct(tuple[sumLen:])
		return sum.Equal(prod)
	}

	base, err := NewDenseMultiCell("OrdinalArrow", positions, predicate, cfg)
	if err != nil {
		return nil, err
	}
	return &OrdinalArrow{DenseMultiCell: base, sumLen: sumLen}, nil
}

// SumPositions returns the cells whose ordinals are summed.
func (o *OrdinalArrow) SumPositions() []grid.Position {
	return append([]grid.Position(nil), o.Positions()[:o.sumLen]...)
}

// ProdPositions returns the cells whose ordinals are multiplied.
func (o *OrdinalArrow) ProdPositions() []grid.Position {
	return append([]grid.Position(nil), o.Positions()[o.sumLen:]...)
}
