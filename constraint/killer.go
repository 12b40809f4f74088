package constraint

import (
	"fmt"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/grid"
)

// Killer is a killer-cage constraint checking only that a fully assigned
// cage sums to its target. It does not enforce uniqueness within the
// cage; KillerUnique layers that on when a puzzle needs it.
type Killer struct {
	*DenseMultiCell
	targetSum int
}

// NewKiller builds a Killer cage over positions summing to targetSum.
func NewKiller(positions []grid.Position, targetSum int, cfg config.Config) (*Killer, error) {
	if targetSum < 1 || targetSum > 45 {
		return nil, fmt.Errorf("constraint: killer cage target sum %d out of range 1..45", targetSum)
	}

	predicate := func(tuple []int) bool {
		sum := 0
		for _, v := range tuple {
			sum += v
		}
		return sum == targetSum
	}

	base, err := NewDenseMultiCell(fmt.Sprintf("Killer(%d)", targetSum), positions, predicate, cfg)
	if err != nil {
		return nil, err
	}
	return &Killer{DenseMultiCell: base, targetSum: targetSum}, nil
}

// TargetSum returns the cage's required sum.
func (k *Killer) TargetSum() int {
	return k.targetSum
}
