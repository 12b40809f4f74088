package constraint

import (
	"fmt"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/grid"
)

// KillerUnique is a killer cage that, in addition to Killer's sum
// requirement, forbids any digit from repeating within the cage.
type KillerUnique struct {
	*DenseMultiCell
	targetSum int
}

// NewKillerUnique builds a uniqueness-enforcing killer cage over positions
// summing to targetSum.
func NewKillerUnique(positions []grid.Position, targetSum int, cfg config.Config) (*KillerUnique, error) {
	if targetSum < 1 || targetSum > 45 {
		return nil, fmt.Errorf("constraint: killer cage target sum %d out of range 1..45", targetSum)
	}

	predicate := func(tuple []int) bool {
		if !grid.HasUniqueNonZeros(tuple) {
			return false
		}
		sum := 0
		for _, v := range tuple {
			sum += v
		}
		return sum == targetSum
	}

	base, err := NewDenseMultiCell(fmt.Sprintf("KillerUnique(%d)", targetSum), positions, predicate, cfg)
	if err != nil {
		return nil, err
	}
	return &KillerUnique{DenseMultiCell: base, targetSum: targetSum}, nil
}

// TargetSum returns the cage's required sum.
func (k *KillerUnique) TargetSum() int {
	return k.targetSum
}
