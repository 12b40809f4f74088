package constraint

import (
	"fmt"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/grid"
)

// minWhisperGap is the minimum absolute difference German Whispers
// requires between every pair of adjacent line cells.
const minWhisperGap = 5

// GermanWhispers requires every pair of adjacent cells along a line to
// differ by at least minWhisperGap. It does not enforce uniqueness.
type GermanWhispers struct {
	*DenseMultiCell
}

// NewGermanWhispers builds a German Whispers line over positions, given in
// line order (adjacency is between consecutive entries).
func NewGermanWhispers(positions []grid.Position, cfg config.Config) (*GermanWhispers, error) {
	if len(positions) < 2 {
		return nil, fmt.Errorf("constraint: german whispers line needs at least two cells")
	}

	predicate := func(tuple []int) bool {
		for i := 0; i < len(tuple)-1; i++ {
			diff := tuple[i] - tuple[i+1]
			if diff < 0 {
				diff = -diff
			}
			if diff < minWhisperGap {
				return false
			}
		}
		return true
	}

	base, err := NewDenseMultiCell("GermanWhispers", positions, predicate, cfg)
	if err != nil {
		return nil, err
	}
	return &GermanWhispers{DenseMultiCell: base}, nil
}
