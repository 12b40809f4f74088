// Package board implements the solving board: the assignment grid, its
// live candidate bitmap, and the settle/quickdrops machinery the search
// driver builds on.
package board

import (
	"fmt"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/grid"
	"github.com/eftil/sudoku-core/logging"
	"github.com/eftil/sudoku-core/observer"
)

// IncompatibleError is returned when a puzzle's given digits cannot all
// be settled together (they violate Sudoku rules or an extra constraint
// before a single search step has run).
type IncompatibleError struct {
	Pos grid.Position
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("sudoku puzzle is incompatible at %s", e.Pos)
}

// SolvingBoard pairs an assignment grid with its live candidate bitmap and
// the extra constraints governing it. Settle is the single mutator; every
// other operation (quickdrops, search) is built from repeated Settle
// calls. Value semantics by convention: Clone is a plain struct copy,
// cheap since every field is a fixed-size array or a shared read-only
// slice.
type SolvingBoard struct {
	Assigned    grid.NumBoard
	Cand        grid.CandBoard
	Constraints []constraint.Constraint

	// Notifier, when non-nil, hears about cell assignments and
	// single-candidate detections as they happen. Left nil during search
	// (cloned millions of times, nothing should watch); set by callers
	// like cmd/sudoku-demo to narrate the initial settle pass.
	Notifier *observer.CellNotifier

	// stallLimit is how many consecutive quickdrop phases must find
	// nothing before Quickdrops considers the board stable.
	stallLimit int
}

// New builds a SolvingBoard from a puzzle's given digits, an initial
// candidate bitmap (ordinarily grid.AllTrue(); the true-candidate sweep
// supplies a tighter one derived from its tri-state board),
// and the extra constraints in play. It settles every given digit in
// row-major order and fails with *IncompatibleError at the first digit
// that cannot be settled. cfg.StallLimit configures Quickdrops; a
// zero-value cfg falls back to the same default Config.Default() sets.
func New(puzzle grid.NumBoard, initialCand grid.CandBoard, constraints []constraint.Constraint, cfg config.Config) (*SolvingBoard, error) {
	stallLimit := cfg.StallLimit
	if stallLimit <= 0 {
		stallLimit = defaultStallLimit
	}

	sb := &SolvingBoard{
		Cand:        initialCand,
		Constraints: constraints,
		stallLimit:  stallLimit,
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			num := puzzle[r][c]
			if num == 0 {
				continue
			}
			pos := grid.Position{Row: r, Col: c}
			if !sb.Settle(pos, num) {
				return nil, &IncompatibleError{Pos: pos}
			}
		}
	}
	return sb, nil
}

// Clone returns an independent copy of the board. Constraints and
// Notifier are shared by reference: constraints are read-only after
// construction, and a shared notifier hears from every clone, so it sees
// every branch a search explores, not just the winning one.
func (sb SolvingBoard) Clone() SolvingBoard {
	return SolvingBoard{
		Assigned:    sb.Assigned,
		Cand:        sb.Cand,
		Constraints: sb.Constraints,
		Notifier:    sb.Notifier,
		stallLimit:  sb.stallLimit,
	}
}

// Settle assigns num at pos, eliminating it as a candidate from pos's
// row, column, and block peers and from every extra constraint's
// available-candidates mask. It reports false (leaving the board
// unchanged on failure paths that matter, though elimination is not
// rolled back — callers must have cloned before calling Settle during
// search) when num is not presently a live candidate at pos, when pos
// already holds a different digit, or when the elimination leaves some
// unassigned cell with no live candidates.
func (sb *SolvingBoard) Settle(pos grid.Position, num int) bool {
	if !sb.Cand.Has(pos, num) {
		return false
	}
	if sb.Assigned.Get(pos) == num {
		return true
	}
	if sb.Assigned.Get(pos) != 0 {
		return false
	}

	sb.Assigned[pos.Row][pos.Col] = num
	for d := 0; d < 9; d++ {
		sb.Cand[pos.Row][pos.Col][d] = false
	}

	peers := grid.Peers(pos)
	for _, p := range peers {
		if !sb.Cand[p.Row][p.Col][num-1] {
			continue
		}
		sb.Cand[p.Row][p.Col][num-1] = false
		if sb.Notifier != nil {
			sb.Notifier.NotifyCandidateEliminated(p.Row, p.Col, num, sb.Cand.Count(p))
		}
	}

	for _, c := range sb.Constraints {
		sb.Cand.And(c.AvailableCandidates(sb.Assigned))
	}

	logging.Debug("settle: %s = %d", pos, num)
	if sb.Notifier != nil {
		sb.Notifier.NotifyCellSolved(pos.Row, pos.Col, num)
	}

	return sb.hasLiveCandidatesEverywhere()
}

// hasLiveCandidatesEverywhere reports whether every unassigned cell still
// has at least one live candidate.
func (sb *SolvingBoard) hasLiveCandidatesEverywhere() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sb.Assigned[r][c] != 0 {
				continue
			}
			pos := grid.Position{Row: r, Col: c}
			if sb.Cand.Count(pos) == 0 {
				return false
			}
		}
	}
	return true
}

// LeastCandidatePick scans the board for the unassigned cell with the
// fewest live candidates (minimum-remaining-values heuristic). It
// returns (0, nil) when the board is fully assigned.
func (sb *SolvingBoard) LeastCandidatePick() (int, *grid.Position) {
	best := 10
	var bestPos grid.Position
	found := false

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sb.Assigned[r][c] != 0 {
				continue
			}
			pos := grid.Position{Row: r, Col: c}
			count := sb.Cand.Count(pos)
			if count < best {
				best = count
				bestPos = pos
				found = true
			}
		}
	}

	if !found {
		return 0, nil
	}
	return best, &bestPos
}

// defaultStallLimit is the fallback for New when cfg.StallLimit is unset.
const defaultStallLimit = 3

// Quickdrops repeatedly applies naked-single and hidden-single inference
// until stallLimit consecutive phases make no further progress. It
// returns false if any inferred settle fails (the board is
// unsatisfiable), true otherwise — including when nothing was inferable
// at all.
func (sb *SolvingBoard) Quickdrops() bool {
	checked := 0

	for {
		nakedSingles := sb.findNakedSingles()
		if len(nakedSingles) == 0 {
			checked++
		}
		for _, ns := range nakedSingles {
			checked = 0
			if sb.Notifier != nil {
				sb.Notifier.NotifySingleCandidate(ns.pos.Row, ns.pos.Col, ns.digit)
			}
			if !sb.Settle(ns.pos, ns.digit) {
				return false
			}
		}
		if checked >= sb.stallLimit {
			break
		}

		rowHiddenSingles := sb.findHiddenSinglesByRow()
		if len(rowHiddenSingles) == 0 {
			checked++
		}
		for _, hs := range rowHiddenSingles {
			checked = 0
			if !sb.Settle(hs.pos, hs.digit) {
				return false
			}
		}
		if checked >= sb.stallLimit {
			break
		}

		colHiddenSingles := sb.findHiddenSinglesByCol()
		if len(colHiddenSingles) == 0 {
			checked++
		}
		for _, hs := range colHiddenSingles {
			checked = 0
			if !sb.Settle(hs.pos, hs.digit) {
				return false
			}
		}
		if checked >= sb.stallLimit {
			break
		}
	}

	return true
}

type placement struct {
	pos   grid.Position
	digit int
}

// findNakedSingles finds every unassigned cell with exactly one live
// candidate.
func (sb *SolvingBoard) findNakedSingles() []placement {
	var out []placement
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sb.Assigned[r][c] != 0 {
				continue
			}
			pos := grid.Position{Row: r, Col: c}
			if sb.Cand.Count(pos) != 1 {
				continue
			}
			digits := sb.Cand.Digits(pos)
			out = append(out, placement{pos: pos, digit: digits[0]})
		}
	}
	return out
}

// findHiddenSinglesByRow finds every (row, digit) pair where digit has
// exactly one remaining candidate position within that row.
func (sb *SolvingBoard) findHiddenSinglesByRow() []placement {
	var out []placement
	for r := 0; r < 9; r++ {
		for d := 1; d <= 9; d++ {
			col := -1
			count := 0
			for c := 0; c < 9; c++ {
				if sb.Cand[r][c][d-1] {
					count++
					col = c
				}
			}
			if count == 1 {
				out = append(out, placement{pos: grid.Position{Row: r, Col: col}, digit: d})
			}
		}
	}
	return out
}

// findHiddenSinglesByCol finds every (col, digit) pair where digit has
// exactly one remaining candidate position within that column.
func (sb *SolvingBoard) findHiddenSinglesByCol() []placement {
	var out []placement
	for c := 0; c < 9; c++ {
		for d := 1; d <= 9; d++ {
			row := -1
			count := 0
			for r := 0; r < 9; r++ {
				if sb.Cand[r][c][d-1] {
					count++
					row = r
				}
			}
			if count == 1 {
				out = append(out, placement{pos: grid.Position{Row: row, Col: c}, digit: d})
			}
		}
	}
	return out
}

// IsComplete reports whether every cell has been assigned.
func (sb *SolvingBoard) IsComplete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sb.Assigned[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// ValidateAll reports whether every extra constraint currently holds.
// Row/column/block uniqueness is enforced continuously by Settle and is
// not re-checked here.
func (sb *SolvingBoard) ValidateAll() bool {
	for _, c := range sb.Constraints {
		if !c.IsValid(sb.Assigned) {
			logging.Warn("constraint validation failed: %s", c.Name())
			return false
		}
	}
	return true
}
