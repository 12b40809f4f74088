// Package solver implements the search: single-solution backtracking over
// a SolvingBoard, and the true-candidate sweep that proves, for every
// cell and digit, whether some valid completion places that digit there.
package solver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eftil/sudoku-core/board"
	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/grid"
	"github.com/eftil/sudoku-core/logging"
)

// ErrUnsatisfiable is returned when no assignment satisfies the puzzle
// and its constraints.
var ErrUnsatisfiable = errors.New("solver: puzzle has no solution")

// Progress is a best-effort snapshot emitted during a search, at most
// once per the driver's configured progress interval. Tuf is populated
// only during TrueCandidates; it is nil during Solve.
type Progress struct {
	Nodes   int64
	Elapsed time.Duration
	Tuf     *grid.TufBoard
}

// Driver runs searches with its own node counter and clock, so that
// multiple Drivers (e.g. one per concurrent request) never share
// mutable search state.
type Driver struct {
	cfg           config.Config
	searchCounter int64

	mu        sync.Mutex
	startTime time.Time
}

// NewDriver builds a Driver using cfg for its tunables.
func NewDriver(cfg config.Config) *Driver {
	d := &Driver{cfg: cfg}
	d.ResetCounters()
	return d
}

// ResetCounters zeroes the node counter and restarts the elapsed-time
// clock.
func (d *Driver) ResetCounters() {
	atomic.StoreInt64(&d.searchCounter, 0)
	d.mu.Lock()
	d.startTime = time.Now()
	d.mu.Unlock()
}

// ReadCounters returns the current node count and elapsed time since the
// last reset.
func (d *Driver) ReadCounters() (nodes int64, elapsed time.Duration) {
	d.mu.Lock()
	start := d.startTime
	d.mu.Unlock()
	return atomic.LoadInt64(&d.searchCounter), time.Since(start)
}

// run carries the per-call state threaded through a single search's
// recursion: the cancellation context, the optional progress sink, and
// the throttling clock for it.
type run struct {
	ctx      context.Context
	progress chan<- Progress
	interval time.Duration
	lastTick time.Time
}

func (d *Driver) newRun(ctx context.Context, progress chan<- Progress) *run {
	interval := d.cfg.ProgressInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &run{ctx: ctx, progress: progress, interval: interval, lastTick: time.Now()}
}

// tick checks for cancellation and, at most once per interval, emits a
// best-effort progress snapshot. tuf is nil for plain Solve calls.
func (d *Driver) tick(r *run, tuf *grid.TufBoard) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	if r.progress == nil {
		return nil
	}
	now := time.Now()
	if now.Sub(r.lastTick) < r.interval {
		return nil
	}
	r.lastTick = now

	nodes, elapsed := d.ReadCounters()
	snapshot := Progress{Nodes: nodes, Elapsed: elapsed}
	if tuf != nil {
		cp := *tuf
		snapshot.Tuf = &cp
	}
	select {
	case r.progress <- snapshot:
	default:
	}
	return nil
}

// Solve runs a single-solution backtracking search over puzzle under
// constraints. It returns the solved board, or ErrUnsatisfiable if no
// assignment satisfies every rule and constraint. A non-nil, non-sentinel
// error means the puzzle's given digits were already incompatible or the
// context was cancelled mid-search.
func (d *Driver) Solve(ctx context.Context, puzzle grid.NumBoard, constraints []constraint.Constraint, progress chan<- Progress, resetCounter bool) (*grid.NumBoard, error) {
	sb, err := board.New(puzzle, grid.AllTrue(), constraints, d.cfg)
	if err != nil {
		return nil, err
	}

	if resetCounter {
		d.ResetCounters()
	}

	r := d.newRun(ctx, progress)
	solved, err := d.solveStep(sb, r)
	if err != nil {
		return nil, err
	}
	if solved == nil {
		return nil, ErrUnsatisfiable
	}

	result := solved.Assigned
	return &result, nil
}

// solveStep is the recursive backtracking core: pick the unassigned cell
// with the fewest live candidates, try each in turn on a cloned board,
// run quickdrops, and recurse. It mirrors the original implementation's
// solve_step, cloning per branch instead of mutating and restoring.
func (d *Driver) solveStep(sb *board.SolvingBoard, r *run) (*board.SolvingBoard, error) {
	if err := d.tick(r, nil); err != nil {
		return nil, err
	}
	atomic.AddInt64(&d.searchCounter, 1)

	_, pos := sb.LeastCandidatePick()
	if pos == nil {
		if !sb.ValidateAll() {
			return nil, nil
		}
		return sb, nil
	}

	for _, candidate := range sb.Cand.Digits(*pos) {
		next := sb.Clone()
		if !next.Settle(*pos, candidate) {
			continue
		}
		if !next.Quickdrops() {
			continue
		}
		solved, err := d.solveStep(&next, r)
		if err != nil {
			return nil, err
		}
		if solved != nil {
			return solved, nil
		}
	}

	return nil, nil
}

// initSettle builds the tri-state board forced by a puzzle's given
// digits alone (no extra constraints yet applied): each given digit
// proves its own cell true and disproves itself across the cell's row,
// column, and block peers. Every other cell/digit starts unknown.
func initSettle(puzzle grid.NumBoard) grid.TufBoard {
	var tuf grid.TufBoard
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			num := puzzle[r][c]
			if num == 0 {
				continue
			}
			for _, p := range grid.RowPositions(r) {
				tuf[p.Row][p.Col][num-1] = -1
			}
			for _, p := range grid.ColPositions(c) {
				tuf[p.Row][p.Col][num-1] = -1
			}
			origin := grid.BlockOrigin(grid.Position{Row: r, Col: c})
			for _, p := range grid.BlockPositions(origin.Row/3, origin.Col/3) {
				tuf[p.Row][p.Col][num-1] = -1
			}
			for dd := 0; dd < 9; dd++ {
				tuf[r][c][dd] = -1
			}
			tuf[r][c][num-1] = 1
		}
	}
	return tuf
}

// leastUnknownCandPos finds the unassigned, non-given cell with the
// fewest digits still unknown in tuf. Given cells are always treated as
// known and skipped, matching the original's get_least_unknown_cand_pos.
func leastUnknownCandPos(tuf grid.TufBoard, puzzle grid.NumBoard) (int, *grid.Position) {
	best := 10
	var bestPos grid.Position
	found := false

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if puzzle[r][c] != 0 {
				continue
			}
			count := 0
			for d := 0; d < 9; d++ {
				if tuf[r][c][d] == 0 {
					count++
				}
			}
			if count == 0 {
				continue
			}
			if count < best {
				best = count
				bestPos = grid.Position{Row: r, Col: c}
				found = true
			}
		}
	}

	if !found {
		return 0, nil
	}
	return best, &bestPos
}

// unknownDigits returns the digits (1..9) still unknown at pos in tuf.
func unknownDigits(tuf grid.TufBoard, pos grid.Position) []int {
	var out []int
	for d := 1; d <= 9; d++ {
		if tuf[pos.Row][pos.Col][d-1] == 0 {
			out = append(out, d)
		}
	}
	return out
}

// SolveTrueCandidates proves, for every cell and digit, whether some
// completion of puzzle under constraints places that digit there. It
// returns the resulting tri-state board, or an error if the puzzle's
// given digits are already incompatible, or if the context is cancelled
// mid-sweep.
func (d *Driver) SolveTrueCandidates(ctx context.Context, puzzle grid.NumBoard, constraints []constraint.Constraint, progress chan<- Progress) (*grid.TufBoard, error) {
	tuf := initSettle(puzzle)

	initSol, err := board.New(puzzle, tuf.ToCandBoard(), constraints, d.cfg)
	if err != nil {
		return nil, err
	}
	if !initSol.Quickdrops() {
		return nil, ErrUnsatisfiable
	}

	r := d.newRun(ctx, progress)

	count, pos := leastUnknownCandPos(tuf, puzzle)
	for count > 0 && pos != nil {
		for _, candidate := range unknownDigits(tuf, *pos) {
			if err := d.tick(r, &tuf); err != nil {
				return nil, err
			}

			try := initSol.Clone()
			try.Cand.And(tuf.ToCandBoard())

			found := false
			// A cell the initial quickdrops already filled cannot be
			// re-settled (its candidates are cleared); its own digit
			// counts as settled.
			if try.Assigned.Get(*pos) == candidate || try.Settle(*pos, candidate) {
				if try.Quickdrops() {
					solved, stepErr := d.solveStep(&try, r)
					if stepErr != nil {
						return nil, stepErr
					}
					if solved != nil {
						for rr := 0; rr < 9; rr++ {
							for cc := 0; cc < 9; cc++ {
								digit := solved.Assigned[rr][cc]
								if digit != 0 {
									tuf[rr][cc][digit-1] = 1
								}
							}
						}
						found = true
					}
				}
			}
			if !found {
				tuf[pos.Row][pos.Col][candidate-1] = -1
			}
		}

		if err := d.tick(r, &tuf); err != nil {
			return nil, err
		}
		logging.SolvingStep("true-candidates", "resolved cell %s", pos)

		count, pos = leastUnknownCandPos(tuf, puzzle)
	}

	return &tuf, nil
}
