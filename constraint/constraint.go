// Package constraint implements the extra-constraint framework: the
// abstract Constraint contract, the DenseMultiCell base that preprocesses
// valid-tuple tables for small cell scopes, and the concrete variants
// (Killer, OrdinalArrow, and the supplemental KillerUnique, GermanWhispers,
// Renban) built on top of it.
package constraint

import (
	"fmt"
	"runtime"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/grid"
	"github.com/eftil/sudoku-core/logging"
)

// MaxScopeCells is the preprocessing sanity cap on a DenseMultiCell's scope:
// 9^7 valid-tuple entries is already ~4.8M booleans, and the framework
// refuses to build anything larger.
const MaxScopeCells = 7

// DefaultCacheSize bounds the AvailableCandidates memoization cache per
// constraint instance, matching the original implementation's
// @lru_cache(maxsize=4096).
const DefaultCacheSize = 4096

// ConstraintTooLargeError is returned when a constraint's scope exceeds
// the scope cap in effect: the Config's MaxScopeCells, at most
// MaxScopeCells.
type ConstraintTooLargeError struct {
	K   int
	Cap int
}

func (e *ConstraintTooLargeError) Error() string {
	return fmt.Sprintf("constraint: scope of %d cells exceeds the cap of %d", e.K, e.Cap)
}

// Constraint is the contract every extra constraint satisfies.
type Constraint interface {
	// IsValid returns true when every cell in the constraint's scope is
	// unassigned, or when a fully-assigned scope satisfies the predicate.
	IsValid(assigned grid.NumBoard) bool

	// AvailableCandidates returns a 9x9x9 mask restricting the cells this
	// constraint governs; cells outside its scope are left fully permitted.
	AvailableCandidates(assigned grid.NumBoard) grid.CandBoard

	// Name is a short human-readable identifier, used for logging.
	Name() string
}

// cacheKey packs up to MaxScopeCells scope values (0 meaning unassigned)
// into a fixed, comparable array usable as a map key with no allocation.
type cacheKey [MaxScopeCells]int8

// DenseMultiCell is the shared base for any constraint whose predicate
// depends only on a small tuple of cells. It preprocesses the full 9^k
// valid-tuple table up front and answers AvailableCandidates by projecting
// that table, memoizing results in a bounded LRU cache.
//
// Concrete variants embed DenseMultiCell and supply a predicate over a
// fully-assigned digit tuple; DenseMultiCell derives IsValid and
// AvailableCandidates from it.
type DenseMultiCell struct {
	name      string
	positions []grid.Position
	k         int
	predicate func(tuple []int) bool
	table     []bool // flat 9^k table, index = mixed-radix over (digit-1)
	cache     *lru.Cache[cacheKey, grid.CandBoard]
}

// NewDenseMultiCell builds and eagerly preprocesses a DenseMultiCell over
// positions, whose fully-assigned predicate is fn. Fails with
// ConstraintTooLargeError if len(positions) exceeds cfg's scope cap, capped
// in turn at MaxScopeCells since cacheKey is a fixed-size array. Zero-value
// cfg fields fall back to Config.Default()'s values.
func NewDenseMultiCell(name string, positions []grid.Position, fn func(tuple []int) bool, cfg config.Config) (*DenseMultiCell, error) {
	k := len(positions)
	if k == 0 {
		return nil, fmt.Errorf("constraint: %s has an empty scope", name)
	}

	maxScope := cfg.MaxScopeCells
	if maxScope <= 0 || maxScope > MaxScopeCells {
		maxScope = MaxScopeCells
	}
	if k > maxScope {
		return nil, &ConstraintTooLargeError{K: k, Cap: maxScope}
	}

	cacheSize := cfg.ConstraintCacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, grid.CandBoard](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("constraint: building cache for %s: %w", name, err)
	}

	d := &DenseMultiCell{
		name:      name,
		positions: append([]grid.Position(nil), positions...),
		k:         k,
		predicate: fn,
		cache:     cache,
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	d.preprocess(workers)
	return d, nil
}

func pow9(n int) int {
	total := 1
	for i := 0; i < n; i++ {
		total *= 9
	}
	return total
}

// decode turns a flat table index into a k-length digit tuple (1..9).
func (d *DenseMultiCell) decode(index int) []int {
	digits := make([]int, d.k)
	for i := d.k - 1; i >= 0; i-- {
		digits[i] = index%9 + 1
		index /= 9
	}
	return digits
}

// encode turns a k-length digit tuple (1..9) into a flat table index.
func (d *DenseMultiCell) encode(digits []int) int {
	idx := 0
	for _, v := range digits {
		idx = idx*9 + (v - 1)
	}
	return idx
}

// preprocess fills d.table by evaluating the predicate over every 9^k
// tuple, fanning the enumeration out across workers goroutines coordinated
// by errgroup, each owning a disjoint contiguous index range.
func (d *DenseMultiCell) preprocess(workers int) {
	total := pow9(d.k)
	d.table = make([]bool, total)

	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (total + workers - 1) / workers

	logging.Debug("constraint %s: preprocessing %d tuples across %d workers", d.name, total, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > total {
			end = total
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			for idx := start; idx < end; idx++ {
				tuple := d.decode(idx)
				if d.predicate(tuple) {
					d.table[idx] = true
				}
			}
			return nil
		})
	}
	_ = g.Wait() // worker funcs never return an error

	logging.Debug("constraint %s: preprocessing done", d.name)
}

// scopeValues reads the current digits (0 meaning unassigned) at the
// constraint's scope cells from assigned.
func (d *DenseMultiCell) scopeValues(assigned grid.NumBoard) []int {
	values := make([]int, d.k)
	for i, pos := range d.positions {
		values[i] = assigned.Get(pos)
	}
	return values
}

// Name returns the constraint's human-readable name.
func (d *DenseMultiCell) Name() string {
	return d.name
}

// Positions returns a copy of the constraint's scope cells.
func (d *DenseMultiCell) Positions() []grid.Position {
	return append([]grid.Position(nil), d.positions...)
}

// IsValid is optimistic: true whenever any scope cell is unassigned,
// otherwise the preprocessed predicate decides.
func (d *DenseMultiCell) IsValid(assigned grid.NumBoard) bool {
	values := d.scopeValues(assigned)
	for _, v := range values {
		if v == 0 {
			return true
		}
	}
	return d.predicate(values)
}

// AvailableCandidates projects the preprocessed table against the current
// (possibly partial) scope assignment, returning a mask where unscoped
// cells are fully permitted and scoped cells are restricted to digits
// reachable by some completion of the remaining free scope cells.
func (d *DenseMultiCell) AvailableCandidates(assigned grid.NumBoard) grid.CandBoard {
	values := d.scopeValues(assigned)

	var key cacheKey
	for i, v := range values {
		key[i] = int8(v)
	}
	if cached, ok := d.cache.Get(key); ok {
		return cached
	}

	mask := grid.AllTrue()

	var freeIdx []int
	for i, v := range values {
		if v == 0 {
			freeIdx = append(freeIdx, i)
		}
	}
	if len(freeIdx) == 0 {
		d.cache.Add(key, mask)
		return mask
	}

	possible := make([][9]bool, len(freeIdx))
	combo := make([]int, d.k)
	copy(combo, values)

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(freeIdx) {
			if d.table[d.encode(combo)] {
				for fi, posIdx := range freeIdx {
					possible[fi][combo[posIdx]-1] = true
				}
			}
			return
		}
		posIdx := freeIdx[depth]
		for digit := 1; digit <= 9; digit++ {
			combo[posIdx] = digit
			walk(depth + 1)
		}
	}
	walk(0)

	for fi, posIdx := range freeIdx {
		pos := d.positions[posIdx]
		for digit := 1; digit <= 9; digit++ {
			if !possible[fi][digit-1] {
				mask[pos.Row][pos.Col][digit-1] = false
			}
		}
	}

	d.cache.Add(key, mask)
	return mask
}
