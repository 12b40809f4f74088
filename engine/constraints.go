package engine

import (
	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/constraint"
	"github.com/eftil/sudoku-core/grid"
)

// ConstraintSpec is a wire-friendly description of an extra constraint;
// Build realizes it into the constraint package's runtime type (and, in
// doing so, preprocesses its valid-tuple table) using cfg's worker count,
// cache size, and scope cap.
type ConstraintSpec interface {
	Build(cfg config.Config) (constraint.Constraint, error)
}

// Killer describes a killer cage checking only that its cells sum to Sum.
type Killer struct {
	Cells []grid.Position
	Sum   int
}

func (k Killer) Build(cfg config.Config) (constraint.Constraint, error) {
	return constraint.NewKiller(k.Cells, k.Sum, cfg)
}

// KillerUnique describes a killer cage that additionally forbids repeats.
type KillerUnique struct {
	Cells []grid.Position
	Sum   int
}

func (k KillerUnique) Build(cfg config.Config) (constraint.Constraint, error) {
	return constraint.NewKillerUnique(k.Cells, k.Sum, cfg)
}

// OrdinalArrow describes an ordinal-arrow constraint: the ordinal sum of
// SumCells must equal the ordinal product of ProductCells.
type OrdinalArrow struct {
	SumCells     []grid.Position
	ProductCells []grid.Position
}

func (o OrdinalArrow) Build(cfg config.Config) (constraint.Constraint, error) {
	return constraint.NewOrdinalArrow(o.SumCells, o.ProductCells, cfg)
}

// GermanWhispers describes a line whose adjacent digits must differ by
// at least 5.
type GermanWhispers struct {
	Cells []grid.Position
}

func (g GermanWhispers) Build(cfg config.Config) (constraint.Constraint, error) {
	return constraint.NewGermanWhispers(g.Cells, cfg)
}

// Renban describes a line whose digits are distinct and consecutive once
// sorted.
type Renban struct {
	Cells []grid.Position
}

func (r Renban) Build(cfg config.Config) (constraint.Constraint, error) {
	return constraint.NewRenban(r.Cells, cfg)
}

// BuildConstraints realizes every spec into a runtime constraint under
// cfg, preprocessing each one's valid-tuple table in turn.
func BuildConstraints(specs []ConstraintSpec, cfg config.Config) ([]constraint.Constraint, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	built := make([]constraint.Constraint, 0, len(specs))
	for _, spec := range specs {
		c, err := spec.Build(cfg)
		if err != nil {
			return nil, err
		}
		built = append(built, c)
	}
	return built, nil
}
