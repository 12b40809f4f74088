package main

import (
	"fmt"

	"github.com/eftil/sudoku-core/engine"
	"github.com/eftil/sudoku-core/grid"
)

// wirePosition is the JSON wire shape for a board cell coordinate, kept
// separate from grid.Position so the core package never depends on
// encoding/json tags.
type wirePosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p wirePosition) toGrid() grid.Position {
	return grid.Position{Row: p.Row, Col: p.Col}
}

func toGridPositions(ps []wirePosition) []grid.Position {
	if len(ps) == 0 {
		return nil
	}
	out := make([]grid.Position, len(ps))
	for i, p := range ps {
		out[i] = p.toGrid()
	}
	return out
}

// wireConstraint is a discriminated union over the five supported extra
// constraint kinds, identified by Type.
type wireConstraint struct {
	Type         string         `json:"type"`
	Cells        []wirePosition `json:"cells,omitempty"`
	Sum          int            `json:"sum,omitempty"`
	SumCells     []wirePosition `json:"sum_cells,omitempty"`
	ProductCells []wirePosition `json:"product_cells,omitempty"`
}

func (w wireConstraint) toSpec() (engine.ConstraintSpec, error) {
	switch w.Type {
	case "killer":
		return engine.Killer{Cells: toGridPositions(w.Cells), Sum: w.Sum}, nil
	case "killer_unique":
		return engine.KillerUnique{Cells: toGridPositions(w.Cells), Sum: w.Sum}, nil
	case "ordinal_arrow":
		return engine.OrdinalArrow{
			SumCells:     toGridPositions(w.SumCells),
			ProductCells: toGridPositions(w.ProductCells),
		}, nil
	case "german_whispers":
		return engine.GermanWhispers{Cells: toGridPositions(w.Cells)}, nil
	case "renban":
		return engine.Renban{Cells: toGridPositions(w.Cells)}, nil
	default:
		return nil, fmt.Errorf("unknown constraint type %q", w.Type)
	}
}

func toSpecs(constraints []wireConstraint) ([]engine.ConstraintSpec, error) {
	if len(constraints) == 0 {
		return nil, nil
	}
	specs := make([]engine.ConstraintSpec, 0, len(constraints))
	for _, c := range constraints {
		spec, err := c.toSpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// solveRequest is the shared body shape for /solve and /true-candidates.
// Puzzle entries are 0..9, 0 meaning unassigned, matching the core's
// int8[9][9] persisted-state convention (§6 of the design).
type solveRequest struct {
	Puzzle      [9][9]int        `json:"puzzle"`
	Constraints []wireConstraint `json:"constraints"`
}

func (r solveRequest) toNumBoard() grid.NumBoard {
	var b grid.NumBoard
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			b[row][col] = r.Puzzle[row][col]
		}
	}
	return b
}

// tufResponse serializes a grid.TufBoard into the curr_tuf_board shape:
// int8[9][9][9] entries in {-1, 0, 1}.
type tufResponse struct {
	CurrTufBoard [9][9][9]int8 `json:"curr_tuf_board"`
}

func newTufResponse(tuf grid.TufBoard) tufResponse {
	return tufResponse{CurrTufBoard: tuf}
}
