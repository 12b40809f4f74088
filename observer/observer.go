// Package observer lets a caller watch a SolvingBoard's progress without
// coupling the solving machinery to any particular presentation: a
// terminal printer, a test spy, or a metrics collector can all implement
// CellObserver. A board with no attached notifier pays nothing for this.
package observer

// CellObserver receives notifications about individual cell events during
// solving. Implementations must return quickly: notifications are
// delivered synchronously from the board mutation that triggered them.
type CellObserver interface {
	// OnSingleCandidate is called when a cell is found to have exactly
	// one live candidate remaining, before it is settled.
	OnSingleCandidate(row, col, candidate int)

	// OnCellSolved is called when a cell's value is assigned.
	OnCellSolved(row, col, value int)

	// OnCandidateEliminated is called when a candidate is removed from a
	// cell's live set, reporting how many candidates remain at that cell.
	OnCandidateEliminated(row, col, candidate, remainingCount int)
}

// CellNotifier fans a board's events out to any number of observers.
type CellNotifier struct {
	observers []CellObserver
}

// NewCellNotifier returns an empty notifier.
func NewCellNotifier() *CellNotifier {
	return &CellNotifier{}
}

// Add registers an observer. A nil observer is ignored.
func (n *CellNotifier) Add(o CellObserver) {
	if o == nil {
		return
	}
	n.observers = append(n.observers, o)
}

// Remove unregisters the first matching observer, if present.
func (n *CellNotifier) Remove(o CellObserver) {
	for i, existing := range n.observers {
		if existing == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// NotifySingleCandidate fans out a single-candidate detection.
func (n *CellNotifier) NotifySingleCandidate(row, col, candidate int) {
	for _, o := range n.observers {
		o.OnSingleCandidate(row, col, candidate)
	}
}

// NotifyCellSolved fans out a cell assignment.
func (n *CellNotifier) NotifyCellSolved(row, col, value int) {
	for _, o := range n.observers {
		o.OnCellSolved(row, col, value)
	}
}

// NotifyCandidateEliminated fans out a candidate elimination.
func (n *CellNotifier) NotifyCandidateEliminated(row, col, candidate, remainingCount int) {
	for _, o := range n.observers {
		o.OnCandidateEliminated(row, col, candidate, remainingCount)
	}
}
