// Package solver clears a minefield by constraint propagation over the
// revealed numbers and, when deduction stalls, by probing the cell with
// the lowest estimated mine probability.
package solver

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/dchistyakov/sweeper/internal/mines"
)

var Log = logrus.New()

// Solver owns one board for the lifetime of a single Solve call. It is
// not safe for concurrent use; independent solves want independent
// Solver and Minefield instances.
type Solver struct {
	field   mines.Minefield
	board   *Board
	state   State
	luck    float32
	guesses int

	// active numbered cells still worth re-examining; next collects
	// the worklist for the following round and the two are swapped at
	// every round boundary
	active deque.Deque[int]
	next   deque.Deque[int]
}

func New(field mines.Minefield) (*Solver, error) {
	w, h := field.Width(), field.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bad field dimensions %dx%d", w, h)
	}
	if field.MineCount() < 0 || field.MineCount() >= w*h {
		return nil, fmt.Errorf("bad mine count %d for a %dx%d field", field.MineCount(), w, h)
	}
	return &Solver{
		field: field,
		board: NewBoard(w, h),
		luck:  1.0,
	}, nil
}

func (s *Solver) State() State  { return s.state }
func (s *Solver) Luck() float32 { return s.luck }
func (s *Solver) Guesses() int  { return s.guesses }
func (s *Solver) Board() *Board { return s.board }

// Solved reports whether the board has been fully cleared: nothing
// unknown, no mine ever revealed, and every mine accounted for by a
// flag.
func (s *Solver) Solved() bool {
	return s.board.UnknownRemaining() == 0 &&
		s.board.MinesRevealed() == 0 &&
		s.board.FlagsPlaced() == s.field.MineCount()
}

// Dump renders the board for diagnostics.
func (s *Solver) Dump() string {
	return s.board.grid.ToString(s.board.width)
}

func (s *Solver) remainingMines() int {
	return s.field.MineCount() - s.board.FlagsPlaced()
}

// uncover probes the oracle for cell i and records the outcome.
func (s *Solver) uncover(i int) (mines.Outcome, error) {
	col, row := s.board.Coords(i)
	out, err := s.field.Sweep(col, row)
	if err != nil {
		return 0, CapabilityFault{Err: err}
	}
	if err := s.board.Reveal(i, out); err != nil {
		return 0, err
	}
	return out, nil
}

// Solve drives rounds of propagation and guessing until the board is
// cleared or a probe detonates. It returns whether the board was
// solved and the survival likelihood accumulated over every guess
// taken. A Solver is good for exactly one Solve call.
func (s *Solver) Solve() (solved bool, luck float32, err error) {
	// corner-first seed; its safety on a lazily placed field comes
	// from the first-sweep contract
	s.next.PushBack(0)

	for {
		productive, err := s.round()
		if err != nil {
			return false, s.luck, err
		}
		if s.state == Exploded {
			return false, s.luck, nil
		}
		if s.board.UnknownRemaining() == 0 {
			break
		}
		if s.remainingMines() == 0 {
			if err := s.revealRemaining(); err != nil {
				return false, s.luck, err
			}
			if s.state == Exploded {
				return false, s.luck, nil
			}
			break
		}
		if productive {
			continue
		}

		if err := s.guess(); err != nil {
			return false, s.luck, err
		}
		if s.state == Exploded {
			return false, s.luck, nil
		}
	}

	if s.Solved() {
		s.state = Solved
	}
	Log.WithFields(logrus.Fields{
		"state":   s.state,
		"guesses": s.guesses,
		"luck":    s.luck,
	}).Debug("solve finished")
	return s.Solved(), s.luck, nil
}

// round drains one worklist pass. It reports whether any deduction
// fired ("productive" in the fixed-point sense); unresolved numbered
// cells are re-enqueued for the next round.
func (s *Solver) round() (productive bool, err error) {
	s.state = Propagating
	s.active, s.next = s.next, s.active

	for s.active.Len() > 0 {
		i := s.active.PopFront()
		switch cell := s.board.Cell(i); {
		case cell == Unknown:
			// fresh probe target (the seed, or a guess re-entering
			// the worklist before its reveal was recorded)
			out, err := s.uncover(i)
			if err != nil {
				return false, err
			}
			if out == mines.Detonated {
				s.state = Exploded
				return false, nil
			}
			s.next.PushBack(i)
			productive = true
		case 0 <= cell && cell <= 8:
			p, err := s.inspect(i, int(cell))
			if err != nil {
				return false, err
			}
			if s.state == Exploded {
				return false, nil
			}
			productive = productive || p
		}
		// Flagged and Mine entries carry no further deductions
	}
	return productive, nil
}

// inspect applies the two local deduction rules to one numbered cell.
func (s *Solver) inspect(i, count int) (productive bool, err error) {
	var (
		flags    int
		unknowns []int
	)
	for _, j := range s.board.Neighbors(i) {
		switch s.board.Cell(j) {
		case Flagged:
			flags++
		case Unknown:
			unknowns = append(unknowns, j)
		}
	}

	switch {
	case len(unknowns) == 0:
		// fully resolved, drop from the worklist
	case count == flags:
		// every unflagged neighbor is provably safe
		for _, j := range unknowns {
			out, err := s.uncover(j)
			if err != nil {
				return false, err
			}
			if out == mines.Detonated {
				s.state = Exploded
				return false, nil
			}
			s.next.PushBack(j)
		}
		productive = true
	case len(unknowns)+flags == count:
		// every unknown neighbor is provably a mine
		for _, j := range unknowns {
			if err := s.board.PlantFlag(j); err != nil {
				return false, err
			}
		}
		productive = true
	default:
		s.next.PushBack(i)
	}
	return productive, nil
}

// revealRemaining clears every cell still unknown. Only valid once all
// mines are flagged, which proves the remainder safe.
func (s *Solver) revealRemaining() error {
	for i := range s.board.CellCount() {
		if s.board.Cell(i) != Unknown {
			continue
		}
		out, err := s.uncover(i)
		if err != nil {
			return err
		}
		if out == mines.Detonated {
			s.state = Exploded
			return nil
		}
	}
	return nil
}

// activeCells snapshots the current worklist without consuming it.
func (s *Solver) activeCells() []int {
	cells := make([]int, s.next.Len())
	for k := range cells {
		cells[k] = s.next.At(k)
	}
	return cells
}
