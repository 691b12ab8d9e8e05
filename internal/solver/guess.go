package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/dchistyakov/sweeper/internal/mines"
)

// guess is the forced-move path: deduction has stalled with mines
// still unflagged, so probe the statistically safest unknown cell and
// discount the running luck by its survival chance.
func (s *Solver) guess() error {
	s.state = Guessing

	probs := s.probabilities(s.activeCells())

	best, bestProb := -1, float32(0)
	for j, p := range probs {
		if best == -1 || p < bestProb || (p == bestProb && j < best) {
			best, bestProb = j, p
		}
	}

	var frontierSum float32
	for _, p := range probs {
		frontierSum += p
	}
	if isolated := s.board.UnknownRemaining() - len(probs); isolated > 0 {
		pOther := (float32(s.remainingMines()) - frontierSum) / float32(isolated)
		if best == -1 || pOther < bestProb {
			j, err := s.isolatedCell(probs)
			if err != nil {
				return err
			}
			best, bestProb = j, pOther
		}
	}
	if best == -1 {
		return AssertionError{"guessing with no unknown cells left"}
	}

	s.luck *= 1 - bestProb
	s.guesses++
	Log.WithFields(logrus.Fields{
		"cell":        best,
		"probability": bestProb,
		"luck":        s.luck,
	}).Debug("forced guess")

	out, err := s.uncover(best)
	if err != nil {
		return err
	}
	if out == mines.Detonated {
		s.state = Exploded
		return nil
	}
	s.next.PushBack(best)
	return nil
}

// isolatedCell finds the first unknown cell with no numeric constraint,
// scanning row-major with the column varying fastest. Mine-budget
// accounting guarantees one exists whenever this path is taken, so a
// miss is an internal invariant violation, not a crash.
func (s *Solver) isolatedCell(probs map[int]float32) (int, error) {
	for i := range s.board.CellCount() {
		if s.board.Cell(i) != Unknown {
			continue
		}
		if _, ok := probs[i]; !ok {
			return i, nil
		}
	}
	return 0, AssertionError{"no isolated cell despite nonzero isolated count"}
}
