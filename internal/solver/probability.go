package solver

// The relaxation below is a Gauss-Seidel-style pass over the implicit
// linear system in which every active numbered cell constrains the sum
// of its unknown neighbors' mine probabilities to its remaining mine
// count, plus one global constraint capping total frontier mass at the
// remaining mine budget. Cheap and approximate, not exact inference.
//
// The iteration cap and the convergence threshold are heuristics with
// no general convergence proof; they are kept as-is pending validation
// against known boards.
const (
	relaxationRounds   = 100
	convergenceEpsilon = 1e-4
)

// probabilities estimates, for every frontier cell (unknown cell next
// to an active numbered cell), the chance that it hides a mine. The
// map is rebuilt from scratch on every stall and discarded after the
// guess it informs.
func (s *Solver) probabilities(actives []int) map[int]float32 {
	remaining := float32(s.remainingMines())
	naive := remaining / float32(s.board.UnknownRemaining())

	probs := make(map[int]float32)
	for _, i := range actives {
		for _, j := range s.board.Neighbors(i) {
			if s.board.Cell(j) == Unknown {
				probs[j] = naive
			}
		}
	}

	for range relaxationRounds {
		var maxCorrection float32

		for _, i := range actives {
			cell := s.board.Cell(i)
			if cell < 0 || cell > 8 {
				continue
			}
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
			if len(unknowns) == 0 {
				continue
			}

			expected := float32(int(cell) - flags)
			var sum float32
			for _, j := range unknowns {
				sum += probs[j]
			}
			correction := (expected - sum) / float32(len(unknowns))
			maxCorrection = max(maxCorrection, abs32(correction))
			for _, j := range unknowns {
				probs[j] = clamp01(probs[j] + correction)
			}
		}

		// cap total frontier mass at the remaining mine budget
		var total float32
		for _, p := range probs {
			total += p
		}
		if total > remaining {
			correction := (remaining - total) / float32(len(probs))
			for j, p := range probs {
				probs[j] = clamp01(p + correction)
			}
			maxCorrection = max(maxCorrection, abs32(correction))
		}

		if maxCorrection < convergenceEpsilon {
			break
		}
	}

	return probs
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
