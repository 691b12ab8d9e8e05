// Package mines provides the minefield oracle consumed by the solver:
// a grid of hidden mines that answers probes with either a neighbor
// mine count or a detonation.
package mines

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Outcome is the answer to sweeping a single cell. Values 0 through 8
// are surrounding mine counts; Detonated means the probed cell held a
// mine.
type Outcome int8

const Detonated Outcome = -1

func (o Outcome) String() string {
	if o == Detonated {
		return "detonated"
	}
	return strconv.Itoa(int(o))
}

// Minefield is the oracle the solver probes. Sweep must only be called
// with an in-bounds position that has not been swept before; breaking
// either rule is a contract fault and yields an AssertionError, not a
// detonation.
//
// Implementations need not be safe for concurrent sweeps against the
// same field.
type Minefield interface {
	Sweep(col, row int) (Outcome, error)
	Width() int
	Height() int
	MineCount() int
}
