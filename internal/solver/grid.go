package solver

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is the solver's knowledge about one cell.
type CellState int8

const (
	Unknown CellState = -2
	Flagged CellState = -1
	Mine    CellState = 64
	// 0-8 for revealed cells with the given neighbor mine count
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "X"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
