package solver

type State int8

const (
	Propagating State = iota
	Guessing
	Solved
	Exploded
)

func (s State) String() string {
	switch s {
	case Propagating:
		return "propagating"
	case Guessing:
		return "guessing"
	case Solved:
		return "solved"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}
