package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

var (
	Beginner     = GameParams{Width: 10, Height: 10, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

func ParsePreset(name string) (GameParams, error) {
	switch strings.ToLower(name) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "expert":
		return Expert, nil
	default:
		return GameParams{}, fmt.Errorf("unknown preset %q", name)
	}
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) PointInBounds(col, row int) bool {
	return 0 <= col && col < p.Width && 0 <= row && row < p.Height
}

func (p GameParams) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("bad field dimensions %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.CellCount() {
		return fmt.Errorf("%d mines do not fit a %dx%d field with a safe first sweep",
			p.MineCount, p.Width, p.Height)
	}
	return nil
}
