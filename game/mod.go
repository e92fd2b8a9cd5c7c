package game

import "fmt"

// Size is the side length of both boards.
const Size = 8

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

// Position is a board square. Row 0 is Black's home edge, col 0 is the a-file.
type Position struct {
	Row int
	Col int
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders the square in algebraic form, (0, 0) being a8.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte('a' + p.Col), byte('8' - p.Row)})
}

func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	return Position{Row: int('8' - s[1]), Col: int(s[0] - 'a')}, nil
}

type Move interface {
	Squares() (from, to Position)
	String() string
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Color
	LegalMoves() []Move
	Play(Move) State
	Outcome() Outcome
	Hash() StateHash
}

// Evaluate scores a state from the perspective of the given color, higher
// being better for that color.
type Evaluate func(state State, perspective Color) float64
