package checkers

import (
	"fmt"
	"strings"

	"boardgames/game"
)

type Kind uint8

const (
	Man Kind = iota + 1
	King
)

type Piece struct {
	Color game.Color
	Kind  Kind
}

func (p Piece) Empty() bool {
	return p.Kind == 0
}

func (p Piece) Letter() byte {
	var l byte
	switch {
	case p.Empty():
		return '.'
	case p.Color == game.White:
		l = 'w'
	default:
		l = 'b'
	}
	if p.Kind == King {
		l = l - 'a' + 'A'
	}
	return l
}

type Board [game.Size][game.Size]Piece

func (b *Board) At(p game.Position) Piece {
	return b[p.Row][p.Col]
}

func (b *Board) Set(p game.Position, piece Piece) {
	b[p.Row][p.Col] = piece
}

// Count returns the number of pieces of color c.
func (b *Board) Count(c game.Color) int {
	n := 0
	for r := 0; r < game.Size; r++ {
		for col := 0; col < game.Size; col++ {
			if p := b[r][col]; !p.Empty() && p.Color == c {
				n++
			}
		}
	}
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			sb.WriteByte(b[r][c].Letter())
		}
		if r < game.Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Playable reports whether a square is one of the dark squares pieces stand on.
func Playable(p game.Position) bool {
	return p.Col%2 == (p.Row+1)%2
}

// NewBoard fills the dark squares of rows 0-2 with black men and rows 5-7
// with white men.
func NewBoard() Board {
	var b Board
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			p := game.Position{Row: r, Col: c}
			if !Playable(p) {
				continue
			}
			switch {
			case r < 3:
				b.Set(p, Piece{Color: game.Black, Kind: Man})
			case r > 4:
				b.Set(p, Piece{Color: game.White, Kind: Man})
			}
		}
	}
	return b
}

// ParseBoard reads 8 rows of 8 characters, top row first: 'w' and 'b' are
// men, 'W' and 'B' kings and '.' an empty square.
func ParseBoard(rows []string) (Board, error) {
	var b Board
	if len(rows) != game.Size {
		return b, fmt.Errorf("expected %d rows, got %d", game.Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != game.Size {
			return b, fmt.Errorf("row %d: expected %d squares, got %d", r, game.Size, len(row))
		}
		for c := 0; c < game.Size; c++ {
			var piece Piece
			switch row[c] {
			case '.':
				continue
			case 'w':
				piece = Piece{Color: game.White, Kind: Man}
			case 'W':
				piece = Piece{Color: game.White, Kind: King}
			case 'b':
				piece = Piece{Color: game.Black, Kind: Man}
			case 'B':
				piece = Piece{Color: game.Black, Kind: King}
			default:
				return b, fmt.Errorf("row %d: unknown piece %q", r, row[c])
			}
			b[r][c] = piece
		}
	}
	return b, nil
}

func forward(c game.Color) int {
	if c == game.White {
		return -1
	}
	return 1
}

func promotionRow(c game.Color) int {
	if c == game.White {
		return 0
	}
	return game.Size - 1
}

// advancement counts the rows a man has travelled from its own back rank.
func advancement(c game.Color, row int) int {
	if c == game.White {
		return game.Size - 1 - row
	}
	return row
}
