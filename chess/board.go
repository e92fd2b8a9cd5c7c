package chess

import (
	"fmt"
	"strings"

	"boardgames/game"
)

type Kind uint8

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = map[Kind]byte{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

type Piece struct {
	Color game.Color
	Kind  Kind
}

func (p Piece) Empty() bool {
	return p.Kind == None
}

// Letter is the FEN style letter of the piece, upper case for White.
func (p Piece) Letter() byte {
	l, ok := kindLetters[p.Kind]
	if !ok {
		return '.'
	}
	if p.Color == game.White {
		return l - 'a' + 'A'
	}
	return l
}

// Board is a value type: assigning a Board copies every square.
type Board [game.Size][game.Size]Piece

func (b *Board) At(p game.Position) Piece {
	return b[p.Row][p.Col]
}

func (b *Board) Set(p game.Position, piece Piece) {
	b[p.Row][p.Col] = piece
}

func (b *Board) KingPosition(c game.Color) (game.Position, bool) {
	for r := 0; r < game.Size; r++ {
		for col := 0; col < game.Size; col++ {
			if b[r][col] == (Piece{Color: c, Kind: King}) {
				return game.Position{Row: r, Col: col}, true
			}
		}
	}
	return game.Position{}, false
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

// ParseBoard reads 8 rows of 8 characters, top row first. Upper case letters
// are White, lower case Black and '.' an empty square.
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
			ch := row[c]
			if ch == '.' {
				continue
			}
			piece, ok := pieceFromLetter(ch)
			if !ok {
				return b, fmt.Errorf("row %d: unknown piece %q", r, ch)
			}
			b[r][c] = piece
		}
	}
	return b, nil
}

func pieceFromLetter(ch byte) (Piece, bool) {
	color := game.Black
	if ch >= 'A' && ch <= 'Z' {
		color = game.White
		ch = ch - 'A' + 'a'
	}
	for kind, l := range kindLetters {
		if l == ch {
			return Piece{Color: color, Kind: kind}, true
		}
	}
	return Piece{}, false
}

var initialRows = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

func NewBoard() Board {
	b, err := ParseBoard(initialRows)
	if err != nil {
		panic(err)
	}
	return b
}

func homeRow(c game.Color) int {
	if c == game.White {
		return game.Size - 1
	}
	return 0
}

func pawnDirection(c game.Color) int {
	if c == game.White {
		return -1
	}
	return 1
}

func pawnStartRow(c game.Color) int {
	if c == game.White {
		return game.Size - 2
	}
	return 1
}
