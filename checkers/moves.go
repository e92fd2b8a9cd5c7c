package checkers

import (
	"strings"

	"boardgames/game"
)

type Move struct {
	From     game.Position
	To       game.Position
	Captured []Capture
	// Crowned is set when a man reaches its far rank during the move, even
	// if the capture sequence carries it away from that rank again.
	Crowned bool
}

func (m Move) Squares() (game.Position, game.Position) {
	return m.From, m.To
}

func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

// String renders "c3-d4" for a plain move and "c3xg7" for a capture,
// whatever the number of pieces taken.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}

// Describe is the move log entry, listing captured squares when there are any.
func (m Move) Describe() string {
	if !m.IsCapture() {
		return m.String()
	}
	squares := make([]string, len(m.Captured))
	for i, c := range m.Captured {
		squares[i] = c.At.String()
	}
	return m.String() + " (" + strings.Join(squares, ",") + ")"
}

// AllMoves lists the legal moves of color c. Capturing is mandatory: if any
// piece can capture, only the moves capturing the most pieces across the
// whole side are kept.
func AllMoves(b *Board, c game.Color) []Move {
	var all []Move
	longest := 0
	for r := 0; r < game.Size; r++ {
		for col := 0; col < game.Size; col++ {
			from := game.Position{Row: r, Col: col}
			if p := b.At(from); p.Empty() || p.Color != c {
				continue
			}
			for _, m := range PieceMoves(b, from) {
				longest = max(longest, len(m.Captured))
				all = append(all, m)
			}
		}
	}
	if longest == 0 {
		return all
	}

	captures := all[:0]
	for _, m := range all {
		if len(m.Captured) == longest {
			captures = append(captures, m)
		}
	}
	return captures
}

// CaptureMoves returns only the capturing moves of the piece on from.
func CaptureMoves(b *Board, from game.Position) []Move {
	var captures []Move
	for _, m := range PieceMoves(b, from) {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

// apply returns a copy of b after m: the piece moves, captured pieces are
// removed and a man reaching the far rank is crowned.
func apply(b Board, m Move) Board {
	piece := b.At(m.From)
	b.Set(m.From, Piece{})
	for _, c := range m.Captured {
		b.Set(c.At, Piece{})
	}
	if m.Crowned {
		piece.Kind = King
	}
	b.Set(m.To, promote(piece, m.To))
	return b
}
