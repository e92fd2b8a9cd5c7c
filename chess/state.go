package chess

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"boardgames/game"
)

type State struct {
	Board  Board
	Rights CastlingRights
	ToMove game.Color
}

func NewState() *State {
	return &State{
		Board:  NewBoard(),
		ToMove: game.White,
	}
}

// NewStateFromBoard sets up an arbitrary position. Castling rights are
// derived from which kings and rooks still stand on their origin squares.
func NewStateFromBoard(b Board, toMove game.Color) *State {
	return &State{
		Board:  b,
		Rights: RightsFromBoard(&b),
		ToMove: toMove,
	}
}

func (s *State) Copy() *State {
	c := *s
	return &c
}

func (s *State) Player() game.Color {
	return s.ToMove
}

func (s *State) LegalMoves() []game.Move {
	moves := AllLegalMoves(&s.Board, s.ToMove, s.Rights)
	result := make([]game.Move, len(moves))
	for i, m := range moves {
		result[i] = m
	}
	return result
}

// Play returns the state after the given move. It does not validate
// legality beyond requiring a piece of the side to move on the origin square.
func (s *State) Play(move game.Move) game.State {
	from, to := move.Squares()
	piece := s.Board.At(from)
	if piece.Empty() || piece.Color != s.ToMove {
		panic(fmt.Sprintf("chess: no %s piece on %s", s.ToMove, from))
	}

	next := s.Copy()
	next.Rights.update(&next.Board, from, to)
	applyMove(&next.Board, from, to)
	next.ToMove = s.ToMove.Opponent()
	return next
}

func (s *State) InCheck() bool {
	return IsInCheck(&s.Board, s.ToMove)
}

// Outcome is checkmate when the side to move is in check without a legal
// move, and stalemate when it has no legal move otherwise.
func (s *State) Outcome() game.Outcome {
	if len(AllLegalMoves(&s.Board, s.ToMove, s.Rights)) > 0 {
		return game.Outcome{Status: game.Ongoing}
	}
	if s.InCheck() {
		return game.Outcome{Status: game.Checkmate, Winner: s.ToMove.Opponent()}
	}
	return game.Outcome{Status: game.Stalemate}
}

func (s *State) Hash() game.StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, uint8(s.ToMove))

	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			p := s.Board[r][c]
			binary.Write(hasher, binary.LittleEndian, [2]uint8{uint8(p.Color), uint8(p.Kind)})
		}
	}

	binary.Write(hasher, binary.LittleEndian, s.Rights)

	return game.StateHash(hasher.Sum64())
}

var notationLetters = map[Kind]string{
	Knight: "N",
	Bishop: "B",
	Rook:   "R",
	Queen:  "Q",
	King:   "K",
}

// Notation describes a move played from s, e.g. "Ng1–f3", "e4xd5" or "O-O".
// Check and mate suffixes depend on the resulting position and are left to
// the caller.
func (s *State) Notation(m Move) string {
	piece := s.Board.At(m.From)
	if isCastling(piece, m.From, m.To) {
		if m.To.Col > m.From.Col {
			return "O-O"
		}
		return "O-O-O"
	}
	sep := "–"
	if !s.Board.At(m.To).Empty() {
		sep = "x"
	}
	return notationLetters[piece.Kind] + m.From.String() + sep + m.To.String()
}
