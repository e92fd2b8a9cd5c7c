package checkers

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"boardgames/game"
)

type State struct {
	Board  Board
	ToMove game.Color
	// Chaining is set while the piece on Chain must keep capturing before
	// the turn passes.
	Chaining bool
	Chain    game.Position
}

func NewState() *State {
	return &State{
		Board:  NewBoard(),
		ToMove: game.White,
	}
}

func NewStateFromBoard(b Board, toMove game.Color) *State {
	return &State{Board: b, ToMove: toMove}
}

func (s *State) Copy() *State {
	c := *s
	return &c
}

func (s *State) Player() game.Color {
	return s.ToMove
}

func (s *State) Moves() []Move {
	if s.Chaining {
		return CaptureMoves(&s.Board, s.Chain)
	}
	return AllMoves(&s.Board, s.ToMove)
}

func (s *State) LegalMoves() []game.Move {
	moves := s.Moves()
	result := make([]game.Move, len(moves))
	for i, m := range moves {
		result[i] = m
	}
	return result
}

// Play returns the state after the given move. A capture landing where the
// same piece can capture again keeps the turn with the mover.
func (s *State) Play(move game.Move) game.State {
	m, ok := move.(Move)
	if !ok {
		panic(fmt.Sprintf("checkers: unexpected move type %T", move))
	}
	piece := s.Board.At(m.From)
	if piece.Empty() || piece.Color != s.ToMove {
		panic(fmt.Sprintf("checkers: no %s piece on %s", s.ToMove, m.From))
	}

	next := s.Copy()
	next.Board = apply(s.Board, m)
	next.Chaining = false

	if m.IsCapture() && len(CaptureMoves(&next.Board, m.To)) > 0 {
		next.Chaining = true
		next.Chain = m.To
		return next
	}
	next.ToMove = s.ToMove.Opponent()
	return next
}

// Outcome reports the opponent of the side to move as winner once that side
// has no piece or no legal move left.
func (s *State) Outcome() game.Outcome {
	if s.Board.Count(s.ToMove) == 0 || len(s.Moves()) == 0 {
		return game.Outcome{Status: game.NoMoves, Winner: s.ToMove.Opponent()}
	}
	return game.Outcome{Status: game.Ongoing}
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

	if s.Chaining {
		binary.Write(hasher, binary.LittleEndian, [2]int8{int8(s.Chain.Row), int8(s.Chain.Col)})
	}

	return game.StateHash(hasher.Sum64())
}
