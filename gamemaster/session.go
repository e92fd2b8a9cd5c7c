package gamemaster

import (
	"fmt"
	"sync"

	"boardgames/checkers"
	"boardgames/chess"
	"boardgames/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Record is one entry of a session's move log.
type Record struct {
	Step     int
	Player   game.Color
	Move     game.Move
	Notation string
	Hash     game.StateHash
}

// Session owns the state of a single game and is the only place moves are
// validated and applied.
type Session struct {
	ID   uuid.UUID
	Game string

	mu    sync.Mutex
	state game.State
	log   []Record
}

func NewChessSession() *Session {
	return NewSession(chess.NewState())
}

func NewCheckersSession() *Session {
	return NewSession(checkers.NewState())
}

// NewSession starts a session from an arbitrary position.
func NewSession(state game.State) *Session {
	s := &Session{
		ID:    uuid.New(),
		Game:  gameName(state),
		state: state,
	}
	log.Info().Msgf("session %s: new %s game, %s to move", s.ID, s.Game, state.Player())
	return s
}

func gameName(state game.State) string {
	switch state.(type) {
	case *chess.State:
		return "chess"
	case *checkers.State:
		return "checkers"
	}
	return fmt.Sprintf("%T", state)
}

func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SideToMove() game.Color {
	return s.State().Player()
}

func (s *Session) Outcome() game.Outcome {
	return s.State().Outcome()
}

// InCheck reports whether the side to move is in check. Always false for
// checkers.
func (s *Session) InCheck() bool {
	if cs, ok := s.State().(*chess.State); ok {
		return cs.InCheck()
	}
	return false
}

// Log returns a copy of the moves played so far.
func (s *Session) Log() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.log))
	copy(out, s.log)
	return out
}

// LegalDestinations lists the squares the piece on from may move to this
// turn. Empty when the square holds no piece of the side to move, or when
// another piece must capture.
func (s *Session) LegalDestinations(from game.Position) []game.Position {
	var out []game.Position
	for _, m := range s.State().LegalMoves() {
		if f, to := m.Squares(); f == from {
			out = append(out, to)
		}
	}
	return out
}

// ApplyMove plays the legal move from one square to another. The state is
// left untouched on error.
func (s *Session) ApplyMove(from, to game.Position) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Outcome().Over() {
		return s.state.Outcome(), ErrGameOver
	}
	move := s.find(from, to)
	if move == nil {
		return s.state.Outcome(), fmt.Errorf("%w: %s to %s for %s", ErrIllegalMove, from, to, s.state.Player())
	}
	return s.play(move), nil
}

// Apply plays a move produced by an agent, matched against the legal moves by
// its squares.
func (s *Session) Apply(move game.Move) (game.Outcome, error) {
	if move == nil {
		return s.Outcome(), fmt.Errorf("%w: no move", ErrIllegalMove)
	}
	from, to := move.Squares()
	return s.ApplyMove(from, to)
}

func (s *Session) find(from, to game.Position) game.Move {
	for _, m := range s.state.LegalMoves() {
		if f, t := m.Squares(); f == from && t == to {
			return m
		}
	}
	return nil
}

func (s *Session) play(move game.Move) game.Outcome {
	player := s.state.Player()
	next := s.state.Play(move)
	record := Record{
		Step:     len(s.log) + 1,
		Player:   player,
		Move:     move,
		Notation: notation(s.state, next, move),
		Hash:     next.Hash(),
	}
	s.log = append(s.log, record)
	s.state = next

	outcome := next.Outcome()
	log.Debug().Msgf("session %s: %d. %s %s", s.ID, record.Step, player, record.Notation)
	if outcome.Over() {
		log.Info().Msgf("session %s: game over after %d moves, %s", s.ID, len(s.log), outcome)
	}
	return outcome
}

func notation(before, after game.State, move game.Move) string {
	switch b := before.(type) {
	case *chess.State:
		text := b.Notation(move.(chess.Move))
		a := after.(*chess.State)
		switch {
		case a.Outcome().Status == game.Checkmate:
			text += "#"
		case a.InCheck():
			text += "+"
		}
		return text
	case *checkers.State:
		return move.(checkers.Move).Describe()
	}
	return move.String()
}
