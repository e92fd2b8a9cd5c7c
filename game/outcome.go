package game

import "fmt"

type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	// NoMoves ends a checkers game: the side to move has no piece or no legal move left.
	NoMoves
)

type Outcome struct {
	Status Status
	Winner Color
}

func (o Outcome) Over() bool {
	return o.Status != Ongoing
}

func (o Outcome) String() string {
	switch o.Status {
	case Checkmate:
		return fmt.Sprintf("checkmate_%s_wins", o.Winner)
	case Stalemate:
		return "stalemate_draw"
	case NoMoves:
		return fmt.Sprintf("%s_wins", o.Winner)
	}
	return "ongoing"
}
