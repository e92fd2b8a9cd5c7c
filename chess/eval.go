package chess

import "boardgames/game"

var pieceValues = map[Kind]float64{
	Pawn:   10,
	Knight: 30,
	Bishop: 30,
	Rook:   50,
	Queen:  90,
	King:   0,
}

func (k Kind) Value() float64 {
	return pieceValues[k]
}

// Material sums piece values, positive for the perspective color.
func Material(b *Board, perspective game.Color) float64 {
	score := 0.0
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			p := b[r][c]
			if p.Empty() {
				continue
			}
			if p.Color == perspective {
				score += p.Kind.Value()
			} else {
				score -= p.Kind.Value()
			}
		}
	}
	return score
}

func EvaluateMaterial(state game.State, perspective game.Color) float64 {
	s, ok := state.(*State)
	if !ok {
		panic("unexpected state type")
	}
	return Material(&s.Board, perspective)
}

const checkBonus = 50

// MediumScore rates a single move of the side to move without lookahead:
// giving check and capturing are rewarded, landing on an attacked square is
// penalised and escaping an attack is rewarded. jitter is added as is and is
// expected to lie in [-1, 1].
func MediumScore(s *State, m Move, jitter float64) float64 {
	mover := s.ToMove
	enemy := mover.Opponent()
	moved := s.Board.At(m.From)

	after := s.Board
	applyMove(&after, m.From, m.To)

	score := 0.0
	if IsInCheck(&after, enemy) {
		score += checkBonus
	}
	if captured := s.Board.At(m.To); !captured.Empty() {
		score += captured.Kind.Value()
	}
	landsAttacked := IsSquareAttacked(&after, m.To, enemy)
	if landsAttacked {
		score -= moved.Kind.Value() * 0.5
	}
	if IsSquareAttacked(&s.Board, m.From, enemy) && !landsAttacked {
		score += moved.Kind.Value() * 0.8
	}
	return score + jitter
}
