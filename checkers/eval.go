package checkers

import "boardgames/game"

const (
	manValue  = 10
	kingValue = 25
)

// Evaluate scores material plus half a point per row a man has advanced.
func Evaluate(b *Board, perspective game.Color) float64 {
	score := 0.0
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			p := b[r][c]
			if p.Empty() {
				continue
			}
			value := float64(kingValue)
			if p.Kind == Man {
				value = manValue + 0.5*float64(advancement(p.Color, r))
			}
			if p.Color == perspective {
				score += value
			} else {
				score -= value
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
	return Evaluate(&s.Board, perspective)
}

// MediumScore rates a single move of the side to move by its immediate
// tactical consequences, without lookahead beyond the opponent's replies.
func MediumScore(s *State, m Move) float64 {
	mover := s.ToMove
	enemy := mover.Opponent()
	before := s.Board.At(m.From)
	after := apply(s.Board, m)
	moved := after.At(m.To)

	score := 0.0
	if m.IsCapture() {
		score += 1000 + 100*float64(len(m.Captured))
	}
	if before.Kind == Man && moved.Kind == King {
		score += 250
	}
	if !m.IsCapture() && len(CaptureMoves(&after, m.To)) > 0 {
		score += 150
	}

	safe := !Threatened(&after, m.To, enemy)
	switch {
	case !safe && m.IsCapture():
		score -= 50
	case !safe:
		score -= 200
	case !m.IsCapture():
		score += 50
	}
	if safe && Threatened(&s.Board, m.From, enemy) {
		score += 180
	}

	if moved.Kind == Man {
		score += 5 * float64(advancement(mover, m.To.Row))
	}
	return score
}

// Threatened reports whether any piece of color by could capture the piece on at.
func Threatened(b *Board, at game.Position, by game.Color) bool {
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			from := game.Position{Row: r, Col: c}
			if p := b.At(from); p.Empty() || p.Color != by {
				continue
			}
			for _, m := range CaptureMoves(b, from) {
				for _, captured := range m.Captured {
					if captured.At == at {
						return true
					}
				}
			}
		}
	}
	return false
}
