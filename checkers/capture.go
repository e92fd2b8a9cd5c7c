package checkers

import "boardgames/game"

type Capture struct {
	At    game.Position
	Piece Piece
}

type direction struct{ dr, dc int }

// Fixed exploration order. Among equally long capture paths ending on the
// same square, the first one found in this order is kept.
var diagonals = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func directions(p Piece) []direction {
	if p.Kind == King {
		return diagonals
	}
	if p.Color == game.White {
		return diagonals[:2]
	}
	return diagonals[2:]
}

type capturePath struct {
	landing  game.Position
	captured []Capture
	piece    Piece
}

// findCaptures explores every capture sequence of the piece standing on at.
// Each jump is simulated on its own copy of the board; a path is recorded
// once its landing square offers no further capture.
func findCaptures(b Board, at game.Position, taken []Capture, found *[]capturePath) {
	piece := b.At(at)
	extended := false

	for _, d := range directions(piece) {
		if piece.Kind == King {
			var candidate *Capture
			for p := at.Add(d.dr, d.dc); p.Valid(); p = p.Add(d.dr, d.dc) {
				target := b.At(p)
				if target.Empty() {
					if candidate != nil {
						extended = true
						findCaptures(jump(b, at, p, *candidate), p, extend(taken, *candidate), found)
					}
					continue
				}
				if target.Color == piece.Color || candidate != nil {
					break
				}
				candidate = &Capture{At: p, Piece: target}
			}
			continue
		}

		over, landing := at.Add(d.dr, d.dc), at.Add(2*d.dr, 2*d.dc)
		if !landing.Valid() {
			continue
		}
		target := b.At(over)
		if target.Empty() || target.Color == piece.Color || !b.At(landing).Empty() {
			continue
		}
		extended = true
		c := Capture{At: over, Piece: target}
		findCaptures(jump(b, at, landing, c), landing, extend(taken, c), found)
	}

	if !extended && len(taken) > 0 {
		*found = append(*found, capturePath{landing: at, captured: taken, piece: piece})
	}
}

// jump returns a copy of b with the piece moved from -> to, the captured
// piece removed and a man promoted when it lands on its far rank.
func jump(b Board, from, to game.Position, c Capture) Board {
	piece := b.At(from)
	b.Set(from, Piece{})
	b.Set(c.At, Piece{})
	b.Set(to, promote(piece, to))
	return b
}

func promote(p Piece, at game.Position) Piece {
	if p.Kind == Man && at.Row == promotionRow(p.Color) {
		p.Kind = King
	}
	return p
}

func extend(taken []Capture, c Capture) []Capture {
	path := make([]Capture, len(taken), len(taken)+1)
	copy(path, taken)
	return append(path, c)
}

// PieceMoves lists the moves of the piece on from in discovery order. When
// the piece can capture, only its longest capture sequences are returned,
// one per landing square.
func PieceMoves(b *Board, from game.Position) []Move {
	piece := b.At(from)
	if piece.Empty() {
		return nil
	}

	var paths []capturePath
	findCaptures(*b, from, nil, &paths)
	if len(paths) > 0 {
		longest := 0
		for _, p := range paths {
			longest = max(longest, len(p.captured))
		}
		var moves []Move
		seen := make(map[game.Position]bool)
		for _, p := range paths {
			if len(p.captured) != longest || seen[p.landing] {
				continue
			}
			seen[p.landing] = true
			moves = append(moves, Move{
				From:     from,
				To:       p.landing,
				Captured: p.captured,
				Crowned:  piece.Kind == Man && p.piece.Kind == King,
			})
		}
		return moves
	}

	var moves []Move
	for _, d := range directions(piece) {
		for p := from.Add(d.dr, d.dc); p.Valid() && b.At(p).Empty(); p = p.Add(d.dr, d.dc) {
			moves = append(moves, Move{From: from, To: p, Crowned: promote(piece, p).Kind != piece.Kind})
			if piece.Kind != King {
				break
			}
		}
	}
	return moves
}

// ValidMoves maps each destination of the piece on from to the pieces
// captured on the way there (empty for a plain move).
func ValidMoves(b *Board, from game.Position) map[game.Position][]Capture {
	moves := PieceMoves(b, from)
	if moves == nil {
		return nil
	}
	valid := make(map[game.Position][]Capture, len(moves))
	for _, m := range moves {
		valid[m.To] = m.Captured
	}
	return valid
}
