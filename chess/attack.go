package chess

import "boardgames/game"

type offset struct{ dr, dc int }

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	straightRays  = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalRays  = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// IsSquareAttacked reports whether any piece of color by attacks sq. The
// piece on sq itself, if any, is irrelevant.
func IsSquareAttacked(b *Board, sq game.Position, by game.Color) bool {
	// A pawn attacks diagonally forward, so look one row behind sq from its side.
	dir := pawnDirection(by)
	for _, dc := range []int{-1, 1} {
		p := sq.Add(-dir, dc)
		if p.Valid() && b.At(p) == (Piece{Color: by, Kind: Pawn}) {
			return true
		}
	}
	if attackedByStep(b, sq, by, knightOffsets, Knight) {
		return true
	}
	if attackedByRay(b, sq, by, straightRays, Rook) || attackedByRay(b, sq, by, diagonalRays, Bishop) {
		return true
	}
	return attackedByStep(b, sq, by, kingOffsets, King)
}

func attackedByStep(b *Board, sq game.Position, by game.Color, offsets []offset, kind Kind) bool {
	for _, o := range offsets {
		p := sq.Add(o.dr, o.dc)
		if p.Valid() && b.At(p) == (Piece{Color: by, Kind: kind}) {
			return true
		}
	}
	return false
}

// attackedByRay casts rays from sq and reports whether the first piece hit
// along any of them is a slider of color by (the given kind or a queen).
func attackedByRay(b *Board, sq game.Position, by game.Color, rays []offset, slider Kind) bool {
	for _, o := range rays {
		for p := sq.Add(o.dr, o.dc); p.Valid(); p = p.Add(o.dr, o.dc) {
			piece := b.At(p)
			if piece.Empty() {
				continue
			}
			if piece.Color == by && (piece.Kind == slider || piece.Kind == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// IsInCheck reports whether the king of color c is attacked. A board without
// that king is never in check.
func IsInCheck(b *Board, c game.Color) bool {
	king, ok := b.KingPosition(c)
	if !ok {
		return false
	}
	return IsSquareAttacked(b, king, c.Opponent())
}
