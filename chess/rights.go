package chess

import "boardgames/game"

// SideRights records which castling pieces of one side have left their
// origin square. Flags are only ever set, never cleared.
type SideRights struct {
	KingMoved          bool
	KingsideRookMoved  bool
	QueensideRookMoved bool
}

type CastlingRights struct {
	White SideRights
	Black SideRights
}

func (r CastlingRights) Side(c game.Color) SideRights {
	if c == game.White {
		return r.White
	}
	return r.Black
}

func (r *CastlingRights) side(c game.Color) *SideRights {
	if c == game.White {
		return &r.White
	}
	return &r.Black
}

// RightsFromBoard derives castling rights for a position set up out of
// play: a right is lost as soon as the king or rook is off its origin square.
func RightsFromBoard(b *Board) CastlingRights {
	var rights CastlingRights
	for _, c := range []game.Color{game.White, game.Black} {
		row := homeRow(c)
		side := rights.side(c)
		side.KingMoved = b[row][4] != Piece{Color: c, Kind: King}
		side.KingsideRookMoved = b[row][7] != Piece{Color: c, Kind: Rook}
		side.QueensideRookMoved = b[row][0] != Piece{Color: c, Kind: Rook}
	}
	return rights
}

// update records the loss of rights caused by moving from -> to, including
// a rook captured on its origin square.
func (r *CastlingRights) update(b *Board, from, to game.Position) {
	moved := b.At(from)
	switch moved.Kind {
	case King:
		r.side(moved.Color).KingMoved = true
	case Rook:
		r.rookLeft(moved.Color, from)
	}
	if captured := b.At(to); captured.Kind == Rook {
		r.rookLeft(captured.Color, to)
	}
}

func (r *CastlingRights) rookLeft(c game.Color, from game.Position) {
	if from.Row != homeRow(c) {
		return
	}
	switch from.Col {
	case 0:
		r.side(c).QueensideRookMoved = true
	case game.Size - 1:
		r.side(c).KingsideRookMoved = true
	}
}
