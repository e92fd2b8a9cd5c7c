package chess

import "boardgames/game"

type Move struct {
	From game.Position
	To   game.Position
}

func (m Move) Squares() (game.Position, game.Position) {
	return m.From, m.To
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// LegalMoves returns the destinations the piece on from may legally move
// to. Moves that leave the mover's king attacked are excluded. The order of
// the result carries no meaning.
func LegalMoves(b *Board, from game.Position, rights CastlingRights) []game.Position {
	piece := b.At(from)
	if piece.Empty() {
		return nil
	}

	var legal []game.Position
	for _, to := range pseudoLegalMoves(b, from, rights) {
		if isCastling(piece, from, to) && !castlingPathSafe(b, from, to, piece.Color) {
			continue
		}
		scratch := *b
		applyMove(&scratch, from, to)
		if !IsInCheck(&scratch, piece.Color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move of color c, scanning the board from
// a8 to h1.
func AllLegalMoves(b *Board, c game.Color, rights CastlingRights) []Move {
	var moves []Move
	for r := 0; r < game.Size; r++ {
		for col := 0; col < game.Size; col++ {
			from := game.Position{Row: r, Col: col}
			if piece := b.At(from); piece.Empty() || piece.Color != c {
				continue
			}
			for _, to := range LegalMoves(b, from, rights) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

func pseudoLegalMoves(b *Board, from game.Position, rights CastlingRights) []game.Position {
	piece := b.At(from)
	switch piece.Kind {
	case Pawn:
		return pawnMoves(b, from, piece.Color)
	case Knight:
		return stepMoves(b, from, piece.Color, knightOffsets, 1)
	case Bishop:
		return stepMoves(b, from, piece.Color, diagonalRays, game.Size)
	case Rook:
		return stepMoves(b, from, piece.Color, straightRays, game.Size)
	case Queen:
		return append(
			stepMoves(b, from, piece.Color, straightRays, game.Size),
			stepMoves(b, from, piece.Color, diagonalRays, game.Size)...,
		)
	case King:
		return append(
			stepMoves(b, from, piece.Color, kingOffsets, 1),
			castlingMoves(b, from, piece.Color, rights.Side(piece.Color))...,
		)
	}
	return nil
}

func pawnMoves(b *Board, from game.Position, c game.Color) []game.Position {
	var moves []game.Position
	dir := pawnDirection(c)

	one := from.Add(dir, 0)
	if one.Valid() && b.At(one).Empty() {
		moves = append(moves, one)
		two := from.Add(2*dir, 0)
		if from.Row == pawnStartRow(c) && two.Valid() && b.At(two).Empty() {
			moves = append(moves, two)
		}
	}
	for _, dc := range []int{-1, 1} {
		p := from.Add(dir, dc)
		if !p.Valid() {
			continue
		}
		if target := b.At(p); !target.Empty() && target.Color != c {
			moves = append(moves, p)
		}
	}
	return moves
}

// stepMoves walks each offset up to limit times, stopping at the first
// occupied square and keeping it only when it holds an enemy piece.
func stepMoves(b *Board, from game.Position, c game.Color, offsets []offset, limit int) []game.Position {
	var moves []game.Position
	for _, o := range offsets {
		p := from
		for i := 0; i < limit; i++ {
			p = p.Add(o.dr, o.dc)
			if !p.Valid() {
				break
			}
			target := b.At(p)
			if target.Empty() {
				moves = append(moves, p)
				continue
			}
			if target.Color != c {
				moves = append(moves, p)
			}
			break
		}
	}
	return moves
}

func castlingMoves(b *Board, from game.Position, c game.Color, rights SideRights) []game.Position {
	row := homeRow(c)
	if rights.KingMoved || from != (game.Position{Row: row, Col: 4}) {
		return nil
	}
	rook := Piece{Color: c, Kind: Rook}
	empty := func(cols ...int) bool {
		for _, col := range cols {
			if !b[row][col].Empty() {
				return false
			}
		}
		return true
	}

	var moves []game.Position
	if !rights.KingsideRookMoved && b[row][7] == rook && empty(5, 6) {
		moves = append(moves, game.Position{Row: row, Col: 6})
	}
	if !rights.QueensideRookMoved && b[row][0] == rook && empty(1, 2, 3) {
		moves = append(moves, game.Position{Row: row, Col: 2})
	}
	return moves
}

func isCastling(piece Piece, from, to game.Position) bool {
	if piece.Kind != King {
		return false
	}
	d := to.Col - from.Col
	return from.Row == to.Row && (d == 2 || d == -2)
}

// castlingPathSafe rejects castling out of check or through an attacked
// square. The destination is covered by the self-check filter.
func castlingPathSafe(b *Board, from, to game.Position, c game.Color) bool {
	enemy := c.Opponent()
	if IsSquareAttacked(b, from, enemy) {
		return false
	}
	transit := game.Position{Row: from.Row, Col: (from.Col + to.Col) / 2}
	return !IsSquareAttacked(b, transit, enemy)
}

// applyMove moves the piece on from to to, capturing whatever stands there,
// and hops the rook when the move is a castling.
func applyMove(b *Board, from, to game.Position) {
	piece := b.At(from)
	if isCastling(piece, from, to) {
		rookFrom, rookTo := game.Position{Row: from.Row, Col: game.Size - 1}, game.Position{Row: from.Row, Col: 5}
		if to.Col < from.Col {
			rookFrom, rookTo = game.Position{Row: from.Row, Col: 0}, game.Position{Row: from.Row, Col: 3}
		}
		b.Set(rookTo, b.At(rookFrom))
		b.Set(rookFrom, Piece{})
	}
	b.Set(to, piece)
	b.Set(from, Piece{})
}
