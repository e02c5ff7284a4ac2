package engine

// IsCheck reports whether a king of colour stands on a square the
// opponent attacks. A board without such a king is never in check.
func IsCheck(board Board, colour Colour) bool {
	kings := board.pieces[Piece{Type: King, Colour: colour}.index()]
	return kings&AllThreatenedForSide(colour.Opponent(), board) != 0
}

// IsMovePossible reports whether m is a legal move of the side to move.
// An empty start square, or a piece of the other side, makes it illegal.
func IsMovePossible(g Game, m Move) bool {
	piece, ok := g.board.Get(m.Start)
	if !ok || piece.Colour != g.turn {
		return false
	}
	for _, legal := range MovesFor(piece.Type, m.Start, g) {
		if legal == m {
			return true
		}
	}
	return false
}

// MakeMove applies m to g and returns the successor snapshot. It does not
// check legality. Captures, the rook of a castle, the pawn taken en passant,
// castling rights and the en-passant target are all updated. With no piece
// on the start square g is returned unchanged.
func MakeMove(m Move, g Game) Game {
	piece, ok := g.board.Get(m.Start)
	if !ok {
		return g
	}
	next := g
	board := &next.board

	target, hasTarget := g.EnPassant()
	enPassant := piece.Type == Pawn && m.Start.File != m.Finish.File &&
		hasTarget && m.Finish == target && board.IsEmpty(m.Finish)

	board.Remove(m.Start)
	board.Set(m.Finish, piece)

	if piece.Type == King {
		if c, ok := castleForMove(m, piece.Colour); ok {
			if rook, ok := board.Get(c.rook); ok && rook == (Piece{Type: Rook, Colour: piece.Colour}) {
				board.Remove(c.rook)
				board.Set(c.rookTo, rook)
			}
		}
	}

	if enPassant {
		passed := m.Finish.shift(0, -piece.Colour.forward())
		if taken, ok := board.Get(passed); ok && taken == (Piece{Type: Pawn, Colour: piece.Colour.Opponent()}) {
			board.Remove(passed)
		}
	}

	next.turn = g.turn.Opponent()
	next.castle = g.castle.touch(m.Start).touch(m.Finish)

	if piece.Type == Pawn && m.Start.File == m.Finish.File && abs(m.Finish.Rank-m.Start.Rank) == 2 {
		return next.WithEnPassant(Position{File: m.Start.File, Rank: (m.Start.Rank + m.Finish.Rank) / 2})
	}
	next.enPassant, next.hasEnPassant = Position{}, false
	return next
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ValidatePosition reports whether g can be played from: each side has
// exactly one king and the side that just moved is not left in check.
// DecodeFen does not apply these rules, so callers accepting arbitrary
// positions check them separately.
func ValidatePosition(g Game) error {
	for _, colour := range []Colour{White, Black} {
		if n := len(g.board.PositionsOf(Piece{Type: King, Colour: colour})); n != 1 {
			return formatError("placement", EncodeBoard(g.board), "want exactly one %s king, got %d", colour, n)
		}
	}
	if IsCheck(g.board, g.turn.Opponent()) {
		return formatError("side", encodeSide(g.turn), "%s is in check with %s to move", g.turn.Opponent(), g.turn)
	}
	return nil
}
