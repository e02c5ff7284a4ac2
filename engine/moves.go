package engine

// MovesFor returns the legal moves of the piece of type t on pos, sorted.
// Moves that would leave the mover's own king attacked are dropped. If pos
// does not hold a piece of type t there are no moves.
func MovesFor(t PieceType, pos Position, g Game) []Move {
	piece, _ := g.board.Get(pos)
	moves := PseudoMovesFor(t, pos, g)
	legal := moves[:0]
	for _, m := range moves {
		if !IsCheck(MakeMove(m, g).board, piece.Colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllMoves returns every legal move of the side to move, sorted.
func AllMoves(g Game) []Move {
	var moves []Move
	for _, pos := range g.board.PositionsForSide(g.turn) {
		piece, _ := g.board.Get(pos)
		moves = append(moves, MovesFor(piece.Type, pos, g)...)
	}
	SortMoves(moves)
	return moves
}

// PseudoMovesFor is MovesFor without the own-king screen. Only castling
// still checks for attacked squares.
func PseudoMovesFor(t PieceType, pos Position, g Game) []Move {
	piece, ok := g.board.Get(pos)
	if !ok || piece.Type != t {
		return nil
	}
	own := g.board.Occupied(piece.Colour)
	var moves []Move
	switch t {
	case King:
		moves = append(movesTo(pos, Threats(g.board, pos)&^own), castlingMoves(pos, piece.Colour, g)...)
	case Queen, Rook, Bishop, Knight:
		moves = movesTo(pos, Threats(g.board, pos)&^own)
	case Pawn:
		moves = movesTo(pos, pawnDestinations(pos, piece.Colour, g))
	}
	SortMoves(moves)
	return moves
}

// AllPseudoMoves is AllMoves without the own-king screen.
func AllPseudoMoves(g Game) []Move {
	var moves []Move
	for _, pos := range g.board.PositionsForSide(g.turn) {
		piece, _ := g.board.Get(pos)
		moves = append(moves, PseudoMovesFor(piece.Type, pos, g)...)
	}
	SortMoves(moves)
	return moves
}

func castlingMoves(pos Position, colour Colour, g Game) []Move {
	shortRight, longRight := g.castle.For(colour)
	if !shortRight && !longRight {
		return nil
	}
	short, long := castlesFor(colour)
	if pos != short.king {
		return nil
	}
	attacked := AllThreatenedForSide(colour.Opponent(), g.board)
	if attacked.Has(pos) {
		return nil
	}
	var moves []Move
	if longRight && canCastle(long, colour, g.board, attacked) {
		moves = append(moves, Move{Start: pos, Finish: long.kingTo})
	}
	if shortRight && canCastle(short, colour, g.board, attacked) {
		moves = append(moves, Move{Start: pos, Finish: short.kingTo})
	}
	return moves
}

func canCastle(c castle, colour Colour, board Board, attacked Squares) bool {
	if rook, ok := board.Get(c.rook); !ok || rook != (Piece{Type: Rook, Colour: colour}) {
		return false
	}
	for _, pos := range c.between {
		if !board.IsEmpty(pos) {
			return false
		}
	}
	for _, pos := range c.passes {
		if attacked.Has(pos) {
			return false
		}
	}
	return true
}

func pawnDestinations(pos Position, colour Colour, g Game) Squares {
	var dest Squares
	target, hasTarget := g.EnPassant()
	for _, diagonal := range pawnThreats(pos, colour).Positions() {
		if g.board.isEnemy(diagonal, colour) || (hasTarget && colour == g.turn && diagonal == target && g.board.IsEmpty(diagonal)) {
			dest = dest.With(diagonal)
		}
	}
	step := colour.forward()
	single := pos.shift(0, step)
	if !g.board.IsEmpty(single) {
		return dest
	}
	dest = dest.With(single)
	double := pos.shift(0, 2*step)
	if pos.Rank == colour.pawnRank() && g.board.IsEmpty(double) {
		dest = dest.With(double)
	}
	return dest
}
