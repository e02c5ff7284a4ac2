package engine

// Board maps squares to pieces. The grid and the per-piece square sets are
// only changed together through Set and Remove, so they always agree.
// Board is a plain value: assigning it makes an independent copy.
type Board struct {
	grid   [64]Piece
	pieces [2 * len(PieceTypes)]Squares
}

// Set places piece on pos, capturing whatever stood there.
func (b *Board) Set(pos Position, piece Piece) {
	if !IsOnBoard(pos) {
		return
	}
	b.Remove(pos)
	if piece.Type == 0 {
		return
	}
	b.grid[pos.index()] = piece
	b.pieces[piece.index()] = b.pieces[piece.index()].With(pos)
}

// Get returns the piece on pos, if any.
func (b Board) Get(pos Position) (Piece, bool) {
	if !IsOnBoard(pos) {
		return NoPiece, false
	}
	piece := b.grid[pos.index()]
	return piece, piece.Type != 0
}

// Remove clears pos. Removing from an empty square does nothing.
func (b *Board) Remove(pos Position) {
	piece, ok := b.Get(pos)
	if !ok {
		return
	}
	b.pieces[piece.index()] = b.pieces[piece.index()].Without(pos)
	b.grid[pos.index()] = NoPiece
}

// IsEmpty reports whether pos is on the board and holds no piece.
func (b Board) IsEmpty(pos Position) bool {
	_, ok := b.Get(pos)
	return IsOnBoard(pos) && !ok
}

// PositionsOf lists the squares holding exactly this piece.
func (b Board) PositionsOf(piece Piece) []Position {
	if piece.Type == 0 {
		return nil
	}
	return b.pieces[piece.index()].Positions()
}

// PositionsForSide lists every square holding a piece of colour.
func (b Board) PositionsForSide(colour Colour) []Position {
	return b.Occupied(colour).Positions()
}

// Occupied is the set of squares holding a piece of colour.
func (b Board) Occupied(colour Colour) Squares {
	var s Squares
	for _, t := range PieceTypes {
		s |= b.pieces[Piece{Type: t, Colour: colour}.index()]
	}
	return s
}

// Count is the number of pieces on the board.
func (b Board) Count() int {
	return b.Occupied(White).Len() + b.Occupied(Black).Len()
}

// isEnemy reports whether pos holds a piece of the side opposing colour.
func (b Board) isEnemy(pos Position, colour Colour) bool {
	piece, ok := b.Get(pos)
	return ok && piece.Colour != colour
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartBoard returns the standard initial arrangement.
func StartBoard() Board {
	var b Board
	for file, t := range backRank {
		for _, colour := range []Colour{White, Black} {
			b.Set(Position{File: file, Rank: colour.homeRank()}, Piece{Type: t, Colour: colour})
			b.Set(Position{File: file, Rank: colour.pawnRank()}, Piece{Type: Pawn, Colour: colour})
		}
	}
	return b
}
