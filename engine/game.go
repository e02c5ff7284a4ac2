package engine

// Game is an immutable snapshot of a chess game: the board, the side to
// move, the castling rights and the en-passant target. The target is only
// valid for the ply right after a pawn double push.
type Game struct {
	board        Board
	turn         Colour
	castle       CastleRights
	enPassant    Position
	hasEnPassant bool
}

// NewGame builds a snapshot with no en-passant target.
func NewGame(board Board, turn Colour, castle CastleRights) Game {
	return Game{board: board, turn: turn, castle: castle}
}

// CreateStartGame returns the standard initial position, White to move.
func CreateStartGame() Game {
	return NewGame(StartBoard(), White, AllCastleRights())
}

// WithEnPassant returns a copy of g whose en-passant target is pos. An
// off-board pos clears the target.
func (g Game) WithEnPassant(pos Position) Game {
	if !IsOnBoard(pos) {
		g.enPassant, g.hasEnPassant = Position{}, false
		return g
	}
	g.enPassant, g.hasEnPassant = pos, true
	return g
}

// Board returns a copy of the board.
func (g Game) Board() Board {
	return g.board
}

// Turn is the side to move.
func (g Game) Turn() Colour {
	return g.turn
}

// Castle returns the remaining castling rights.
func (g Game) Castle() CastleRights {
	return g.castle
}

// EnPassant returns the en-passant target, if any.
func (g Game) EnPassant() (Position, bool) {
	return g.enPassant, g.hasEnPassant
}
