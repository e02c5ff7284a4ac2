package engine

type offset struct{ file, rank int }

var (
	knightOffsets = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = []offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	rookRays      = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopRays    = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenRays     = append(append([]offset{}, rookRays...), bishopRays...)
)

// Threats returns the squares the piece on pos attacks: the squares it
// could capture on if an enemy stood there. Sliding pieces include the
// first occupied square of each ray, whoever owns it. An empty or
// off-board pos attacks nothing.
func Threats(board Board, pos Position) Squares {
	piece, ok := board.Get(pos)
	if !ok {
		return 0
	}
	switch piece.Type {
	case King:
		return jumps(pos, kingOffsets)
	case Knight:
		return jumps(pos, knightOffsets)
	case Rook:
		return rays(board, pos, rookRays)
	case Bishop:
		return rays(board, pos, bishopRays)
	case Queen:
		return rays(board, pos, queenRays)
	case Pawn:
		return pawnThreats(pos, piece.Colour)
	}
	return 0
}

// AllThreatenedForSide is the union of the threats of every piece of colour.
func AllThreatenedForSide(colour Colour, board Board) Squares {
	var threatened Squares
	for _, pos := range board.PositionsForSide(colour) {
		threatened |= Threats(board, pos)
	}
	return threatened
}

func jumps(pos Position, offsets []offset) Squares {
	var s Squares
	for _, o := range offsets {
		s = s.With(pos.shift(o.file, o.rank))
	}
	return s
}

func rays(board Board, pos Position, directions []offset) Squares {
	var s Squares
	for _, d := range directions {
		for next := pos.shift(d.file, d.rank); IsOnBoard(next); next = next.shift(d.file, d.rank) {
			s = s.With(next)
			if !board.IsEmpty(next) {
				break
			}
		}
	}
	return s
}

func pawnThreats(pos Position, colour Colour) Squares {
	step := colour.forward()
	return SquaresOf(pos.shift(-1, step), pos.shift(1, step))
}
