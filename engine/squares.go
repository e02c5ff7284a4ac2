package engine

import "math/bits"

// Squares is a set of board positions, one bit per square.
type Squares uint64

// SquaresOf builds a set from positions, ignoring any off the board.
func SquaresOf(positions ...Position) Squares {
	var s Squares
	for _, pos := range positions {
		s = s.With(pos)
	}
	return s
}

// Has reports whether pos is in the set.
func (s Squares) Has(pos Position) bool {
	return IsOnBoard(pos) && s&(1<<uint(pos.index())) != 0
}

// With returns the set with pos added.
func (s Squares) With(pos Position) Squares {
	if !IsOnBoard(pos) {
		return s
	}
	return s | 1<<uint(pos.index())
}

// Without returns the set with pos removed.
func (s Squares) Without(pos Position) Squares {
	if !IsOnBoard(pos) {
		return s
	}
	return s &^ (1 << uint(pos.index()))
}

// Len is the number of positions in the set.
func (s Squares) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Positions lists the set in ascending file, then rank order.
func (s Squares) Positions() []Position {
	positions := make([]Position, 0, s.Len())
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			pos := Position{File: file, Rank: rank}
			if s.Has(pos) {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}
