// Package engine implements chess rules over immutable game snapshots:
// board representation, threat maps, legal move generation, move
// application and FEN encoding.
package engine

import "fmt"

// Colour is the side a piece belongs to.
type Colour uint8

const (
	White Colour = iota
	Black
)

// Opponent returns the other side.
func (c Colour) Opponent() Colour {
	if c == White {
		return Black
	}
	return White
}

func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank step of a pawn of this colour.
func (c Colour) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// homeRank is the rank holding the king and rooks at game start.
func (c Colour) homeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// pawnRank is the rank pawns stand on at game start.
func (c Colour) pawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// PieceType is the closed set of chess piece kinds. The zero value is not a
// piece and marks an empty square.
type PieceType uint8

const (
	King PieceType = iota + 1
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceTypes lists every piece type in declaration order.
var PieceTypes = [...]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

func (t PieceType) String() string {
	switch t {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	}
	return "none"
}

// Piece is a piece type of a given colour.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece Piece

func (p Piece) String() string {
	if p.Type == 0 {
		return "none"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// index maps the twelve pieces onto [0,12).
func (p Piece) index() int {
	return int(p.Colour)*len(PieceTypes) + int(p.Type) - 1
}

// Position is a square, file and rank both zero-indexed from White's
// queen-side corner.
type Position struct {
	File int
	Rank int
}

// IsOnBoard reports whether both coordinates are within [0,7].
func IsOnBoard(pos Position) bool {
	return pos.File >= 0 && pos.File < 8 && pos.Rank >= 0 && pos.Rank < 8
}

// Less orders positions by file, then rank.
func (p Position) Less(other Position) bool {
	if p.File != other.File {
		return p.File < other.File
	}
	return p.Rank < other.Rank
}

// String renders the square token, for example "e4".
func (p Position) String() string {
	if !IsOnBoard(p) {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return string([]byte{byte('a' + p.File), byte('1' + p.Rank)})
}

// ParsePosition parses a square token such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidSquare)
	}
	return Position{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

func (p Position) index() int {
	return p.Rank*8 + p.File
}

func (p Position) shift(file, rank int) Position {
	return Position{File: p.File + file, Rank: p.Rank + rank}
}
