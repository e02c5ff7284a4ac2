package engine

// CastleRights holds the four independent castling permissions. A right is
// granted at game start and, once revoked, never comes back.
type CastleRights struct {
	WhiteShort bool
	WhiteLong  bool
	BlackShort bool
	BlackLong  bool
}

// AllCastleRights grants every right.
func AllCastleRights() CastleRights {
	return CastleRights{WhiteShort: true, WhiteLong: true, BlackShort: true, BlackLong: true}
}

// For returns the short and long rights of colour.
func (c CastleRights) For(colour Colour) (short, long bool) {
	if colour == White {
		return c.WhiteShort, c.WhiteLong
	}
	return c.BlackShort, c.BlackLong
}

// Any reports whether at least one right remains.
func (c CastleRights) Any() bool {
	return c.WhiteShort || c.WhiteLong || c.BlackShort || c.BlackLong
}

// touch revokes the rights tied to a square a move leaves or lands on:
// the king's home square revokes both rights of that colour, a corner
// revokes the right of the rook that starts there.
func (c CastleRights) touch(pos Position) CastleRights {
	switch pos {
	case Position{File: 4, Rank: 0}:
		c.WhiteShort, c.WhiteLong = false, false
	case Position{File: 7, Rank: 0}:
		c.WhiteShort = false
	case Position{File: 0, Rank: 0}:
		c.WhiteLong = false
	case Position{File: 4, Rank: 7}:
		c.BlackShort, c.BlackLong = false, false
	case Position{File: 7, Rank: 7}:
		c.BlackShort = false
	case Position{File: 0, Rank: 7}:
		c.BlackLong = false
	}
	return c
}

// castle describes one castling move for one side.
type castle struct {
	king, kingTo Position
	rook, rookTo Position
	between      []Position // must be empty
	passes       []Position // must not be attacked, destination included
}

func castlesFor(colour Colour) (short, long castle) {
	r := colour.homeRank()
	at := func(file int) Position { return Position{File: file, Rank: r} }
	short = castle{
		king: at(4), kingTo: at(6),
		rook: at(7), rookTo: at(5),
		between: []Position{at(5), at(6)},
		passes:  []Position{at(5), at(6)},
	}
	long = castle{
		king: at(4), kingTo: at(2),
		rook: at(0), rookTo: at(3),
		between: []Position{at(1), at(2), at(3)},
		passes:  []Position{at(3), at(2)},
	}
	return short, long
}

// castleForMove recognizes a king move that is a castle for colour.
func castleForMove(m Move, colour Colour) (castle, bool) {
	short, long := castlesFor(colour)
	for _, c := range []castle{short, long} {
		if m.Start == c.king && m.Finish == c.kingTo {
			return c, true
		}
	}
	return castle{}, false
}
