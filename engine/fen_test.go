package engine

import (
	"encoding/json"
	"errors"

	. "gopkg.in/check.v1"
)

type FenSuite struct{}

var _ = Suite(&FenSuite{})

func (s *FenSuite) TestEncodeStart(c *C) {
	c.Assert(EncodeFen(CreateStartGame()), Equals, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	c.Assert(EncodeFen(CreateStartGame()), Equals, StartFEN)
}

func (s *FenSuite) TestDecodeStart(c *C) {
	c.Assert(mustDecode(c, StartFEN), Equals, CreateStartGame())
	c.Assert(mustDecode(c, StartFEN+" 0 1"), Equals, CreateStartGame())
}

func (s *FenSuite) TestDecodeFields(c *C) {
	g := mustDecode(c, "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w Kq c6 0 2")
	c.Assert(g.Turn(), Equals, White)
	c.Assert(g.Castle(), Equals, CastleRights{WhiteShort: true, BlackLong: true})
	target, ok := g.EnPassant()
	c.Assert(ok, Equals, true)
	c.Assert(target, Equals, sq("c6"))
	pawn, _ := g.Board().Get(sq("c5"))
	c.Assert(pawn, Equals, blackPawn)

	g = mustDecode(c, "8/8/8/8/8/8/8/8 b - -")
	c.Assert(g.Turn(), Equals, Black)
	c.Assert(g.Castle().Any(), Equals, false)
	c.Assert(g.Board().Count(), Equals, 0)
}

func (s *FenSuite) TestCastleOrderIsFixed(c *C) {
	g := mustDecode(c, "r3k2r/8/8/8/8/8/8/R3K2R w qkQK -")
	c.Assert(EncodeFen(g), Equals, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
}

func (s *FenSuite) TestMalformed(c *C) {
	for _, tt := range []struct {
		fen   string
		field string
	}{
		{"", "record"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq", "record"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR  w KQkq -", "record"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", "record"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -", "placement"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq -", "placement"},
		{"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "placement"},
		{"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "placement"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR w KQkq -", "placement"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -", "side"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR W KQkq -", "side"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx -", "castling"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK -", "castling"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9", "en passant"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z3", "en passant"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e", "en passant"},
		{"4k3/8/8/8/8/4N3/3P4/4K3 w - e3", "en passant"},
		{"4k3/8/4n3/8/8/8/8/4K3 w - e6", "en passant"},
		{"4k3/8/8/8/8/8/8/4K3 b - e6", "en passant"},
		{"4k3/8/8/8/8/8/8/4Ķ3 w - -", "placement"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - a 1", "halfmove clock"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", "fullmove number"},
	} {
		_, err := DecodeFen(tt.fen)
		c.Assert(err, NotNil, Commentf("%q", tt.fen))
		c.Assert(errors.Is(err, ErrInvalidFEN), Equals, true)
		var formatErr *FormatError
		c.Assert(errors.As(err, &formatErr), Equals, true)
		c.Assert(formatErr.Field, Equals, tt.field, Commentf("%q: %v", tt.fen, err))
	}
}

func (s *FenSuite) TestFormatErrorText(c *C) {
	_, err := DecodeFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx -")
	c.Assert(err, ErrorMatches, `fen castling "KQkx": invalid castle letter 'x'`)
}

func (s *FenSuite) TestEnPassantTarget(c *C) {
	g := mustDecode(c, "4k3/8/8/8/4P3/8/8/4K3 b - e3")
	target, ok := g.EnPassant()
	c.Assert(ok, Equals, true)
	c.Assert(target, Equals, sq("e3"))

	_, err := DecodeFen("4k3/8/8/8/8/4N3/3P4/4K3 w - e3")
	c.Assert(err, ErrorMatches, `fen en passant "e3": want a square on rank 6 with white to move`)
	_, err = DecodeFen("4k3/8/4n3/8/8/8/8/4K3 w - e6")
	c.Assert(err, ErrorMatches, `fen en passant "e6": square is occupied`)
}

func (s *FenSuite) TestPieceLetters(c *C) {
	var b Board
	file := 0
	for _, colour := range []Colour{White, Black} {
		for _, t := range PieceTypes {
			b.Set(Position{File: file % 8, Rank: file / 8}, Piece{Type: t, Colour: colour})
			file++
		}
	}
	c.Assert(EncodeBoard(b), Equals, "8/8/8/8/8/8/rbnp4/KQRBNPkq")
	decoded, err := DecodeBoard(EncodeBoard(b))
	c.Assert(err, IsNil)
	c.Assert(decoded, Equals, b)
}

func (s *FenSuite) TestBoardRoundTrip(c *C) {
	for _, placement := range []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
		"8/8/8/8/8/8/8/8",
		"QQQQQQQQ/qqqqqqqq/8/8/8/8/8/7K",
	} {
		b, err := DecodeBoard(placement)
		c.Assert(err, IsNil)
		c.Assert(EncodeBoard(b), Equals, placement)
		again, err := DecodeBoard(EncodeBoard(b))
		c.Assert(err, IsNil)
		c.Assert(again, Equals, b)
		for file := 0; file < 8; file++ {
			for rank := 0; rank < 8; rank++ {
				pos := Position{File: file, Rank: rank}
				want, _ := b.Get(pos)
				got, _ := again.Get(pos)
				c.Assert(got, Equals, want)
			}
		}
	}
}

func (s *FenSuite) TestGameRoundTrip(c *C) {
	g := play(c, CreateStartGame(), "e2e4", "c7c5", "g1f3", "d7d6", "f1e2", "b8c6", "e1g1")
	c.Assert(EncodeFen(g), Equals, "r1bqkbnr/pp2pppp/2np4/2p5/4P3/5N2/PPPPBPPP/RNBQ1RK1 b kq -")
	c.Assert(mustDecode(c, EncodeFen(g)), Equals, g)

	withTarget := play(c, g, "e7e5")
	decoded := mustDecode(c, EncodeFen(withTarget))
	c.Assert(decoded, Equals, withTarget)
	target, _ := decoded.EnPassant()
	c.Assert(target, Equals, sq("e6"))
}

func (s *FenSuite) TestMoveText(c *C) {
	m := mv("e2e4")
	c.Assert(m, Equals, Move{Start: Position{File: 4, Rank: 1}, Finish: Position{File: 4, Rank: 3}})
	c.Assert(m.String(), Equals, "e2e4")

	data, err := json.Marshal([]Move{m, mv("g8f6")})
	c.Assert(err, IsNil)
	c.Assert(string(data), Equals, `["e2e4","g8f6"]`)

	var decoded []Move
	c.Assert(json.Unmarshal(data, &decoded), IsNil)
	c.Assert(decoded, diffEquals, []Move{m, mv("g8f6")})

	c.Assert(json.Unmarshal([]byte(`"e2e9"`), &m), ErrorMatches, ".*invalid move")
	_, err = ParseMove("e2")
	c.Assert(errors.Is(err, ErrInvalidMove), Equals, true)
	_, err = json.Marshal(Move{Start: Position{File: 8}})
	c.Assert(err, NotNil)
}
