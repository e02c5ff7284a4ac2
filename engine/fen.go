package engine

import (
	"strconv"
	"strings"
)

// StartFEN is the encoding of CreateStartGame.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

func pieceLetter(piece Piece) byte {
	var letter byte
	switch piece.Type {
	case King:
		letter = 'K'
	case Queen:
		letter = 'Q'
	case Rook:
		letter = 'R'
	case Bishop:
		letter = 'B'
	case Knight:
		letter = 'N'
	case Pawn:
		letter = 'P'
	}
	if piece.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

func letterPiece(c rune) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var t PieceType
	switch c {
	case 'K':
		t = King
	case 'Q':
		t = Queen
	case 'R':
		t = Rook
	case 'B':
		t = Bishop
	case 'N':
		t = Knight
	case 'P':
		t = Pawn
	default:
		return NoPiece, false
	}
	return Piece{Type: t, Colour: colour}, true
}

// EncodeFen renders the four modeled FEN fields: placement, side to move,
// castling availability and en-passant target. Move counters are omitted.
func EncodeFen(g Game) string {
	target, ok := g.EnPassant()
	enPassant := "-"
	if ok {
		enPassant = target.String()
	}
	return strings.Join([]string{
		EncodeBoard(g.board),
		encodeSide(g.turn),
		encodeCastle(g.castle),
		enPassant,
	}, " ")
}

// DecodeFen parses a FEN record. Both the four-field form written by
// EncodeFen and the standard six-field form are accepted; the move counters
// of the latter are validated and dropped.
func DecodeFen(text string) (Game, error) {
	fields := strings.Split(text, " ")
	if len(fields) != 4 && len(fields) != 6 {
		return Game{}, formatError("record", text, "want 4 or 6 space separated fields, got %d", len(fields))
	}
	board, err := DecodeBoard(fields[0])
	if err != nil {
		return Game{}, err
	}
	turn, err := decodeSide(fields[1])
	if err != nil {
		return Game{}, err
	}
	castle, err := decodeCastle(fields[2])
	if err != nil {
		return Game{}, err
	}
	g := NewGame(board, turn, castle)
	if fields[3] != "-" {
		target, err := ParsePosition(fields[3])
		if err != nil {
			return Game{}, formatError("en passant", fields[3], "invalid square token")
		}
		if want := enPassantRank(turn); target.Rank != want {
			return Game{}, formatError("en passant", fields[3], "want a square on rank %d with %s to move", want+1, turn)
		}
		if !board.IsEmpty(target) {
			return Game{}, formatError("en passant", fields[3], "square is occupied")
		}
		g = g.WithEnPassant(target)
	}
	if len(fields) == 6 {
		if err := decodeCounter("halfmove clock", fields[4], 0); err != nil {
			return Game{}, err
		}
		if err := decodeCounter("fullmove number", fields[5], 1); err != nil {
			return Game{}, err
		}
	}
	return g, nil
}

// EncodeBoard renders the placement field: ranks 8 to 1 separated by '/',
// runs of empty squares as a digit.
func EncodeBoard(board Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece, ok := board.Get(Position{File: file, Rank: rank})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceLetter(piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// DecodeBoard parses the placement field.
func DecodeBoard(text string) (Board, error) {
	var board Board
	rows := strings.Split(text, "/")
	if len(rows) != 8 {
		return Board{}, formatError("placement", text, "want 8 ranks, got %d", len(rows))
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := letterPiece(c)
				if !ok {
					return Board{}, formatError("placement", text, "unknown piece letter %q", c)
				}
				if file < 8 {
					board.Set(Position{File: file, Rank: rank}, piece)
				}
				file++
			}
			if file > 8 {
				break
			}
		}
		if file != 8 {
			return Board{}, formatError("placement", text, "rank %d covers %d squares, want 8", rank+1, file)
		}
	}
	return board, nil
}

// enPassantRank is the rank of a target the side to move can capture onto.
func enPassantRank(turn Colour) int {
	return turn.Opponent().pawnRank() + turn.Opponent().forward()
}

func encodeSide(c Colour) string {
	if c == White {
		return "w"
	}
	return "b"
}

func decodeSide(text string) (Colour, error) {
	switch text {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	return White, formatError("side", text, "want w or b")
}

func encodeCastle(c CastleRights) string {
	var sb strings.Builder
	for _, right := range []struct {
		granted bool
		letter  byte
	}{{c.WhiteShort, 'K'}, {c.WhiteLong, 'Q'}, {c.BlackShort, 'k'}, {c.BlackLong, 'q'}} {
		if right.granted {
			sb.WriteByte(right.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func decodeCastle(text string) (CastleRights, error) {
	var c CastleRights
	if text == "-" {
		return c, nil
	}
	if text == "" {
		return c, formatError("castling", text, "empty field")
	}
	for _, letter := range text {
		var right *bool
		switch letter {
		case 'K':
			right = &c.WhiteShort
		case 'Q':
			right = &c.WhiteLong
		case 'k':
			right = &c.BlackShort
		case 'q':
			right = &c.BlackLong
		default:
			return CastleRights{}, formatError("castling", text, "invalid castle letter %q", letter)
		}
		if *right {
			return CastleRights{}, formatError("castling", text, "repeated castle letter %q", letter)
		}
		*right = true
	}
	return c, nil
}

func decodeCounter(field, text string, min int) error {
	n, err := strconv.Atoi(text)
	if err != nil {
		return formatError(field, text, "not a number")
	}
	if n < min {
		return formatError(field, text, "must be at least %d", min)
	}
	return nil
}
