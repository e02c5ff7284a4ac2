package main

import (
	"strings"

	"github.com/maplefeline/castled/engine"
)

const emptyGlyph = '·'

var whiteGlyphs = map[engine.PieceType]rune{
	engine.Bishop: '♗',
	engine.King:   '♔',
	engine.Knight: '♘',
	engine.Pawn:   '♙',
	engine.Queen:  '♕',
	engine.Rook:   '♖',
}

var blackGlyphs = map[engine.PieceType]rune{
	engine.Bishop: '♝',
	engine.King:   '♚',
	engine.Knight: '♞',
	engine.Pawn:   '♟',
	engine.Queen:  '♛',
	engine.Rook:   '♜',
}

func glyph(piece engine.Piece) rune {
	if piece.Colour == engine.White {
		return whiteGlyphs[piece.Type]
	}
	return blackGlyphs[piece.Type]
}

// renderBoard draws rank 8 at the top with rank numbers on the left and
// file letters underneath.
func renderBoard(board engine.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			piece, ok := board.Get(engine.Position{File: file, Rank: rank})
			if !ok {
				sb.WriteRune(emptyGlyph)
				continue
			}
			sb.WriteRune(glyph(piece))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
