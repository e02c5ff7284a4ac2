package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFEN is wrapped by every FormatError.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidSquare indicates a malformed square token.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates a malformed move token.
	ErrInvalidMove = errors.New("invalid move")
)

// FormatError reports which FEN field could not be decoded.
type FormatError struct {
	Field  string // record, placement, side, castling, en passant, halfmove clock, fullmove number
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fen %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidFEN.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFEN
}

func formatError(field, value, format string, args ...interface{}) error {
	return &FormatError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
