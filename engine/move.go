package engine

import (
	"fmt"
	"sort"
)

// Move is a piece relocation from Start to Finish.
type Move struct {
	Start  Position
	Finish Position
}

// Less orders moves by start square, then finish square.
func (m Move) Less(other Move) bool {
	if m.Start != other.Start {
		return m.Start.Less(other.Start)
	}
	return m.Finish.Less(other.Finish)
}

// String renders both square tokens, for example "e2e4".
func (m Move) String() string {
	return m.Start.String() + m.Finish.String()
}

// ParseMove parses a move token such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}
	start, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidMove)
	}
	finish, err := ParsePosition(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidMove)
	}
	return Move{Start: start, Finish: finish}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Move) MarshalText() ([]byte, error) {
	if !IsOnBoard(m.Start) || !IsOnBoard(m.Finish) {
		return nil, fmt.Errorf("%v: %w", m, ErrInvalidMove)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Move) UnmarshalText(text []byte) error {
	move, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = move
	return nil
}

// SortMoves orders moves in place.
func SortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool { return moves[i].Less(moves[j]) })
}

func movesTo(start Position, destinations Squares) []Move {
	moves := make([]Move, 0, destinations.Len())
	for _, finish := range destinations.Positions() {
		moves = append(moves, Move{Start: start, Finish: finish})
	}
	return moves
}
