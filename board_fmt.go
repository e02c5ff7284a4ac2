package main

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/maplefeline/castled/engine"
)

// gamePosition stores an engine.Game as its FEN record.
type gamePosition struct {
	game engine.Game
}

func positionOf(g engine.Game) gamePosition {
	return gamePosition{game: g}
}

func (p gamePosition) String() string {
	return engine.EncodeFen(p.game)
}

func (p gamePosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *gamePosition) UnmarshalJSON(bytes []byte) error {
	var fen string
	if err := json.Unmarshal(bytes, &fen); err != nil {
		return err
	}
	g, err := engine.DecodeFen(fen)
	if err != nil {
		return err
	}
	p.game = g
	return nil
}

func (p gamePosition) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *gamePosition) Scan(cell interface{}) error {
	var fen string
	switch cell := cell.(type) {
	case string:
		fen = cell
	case []byte:
		fen = string(cell)
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	g, err := engine.DecodeFen(fen)
	if err != nil {
		return err
	}
	p.game = g
	return nil
}
