package main

import (
	"github.com/maplefeline/castled/engine"
	"github.com/montanaflynn/stats"
)

// mobility summarises how many legal moves each piece of the side to move
// has.
type mobility struct {
	Pieces     int
	Mobile     int
	Mean       float64
	Median     float64
	Max        float64
	Percentile float64
}

func mobilityOf(g engine.Game) (mobility, error) {
	board := g.Board()
	positions := board.PositionsForSide(g.Turn())
	if len(positions) == 0 {
		return mobility{}, nil
	}
	counts := make([]int, 0, len(positions))
	result := mobility{Pieces: len(positions)}
	for _, pos := range positions {
		piece, _ := board.Get(pos)
		n := len(engine.MovesFor(piece.Type, pos, g))
		if n > 0 {
			result.Mobile++
		}
		counts = append(counts, n)
	}
	data := stats.LoadRawData(counts)
	var err error
	if result.Mean, err = stats.Mean(data); err != nil {
		return mobility{}, err
	}
	if result.Median, err = stats.Median(data); err != nil {
		return mobility{}, err
	}
	if result.Max, err = stats.Max(data); err != nil {
		return mobility{}, err
	}
	if result.Percentile, err = stats.PercentileNearestRank(data, 80); err != nil {
		return mobility{}, err
	}
	return result, nil
}
