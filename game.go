package main

import (
	"net/http"
	"time"

	"github.com/apex/log"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/castled/engine"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// Game game.
type Game struct {
	gorm.Model

	GameID    uuid.UUID    `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	Name      string       `gorm:"<-:create"`
	Position  gamePosition `gorm:"type:varchar"`
	MoveCount int
	LastMove  string
	Check     bool
	End       bool
}

func (game *Game) refresh() {
	g := game.Position.game
	game.Check = engine.IsCheck(g.Board(), g.Turn())
	game.End = len(engine.AllMoves(g)) == 0
}

func gameIdle(retention time.Duration) error {
	pruned, err := db.prune(time.Now().Add(-retention))
	if err != nil {
		return err
	}
	if pruned > 0 {
		log.WithField("count", pruned).Info("pruned finished games")
	}
	return nil
}

func makeGame(position engine.Game) (*Game, error) {
	game := Game{
		GameID:   uuid.NewV4(),
		Name:     petname.Generate(2, "-"),
		Position: positionOf(position),
	}
	game.refresh()
	if err := db.create(&game); err != nil {
		return nil, err
	}
	log.WithField("game", game.GameID).WithField("fen", game.Position).Info("created game")
	return getGame(game.GameID)
}

func getGame(id uuid.UUID) (*Game, error) {
	return db.get(id)
}

func getGames() ([]Game, error) {
	return db.list()
}

func (game Game) getPlays() ([]engine.Move, mobility, error) {
	g := game.Position.game
	summary, err := mobilityOf(g)
	if err != nil {
		return nil, mobility{}, err
	}
	return engine.AllMoves(g), summary, nil
}

func playMove(id uuid.UUID, m engine.Move) (*Game, error) {
	return db.update(id, func(game *Game) error {
		if game.End {
			return echo.NewHTTPError(http.StatusBadRequest, "game is over")
		}
		g := game.Position.game
		if !engine.IsMovePossible(g, m) {
			log.WithField("game", game.GameID).WithField("move", m).Debug("rejected move")
			return echo.NewHTTPError(http.StatusBadRequest, "invalid move")
		}
		game.Position = positionOf(engine.MakeMove(m, g))
		game.MoveCount = game.MoveCount + 1
		game.LastMove = m.String()
		game.refresh()
		log.WithField("game", game.GameID).WithField("move", m).WithField("fen", game.Position).Info("accepted move")
		return nil
	})
}
