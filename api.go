package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/castled/engine"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type playRequest struct {
	Move string
}

type positionRequest struct {
	FEN string
}

type indexResponse struct {
	Href      string
	Games     string
	Positions string
}

type gameResponse struct {
	Href string
	Game Game
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type playsResponse struct {
	Href     string
	Moves    []engine.Move
	Mobility mobility
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	if errors.Is(err, engine.ErrInvalidFEN) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(id)
}

func requestMove(c echo.Context) (engine.Move, error) {
	var request playRequest
	if err := c.Bind(&request); err != nil {
		return engine.Move{}, err
	}
	if request.Move == "" {
		return engine.Move{}, echo.NewHTTPError(http.StatusBadRequest, "move required")
	}
	m, err := engine.ParseMove(request.Move)
	if err != nil {
		return engine.Move{}, echo.NewHTTPError(http.StatusBadRequest, "invalid move").SetInternal(err)
	}
	return m, nil
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func responseGame(game *Game) gameResponse {
	return gameResponse{Game: *game, Href: gameHref(game)}
}

func responseGames(games []Game) gamesResponse {
	return gamesResponse{Games: games, Href: "/games"}
}

func responsePlays(game *Game, moves []engine.Move, summary mobility) playsResponse {
	if moves == nil {
		moves = []engine.Move{}
	}
	return playsResponse{Moves: moves, Mobility: summary, Href: path.Join(gameHref(game), "plays")}
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, indexResponse{Href: "/", Games: "/games", Positions: "/positions"})
	})
	e.GET("/games", func(c echo.Context) error {
		games, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(games))
	})
	e.POST("/games", func(c echo.Context) error {
		game, err := makeGame(engine.CreateStartGame())
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseGame(game))
	})
	e.POST("/positions", func(c echo.Context) error {
		var request positionRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		position, err := engine.DecodeFen(request.FEN)
		if err != nil {
			return errToHTTP(err)
		}
		if err := engine.ValidatePosition(position); err != nil {
			return errToHTTP(err)
		}
		game, err := makeGame(position)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseGame(game))
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.PUT("/games/:id", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		m, err := requestMove(c)
		if err != nil {
			return err
		}
		game, err := playMove(id, m)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		moves, summary, err := game.getPlays()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePlays(game, moves, summary))
	})
	e.GET("/games/:id/board", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.String(http.StatusOK, renderBoard(game.Position.game.Board()))
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
