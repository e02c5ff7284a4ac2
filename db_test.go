package main

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/maplefeline/castled/engine"
	uuid "github.com/satori/go.uuid"
	. "gopkg.in/check.v1"
	"gorm.io/gorm"
)

// StoreSuite runs the same checks against every store backend. The postgres
// variant needs PGDATABASE.
type StoreSuite struct {
	open  func(c *C) store
	store store
}

var _ = Suite(&StoreSuite{open: func(c *C) store { return newMemoryStore() }})

var _ = Suite(&StoreSuite{open: func(c *C) store {
	if _, ok := os.LookupEnv("PGDATABASE"); !ok {
		c.Skip("PGDATABASE not set")
	}
	games, err := openPostgres()
	c.Assert(err, IsNil)
	c.Assert(games.db.Exec("DELETE FROM games").Error, IsNil)
	return games
}})

func (s *StoreSuite) SetUpTest(c *C) {
	s.store = s.open(c)
}

func (s *StoreSuite) TearDownTest(c *C) {
	if s.store != nil {
		c.Assert(s.store.Close(), IsNil)
	}
}

func (s *StoreSuite) newGame(c *C, fen string) *Game {
	position, err := engine.DecodeFen(fen)
	c.Assert(err, IsNil)
	game := &Game{GameID: uuid.NewV4(), Name: "test-game", Position: positionOf(position)}
	game.refresh()
	c.Assert(s.store.create(game), IsNil)
	return game
}

func (s *StoreSuite) TestCreateAndGet(c *C) {
	created := s.newGame(c, kiwipete)
	game, err := s.store.get(created.GameID)
	c.Assert(err, IsNil)
	c.Assert(game.GameID, Equals, created.GameID)
	c.Assert(game.Name, Equals, "test-game")
	c.Assert(game.Position.String(), Equals, kiwipete)
	c.Assert(game.End, Equals, false)
}

func (s *StoreSuite) TestGetUnknown(c *C) {
	_, err := s.store.get(uuid.NewV4())
	c.Assert(errors.Is(err, gorm.ErrRecordNotFound), Equals, true)
	_, err = s.store.update(uuid.NewV4(), func(game *Game) error { return nil })
	c.Assert(errors.Is(err, gorm.ErrRecordNotFound), Equals, true)
}

func (s *StoreSuite) TestList(c *C) {
	games, err := s.store.list()
	c.Assert(err, IsNil)
	c.Assert(games, HasLen, 0)
	first := s.newGame(c, engine.StartFEN)
	second := s.newGame(c, kiwipete)
	games, err = s.store.list()
	c.Assert(err, IsNil)
	c.Assert(games, HasLen, 2)
	c.Assert(games[0].GameID, Equals, first.GameID)
	c.Assert(games[1].GameID, Equals, second.GameID)
}

func (s *StoreSuite) TestUpdate(c *C) {
	created := s.newGame(c, engine.StartFEN)
	updated, err := s.store.update(created.GameID, func(game *Game) error {
		game.Position = positionOf(engine.MakeMove(engine.Move{
			Start:  engine.Position{File: 4, Rank: 1},
			Finish: engine.Position{File: 4, Rank: 3},
		}, game.Position.game))
		game.MoveCount++
		return nil
	})
	c.Assert(err, IsNil)
	c.Assert(updated.MoveCount, Equals, 1)

	game, err := s.store.get(created.GameID)
	c.Assert(err, IsNil)
	c.Assert(game.Position.String(), Equals, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3")
	c.Assert(game.MoveCount, Equals, 1)
}

func (s *StoreSuite) TestFailedUpdateIsDiscarded(c *C) {
	created := s.newGame(c, engine.StartFEN)
	failure := errors.New("rejected")
	_, err := s.store.update(created.GameID, func(game *Game) error {
		game.MoveCount = 99
		return failure
	})
	c.Assert(err, Equals, failure)
	game, err := s.store.get(created.GameID)
	c.Assert(err, IsNil)
	c.Assert(game.MoveCount, Equals, 0)
}

func (s *StoreSuite) TestUpdatesAreSerialised(c *C) {
	created := s.newGame(c, engine.StartFEN)
	var group sync.WaitGroup
	for i := 0; i < 10; i++ {
		group.Add(1)
		go func() {
			defer group.Done()
			_, err := s.store.update(created.GameID, func(game *Game) error {
				game.MoveCount++
				return nil
			})
			c.Check(err, IsNil)
		}()
	}
	group.Wait()
	game, err := s.store.get(created.GameID)
	c.Assert(err, IsNil)
	c.Assert(game.MoveCount, Equals, 10)
}

func (s *StoreSuite) TestPrune(c *C) {
	finished := s.newGame(c, foolsMate)
	running := s.newGame(c, engine.StartFEN)
	c.Assert(finished.End, Equals, true)

	pruned, err := s.store.prune(time.Now().Add(-time.Hour))
	c.Assert(err, IsNil)
	c.Assert(pruned, Equals, int64(0))

	pruned, err = s.store.prune(time.Now().Add(time.Minute))
	c.Assert(err, IsNil)
	c.Assert(pruned, Equals, int64(1))
	_, err = s.store.get(finished.GameID)
	c.Assert(errors.Is(err, gorm.ErrRecordNotFound), Equals, true)
	_, err = s.store.get(running.GameID)
	c.Assert(err, IsNil)
}
