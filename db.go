package main

import (
	"errors"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// store persists game rows. Lookups of unknown ids fail with
// gorm.ErrRecordNotFound whatever the backend.
type store interface {
	create(game *Game) error
	get(id uuid.UUID) (*Game, error)
	list() ([]Game, error)
	// update runs fn on the row while holding it exclusively and saves the
	// result unless fn fails.
	update(id uuid.UUID, fn func(game *Game) error) (*Game, error)
	prune(before time.Time) (int64, error)
	Close() error
}

var db store

func openStore(kind string) (store, error) {
	switch kind {
	case "memory":
		return newMemoryStore(), nil
	case "postgres":
		return openPostgres()
	}
	return nil, errors.New("unknown store " + kind)
}

type gormStore struct {
	db *gorm.DB
}

func postgresDSN() string {
	if dsn, ok := os.LookupEnv("PGDSN"); ok {
		return dsn
	}
	dbname, ok := os.LookupEnv("PGDATABASE")
	if !ok {
		dbname = "castled"
	}
	return strings.Join([]string{"dbname", dbname}, "=")
}

func openPostgres() (*gormStore, error) {
	connStr := postgresDSN()
	database, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		log.WithError(err).WithField("connStr", connStr).Error("failed to connect database")
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Game{}); err != nil {
		return nil, err
	}
	return &gormStore{db: database}, nil
}

func (s *gormStore) create(game *Game) error {
	return s.db.Create(game).Error
}

func (s *gormStore) get(id uuid.UUID) (*Game, error) {
	var game Game
	if err := s.db.Where("game_id = ?", id).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *gormStore) list() ([]Game, error) {
	var games []Game
	if err := s.db.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *gormStore) update(id uuid.UUID, fn func(game *Game) error) (*Game, error) {
	var game Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("game_id = ?", id).First(&game).Error; err != nil {
			return err
		}
		if err := fn(&game); err != nil {
			return err
		}
		return tx.Save(&game).Error
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *gormStore) prune(before time.Time) (int64, error) {
	result := s.db.Where(Game{End: true}).Where("updated_at < ?", before).Delete(&Game{})
	return result.RowsAffected, result.Error
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	e := err
	for errors.Unwrap(e) != nil {
		e = errors.Unwrap(e)
	}
	if e.Error() == "sql: database is closed" {
		time.Sleep(1 * time.Second)
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
}
