package main

import (
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type memoryRow struct {
	mu   sync.Mutex
	game Game
}

// memoryStore keeps rows in process. Updates to one game are serialised by
// that row's mutex; other games are not blocked.
type memoryStore struct {
	mu     sync.RWMutex
	rows   map[uuid.UUID]*memoryRow
	nextID uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: map[uuid.UUID]*memoryRow{}}
}

func (s *memoryStore) row(id uuid.UUID) (*memoryRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *memoryStore) create(game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now()
	game.ID = s.nextID
	game.CreatedAt = now
	game.UpdatedAt = now
	s.rows[game.GameID] = &memoryRow{game: *game}
	return nil
}

func (s *memoryStore) get(id uuid.UUID) (*Game, error) {
	row, err := s.row(id)
	if err != nil {
		return nil, err
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	game := row.game
	return &game, nil
}

func (s *memoryStore) list() ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]Game, 0, len(s.rows))
	for _, row := range s.rows {
		row.mu.Lock()
		games = append(games, row.game)
		row.mu.Unlock()
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *memoryStore) update(id uuid.UUID, fn func(game *Game) error) (*Game, error) {
	row, err := s.row(id)
	if err != nil {
		return nil, err
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	game := row.game
	if err := fn(&game); err != nil {
		return nil, err
	}
	game.UpdatedAt = time.Now()
	row.game = game
	return &game, nil
}

func (s *memoryStore) prune(before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pruned int64
	for id, row := range s.rows {
		row.mu.Lock()
		if row.game.End && row.game.UpdatedAt.Before(before) {
			delete(s.rows, id)
			pruned++
		}
		row.mu.Unlock()
	}
	return pruned, nil
}

func (s *memoryStore) Close() error {
	return nil
}
