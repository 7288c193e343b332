package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/spacepalace/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("game already exists")
)

type GameStore interface {
	FindGame(gameID string) (engine.GameEngine, error)
	AddGame(game engine.GameEngine) error
	RemoveGame(gameID string)
	GameIDs() []string
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (engine.GameEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	return game, nil
}

func (s *InMemoryGameStore) AddGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[game.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrGameExists, game.ID())
	}
	s.Games[game.ID()] = game
	return nil
}

// RemoveGame forgets a game. Unknown IDs are ignored.
func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.Games, gameID)
}

// GameIDs lists the live games in sorted order.
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.Games))
	for id := range s.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
