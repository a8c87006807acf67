package collections

import (
	"log/slog"
	"sync"

	"github.com/ingdavann/bookverse-project/internal/domain"
)

// Storage keys. Favorites and reading lists live under independent keys,
// so the two sub-collections are not transactionally consistent with
// each other.
const (
	favoritesKey = "bookFavorites"
	listsKey     = "readingLists"
)

// Service is the single source of truth for favorites and reading lists.
// Every mutation is an atomic read-modify-persist step under the service
// mutex: current state is re-read from storage immediately before each
// write, so rapid repeated mutations never act on a stale snapshot. A
// mutation returns only after the new state is durable; on a persist
// failure the mutation reports the error and leaves no in-memory residue.
type Service struct {
	store  domain.Storage
	logger *slog.Logger
	mu     sync.Mutex // Serializes mutations
}

// NewService creates a new collections service.
func NewService(store domain.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// loadFavorites reads the persisted favorite set. Absence is a valid
// empty state.
func (s *Service) loadFavorites() ([]string, error) {
	var favorites []string
	ok, err := s.store.Get(favoritesKey, &favorites)
	if err != nil {
		return nil, err
	}
	if !ok || favorites == nil {
		return []string{}, nil
	}
	return favorites, nil
}

// loadLists reads the persisted reading lists without seeding.
func (s *Service) loadLists() ([]domain.ReadingList, bool, error) {
	var lists []domain.ReadingList
	ok, err := s.store.Get(listsKey, &lists)
	if err != nil {
		return nil, false, err
	}
	return lists, ok, nil
}
