package tui

import (
	"context"
	"testing"

	"github.com/ingdavann/bookverse-project/internal/collections"
	"github.com/ingdavann/bookverse-project/internal/domain"
	"github.com/ingdavann/bookverse-project/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog satisfies domain.CatalogClient without network access.
type stubCatalog struct{}

func (stubCatalog) New(context.Context) ([]domain.Book, error) { return nil, nil }
func (stubCatalog) Search(context.Context, string, int) (*domain.SearchResult, error) {
	return &domain.SearchResult{}, nil
}
func (stubCatalog) Book(context.Context, string) (*domain.BookDetail, error) {
	return &domain.BookDetail{}, nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewModel(collections.NewService(store, nil), stubCatalog{}, nil, ViewBrowse)
}

func TestViewFromName(t *testing.T) {
	assert.Equal(t, ViewSearch, ViewFromName("search"))
	assert.Equal(t, ViewFavorites, ViewFromName("Favorites"))
	assert.Equal(t, ViewLists, ViewFromName("lists"))
	assert.Equal(t, ViewStats, ViewFromName("stats"))
	assert.Equal(t, ViewBrowse, ViewFromName("browse"))
	assert.Equal(t, ViewBrowse, ViewFromName(""))
	assert.Equal(t, ViewBrowse, ViewFromName("bogus"))
}

func TestNewModelStartsOnConfiguredView(t *testing.T) {
	store, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := NewModel(collections.NewService(store, nil), stubCatalog{}, nil, ViewStats)
	assert.Equal(t, ViewStats, m.view)
}

func TestStaleSearchResultsAreDropped(t *testing.T) {
	m := newTestModel(t)
	m.searchSeq = 3

	stale := SearchResultsMsg{
		Result: &domain.SearchResult{Books: []domain.Book{{ISBN13: "1", Title: "Old"}}},
		Query:  "old",
		Seq:    2,
	}
	updated, _ := m.Update(stale)
	m = updated.(Model)
	assert.Empty(t, m.results)

	current := SearchResultsMsg{
		Result: &domain.SearchResult{Books: []domain.Book{{ISBN13: "2", Title: "New"}}, Total: 1},
		Query:  "new",
		Seq:    3,
	}
	updated, _ = m.Update(current)
	m = updated.(Model)
	require.Len(t, m.results, 1)
	assert.Equal(t, "2", m.results[0].ISBN13)
	assert.Equal(t, 1, m.resultTotal)
}

func TestStaleDetailIsDropped(t *testing.T) {
	m := newTestModel(t)
	m.detailSeq = 5

	updated, _ := m.Update(BookDetailMsg{Detail: &domain.BookDetail{Title: "X"}, Seq: 4})
	m = updated.(Model)
	assert.False(t, m.showDetail)

	updated, _ = m.Update(BookDetailMsg{Detail: &domain.BookDetail{Title: "X"}, Seq: 5})
	m = updated.(Model)
	assert.True(t, m.showDetail)
}

func TestNewModelSeedsCollections(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.lists, 3)
	assert.Equal(t, domain.ListIDCurrentlyReading, m.lists[0].ID)
	assert.Empty(t, m.favorites)
}

func TestNextStatusCycle(t *testing.T) {
	assert.Equal(t, domain.StatusReading, nextStatus(domain.StatusWantToRead))
	assert.Equal(t, domain.StatusCompleted, nextStatus(domain.StatusReading))
	assert.Equal(t, domain.StatusWantToRead, nextStatus(domain.StatusCompleted))
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(5, 0))
	assert.Equal(t, 0, clampCursor(-1, 3))
	assert.Equal(t, 2, clampCursor(7, 3))
	assert.Equal(t, 1, clampCursor(1, 3))
}
