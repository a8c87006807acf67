package collections

import (
	"errors"
	"testing"

	"github.com/ingdavann/bookverse-project/internal/domain"
	"github.com/ingdavann/bookverse-project/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewService(store, nil)
}

// failingStorage wraps a real store and fails writes on demand.
type failingStorage struct {
	domain.Storage
	failSet bool
}

func (f *failingStorage) Set(key string, value any) error {
	if f.failSet {
		return &domain.PersistenceError{Op: "set", Key: key, Err: errors.New("quota exceeded")}
	}
	return f.Storage.Set(key, value)
}

func TestFavoritesEmptyStore(t *testing.T) {
	svc := newTestService(t)

	favorites, err := svc.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleFavoriteParity(t *testing.T) {
	svc := newTestService(t)

	// An odd number of toggles leaves the isbn present
	for i := 0; i < 5; i++ {
		_, err := svc.ToggleFavorite("978-1")
		require.NoError(t, err)
	}
	favorites, err := svc.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"978-1"}, favorites)

	// An even number leaves it absent
	_, err = svc.ToggleFavorite("978-1")
	require.NoError(t, err)
	favorites, err = svc.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleFavoritePreservesOthers(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ToggleFavorite("978-1")
	require.NoError(t, err)
	_, err = svc.ToggleFavorite("978-2")
	require.NoError(t, err)
	favorites, err := svc.ToggleFavorite("978-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"978-2"}, favorites)
}

func TestRemoveFavoriteIdempotent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ToggleFavorite("978-1")
	require.NoError(t, err)

	favorites, err := svc.RemoveFavorite("978-1")
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// Removing an absent isbn is a no-op, not an error
	favorites, err = svc.RemoveFavorite("978-1")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestClearFavorites(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ToggleFavorite("978-1")
	require.NoError(t, err)
	_, err = svc.ToggleFavorite("978-2")
	require.NoError(t, err)

	require.NoError(t, svc.ClearFavorites())
	require.NoError(t, svc.ClearFavorites()) // idempotent

	favorites, err := svc.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestListsSeedsDefaultsOnFirstRun(t *testing.T) {
	svc := newTestService(t)

	lists, err := svc.Lists()
	require.NoError(t, err)
	require.Len(t, lists, 3)

	assert.Equal(t, "Currently Reading", lists[0].Name)
	assert.Equal(t, "Want to Read", lists[1].Name)
	assert.Equal(t, "Completed", lists[2].Name)
	for _, list := range lists {
		assert.Empty(t, list.Books)
		assert.True(t, domain.IsDefaultList(list.ID))
		assert.False(t, list.CreatedAt.IsZero())
	}

	// Subsequent reads return the persisted lists, not a fresh seed
	again, err := svc.Lists()
	require.NoError(t, err)
	third, err := svc.Lists()
	require.NoError(t, err)
	assert.Equal(t, again, third)
	for i := range lists {
		assert.Equal(t, lists[i].ID, again[i].ID)
		assert.True(t, lists[i].CreatedAt.Equal(again[i].CreatedAt))
	}
}

func TestCreateListValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateList("", "desc")
	assert.ErrorIs(t, err, domain.ErrEmptyListName)

	_, err = svc.CreateList("   ", "desc")
	assert.ErrorIs(t, err, domain.ErrEmptyListName)
}

func TestCreateThenDeleteRestoresPriorState(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Lists() // first read seeds the defaults
	require.NoError(t, err)
	before, err := svc.Lists()
	require.NoError(t, err)

	list, err := svc.CreateList("Sci-Fi", "space stuff")
	require.NoError(t, err)
	assert.NotEmpty(t, list.ID)
	assert.False(t, domain.IsDefaultList(list.ID))

	require.NoError(t, svc.DeleteList(list.ID))

	after, err := svc.Lists()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteSeedListIsProtected(t *testing.T) {
	svc := newTestService(t)

	for _, id := range []string{
		domain.ListIDCurrentlyReading,
		domain.ListIDWantToRead,
		domain.ListIDCompleted,
	} {
		err := svc.DeleteList(id)
		assert.ErrorIs(t, err, domain.ErrProtectedList)
	}

	lists, err := svc.Lists()
	require.NoError(t, err)
	assert.Len(t, lists, 3)
}

func TestDeleteMissingList(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteList("no-such-id")
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestAddBookDefaults(t *testing.T) {
	svc := newTestService(t)

	list, err := svc.AddBook(domain.ListIDWantToRead, domain.TrackedBook{
		ISBN:  "978-1",
		Title: "X",
	})
	require.NoError(t, err)
	require.Len(t, list.Books, 1)

	book := list.Books[0]
	assert.Equal(t, domain.StatusWantToRead, book.Status)
	assert.False(t, book.DateAdded.IsZero())
	assert.Nil(t, book.DateCompleted)
}

func TestAddBookAlreadyCompletedStampsDateCompleted(t *testing.T) {
	svc := newTestService(t)

	list, err := svc.AddBook(domain.ListIDCompleted, domain.TrackedBook{
		ISBN:   "978-1",
		Status: domain.StatusCompleted,
	})
	require.NoError(t, err)
	assert.NotNil(t, list.Books[0].DateCompleted)
}

func TestAddBookDuplicate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook(domain.ListIDWantToRead, domain.TrackedBook{ISBN: "978-1", Title: "X"})
	require.NoError(t, err)

	_, err = svc.AddBook(domain.ListIDWantToRead, domain.TrackedBook{ISBN: "978-1", Title: "X"})
	assert.ErrorIs(t, err, domain.ErrDuplicateBook)

	// Same isbn in a different list is fine
	_, err = svc.AddBook(domain.ListIDCompleted, domain.TrackedBook{ISBN: "978-1", Title: "X"})
	assert.NoError(t, err)
}

func TestAddBookMissingList(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook("no-such-id", domain.TrackedBook{ISBN: "978-1"})
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestUpdateProgressClamping(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook(domain.ListIDCurrentlyReading, domain.TrackedBook{ISBN: "978-1", Title: "X"})
	require.NoError(t, err)

	list, err := svc.UpdateProgress(domain.ListIDCurrentlyReading, "978-1", 150)
	require.NoError(t, err)
	assert.Equal(t, 100, list.Books[0].Progress)

	list, err = svc.UpdateProgress(domain.ListIDCurrentlyReading, "978-1", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Books[0].Progress)

	list, err = svc.UpdateProgress(domain.ListIDCurrentlyReading, "978-1", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, list.Books[0].Progress)
}

func TestUpdateProgressDoesNotTouchStatus(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook(domain.ListIDCurrentlyReading, domain.TrackedBook{
		ISBN:   "978-1",
		Status: domain.StatusReading,
	})
	require.NoError(t, err)

	list, err := svc.UpdateProgress(domain.ListIDCurrentlyReading, "978-1", 100)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReading, list.Books[0].Status)
	assert.Nil(t, list.Books[0].DateCompleted)
}

func TestUpdateProgressNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateProgress("no-such-id", "978-1", 50)
	assert.ErrorIs(t, err, domain.ErrListNotFound)

	_, err = svc.UpdateProgress(domain.ListIDWantToRead, "978-1", 50)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestUpdateStatusStampsDateCompleted(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook(domain.ListIDCurrentlyReading, domain.TrackedBook{ISBN: "978-1"})
	require.NoError(t, err)

	list, err := svc.UpdateStatus(domain.ListIDCurrentlyReading, "978-1", domain.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, list.Books[0].DateCompleted)
	completedAt := *list.Books[0].DateCompleted

	// Moving away from completed keeps the stamp
	list, err = svc.UpdateStatus(domain.ListIDCurrentlyReading, "978-1", domain.StatusReading)
	require.NoError(t, err)
	require.NotNil(t, list.Books[0].DateCompleted)
	assert.True(t, completedAt.Equal(*list.Books[0].DateCompleted))

	// Re-entering completed re-stamps
	list, err = svc.UpdateStatus(domain.ListIDCurrentlyReading, "978-1", domain.StatusCompleted)
	require.NoError(t, err)
	assert.NotNil(t, list.Books[0].DateCompleted)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook(domain.ListIDCurrentlyReading, domain.TrackedBook{ISBN: "978-1"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(domain.ListIDCurrentlyReading, "978-1", "paused")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateNotes(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook(domain.ListIDCurrentlyReading, domain.TrackedBook{ISBN: "978-1"})
	require.NoError(t, err)

	list, err := svc.UpdateNotes(domain.ListIDCurrentlyReading, "978-1", "loved chapter 3")
	require.NoError(t, err)
	assert.Equal(t, "loved chapter 3", list.Books[0].Notes)
}

func TestRemoveBook(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddBook(domain.ListIDWantToRead, domain.TrackedBook{ISBN: "978-1"})
	require.NoError(t, err)
	_, err = svc.AddBook(domain.ListIDWantToRead, domain.TrackedBook{ISBN: "978-2"})
	require.NoError(t, err)

	list, err := svc.RemoveBook(domain.ListIDWantToRead, "978-1")
	require.NoError(t, err)
	require.Len(t, list.Books, 1)
	assert.Equal(t, "978-2", list.Books[0].ISBN)

	_, err = svc.RemoveBook(domain.ListIDWantToRead, "978-1")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestPersistFailureLeavesNoPartialState(t *testing.T) {
	store, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	failing := &failingStorage{Storage: store}
	svc := NewService(failing, nil)

	_, err = svc.ToggleFavorite("978-1")
	require.NoError(t, err)
	_, err = svc.Lists()
	require.NoError(t, err)

	failing.failSet = true

	_, err = svc.ToggleFavorite("978-2")
	require.Error(t, err)
	_, err = svc.AddBook(domain.ListIDWantToRead, domain.TrackedBook{ISBN: "978-9"})
	require.Error(t, err)

	failing.failSet = false

	// Neither failed mutation left a trace
	favorites, err := svc.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"978-1"}, favorites)

	lists, err := svc.Lists()
	require.NoError(t, err)
	for _, list := range lists {
		assert.Empty(t, list.Books)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	store, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svc := NewService(store, nil)
	_, err = svc.ToggleFavorite("978-1")
	require.NoError(t, err)
	_, err = svc.AddBook(domain.ListIDCurrentlyReading, domain.TrackedBook{
		ISBN:     "978-2",
		Title:    "X",
		Status:   domain.StatusReading,
		Progress: 40,
		Notes:    "halfway hooked",
	})
	require.NoError(t, err)
	lists, err := svc.Lists()
	require.NoError(t, err)

	// A second service over the same storage sees an identical store
	svc2 := NewService(store, nil)
	favorites2, err := svc2.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"978-1"}, favorites2)

	lists2, err := svc2.Lists()
	require.NoError(t, err)
	assert.Equal(t, lists, lists2)
}
