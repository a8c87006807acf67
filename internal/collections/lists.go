package collections

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ingdavann/bookverse-project/internal/domain"
)

// Lists returns the persisted reading lists. This is a read with a
// first-run side effect: when no lists have ever been persisted, the
// three default lists are created, persisted, and returned.
func (s *Service) Lists() ([]domain.ReadingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLists()
}

// ensureLists loads the list sequence, seeding the defaults on first
// run. Callers must hold s.mu.
func (s *Service) ensureLists() ([]domain.ReadingList, error) {
	lists, ok, err := s.loadLists()
	if err != nil {
		return nil, err
	}
	if ok {
		return lists, nil
	}

	defaults := domain.DefaultLists(time.Now())
	if err := s.store.Set(listsKey, defaults); err != nil {
		return nil, err
	}
	s.logger.Info("created default reading lists", "count", len(defaults))
	return defaults, nil
}

// CreateList appends a new reading list and returns it. The name must
// not be empty or whitespace-only.
func (s *Service) CreateList(name, description string) (*domain.ReadingList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyListName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.ensureLists()
	if err != nil {
		return nil, err
	}

	list := domain.ReadingList{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Books:       []domain.TrackedBook{},
		CreatedAt:   time.Now(),
	}
	updated := append(lists, list)

	if err := s.store.Set(listsKey, updated); err != nil {
		return nil, err
	}

	s.logger.Info("created reading list", "id", list.ID, "name", name)
	return &list, nil
}

// DeleteList removes a user-created list. The three default lists are
// protected and cannot be deleted.
func (s *Service) DeleteList(id string) error {
	if domain.IsDefaultList(id) {
		return domain.ErrProtectedList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.ensureLists()
	if err != nil {
		return err
	}

	updated := make([]domain.ReadingList, 0, len(lists))
	found := false
	for _, list := range lists {
		if list.ID == id {
			found = true
			continue
		}
		updated = append(updated, list)
	}
	if !found {
		return domain.ErrListNotFound
	}

	if err := s.store.Set(listsKey, updated); err != nil {
		return err
	}

	s.logger.Info("deleted reading list", "id", id)
	return nil
}

// AddBook adds a book to a list. The isbn must not already be tracked in
// that list. DateAdded is stamped at insertion; a missing status
// defaults to want-to-read.
func (s *Service) AddBook(listID string, book domain.TrackedBook) (*domain.ReadingList, error) {
	if book.Status == "" {
		book.Status = domain.StatusWantToRead
	}
	book.Progress = domain.ClampProgress(book.Progress)
	book.DateAdded = time.Now()
	if book.Status == domain.StatusCompleted && book.DateCompleted == nil {
		now := time.Now()
		book.DateCompleted = &now
	}

	return s.updateList(listID, func(list *domain.ReadingList) error {
		if list.FindBook(book.ISBN) >= 0 {
			return domain.ErrDuplicateBook
		}
		list.Books = append(list.Books, book)
		return nil
	})
}

// RemoveBook removes a book from a list.
func (s *Service) RemoveBook(listID, isbn string) (*domain.ReadingList, error) {
	return s.updateList(listID, func(list *domain.ReadingList) error {
		i := list.FindBook(isbn)
		if i < 0 {
			return domain.ErrBookNotFound
		}
		list.Books = append(list.Books[:i], list.Books[i+1:]...)
		return nil
	})
}

// UpdateProgress sets a book's progress percentage, clamped to [0,100].
// Status is not touched: reaching 100% does not mark the book completed.
func (s *Service) UpdateProgress(listID, isbn string, progress int) (*domain.ReadingList, error) {
	return s.updateList(listID, func(list *domain.ReadingList) error {
		i := list.FindBook(isbn)
		if i < 0 {
			return domain.ErrBookNotFound
		}
		list.Books[i].Progress = domain.ClampProgress(progress)
		return nil
	})
}

// UpdateStatus moves a book to a new status. Any transition is allowed.
// DateCompleted is stamped on a transition into completed and is kept if
// the status later moves away.
func (s *Service) UpdateStatus(listID, isbn string, status domain.ReadingStatus) (*domain.ReadingList, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.updateList(listID, func(list *domain.ReadingList) error {
		i := list.FindBook(isbn)
		if i < 0 {
			return domain.ErrBookNotFound
		}
		book := &list.Books[i]
		if status == domain.StatusCompleted && book.Status != domain.StatusCompleted {
			now := time.Now()
			book.DateCompleted = &now
		}
		book.Status = status
		return nil
	})
}

// UpdateNotes replaces a book's free-text notes.
func (s *Service) UpdateNotes(listID, isbn, notes string) (*domain.ReadingList, error) {
	return s.updateList(listID, func(list *domain.ReadingList) error {
		i := list.FindBook(isbn)
		if i < 0 {
			return domain.ErrBookNotFound
		}
		list.Books[i].Notes = notes
		return nil
	})
}

// updateList applies fn to the list identified by listID and persists
// the whole sequence. fn mutates the list in place; when it errors, no
// write happens.
func (s *Service) updateList(listID string, fn func(*domain.ReadingList) error) (*domain.ReadingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.ensureLists()
	if err != nil {
		return nil, err
	}

	for i := range lists {
		if lists[i].ID != listID {
			continue
		}
		if err := fn(&lists[i]); err != nil {
			return nil, err
		}
		if err := s.store.Set(listsKey, lists); err != nil {
			return nil, err
		}
		return &lists[i], nil
	}
	return nil, domain.ErrListNotFound
}
