package tui

import "github.com/ingdavann/bookverse-project/internal/domain"

// Message types for the TUI. Fetch results carry the request sequence
// number they were issued under; completions whose sequence no longer
// matches the model's are stale (the user moved on) and are dropped
// without touching view state.

// ErrMsg represents an error from an async operation
type ErrMsg struct {
	Err     error
	Context string
	Seq     int
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// NewBooksMsg signals that the new-release listing has loaded
type NewBooksMsg struct {
	Books []domain.Book
	Seq   int
}

// SearchResultsMsg signals that catalog search results are ready
type SearchResultsMsg struct {
	Result *domain.SearchResult
	Query  string
	Seq    int
}

// BookDetailMsg signals that a detail record has loaded
type BookDetailMsg struct {
	Detail *domain.BookDetail
	Seq    int
}

// FavoriteBooksMsg signals that favorite detail records have loaded.
// Failed is the count of favorites the catalog could not resolve.
type FavoriteBooksMsg struct {
	Books  []domain.Book
	Failed int
	Seq    int
}
