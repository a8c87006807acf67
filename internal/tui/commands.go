package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ingdavann/bookverse-project/internal/domain"
)

// Command factories for async catalog operations. Every command tags its
// result with the sequence number it was issued under so the model can
// drop completions that belong to an abandoned view.

const fetchTimeout = 30 * time.Second

// loadNewBooksCmd fetches the new-release listing
func loadNewBooksCmd(client domain.CatalogClient, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		books, err := client.New(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading new releases", Seq: seq}
		}
		return NewBooksMsg{Books: books, Seq: seq}
	}
}

// searchBooksCmd runs a catalog keyword search
func searchBooksCmd(client domain.CatalogClient, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		result, err := client.Search(ctx, query, 1)
		if err != nil {
			return ErrMsg{Err: err, Context: "searching catalog", Seq: seq}
		}
		return SearchResultsMsg{Result: result, Query: query, Seq: seq}
	}
}

// loadBookDetailCmd fetches the full record for one isbn
func loadBookDetailCmd(client domain.CatalogClient, isbn13 string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		detail, err := client.Book(ctx, isbn13)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading book details", Seq: seq}
		}
		return BookDetailMsg{Detail: detail, Seq: seq}
	}
}

// loadFavoriteBooksCmd resolves each favorited isbn against the catalog.
// Individual misses degrade to a count instead of failing the whole view.
func loadFavoriteBooksCmd(client domain.CatalogClient, isbns []string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		books := make([]domain.Book, 0, len(isbns))
		failed := 0
		for _, isbn := range isbns {
			detail, err := client.Book(ctx, isbn)
			if err != nil {
				var catErr *domain.CatalogError
				if errors.As(err, &catErr) || errors.Is(err, domain.ErrBookNotInCatalog) {
					failed++
					continue
				}
				return ErrMsg{Err: err, Context: "loading favorites", Seq: seq}
			}
			books = append(books, detail.Book())
		}
		return FavoriteBooksMsg{Books: books, Failed: failed, Seq: seq}
	}
}
