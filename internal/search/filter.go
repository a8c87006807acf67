// Package search provides fuzzy filtering over the user's shelves and
// re-ranking of remote catalog results. Remote search stays with the
// catalog client; this package only ever sees local snapshots.
package search

import (
	"sort"
	"strings"

	"github.com/ingdavann/bookverse-project/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// ShelfItem is one searchable entry: a tracked book plus the list it
// lives in.
type ShelfItem struct {
	ListID   string
	ListName string
	Book     domain.TrackedBook
}

// Match is a filter hit with highlight metadata.
type Match struct {
	ShelfItem
	MatchedIndexes []int
	Score          int // higher is better (sahilm convention)
}

// FilterIndex implements sahilm/fuzzy.Source over pre-lowered titles.
type FilterIndex struct {
	items       []ShelfItem
	lowerTitles []string
}

// String returns the lowercase title at index i (implements fuzzy.Source).
func (idx *FilterIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source).
func (idx *FilterIndex) Len() int { return len(idx.items) }

// NewFilterIndex flattens the lists into a searchable index.
func NewFilterIndex(lists []domain.ReadingList) *FilterIndex {
	idx := &FilterIndex{}
	for _, list := range lists {
		for _, book := range list.Books {
			idx.items = append(idx.items, ShelfItem{
				ListID:   list.ID,
				ListName: list.Name,
				Book:     book,
			})
			idx.lowerTitles = append(idx.lowerTitles, strings.ToLower(book.Title))
		}
	}
	return idx
}

// Filter returns the shelf items fuzzily matching query, best first.
func (idx *FilterIndex) Filter(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || idx.Len() == 0 {
		return nil
	}

	matches := sahilm.FindFrom(query, idx)

	results := make([]Match, 0, len(matches))
	for _, m := range matches {
		results = append(results, Match{
			ShelfItem:      idx.items[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		})
	}
	return results
}

// Rank orders remote catalog results by closeness to the query: exact
// match, then prefix, then substring, then Levenshtein distance.
func Rank(books []domain.Book, query string) []domain.Book {
	if len(books) == 0 {
		return books
	}

	query = strings.ToLower(query)

	type rankedBook struct {
		book  domain.Book
		score int
	}

	ranked := make([]rankedBook, 0, len(books))
	for _, b := range books {
		ranked = append(ranked, rankedBook{book: b, score: matchScore(strings.ToLower(b.Title), query)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	results := make([]domain.Book, len(ranked))
	for i, r := range ranked {
		results[i] = r.book
	}
	return results
}

// matchScore calculates a ranking score. Lower is better.
func matchScore(title, query string) int {
	if title == query {
		return 0
	}
	if strings.HasPrefix(title, query) {
		return 10
	}
	if strings.Contains(title, query) {
		return 50
	}
	return 100 + fuzzy.LevenshteinDistance(query, title)
}
