// Package stats derives summary counts and achievement flags from a
// collections snapshot. Everything here is a pure function: the same
// snapshot always yields the same result.
package stats

import "github.com/ingdavann/bookverse-project/internal/domain"

// pagesPerBook is a fixed estimate used for the pages-read total; the
// catalog carries no per-copy page data at tracking time.
const pagesPerBook = 250

// Achievement thresholds. These are fixed for compatibility with the
// persisted expectations of earlier releases.
const (
	bookwormThreshold   = 10
	collectorThreshold  = 20
	pageTurnerThreshold = 10000
)

// Compute summarizes the given lists and favorite set.
func Compute(lists []domain.ReadingList, favorites []string) domain.ReadingStats {
	var s domain.ReadingStats
	s.FavoritesCount = len(favorites)

	for _, list := range lists {
		for _, book := range list.Books {
			s.TotalBooks++
			switch book.Status {
			case domain.StatusCompleted:
				s.BooksRead++
			case domain.StatusReading:
				s.CurrentlyReading++
			case domain.StatusWantToRead:
				s.WantToRead++
			}
		}
	}

	s.TotalPages = s.BooksRead * pagesPerBook
	return s
}

// Achievements evaluates the milestone flags for a stats summary.
func Achievements(s domain.ReadingStats) []domain.Achievement {
	return []domain.Achievement{
		{
			Name:        "First Book",
			Description: "Read your first book",
			Unlocked:    s.BooksRead > 0,
		},
		{
			Name:        "Bookworm",
			Description: "Read 10 books",
			Unlocked:    s.BooksRead >= bookwormThreshold,
		},
		{
			Name:        "Collector",
			Description: "Add 20 books to favorites",
			Unlocked:    s.FavoritesCount >= collectorThreshold,
		},
		{
			Name:        "Page Turner",
			Description: "Read 10,000 pages",
			Unlocked:    s.TotalPages >= pageTurnerThreshold,
		},
	}
}
