package catalog

import (
	"strconv"

	"github.com/ingdavann/bookverse-project/internal/domain"
)

// mapBooks converts listing DTOs to domain books.
func mapBooks(dtos []bookDTO) []domain.Book {
	books := make([]domain.Book, 0, len(dtos))
	for _, d := range dtos {
		books = append(books, domain.Book{
			ISBN13:   d.ISBN13,
			Title:    d.Title,
			Subtitle: d.Subtitle,
			Price:    d.Price,
			Image:    d.Image,
			URL:      d.URL,
		})
	}
	return books
}

// mapSearchResult converts a search response, parsing the string-typed
// counters.
func mapSearchResult(resp *searchResponse) *domain.SearchResult {
	return &domain.SearchResult{
		Total: atoi(resp.Total),
		Page:  atoi(resp.Page),
		Books: mapBooks(resp.Books),
	}
}

// mapBookDetail converts a detail response.
func mapBookDetail(d *bookDetailDTO) *domain.BookDetail {
	return &domain.BookDetail{
		ISBN13:    d.ISBN13,
		Title:     d.Title,
		Subtitle:  d.Subtitle,
		Authors:   d.Authors,
		Publisher: d.Publisher,
		Pages:     atoi(d.Pages),
		Year:      atoi(d.Year),
		Rating:    atoi(d.Rating),
		Desc:      d.Desc,
		Price:     d.Price,
		Image:     d.Image,
		URL:       d.URL,
		PDF:       d.PDF,
	}
}

// atoi parses the API's string-typed numbers, treating garbage as zero.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
