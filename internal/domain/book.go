package domain

import (
	"fmt"
	"strings"
)

// Book is a catalog search/listing record.
type Book struct {
	ISBN13   string `json:"isbn13"`   // Catalog identifier
	Title    string `json:"title"`    // Display title
	Subtitle string `json:"subtitle"` // Short tagline, often empty
	Price    string `json:"price"`    // Display price, e.g. "$28.99"
	Image    string `json:"image"`    // Cover image URL
	URL      string `json:"url"`      // Catalog detail page URL
}

// BookDetail is the full per-item catalog record.
type BookDetail struct {
	ISBN13    string            `json:"isbn13"`
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle"`
	Authors   string            `json:"authors"`
	Publisher string            `json:"publisher"`
	Pages     int               `json:"pages"`
	Year      int               `json:"year"`
	Rating    int               `json:"rating"` // 0-5 scale
	Desc      string            `json:"desc"`
	Price     string            `json:"price"`
	Image     string            `json:"image"`
	URL       string            `json:"url"`
	PDF       map[string]string `json:"pdf,omitempty"` // Sample chapter links, rarely present
}

// SearchResult is a page of catalog search results.
type SearchResult struct {
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Books []Book `json:"books"`
}

// Book converts the detail record to its listing form.
func (d BookDetail) Book() Book {
	return Book{
		ISBN13:   d.ISBN13,
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Price:    d.Price,
		Image:    d.Image,
		URL:      d.URL,
	}
}

// DisplayTitle returns "Title: Subtitle" when a subtitle exists.
func (b Book) DisplayTitle() string {
	if b.Subtitle != "" {
		return fmt.Sprintf("%s: %s", b.Title, b.Subtitle)
	}
	return b.Title
}

// IsFree reports whether the catalog lists the book at no cost.
func (b Book) IsFree() bool {
	price := strings.TrimSpace(b.Price)
	return price == "" || price == "$0.00"
}

// Stars renders the rating as a fixed five-slot bar (e.g. "★★★★☆").
func (d BookDetail) Stars() string {
	r := d.Rating
	if r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", 5-r)
}
