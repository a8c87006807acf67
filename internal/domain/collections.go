package domain

import (
	"strings"
	"time"
)

// ReadingStatus is the tracking state of a book within a list.
// Any status is reachable from any other; there is no enforced
// progression. Progress and status are controlled independently.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "want-to-read"
	StatusReading    ReadingStatus = "reading"
	StatusCompleted  ReadingStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusCompleted:
		return true
	}
	return false
}

// String returns a human-readable label ("want to read").
func (s ReadingStatus) String() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// TrackedBook is a book placed into a reading list. Title and image are
// a display snapshot copied at add-time; they are not re-synced with the
// catalog.
type TrackedBook struct {
	ISBN          string        `json:"isbn"`
	Title         string        `json:"title"`
	Image         string        `json:"image"`
	Status        ReadingStatus `json:"status"`
	Progress      int           `json:"progress"` // percentage, always within [0,100]
	DateAdded     time.Time     `json:"dateAdded"`
	DateCompleted *time.Time    `json:"dateCompleted,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// ReadingList is a named, ordered collection of tracked books.
type ReadingList struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Books       []TrackedBook `json:"books"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// FindBook returns the index of isbn in the list, or -1.
func (l ReadingList) FindBook(isbn string) int {
	for i, b := range l.Books {
		if b.ISBN == isbn {
			return i
		}
	}
	return -1
}

// Default lists are seeded on first run and cannot be deleted. Their ids
// are fixed so the persisted layout matches across reinstalls.
const (
	DefaultListPrefix = "default-"

	ListIDCurrentlyReading = "default-1"
	ListIDWantToRead       = "default-2"
	ListIDCompleted        = "default-3"
)

// IsDefaultList reports whether id names one of the protected seed lists.
func IsDefaultList(id string) bool {
	return strings.HasPrefix(id, DefaultListPrefix)
}

// DefaultLists returns the three seed lists, empty, stamped with now.
func DefaultLists(now time.Time) []ReadingList {
	return []ReadingList{
		{
			ID:          ListIDCurrentlyReading,
			Name:        "Currently Reading",
			Description: "Books I'm actively reading",
			Books:       []TrackedBook{},
			CreatedAt:   now,
		},
		{
			ID:          ListIDWantToRead,
			Name:        "Want to Read",
			Description: "Books on my wishlist",
			Books:       []TrackedBook{},
			CreatedAt:   now,
		},
		{
			ID:          ListIDCompleted,
			Name:        "Completed",
			Description: "Books I've finished reading",
			Books:       []TrackedBook{},
			CreatedAt:   now,
		},
	}
}

// ClampProgress bounds a progress percentage to [0,100].
func ClampProgress(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
