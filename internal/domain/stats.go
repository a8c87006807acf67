package domain

// ReadingStats is a summary derived from a collections snapshot. All
// fields are deterministic functions of the snapshot.
type ReadingStats struct {
	TotalBooks       int // tracked books across all lists
	BooksRead        int // status == completed
	CurrentlyReading int // status == reading
	WantToRead       int // status == want-to-read
	TotalPages       int // BooksRead * 250, an estimate (no real page data)
	FavoritesCount   int
}

// Achievement is a milestone flag computed against fixed thresholds.
type Achievement struct {
	Name        string
	Description string
	Unlocked    bool
}
