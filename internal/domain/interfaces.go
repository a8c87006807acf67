package domain

import "context"

// Storage is the persistence capability injected into the collections
// service. Values are JSON-encoded under independent keys; there is no
// cross-key transaction.
type Storage interface {
	// Get decodes the value stored under key into dest. The second
	// return is false when the key has never been written (a valid
	// empty state, not an error).
	Get(key string, dest any) (bool, error)

	// Set durably persists value under key before returning.
	Set(key string, value any) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error

	Close() error
}

// CatalogClient provides read-only access to the remote book catalog.
type CatalogClient interface {
	// New returns the current new-release listing.
	New(ctx context.Context) ([]Book, error)

	// Search returns one page of keyword search results.
	Search(ctx context.Context, query string, page int) (*SearchResult, error)

	// Book returns the full detail record for an isbn13.
	Book(ctx context.Context, isbn13 string) (*BookDetail, error)
}
