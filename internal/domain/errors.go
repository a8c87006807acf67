package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for collection operations
var (
	// ErrEmptyListName indicates a list was created with a blank name
	ErrEmptyListName = errors.New("list name cannot be empty")

	// ErrInvalidStatus indicates an unknown reading status value
	ErrInvalidStatus = errors.New("unknown reading status")

	// ErrListNotFound indicates the referenced reading list does not exist
	ErrListNotFound = errors.New("reading list not found")

	// ErrBookNotFound indicates the referenced book is not in the list
	ErrBookNotFound = errors.New("book not found in list")

	// ErrDuplicateBook indicates the book is already in the list
	ErrDuplicateBook = errors.New("book already in list")

	// ErrProtectedList indicates an attempt to delete a default list
	ErrProtectedList = errors.New("default list cannot be deleted")

	// ErrCatalogUnreachable indicates the catalog service did not respond
	ErrCatalogUnreachable = errors.New("catalog service is unreachable")

	// ErrBookNotInCatalog indicates the catalog has no record for the isbn
	ErrBookNotInCatalog = errors.New("book not found in catalog")
)

// PersistenceError wraps a storage read/write failure with the operation
// and key it occurred on. Mutations that hit one leave no partial state.
type PersistenceError struct {
	Op  string // "get", "set", "delete", "decode"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// CatalogError is the catalog API's in-band error sentinel. The service
// reports failures through an "error" field on an HTTP 200 response, so
// callers must check it even when the transport succeeds.
type CatalogError struct {
	Code string // non-"0" error code as returned by the API
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error %s", e.Code)
}
