// Package store provides the catalog's book storage.
package store

import (
	"context"

	"github.com/bookvault/bookvault/internal/model"
	"github.com/bookvault/bookvault/internal/query"
)

// ListQuery bundles the optional predicates, ordering and pagination of a
// List call. A zero value returns the whole collection in stored order.
type ListQuery struct {
	Filters query.Filters
	SortBy  query.SortKey   // empty: keep stored order
	SortDir query.Direction // defaults to ascending
	Page    int             // 1-based; pagination applies only when Limit > 0
	Limit   int
}

// Pagination describes the slice of the matching set that was returned.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListResult is the outcome of a List call. Pagination is nil when the
// query did not request one.
type ListResult struct {
	Books      []model.Book `json:"books"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// BookStore is the interface for book storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type BookStore interface {
	// List returns the books matching the query, ordered and optionally
	// paginated. Returns an empty result if nothing matches.
	List(ctx context.Context, q ListQuery) (*ListResult, error)

	// FindByID retrieves a single book by its unique identifier.
	// Returns ErrBookNotFound if no book exists with the given ID.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// Create adds a new book to the catalog, assigning its ID and
	// stamping the creation and update timestamps.
	Create(ctx context.Context, book model.Book) (*model.Book, error)

	// Update replaces the stored book with the given record, preserving
	// the original ID and creation timestamp and refreshing the update
	// timestamp. Returns ErrBookNotFound if no book exists with the given ID.
	Update(ctx context.Context, id int64, book model.Book) (*model.Book, error)

	// DeleteByID removes a book and returns the removed record.
	// Returns ErrBookNotFound if no book exists with the given ID.
	DeleteByID(ctx context.Context, id int64) (*model.Book, error)

	// Stats derives catalog-wide aggregates from the full collection.
	Stats(ctx context.Context) (*model.Stats, error)
}
