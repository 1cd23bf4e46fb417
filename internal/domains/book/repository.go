package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the catalog. The interface
// keeps the store swappable and mockable in unit tests.
type Repository interface {
	// Create persists a new record; the id is generated by the caller.
	Create(ctx context.Context, b *Book) error

	// FindAll returns every record in store order. No pagination.
	FindAll(ctx context.Context) ([]Book, error)

	// FindByID returns ErrBookNotFound when no record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// Update rewrites the mutable fields; ErrBookNotFound when absent.
	Update(ctx context.Context, b *Book) error

	// Delete removes the record; ErrBookNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListImageURLs returns the non-empty image URLs of all records,
	// used by the orphan sweep to compute the referenced file set.
	ListImageURLs(ctx context.Context) ([]string, error)
}
