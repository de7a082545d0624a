// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// All mutations are whole-collection read-modify-write under the collection lock.
type ProductRepository interface {
	// List retrieves the full catalog.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Apply mutates an existing product inside the collection lock, so
	// concurrent partial edits never clobber each other. The mutate
	// callback sees the currently persisted product; returning an error
	// aborts the write. ErrProductNotFound if absent.
	Apply(ctx context.Context, id uuid.UUID, mutate func(*entity.Product) error) (*entity.Product, error)

	// Delete removes a product; ErrProductNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
