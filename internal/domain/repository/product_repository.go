package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List retrieves a page of products ordered by ID. When availableOnly is
	// set, products marked unavailable are excluded.
	List(ctx context.Context, offset, limit int, availableOnly bool) ([]*entity.Product, error)

	// Create persists a new product to the catalog.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id int64) error
}
