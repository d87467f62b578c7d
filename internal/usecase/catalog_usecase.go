package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput defines pagination and visibility for the product listing.
type ListProductsInput struct {
	Page  int
	Limit int

	// IncludeUnavailable lists hidden products too. Only admin callers set it.
	IncludeUnavailable bool
}

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	IsAvailable bool
}

// UpdateProductInput defines the data for a full product update.
type UpdateProductInput struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	IsAvailable bool
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}
