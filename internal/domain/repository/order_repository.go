package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing. Zero values match everything.
type OrderFilter struct {
	UserID    int64
	ProductID int64
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByUser retrieves a page of one user's orders, newest first.
	FindByUser(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error)

	// List retrieves a page of all orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter, offset, limit int) ([]*entity.Order, error)

	// FindInRange retrieves every order created inside [start, end].
	// Both bounds are inclusive; callers aggregating adjacent windows must
	// account for the shared boundary instant.
	FindInRange(ctx context.Context, start, end time.Time) ([]entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error
}
