package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	UserID    int64
	ProductID int64
}

// ListOrdersInput defines pagination for order listings. UserID and
// ProductID narrow the admin-wide listing and are ignored elsewhere.
type ListOrdersInput struct {
	Page  int
	Limit int

	UserID    int64
	ProductID int64
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// PlaceOrder creates an order for the caller, capturing the product's
	// current price onto the order row.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves one order. Non-admin callers only see their own;
	// anything else surfaces as not found rather than forbidden.
	GetOrder(ctx context.Context, caller *entity.Principal, orderID int64) (*entity.Order, error)

	// ListUserOrders retrieves a page of the caller's own orders.
	ListUserOrders(ctx context.Context, userID int64, input *ListOrdersInput) ([]*entity.Order, error)

	// ListAllOrders retrieves a page of every order. Admin only.
	ListAllOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)

	// PickupQR renders a pickup QR code image for an order the caller may see.
	PickupQR(ctx context.Context, caller *entity.Principal, orderID int64) ([]byte, error)

	// VerifyPickup resolves scanned QR code data back to the order it was
	// issued for. Admin only; used at the pickup counter.
	VerifyPickup(ctx context.Context, qrData string) (*entity.Order, error)
}
