package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is emitted after an order commits, for async consumers
// such as fulfillment and analytics.
type OrderPlacedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Price     float64   `json:"price"`
	PlacedAt  time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
