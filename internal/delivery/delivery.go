// Package delivery defines the contract shared by every transport the
// application exposes.
package delivery

import "context"

// Delivery is a long-running transport, such as an HTTP server.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is cancelled.
	Serve(ctx context.Context) error
}
