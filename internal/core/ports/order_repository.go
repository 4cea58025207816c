// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lifecycle command handlers load and store whole aggregates through it;
// read paths go through the query handlers instead.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing
	// its item set. The order must exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all of its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
