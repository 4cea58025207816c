package ports

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
//
// GetForUpdate exists because the product row is the single contended
// resource of the system: two confirmations racing on the same product must
// not both succeed when combined demand exceeds availability. Implementations
// take a row-level lock so reserve/release bookkeeping serializes per product.
type ProductRepository interface {
	// Add persists a new product aggregate.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product aggregate holding a row-level lock
	// until the surrounding transaction ends. Must be called within an
	// active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product. Implementations surface the storage-level
	// constraint errors; the in-stock business constraint is checked by
	// the caller via product.EnsureDeletable.
	Delete(ctx context.Context, id kernel.UUID) error
}
