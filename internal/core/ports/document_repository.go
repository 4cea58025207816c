package ports

import (
	"context"

	"wholesale/internal/core/domain/model/document"
	"wholesale/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for accounting
// documents. Documents are write-once: there is no update operation.
type DocumentRepository interface {
	// Add persists a new document together with its items.
	Add(ctx context.Context, aggregate *document.Document) error

	// Get retrieves a document by its unique identifier, including items.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetByOrder retrieves the document derived from the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*document.Document, error)
}
