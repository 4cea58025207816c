package queries

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNegativeStockQueryHandler runs the stock bookkeeping audit.
type GetNegativeStockQueryHandler struct {
	db *gorm.DB
}

// NewGetNegativeStockQueryHandler creates a handler for the stock audit.
func NewGetNegativeStockQueryHandler(db *gorm.DB) GetNegativeStockQueryHandler {
	return GetNegativeStockQueryHandler{db: db}
}

// Handle returns every product with a negative available or reserved bucket.
func (h GetNegativeStockQueryHandler) Handle(
	ctx context.Context,
	query GetNegativeStockQuery,
) ([]GetNegativeStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			reserved
		FROM products
		WHERE quantity < 0 OR reserved < 0
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	violations := make([]GetNegativeStockQueryResponse, 0)
	for rows.Next() {
		var resp GetNegativeStockQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Quantity, &resp.Reserved); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		violations = append(violations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return violations, nil
}
