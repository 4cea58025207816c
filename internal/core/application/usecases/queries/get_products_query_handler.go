package queries

import (
	"context"
	"strings"

	"wholesale/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler executes catalog listings against the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the listing, sorted by product name.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			id,
			organization_id,
			name,
			description,
			quantity,
			reserved,
			price
		FROM products
		WHERE 1=1
	`)

	args := make([]any, 0, 1)
	if query.organizationID != nil {
		sql.WriteString(" AND organization_id = ?")
		args = append(args, query.organizationID.Bytes())
	}

	sql.WriteString(" ORDER BY name")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)
	for rows.Next() {
		var resp GetProductsQueryResponse
		var id, organizationID uuid.UUID

		err = rows.Scan(
			&id,
			&organizationID,
			&resp.Name,
			&resp.Description,
			&resp.Quantity,
			&resp.Reserved,
			&resp.Price,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrganizationID, err = kernel.UUIDFromBytes(organizationID[:]); err != nil {
			return nil, err
		}

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
