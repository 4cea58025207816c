package queries

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrganizationsQueryHandler executes directory listings against the database.
type GetOrganizationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrganizationsQueryHandler creates a handler for the organization directory.
func NewGetOrganizationsQueryHandler(db *gorm.DB) GetOrganizationsQueryHandler {
	return GetOrganizationsQueryHandler{db: db}
}

// Handle executes the listing, sorted by organization name.
func (h GetOrganizationsQueryHandler) Handle(
	ctx context.Context,
	query GetOrganizationsQuery,
) ([]GetOrganizationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			inn,
			kpp,
			address,
			email
		FROM organizations
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	organizations := make([]GetOrganizationsQueryResponse, 0)
	for rows.Next() {
		var resp GetOrganizationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.INN, &resp.KPP, &resp.Address, &resp.Email)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		organizations = append(organizations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return organizations, nil
}
