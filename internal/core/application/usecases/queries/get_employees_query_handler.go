package queries

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEmployeesQueryHandler executes roster listings against the database.
type GetEmployeesQueryHandler struct {
	db *gorm.DB
}

// NewGetEmployeesQueryHandler creates a handler for employee rosters.
func NewGetEmployeesQueryHandler(db *gorm.DB) GetEmployeesQueryHandler {
	return GetEmployeesQueryHandler{db: db}
}

// Handle executes the listing, sorted by employee name. An organization
// without employees yields an empty roster, not an error.
func (h GetEmployeesQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeesQuery,
) ([]GetEmployeesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			organization_id,
			name,
			position,
			email
		FROM employees
		WHERE organization_id = ?
		ORDER BY name
	`, query.OrganizationID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]GetEmployeesQueryResponse, 0)
	for rows.Next() {
		var resp GetEmployeesQueryResponse
		var id, organizationID uuid.UUID

		err = rows.Scan(&id, &organizationID, &resp.Name, &resp.Position, &resp.Email)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrganizationID, err = kernel.UUIDFromBytes(organizationID[:]); err != nil {
			return nil, err
		}
		employees = append(employees, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
