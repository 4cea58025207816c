package queries

import (
	"context"
	"strings"

	"wholesale/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDocumentsQueryHandler executes document listings against the database.
type GetDocumentsQueryHandler struct {
	db *gorm.DB
}

// NewGetDocumentsQueryHandler creates a handler for document listings.
func NewGetDocumentsQueryHandler(db *gorm.DB) GetDocumentsQueryHandler {
	return GetDocumentsQueryHandler{db: db}
}

// Handle executes the listing, sorted by document date descending.
func (h GetDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentsQuery,
) ([]GetDocumentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			id,
			document_number,
			document_date,
			seller_id,
			buyer_id,
			employee_id,
			order_id,
			total_amount
		FROM documents
		WHERE 1=1
	`)

	args := make([]any, 0, 2)
	if query.sellerID != nil {
		sql.WriteString(" AND seller_id = ?")
		args = append(args, query.sellerID.Bytes())
	}
	if query.buyerID != nil {
		sql.WriteString(" AND buyer_id = ?")
		args = append(args, query.buyerID.Bytes())
	}

	sql.WriteString(" ORDER BY document_date DESC")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]GetDocumentsQueryResponse, 0)
	for rows.Next() {
		var resp GetDocumentsQueryResponse
		var id, sellerID, buyerID, employeeID, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.DocumentNumber,
			&resp.DocumentDate,
			&sellerID,
			&buyerID,
			&employeeID,
			&orderID,
			&resp.TotalAmount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if resp.EmployeeID, err = kernel.UUIDFromBytes(employeeID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		documents = append(documents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
