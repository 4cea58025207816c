package queries

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDocumentQueryHandler retrieves a single document and its lines.
type GetDocumentQueryHandler struct {
	db *gorm.DB
}

// NewGetDocumentQueryHandler creates a handler for single document retrieval.
func NewGetDocumentQueryHandler(db *gorm.DB) GetDocumentQueryHandler {
	return GetDocumentQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when no document
// exists under the requested identifier.
func (h GetDocumentQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentQuery,
) (GetDocumentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDocumentQueryResponse{}, err
	}

	var resp GetDocumentQueryResponse
	var id, sellerID, buyerID, employeeID, orderID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.DocumentID().Bytes()).Row()

	err := row.Scan(
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
		return GetDocumentQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"document", query.DocumentID().String(), err)
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDocumentQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetDocumentQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetDocumentQueryResponse{}, err
	}
	if resp.EmployeeID, err = kernel.UUIDFromBytes(employeeID[:]); err != nil {
		return GetDocumentQueryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetDocumentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			price,
			amount
		FROM document_items
		WHERE document_id = ?
		ORDER BY id
	`, query.DocumentID().Bytes()).Rows()
	if err != nil {
		return GetDocumentQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]GetDocumentQueryItemResponse, 0)
	for rows.Next() {
		var item GetDocumentQueryItemResponse
		var itemID, productID uuid.UUID

		if err = rows.Scan(&itemID, &productID, &item.Quantity, &item.Price, &item.Amount); err != nil {
			return GetDocumentQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return GetDocumentQueryResponse{}, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetDocumentQueryResponse{}, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return GetDocumentQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}
