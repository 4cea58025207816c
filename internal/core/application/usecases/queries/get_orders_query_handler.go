package queries

import (
	"context"
	"strings"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler executes filtered order listings against the database.
// The filter conditions are appended to one WHERE clause, so every combination
// of filters runs as a single query.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by order date descending;
// an unfiltered query returns every order in the system.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			o.id,
			o.order_number,
			o.buyer_id,
			o.seller_id,
			o.employee_id,
			o.status,
			o.order_date,
			o.status_change_date,
			o.total_amount,
			o.comments,
			o.document_id
		FROM orders o
		WHERE 1=1
	`)

	args := make([]any, 0, 8)

	if query.buyerID != nil {
		sql.WriteString(" AND o.buyer_id = ?")
		args = append(args, query.buyerID.Bytes())
	}
	if query.sellerID != nil {
		sql.WriteString(" AND o.seller_id = ?")
		args = append(args, query.sellerID.Bytes())
	}
	if query.employeeID != nil {
		sql.WriteString(" AND o.employee_id = ?")
		args = append(args, query.employeeID.Bytes())
	}
	if query.status != nil {
		sql.WriteString(" AND o.status = ?")
		args = append(args, *query.status)
	}
	if query.excludeStatus != nil {
		sql.WriteString(" AND o.status != ?")
		args = append(args, *query.excludeStatus)
	}
	if query.dateFrom != nil {
		sql.WriteString(" AND o.order_date >= ?")
		args = append(args, *query.dateFrom)
	}
	if query.dateTo != nil {
		sql.WriteString(" AND o.order_date <= ?")
		args = append(args, *query.dateTo)
	}
	if query.productID != nil {
		sql.WriteString(" AND EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = o.id AND i.product_id = ?)")
		args = append(args, query.productID.Bytes())
	}

	sql.WriteString(" ORDER BY o.order_date DESC")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, buyerID, sellerID, employeeID uuid.UUID
		var documentID uuid.NullUUID
		var status int

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&buyerID,
			&sellerID,
			&employeeID,
			&status,
			&resp.OrderDate,
			&resp.StatusChangeDate,
			&resp.TotalAmount,
			&resp.Comments,
			&documentID,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		if resp.EmployeeID, err = kernel.UUIDFromBytes(employeeID[:]); err != nil {
			return nil, err
		}
		if documentID.Valid {
			docID, idErr := kernel.UUIDFromBytes(documentID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DocumentID = &docID
		}
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
