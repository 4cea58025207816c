// Package orderrepo implements order aggregate persistence. It maps the
// order and its lines onto the orders and order_items tables and rebuilds
// the aggregate through the domain restore constructors on read.
package orderrepo

import (
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by buyer, seller and status to serve the listing queries.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber      string          `gorm:"uniqueIndex"`
	BuyerID          uuid.UUID       `gorm:"type:uuid;index"`
	SellerID         uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;index"`
	Status           int             `gorm:"index"`
	OrderDate        time.Time       `gorm:"index"`
	StatusChangeDate time.Time
	TotalAmount      decimal.Decimal `gorm:"type:numeric"`
	Comments         string
	DocumentID       *uuid.UUID `gorm:"type:uuid"`
	Items            []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line row.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;index"`
	Quantity  decimal.Decimal `gorm:"type:numeric"`
	Price     decimal.Decimal `gorm:"type:numeric"`
	Amount    decimal.Decimal `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var documentID *uuid.UUID
	if id := aggregate.DocumentID(); id != nil {
		raw := id.Bytes()
		documentID = &raw
	}

	orderItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(orderItems))
	for _, item := range orderItems {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Amount:    item.Amount(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		BuyerID:          aggregate.BuyerID().Bytes(),
		SellerID:         aggregate.SellerID().Bytes(),
		EmployeeID:       aggregate.EmployeeID().Bytes(),
		Status:           int(aggregate.Status()),
		OrderDate:        aggregate.OrderDate(),
		StatusChangeDate: aggregate.StatusChangeDate(),
		TotalAmount:      aggregate.TotalAmount(),
		Comments:         aggregate.Comments(),
		DocumentID:       documentID,
		Items:            items,
	}
}

// toDomain rebuilds the order aggregate from its database rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	var documentID *kernel.UUID
	if dto.DocumentID != nil {
		docID, docErr := kernel.UUIDFromBytes((*dto.DocumentID)[:])
		if docErr != nil {
			return nil, docErr
		}
		documentID = &docID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, productID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		buyerID,
		sellerID,
		employeeID,
		order.Status(dto.Status),
		dto.OrderNumber,
		dto.OrderDate,
		dto.StatusChangeDate,
		dto.Comments,
		documentID,
		items,
	)
}
