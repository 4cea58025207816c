// Package documentrepo implements accounting document persistence. Documents
// are immutable once written: the repository exposes no update operation.
package documentrepo

import (
	"time"

	"wholesale/internal/core/domain/model/document"
	"wholesale/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentDTO represents the database structure for persisting documents.
type DocumentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentNumber string
	DocumentDate   time.Time       `gorm:"index"`
	SellerID       uuid.UUID       `gorm:"type:uuid;index"`
	BuyerID        uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid"`
	OrderID        uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric"`
	Items          []ItemDTO       `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "documents".
func (DocumentDTO) TableName() string {
	return "documents"
}

// ItemDTO represents one document line row.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DocumentID uuid.UUID       `gorm:"type:uuid;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;index"`
	Quantity   decimal.Decimal `gorm:"type:numeric"`
	Price      decimal.Decimal `gorm:"type:numeric"`
	Amount     decimal.Decimal `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming to use "document_items".
func (ItemDTO) TableName() string {
	return "document_items"
}

func fromDomain(aggregate *document.Document) DocumentDTO {
	documentItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(documentItems))
	for _, item := range documentItems {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			DocumentID: aggregate.ID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
			Amount:     item.Amount(),
		})
	}

	return DocumentDTO{
		ID:             aggregate.ID().Bytes(),
		DocumentNumber: aggregate.DocumentNumber(),
		DocumentDate:   aggregate.DocumentDate(),
		SellerID:       aggregate.SellerID().Bytes(),
		BuyerID:        aggregate.BuyerID().Bytes(),
		EmployeeID:     aggregate.EmployeeID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		TotalAmount:    aggregate.TotalAmount(),
		Items:          items,
	}
}

func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*document.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := document.RestoreItem(itemID, productID, itemDTO.Quantity, itemDTO.Price, itemDTO.Amount)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return document.RestoreDocument(
		id,
		dto.DocumentNumber,
		dto.DocumentDate,
		sellerID,
		buyerID,
		employeeID,
		orderID,
		dto.TotalAmount,
		items,
	)
}
