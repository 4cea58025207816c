// Package productrepo implements product aggregate persistence, including
// the row-locked reads the inventory bookkeeping depends on.
package productrepo

import (
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// quantity and reserved are the two stock buckets of the inventory ledger.
type ProductDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;index"`
	Name           string          `gorm:"index"`
	Description    string
	Quantity       decimal.Decimal `gorm:"type:numeric"`
	Reserved       decimal.Decimal `gorm:"type:numeric"`
	Price          decimal.Decimal `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.OrganizationID().Bytes(),
		Name:           aggregate.Name(),
		Description:    aggregate.Description(),
		Quantity:       aggregate.Quantity(),
		Reserved:       aggregate.Reserved(),
		Price:          aggregate.Price(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		organizationID,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.Quantity,
		dto.Reserved,
	)
}
