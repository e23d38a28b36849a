// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence. Implements the repository pattern for the
// product aggregate, converting between domain entities and database rows.
package productrepo

import (
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL    *string         `gorm:"type:text"`
	// No default tag: gorm would skip a zero-value (inactive) field on
	// insert and let a column default win.
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database
// representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Decimal(),
		ImageURL:    aggregate.ImageURL(),
		IsActive:    aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using
// RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, price, dto.ImageURL, dto.IsActive, dto.CreatedAt)
}
