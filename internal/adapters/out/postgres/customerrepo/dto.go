// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"caramelt/internal/core/domain/model/customer"
	"caramelt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// The (email, phone) pair is indexed for the checkout upsert lookup.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_customers_email_phone"`
	Phone     string    `gorm:"type:varchar(32);not null;index:idx_customers_email_phone"`
	Whatsapp  *string   `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database
// representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		FullName:  aggregate.FullName(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Whatsapp:  aggregate.Whatsapp(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.FullName, dto.Email, dto.Phone, dto.Whatsapp, dto.CreatedAt, dto.UpdatedAt)
}
