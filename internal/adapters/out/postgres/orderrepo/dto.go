// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Orders are stored with their line items and always
// travel through the repository as a whole aggregate.
package orderrepo

import (
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The order code is the customer-facing tracking handle and is
// unique; status is stored as its integer value.
type OrderDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	OrderCode         string         `gorm:"type:varchar(16);not null;uniqueIndex"`
	RequestedPrepDate time.Time      `gorm:"not null"`
	ConfirmedPrepDate *time.Time     `gorm:""`
	Notes             *string        `gorm:"type:text"`
	PaymentMethod     string         `gorm:"type:varchar(32);not null"`
	Status            int            `gorm:"not null;index"`
	IsPaid            bool           `gorm:"not null;default:false"`
	PaidAt            *time.Time     `gorm:""`
	AdminComment      *string        `gorm:"type:text"`
	CreatedAt         time.Time      `gorm:"not null"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line
// items. Product name and unit price are snapshots from checkout time, not
// live references into the catalog.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Quantity:    item.Quantity(),
			LineTotal:   item.LineTotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:                orderID,
		CustomerID:        aggregate.CustomerID().Bytes(),
		OrderCode:         aggregate.Code(),
		RequestedPrepDate: aggregate.RequestedPrepDate(),
		ConfirmedPrepDate: aggregate.ConfirmedPrepDate(),
		Notes:             aggregate.Notes(),
		PaymentMethod:     aggregate.PaymentMethod().String(),
		Status:            int(aggregate.Status()),
		IsPaid:            aggregate.IsPaid(),
		PaidAt:            aggregate.PaidAt(),
		AdminComment:      aggregate.AdminComment(),
		CreatedAt:         aggregate.CreatedAt(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.OrderCode,
		dto.RequestedPrepDate,
		dto.ConfirmedPrepDate,
		dto.Notes,
		paymentMethod,
		order.Status(dto.Status),
		dto.IsPaid,
		dto.PaidAt,
		dto.AdminComment,
		dto.CreatedAt,
		items,
	)
}

// itemToDomain converts a line item DTO to its domain entity using
// RestoreItem, which recomputes the line total from the snapshot.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.ProductName, unitPrice, dto.Quantity)
}
