package queries

import (
	"context"
	"database/sql"
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single catalog product.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			image_url,
			is_active,
			created_at
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	var resp ProductResponse
	var id uuid.UUID
	var price decimal.Decimal

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Description,
		&price,
		&resp.ImageURL,
		&resp.IsActive,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID().String())
		}
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	resp.ID = productID

	money, err := kernel.NewMoney(price)
	if err != nil {
		return ProductResponse{}, err
	}
	resp.Price = money

	return resp, nil
}
