package queries

import (
	"context"

	"caramelt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves catalog products from the database.
//
// Example:
//
//	handler := NewGetProductsQueryHandler(db)
//	query := NewGetProductsQuery(true)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get products: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d products\n", len(products))
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time, newest
// first, matching the storefront display order.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			price,
			image_url,
			is_active,
			created_at
		FROM products
	`
	if query.ActiveOnly() {
		sql += ` WHERE is_active`
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var resp ProductResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&price,
			&resp.ImageURL,
			&resp.IsActive,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.Price = money

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
