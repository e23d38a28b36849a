package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"caramelt/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler resolves the customer-facing tracking lookup.
//
// The order is fetched by code and the email is compared case-insensitively
// in application code. A wrong code and a wrong email produce the same
// generic not-found error, so the endpoint leaks nothing about which half
// failed.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking lookup.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	notFound := errs.NewObjectNotFoundError("order", query.OrderCode())

	resp, err := scanOrderDetail(ctx, h.db, `o.order_code = ?`, query.OrderCode())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, notFound
		}
		return OrderDetailResponse{}, err
	}

	if !strings.EqualFold(resp.CustomerEmail, query.Email()) {
		return OrderDetailResponse{}, notFound
	}

	return resp, nil
}
