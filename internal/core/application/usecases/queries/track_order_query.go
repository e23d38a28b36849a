package queries

import (
	"errors"

	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery is the customer-facing order lookup. Both the order code
// and the email used at checkout must match.
type TrackOrderQuery struct {
	orderCode string
	email     string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query.
func NewTrackOrderQuery(orderCode, email string) (TrackOrderQuery, error) {
	if orderCode == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("orderCode")
	}
	if email == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("email")
	}

	return TrackOrderQuery{
		orderCode: orderCode,
		email:     email,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderCode() string { return q.orderCode }
func (q TrackOrderQuery) Email() string     { return q.email }
