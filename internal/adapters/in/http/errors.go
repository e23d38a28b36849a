package http

import (
	"errors"
	"net/http"

	"caramelt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body. Flags carry machine-readable
// context for the two conflict cases the storefront UI branches on.
type errorResponse struct {
	Code             int    `json:"code"`
	Message          string `json:"message"`
	AlreadyCancelled bool   `json:"alreadyCancelled,omitempty"`
	HasOrders        bool   `json:"hasOrders,omitempty"`
}

// respondError maps domain errors to HTTP status codes. Validation and
// transition failures are client errors; unknown errors never leak their
// message to the client.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
