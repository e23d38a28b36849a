package http

import (
	"encoding/json"
	"time"

	"caramelt/internal/core/application/usecases/queries"
)

// nullableString distinguishes an absent JSON field from an explicit null.
// PATCH bodies use it for clearable fields, where null means "clear" and
// absence means "leave unchanged".
type nullableString struct {
	set   bool
	value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.set = true
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &n.value)
}

// ptr returns the double-pointer form the update commands expect: nil when
// the field was absent, a pointer to nil when it was an explicit null.
func (n nullableString) ptr() **string {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// Request bodies.

type checkoutItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	FullName          string                `json:"fullName"`
	Email             string                `json:"email"`
	Phone             string                `json:"phone"`
	Whatsapp          *string               `json:"whatsapp"`
	RequestedPrepDate string                `json:"requestedPrepDate"`
	Notes             *string               `json:"notes"`
	PaymentMethod     string                `json:"paymentMethod"`
	Items             []checkoutItemRequest `json:"items"`
}

type acceptOrderRequest struct {
	ConfirmedPrepDate string `json:"confirmedPrepDate"`
}

type markPaidRequest struct {
	AdminComment *string `json:"adminComment"`
}

type completeOrderRequest struct {
	Outcome string `json:"outcome"`
}

type cancelOrderRequest struct {
	Reason *string `json:"reason"`
}

type updateOrderRequest struct {
	FullName *string        `json:"fullName"`
	Email    *string        `json:"email"`
	Phone    *string        `json:"phone"`
	Whatsapp nullableString `json:"whatsapp"`
	Notes    nullableString `json:"notes"`
}

type editOrderItemRequest struct {
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
}

type trackOrderRequest struct {
	OrderCode string `json:"orderCode"`
	Email     string `json:"email"`
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

type updateProductRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price"`
	ImageURL    nullableString `json:"imageUrl"`
	IsActive    *bool          `json:"isActive"`
}

// Response bodies.

type checkoutResponse struct {
	OrderID   string  `json:"orderId"`
	OrderCode string  `json:"orderCode"`
	Total     float64 `json:"total"`
}

type markPaidResponse struct {
	EmailSent bool   `json:"emailSent"`
	Warning   string `json:"warning,omitempty"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type orderSummaryResponse struct {
	ID                string     `json:"id"`
	OrderCode         string     `json:"orderCode"`
	Status            string     `json:"status"`
	PaymentMethod     string     `json:"paymentMethod"`
	RequestedPrepDate time.Time  `json:"requestedPrepDate"`
	ConfirmedPrepDate *time.Time `json:"confirmedPrepDate"`
	IsPaid            bool       `json:"isPaid"`
	PaidAt            *time.Time `json:"paidAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	CustomerName      string     `json:"customerName"`
	CustomerEmail     string     `json:"customerEmail"`
	CustomerPhone     string     `json:"customerPhone"`
	Total             float64    `json:"total"`
}

type orderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

type orderDetailResponse struct {
	ID                string              `json:"id"`
	OrderCode         string              `json:"orderCode"`
	Status            string              `json:"status"`
	PaymentMethod     string              `json:"paymentMethod"`
	RequestedPrepDate time.Time           `json:"requestedPrepDate"`
	ConfirmedPrepDate *time.Time          `json:"confirmedPrepDate"`
	Notes             *string             `json:"notes"`
	IsPaid            bool                `json:"isPaid"`
	PaidAt            *time.Time          `json:"paidAt"`
	AdminComment      *string             `json:"adminComment"`
	CreatedAt         time.Time           `json:"createdAt"`
	CustomerName      string              `json:"customerName"`
	CustomerEmail     string              `json:"customerEmail"`
	CustomerPhone     string              `json:"customerPhone"`
	CustomerWhatsapp  *string             `json:"customerWhatsapp"`
	Items             []orderItemResponse `json:"items"`
	Total             float64             `json:"total"`
}

func toProductResponse(p queries.ProductResponse) productResponse {
	return productResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Float64(),
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

func toOrderSummaryResponse(o queries.OrderSummaryResponse) orderSummaryResponse {
	return orderSummaryResponse{
		ID:                o.ID.String(),
		OrderCode:         o.OrderCode,
		Status:            o.Status.String(),
		PaymentMethod:     o.PaymentMethod,
		RequestedPrepDate: o.RequestedPrepDate,
		ConfirmedPrepDate: o.ConfirmedPrepDate,
		IsPaid:            o.IsPaid,
		PaidAt:            o.PaidAt,
		CreatedAt:         o.CreatedAt,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		Total:             o.Total.Float64(),
	}
}

func toOrderDetailResponse(o queries.OrderDetailResponse) orderDetailResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.Float64(),
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal.Float64(),
		}
	}

	return orderDetailResponse{
		ID:                o.ID.String(),
		OrderCode:         o.OrderCode,
		Status:            o.Status.String(),
		PaymentMethod:     o.PaymentMethod,
		RequestedPrepDate: o.RequestedPrepDate,
		ConfirmedPrepDate: o.ConfirmedPrepDate,
		Notes:             o.Notes,
		IsPaid:            o.IsPaid,
		PaidAt:            o.PaidAt,
		AdminComment:      o.AdminComment,
		CreatedAt:         o.CreatedAt,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		CustomerWhatsapp:  o.CustomerWhatsapp,
		Items:             items,
		Total:             o.Total.Float64(),
	}
}
