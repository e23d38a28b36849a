// Package http exposes the storefront and back-office API over echo.
// Handlers translate JSON requests into commands and queries; domain rules
// live behind them.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"caramelt/internal/core/application/usecases/commands"
	"caramelt/internal/core/application/usecases/queries"
	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/core/ports"
	"caramelt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	prepDateLayout = "2006-01-02"
	maxUploadBytes = 5 << 20
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	checkoutHandler           commands.CheckoutCommandHandler
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	markOrderPaidHandler      commands.MarkOrderPaidCommandHandler
	completeOrderHandler      commands.CompleteOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	uncancelOrderHandler      commands.UncancelOrderCommandHandler
	updateOrderDetailsHandler commands.UpdateOrderDetailsCommandHandler
	editOrderItemHandler      commands.EditOrderItemCommandHandler
	removeOrderItemHandler    commands.RemoveOrderItemCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	updateProductHandler      commands.UpdateProductCommandHandler
	deleteProductHandler      commands.DeleteProductCommandHandler

	getProductsHandler queries.GetProductsQueryHandler
	getProductHandler  queries.GetProductQueryHandler
	getOrdersHandler   queries.GetOrdersQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
	trackOrderHandler  queries.TrackOrderQueryHandler

	blobs ports.BlobStorage
}

// NewServer creates the HTTP server with all command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	uncancelOrderHandler commands.UncancelOrderCommandHandler,
	updateOrderDetailsHandler commands.UpdateOrderDetailsCommandHandler,
	editOrderItemHandler commands.EditOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	blobs ports.BlobStorage,
) *Server {
	return &Server{
		checkoutHandler:           checkoutHandler,
		acceptOrderHandler:        acceptOrderHandler,
		markOrderPaidHandler:      markOrderPaidHandler,
		completeOrderHandler:      completeOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		uncancelOrderHandler:      uncancelOrderHandler,
		updateOrderDetailsHandler: updateOrderDetailsHandler,
		editOrderItemHandler:      editOrderItemHandler,
		removeOrderItemHandler:    removeOrderItemHandler,
		createProductHandler:      createProductHandler,
		updateProductHandler:      updateProductHandler,
		deleteProductHandler:      deleteProductHandler,
		getProductsHandler:        getProductsHandler,
		getProductHandler:         getProductHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		trackOrderHandler:         trackOrderHandler,
		blobs:                     blobs,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.Checkout)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.CancelOrder)
	api.POST("/orders/:orderId/accept", s.AcceptOrder)
	api.POST("/orders/:orderId/payment", s.MarkOrderPaid)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/uncancel", s.UncancelOrder)
	api.PATCH("/orders/:orderId/items/:itemId", s.EditOrderItem)
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveOrderItem)

	api.POST("/track", s.TrackOrder)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:productId", s.GetProduct)
	api.PATCH("/products/:productId", s.UpdateProduct)
	api.DELETE("/products/:productId", s.DeleteProduct)
	api.POST("/products/upload", s.UploadProductImage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Checkout handles POST /api/v1/orders.
func (s *Server) Checkout(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	prepDate, err := time.Parse(prepDateLayout, req.RequestedPrepDate)
	if err != nil {
		return badRequest(ctx, "requestedPrepDate must be formatted as YYYY-MM-DD")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]commands.CheckoutLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, "invalid productId: "+item.ProductID)
		}
		lines = append(lines, commands.CheckoutLine{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCheckoutCommand(
		req.FullName, req.Email, req.Phone, req.Whatsapp,
		prepDate, req.Notes, paymentMethod, lines,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponse{
		OrderID:   result.OrderID.String(),
		OrderCode: result.OrderCode,
		Total:     result.Total.Float64(),
	})
}

// GetOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummaryResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(
		orderID, req.FullName, req.Email, req.Phone,
		req.Whatsapp.ptr(), req.Notes.ptr(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderDetailsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req acceptOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	confirmedDate, err := time.Parse(prepDateLayout, req.ConfirmedPrepDate)
	if err != nil {
		return badRequest(ctx, "confirmedPrepDate must be formatted as YYYY-MM-DD")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, confirmedDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:orderId/payment. A failed
// confirmation email surfaces as a warning, not an error.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req markPaidRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, req.AdminComment)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, markPaidResponse{
		EmailSent: result.EmailSent,
		Warning:   result.Warning,
	})
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req completeOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	outcome, err := order.StatusFromString(req.Outcome)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, outcome)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/:orderId. Cancelling an
// already-cancelled order returns 400 with the alreadyCancelled flag.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:             http.StatusBadRequest,
				Message:          err.Error(),
				AlreadyCancelled: true,
			})
		}
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UncancelOrder handles POST /api/v1/orders/:orderId/uncancel.
func (s *Server) UncancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewUncancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.uncancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EditOrderItem handles PATCH /api/v1/orders/:orderId/items/:itemId.
func (s *Server) EditOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	var req editOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var unitPrice *kernel.Money
	if req.UnitPrice != nil {
		price, priceErr := kernel.NewMoneyFromFloat(*req.UnitPrice)
		if priceErr != nil {
			return respondError(ctx, priceErr)
		}
		unitPrice = &price
	}

	cmd, err := commands.NewEditOrderItemCommand(orderID, itemID, req.Quantity, unitPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.editOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles POST /api/v1/track. Code and email must both match;
// the response never reveals which one was wrong.
func (s *Server) TrackOrder(ctx echo.Context) error {
	var req trackOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewTrackOrderQuery(req.OrderCode, req.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// GetProducts handles GET /api/v1/products. The storefront passes
// activeOnly=true; the back office omits it to see the whole catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	activeOnly := ctx.QueryParam("activeOnly") == "true"

	query := queries.NewGetProductsQuery(activeOnly)
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]productResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:productId.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	product, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(product))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	// New products are visible unless explicitly created inactive.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, req.Name, req.Description, price, req.ImageURL, isActive,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// UpdateProduct handles PATCH /api/v1/products/:productId.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req updateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var price *kernel.Money
	if req.Price != nil {
		p, priceErr := kernel.NewMoneyFromFloat(*req.Price)
		if priceErr != nil {
			return respondError(ctx, priceErr)
		}
		price = &p
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, req.Description, price, req.ImageURL.ptr(), req.IsActive,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:productId. Products
// referenced by orders cannot be deleted; the response carries the
// hasOrders flag so the UI can suggest deactivation instead.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:      http.StatusBadRequest,
				Message:   err.Error(),
				HasOrders: true,
			})
		}
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UploadProductImage handles POST /api/v1/products/upload. Accepts one
// image file up to 5 MB and returns its public URL.
func (s *Server) UploadProductImage(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return badRequest(ctx, "image file is required")
	}

	if fileHeader.Size > maxUploadBytes {
		return badRequest(ctx, "image must be 5 MB or smaller")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return badRequest(ctx, "only image uploads are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(ctx, err)
	}
	defer file.Close()

	key := fmt.Sprintf("products/%d-%s%s",
		time.Now().Unix(),
		kernel.NewUUID().String(),
		filepath.Ext(fileHeader.Filename),
	)

	url, err := s.blobs.Upload(ctx.Request().Context(), key, contentType, file)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, uploadResponse{URL: url})
}
