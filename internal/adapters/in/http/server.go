// Package http exposes the order engine over a REST API: order placement
// and lifecycle actions for users, the payment-gateway webhook, driver
// registration, and the tracking and dashboard read views.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"logitech/internal/core/application/usecases/commands"
	"logitech/internal/core/application/usecases/queries"
	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/domain/services"
	"logitech/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Authentication and webhook headers.
const (
	HeaderUserID           = "X-User-ID"
	HeaderUserRole         = "X-User-Role"
	HeaderWebhookSignature = "X-Webhook-Signature"
)

var errActorHeadersMissing = errors.New("X-User-ID and X-User-Role headers are required")

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	registerDriverHandler   commands.RegisterDriverCommandHandler
	paymentEventHandler     commands.ProcessPaymentEventCommandHandler

	// Query handlers
	orderStatsHandler    queries.GetOrderStatsQueryHandler
	orderTrackingHandler queries.GetOrderTrackingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	paymentEventHandler commands.ProcessPaymentEventCommandHandler,
	orderStatsHandler queries.GetOrderStatsQueryHandler,
	orderTrackingHandler queries.GetOrderTrackingQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		registerDriverHandler:   registerDriverHandler,
		paymentEventHandler:     paymentEventHandler,
		orderStatsHandler:       orderStatsHandler,
		orderTrackingHandler:    orderTrackingHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/complete", s.CompleteDelivery)
	api.GET("/orders/:id/tracking", s.GetOrderTracking)
	api.GET("/stats", s.GetOrderStats)
	api.POST("/drivers", s.RegisterDriver)
	api.POST("/webhooks/payment", s.HandlePaymentWebhook)
}

// CreateOrder handles POST /api/v1/orders. The authenticated buyer places
// an order carrying the payment reference generated at checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}
	if actor.Role() != kernel.RoleBuyer {
		return jsonError(ctx, http.StatusForbidden, "only buyers can place orders")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid product id")
	}

	price, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid amount: "+err.Error())
	}

	deliveryArea, err := kernel.NewServiceArea(req.DeliveryArea)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid delivery area: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor.ID(), productID, req.TransactionID, price, deliveryArea,
	)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Buyers cancel their
// own pending or paid orders; admins any pending or paid order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete. Only the
// driver bound to the order can confirm its delivery.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}
	if actor.Role() != kernel.RoleDriver {
		return jsonError(ctx, http.StatusForbidden, "only drivers can complete deliveries")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, actor.ID())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}
	if actor.Role() != kernel.RoleAdmin {
		return jsonError(ctx, http.StatusForbidden, "only admins can register drivers")
	}

	var req RegisterDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid request body")
	}

	serviceArea, err := kernel.NewServiceArea(req.ServiceArea)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid service area: "+err.Error())
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, req.Name, serviceArea, req.Capacity)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid driver data: "+err.Error())
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterDriverResponse{DriverID: driverID.String()})
}

// HandlePaymentWebhook handles POST /api/v1/webhooks/payment. The raw body
// is captured before decoding because the gateway's signature covers the
// exact bytes on the wire.
func (s *Server) HandlePaymentWebhook(ctx echo.Context) error {
	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "unreadable request body")
	}

	var req PaymentWebhookRequest
	if err = json.Unmarshal(payload, &req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid webhook payload")
	}

	cmd, err := commands.NewProcessPaymentEventCommand(
		req.EventID,
		req.TransactionID,
		req.EventType,
		payload,
		ctx.Request().Header.Get(HeaderWebhookSignature),
	)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid webhook event: "+err.Error())
	}

	if err = s.paymentEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrderTracking handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	tracking, err := s.orderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusNotFound, "order not found")
		}
		return jsonError(ctx, http.StatusInternalServerError, "failed to load tracking view")
	}

	response := TrackingResponse{
		OrderID:       tracking.ID.String(),
		Status:        tracking.Status.String(),
		TransactionID: tracking.TransactionID,
		CreatedAt:     tracking.CreatedAt,
		UpdatedAt:     tracking.UpdatedAt,
		History:       make([]TrackingHistoryEntry, 0, len(tracking.History)),
	}
	if tracking.DriverID != nil {
		driverID := tracking.DriverID.String()
		response.DriverID = &driverID
	}
	for _, entry := range tracking.History {
		response.History = append(response.History, TrackingHistoryEntry{
			Status: entry.Status.String(),
			At:     entry.At,
			Actor:  entry.Actor,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/stats - the viewer-scoped dashboard.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewGetOrderStatsQuery(actor)
	if err != nil {
		return jsonError(ctx, http.StatusForbidden, err.Error())
	}

	stats, err := s.orderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "failed to load stats")
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		InTransit: stats.InTransit,
		Completed: stats.Completed,
	})
}

// actorFromHeaders authenticates the request from the gateway-provided user
// headers.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return kernel.Actor{}, errActorHeadersMissing
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, err
	}

	switch kernel.Role(rawRole) {
	case kernel.RoleBuyer:
		return kernel.NewBuyerActor(id)
	case kernel.RoleDriver:
		return kernel.NewDriverActor(id)
	case kernel.RoleAdmin:
		return kernel.NewAdminActor(id)
	default:
		return kernel.Actor{}, errs.NewValueIsInvalidError("role")
	}
}

// commandError maps domain errors onto HTTP status codes.
func (s *Server) commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrUnauthorizedEvent):
		return jsonError(ctx, http.StatusUnauthorized, "webhook signature verification failed")
	case errors.Is(err, order.ErrUnauthorizedActor):
		return jsonError(ctx, http.StatusForbidden, "actor is not permitted to perform this action")
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, "order not found")
	case errors.Is(err, order.ErrInvalidTransition):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return jsonError(ctx, http.StatusConflict, "concurrent modification, retry with fresh state")
	case errors.Is(err, services.ErrNoDriverAvailable):
		return jsonError(ctx, http.StatusConflict, "no driver available")
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "internal error")
	}
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
