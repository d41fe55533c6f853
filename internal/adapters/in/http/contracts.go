package http

import "time"

// Error is the JSON error payload returned by every handler.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the order-placement request body. The buyer comes
// from the authenticated actor headers, not the body.
type CreateOrderRequest struct {
	ProductID     string `json:"product_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	DeliveryArea  string `json:"delivery_area"`
}

// CreateOrderResponse returns the id of the newly placed order.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// RegisterDriverRequest is the driver-registration request body.
type RegisterDriverRequest struct {
	Name        string `json:"name"`
	ServiceArea string `json:"service_area"`
	Capacity    int    `json:"capacity"`
}

// RegisterDriverResponse returns the id of the newly registered driver.
type RegisterDriverResponse struct {
	DriverID string `json:"driver_id"`
}

// PaymentWebhookRequest is the payment-gateway callback body. The signature
// travels in the X-Webhook-Signature header and covers the raw body bytes.
type PaymentWebhookRequest struct {
	EventID       string `json:"event_id"`
	TransactionID string `json:"transaction_id"`
	EventType     string `json:"event_type"`
}

// TrackingResponse is the tracking view of one order.
type TrackingResponse struct {
	OrderID       string                 `json:"order_id"`
	Status        string                 `json:"status"`
	DriverID      *string                `json:"driver_id,omitempty"`
	TransactionID string                 `json:"transaction_id"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	History       []TrackingHistoryEntry `json:"history"`
}

// TrackingHistoryEntry is one audit record in the tracking response.
type TrackingHistoryEntry struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
}

// StatsResponse is the dashboard aggregate for the requesting viewer.
type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	InTransit int `json:"in_transit"`
	Completed int `json:"completed"`
}
