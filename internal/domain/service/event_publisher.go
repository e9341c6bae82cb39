package service

import (
	"context"
)

// Order event types emitted by the order service.
const (
	OrderEventCreated   = "order.created"
	OrderEventCancelled = "order.cancelled"
)

// OrderEvent describes an order lifecycle change for downstream consumers
// (fulfillment, analytics). Published after the owning transaction commits.
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`
	OrderID     int64  `json:"order_id"`
	UserID      string `json:"user_id"`
	TotalAmount string `json:"total_amount"`
	LineCount   int    `json:"line_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
