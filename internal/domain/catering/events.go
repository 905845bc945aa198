package catering

import (
	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypePurchaseOrder = "PurchaseOrder"
	AggregateTypeDelivery      = "Delivery"
)

// Event type constants
const (
	EventTypePurchaseOrderCreated   = "PurchaseOrderCreated"
	EventTypePurchaseOrderConfirmed = "PurchaseOrderConfirmed"
	EventTypeDeliveryCreated        = "DeliveryCreated"
	EventTypeDeliveryReceived       = "DeliveryReceived"
	EventTypeDeliveryValidated      = "DeliveryValidated"
	EventTypeDeliveryRejected       = "DeliveryRejected"
)

// PurchaseOrderCreatedEvent is raised when a new forecast order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	FlightID     uuid.UUID `json:"flight_id"`
	FlightNumber string    `json:"flight_number"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, AggregateTypePurchaseOrder, order.ID, order.TenantID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		FlightID:        order.FlightID,
		FlightNumber:    order.FlightNumber,
	}
}

// EventType returns the event type name
func (e *PurchaseOrderCreatedEvent) EventType() string {
	return EventTypePurchaseOrderCreated
}

// PurchaseOrderConfirmedEvent is raised when the supplier confirms an order
type PurchaseOrderConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	LineCount   int             `json:"line_count"`
}

// NewPurchaseOrderConfirmedEvent creates a new PurchaseOrderConfirmedEvent
func NewPurchaseOrderConfirmedEvent(order *PurchaseOrder) *PurchaseOrderConfirmedEvent {
	return &PurchaseOrderConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderConfirmed, AggregateTypePurchaseOrder, order.ID, order.TenantID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		TotalAmount:     order.TotalAmount,
		LineCount:       len(order.Lines),
	}
}

// EventType returns the event type name
func (e *PurchaseOrderConfirmedEvent) EventType() string {
	return EventTypePurchaseOrderConfirmed
}

// DeliveryCreatedEvent is raised when a new delivery note is registered
type DeliveryCreatedEvent struct {
	shared.BaseDomainEvent
	DeliveryID     uuid.UUID `json:"delivery_id"`
	DeliveryNumber string    `json:"delivery_number"`
	FlightID       uuid.UUID `json:"flight_id"`
	SupplierName   string    `json:"supplier_name"`
}

// NewDeliveryCreatedEvent creates a new DeliveryCreatedEvent
func NewDeliveryCreatedEvent(delivery *Delivery) *DeliveryCreatedEvent {
	return &DeliveryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryCreated, AggregateTypeDelivery, delivery.ID, delivery.TenantID),
		DeliveryID:      delivery.ID,
		DeliveryNumber:  delivery.DeliveryNumber,
		FlightID:        delivery.FlightID,
		SupplierName:    delivery.SupplierName,
	}
}

// EventType returns the event type name
func (e *DeliveryCreatedEvent) EventType() string {
	return EventTypeDeliveryCreated
}

// DeliveryReceivedEvent is raised when goods are physically received
type DeliveryReceivedEvent struct {
	shared.BaseDomainEvent
	DeliveryID     uuid.UUID       `json:"delivery_id"`
	DeliveryNumber string          `json:"delivery_number"`
	ReceivedBy     string          `json:"received_by"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// NewDeliveryReceivedEvent creates a new DeliveryReceivedEvent
func NewDeliveryReceivedEvent(delivery *Delivery) *DeliveryReceivedEvent {
	return &DeliveryReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryReceived, AggregateTypeDelivery, delivery.ID, delivery.TenantID),
		DeliveryID:      delivery.ID,
		DeliveryNumber:  delivery.DeliveryNumber,
		ReceivedBy:      delivery.ReceivedBy,
		TotalAmount:     delivery.TotalAmount,
	}
}

// EventType returns the event type name
func (e *DeliveryReceivedEvent) EventType() string {
	return EventTypeDeliveryReceived
}

// DeliveryValidatedEvent is raised when a delivery passes validation
type DeliveryValidatedEvent struct {
	shared.BaseDomainEvent
	DeliveryID      uuid.UUID  `json:"delivery_id"`
	DeliveryNumber  string     `json:"delivery_number"`
	PurchaseOrderID *uuid.UUID `json:"purchase_order_id,omitempty"`
	ValidatedBy     string     `json:"validated_by"`
}

// NewDeliveryValidatedEvent creates a new DeliveryValidatedEvent
func NewDeliveryValidatedEvent(delivery *Delivery) *DeliveryValidatedEvent {
	return &DeliveryValidatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryValidated, AggregateTypeDelivery, delivery.ID, delivery.TenantID),
		DeliveryID:      delivery.ID,
		DeliveryNumber:  delivery.DeliveryNumber,
		PurchaseOrderID: delivery.PurchaseOrderID,
		ValidatedBy:     delivery.ValidatedBy,
	}
}

// EventType returns the event type name
func (e *DeliveryValidatedEvent) EventType() string {
	return EventTypeDeliveryValidated
}

// DeliveryRejectedEvent is raised when a delivery is rejected
type DeliveryRejectedEvent struct {
	shared.BaseDomainEvent
	DeliveryID     uuid.UUID `json:"delivery_id"`
	DeliveryNumber string    `json:"delivery_number"`
	RejectedBy     string    `json:"rejected_by"`
	Reason         string    `json:"reason"`
}

// NewDeliveryRejectedEvent creates a new DeliveryRejectedEvent
func NewDeliveryRejectedEvent(delivery *Delivery) *DeliveryRejectedEvent {
	return &DeliveryRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryRejected, AggregateTypeDelivery, delivery.ID, delivery.TenantID),
		DeliveryID:      delivery.ID,
		DeliveryNumber:  delivery.DeliveryNumber,
		RejectedBy:      delivery.RejectedBy,
		Reason:          delivery.RejectReason,
	}
}

// EventType returns the event type name
func (e *DeliveryRejectedEvent) EventType() string {
	return EventTypeDeliveryRejected
}
