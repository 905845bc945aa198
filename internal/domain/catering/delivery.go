package catering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DeliveryStatus represents the status of a delivery note
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusReceived  DeliveryStatus = "RECEIVED"
	DeliveryStatusValidated DeliveryStatus = "VALIDATED"
	DeliveryStatusRejected  DeliveryStatus = "REJECTED"
)

// IsValid checks if the status is a valid DeliveryStatus
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusReceived,
		DeliveryStatusValidated, DeliveryStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of DeliveryStatus
func (s DeliveryStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Validated and Rejected are reachable from any non-terminal state: a
// delivery does not have to pass through Received before a quality decision.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPending:
		return target == DeliveryStatusReceived || target == DeliveryStatusValidated || target == DeliveryStatusRejected
	case DeliveryStatusReceived:
		return target == DeliveryStatusValidated || target == DeliveryStatusRejected
	case DeliveryStatusValidated, DeliveryStatusRejected:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true for statuses that admit no further transitions
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusValidated || s == DeliveryStatusRejected
}

// DeliveryLine represents a line on a delivery note. ArticleID is nil for
// free-text lines the supplier added without a catalog reference; such
// lines are excluded from reconciliation.
type DeliveryLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	DeliveryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticleID   *uuid.UUID      `gorm:"type:uuid;index"`
	ArticleCode string          `gorm:"type:varchar(50)"`
	Description string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitPrice
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DeliveryLine) TableName() string {
	return "delivery_lines"
}

// NewDeliveryLine creates a new delivery line linked to a catalog article
func NewDeliveryLine(deliveryID, articleID uuid.UUID, articleCode, description string, quantity decimal.Decimal, unitPrice valueobject.Money) (*DeliveryLine, error) {
	if articleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Article ID cannot be empty")
	}
	line, err := newDeliveryLine(deliveryID, description, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	line.ArticleID = &articleID
	line.ArticleCode = articleCode
	return line, nil
}

// NewFreeTextDeliveryLine creates a delivery line with no article reference
func NewFreeTextDeliveryLine(deliveryID uuid.UUID, description string, quantity decimal.Decimal, unitPrice valueobject.Money) (*DeliveryLine, error) {
	return newDeliveryLine(deliveryID, description, quantity, unitPrice)
}

func newDeliveryLine(deliveryID uuid.UUID, description string, quantity decimal.Decimal, unitPrice valueobject.Money) (*DeliveryLine, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Line description cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &DeliveryLine{
		ID:          uuid.New(),
		DeliveryID:  deliveryID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		Amount:      quantity.Mul(unitPrice.Amount()),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// HasArticle returns true if the line references a catalog article
func (l *DeliveryLine) HasArticle() bool {
	return l.ArticleID != nil
}

// GetAmountMoney returns the line amount as Money value object
func (l *DeliveryLine) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(l.Amount)
}

// Delivery represents a supplier delivery note aggregate root ("BL").
// It optionally links to the forecast purchase order it fulfils; validation
// reconciles the two and records any discrepancies.
type Delivery struct {
	shared.TenantAggregateRoot
	DeliveryNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_delivery_tenant_number,priority:2"`
	PurchaseOrderID *uuid.UUID      `gorm:"type:uuid;index"`
	FlightID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	FlightNumber    string          `gorm:"type:varchar(20);not null"`
	SupplierName    string          `gorm:"type:varchar(200);not null"`
	DeliveryDate    time.Time       `gorm:"not null;index"`
	Lines           []DeliveryLine  `gorm:"foreignKey:DeliveryID;references:ID"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status          DeliveryStatus  `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Remark          string          `gorm:"type:text"`
	ReceivedBy      string          `gorm:"type:varchar(100)"`
	ReceivedAt      *time.Time
	ValidatedBy     string `gorm:"type:varchar(100)"`
	ValidatedAt     *time.Time
	RejectedBy      string `gorm:"type:varchar(100)"`
	RejectedAt      *time.Time
	RejectReason    string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Delivery) TableName() string {
	return "deliveries"
}

// NewDelivery creates a new delivery note in PENDING status
func NewDelivery(tenantID uuid.UUID, deliveryNumber string, flightID uuid.UUID, flightNumber, supplierName string, deliveryDate time.Time) (*Delivery, error) {
	if deliveryNumber == "" {
		return nil, shared.NewDomainError("INVALID_DELIVERY_NUMBER", "Delivery number cannot be empty")
	}
	if len(deliveryNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_DELIVERY_NUMBER", "Delivery number cannot exceed 50 characters")
	}
	if flightID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FLIGHT", "Flight ID cannot be empty")
	}
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if deliveryDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_DATE", "Delivery date cannot be empty")
	}

	delivery := &Delivery{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		DeliveryNumber:      deliveryNumber,
		FlightID:            flightID,
		FlightNumber:        flightNumber,
		SupplierName:        supplierName,
		DeliveryDate:        deliveryDate,
		Lines:               make([]DeliveryLine, 0),
		TotalAmount:         decimal.Zero,
		Status:              DeliveryStatusPending,
	}

	delivery.AddDomainEvent(NewDeliveryCreatedEvent(delivery))

	return delivery, nil
}

// LinkPurchaseOrder links the delivery to the forecast order it fulfils.
// Only allowed before receiving.
func (d *Delivery) LinkPurchaseOrder(orderID uuid.UUID) error {
	if d.Status != DeliveryStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot link order to a non-pending delivery")
	}
	if orderID == uuid.Nil {
		return shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	d.PurchaseOrderID = &orderID
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

// AddLine adds an article-linked line to the delivery.
// Only allowed in PENDING status. Each article may appear at most once.
func (d *Delivery) AddLine(articleID uuid.UUID, articleCode, description string, quantity decimal.Decimal, unitPrice valueobject.Money) (*DeliveryLine, error) {
	if d.Status != DeliveryStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add lines to a non-pending delivery")
	}

	for _, line := range d.Lines {
		if line.ArticleID != nil && *line.ArticleID == articleID {
			return nil, shared.NewDomainError("DUPLICATE_ARTICLE", "Article already exists in delivery, update quantity instead")
		}
	}

	line, err := NewDeliveryLine(d.ID, articleID, articleCode, description, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	d.Lines = append(d.Lines, *line)
	d.recalculateTotal()
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return line, nil
}

// AddFreeTextLine adds a line without a catalog article reference.
// Only allowed in PENDING status.
func (d *Delivery) AddFreeTextLine(description string, quantity decimal.Decimal, unitPrice valueobject.Money) (*DeliveryLine, error) {
	if d.Status != DeliveryStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add lines to a non-pending delivery")
	}

	line, err := NewFreeTextDeliveryLine(d.ID, description, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	d.Lines = append(d.Lines, *line)
	d.recalculateTotal()
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return line, nil
}

// RemoveLine removes a line from the delivery.
// Only allowed in PENDING status.
func (d *Delivery) RemoveLine(lineID uuid.UUID) error {
	if d.Status != DeliveryStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove lines from a non-pending delivery")
	}

	for idx, line := range d.Lines {
		if line.ID == lineID {
			d.Lines = append(d.Lines[:idx], d.Lines[idx+1:]...)
			d.recalculateTotal()
			d.UpdatedAt = time.Now()
			d.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Delivery line not found")
}

// Receive records physical receipt of the goods, transitioning PENDING to RECEIVED
func (d *Delivery) Receive(receivedBy string) error {
	if !d.Status.CanTransitionTo(DeliveryStatusReceived) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot receive delivery in %s status", d.Status))
	}
	if receivedBy == "" {
		return shared.NewDomainError("INVALID_RECEIVER", "Receiver is required")
	}
	if len(d.Lines) == 0 {
		return shared.NewDomainError("NO_LINES", "Cannot receive delivery without lines")
	}

	now := time.Now()
	d.Status = DeliveryStatusReceived
	d.ReceivedBy = receivedBy
	d.ReceivedAt = &now
	d.UpdatedAt = now
	d.IncrementVersion()

	d.AddDomainEvent(NewDeliveryReceivedEvent(d))

	return nil
}

// Validate marks the delivery as validated. Allowed from any non-terminal
// state; re-validating an already validated delivery is a conflict, and a
// rejected delivery is an invalid-state error.
func (d *Delivery) Validate(validatedBy string, at time.Time) error {
	if d.Status == DeliveryStatusValidated {
		return shared.NewDomainError("ALREADY_VALIDATED", "Delivery has already been validated")
	}
	if !d.Status.CanTransitionTo(DeliveryStatusValidated) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot validate delivery in %s status", d.Status))
	}
	if validatedBy == "" {
		return shared.NewDomainError("INVALID_VALIDATOR", "Validator is required")
	}

	d.Status = DeliveryStatusValidated
	d.ValidatedBy = validatedBy
	d.ValidatedAt = &at
	d.UpdatedAt = at
	d.IncrementVersion()

	d.AddDomainEvent(NewDeliveryValidatedEvent(d))

	return nil
}

// Reject marks the delivery as rejected. Allowed from any non-terminal state.
func (d *Delivery) Reject(rejectedBy, reason string, at time.Time) error {
	if !d.Status.CanTransitionTo(DeliveryStatusRejected) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot reject delivery in %s status", d.Status))
	}
	if rejectedBy == "" {
		return shared.NewDomainError("INVALID_REJECTER", "Rejecter is required")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Reject reason is required")
	}

	d.Status = DeliveryStatusRejected
	d.RejectedBy = rejectedBy
	d.RejectedAt = &at
	d.RejectReason = reason
	d.UpdatedAt = at
	d.IncrementVersion()

	d.AddDomainEvent(NewDeliveryRejectedEvent(d))

	return nil
}

// recalculateTotal recalculates the delivery total
func (d *Delivery) recalculateTotal() {
	total := decimal.Zero
	for _, line := range d.Lines {
		total = total.Add(line.Amount)
	}
	d.TotalAmount = total
}

// GetTotalAmountMoney returns total amount as Money
func (d *Delivery) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(d.TotalAmount)
}

// HasLinkedOrder returns true if the delivery is linked to a forecast order
func (d *Delivery) HasLinkedOrder() bool {
	return d.PurchaseOrderID != nil
}

// LineCount returns the number of lines on the delivery
func (d *Delivery) LineCount() int {
	return len(d.Lines)
}

// IsPending returns true if delivery is awaiting receipt
func (d *Delivery) IsPending() bool {
	return d.Status == DeliveryStatusPending
}

// IsReceived returns true if delivery has been received but not yet validated
func (d *Delivery) IsReceived() bool {
	return d.Status == DeliveryStatusReceived
}

// IsValidated returns true if delivery has been validated
func (d *Delivery) IsValidated() bool {
	return d.Status == DeliveryStatusValidated
}

// CanModify returns true if the delivery lines can still be edited
func (d *Delivery) CanModify() bool {
	return d.IsPending()
}
