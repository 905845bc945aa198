package catering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a forecast purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusSent      PurchaseOrderStatus = "SENT"
	PurchaseOrderStatusConfirmed PurchaseOrderStatus = "CONFIRMED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent,
		PurchaseOrderStatusConfirmed, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusSent || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusSent:
		return target == PurchaseOrderStatusConfirmed || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusConfirmed, PurchaseOrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderLine represents a line in a forecast purchase order
type OrderLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticleID   uuid.UUID       `gorm:"type:uuid;not null"`
	ArticleCode string          `gorm:"type:varchar(50);not null"`
	ArticleName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitPrice
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "purchase_order_lines"
}

// NewOrderLine creates a new order line
func NewOrderLine(orderID, articleID uuid.UUID, articleCode, articleName string, quantity decimal.Decimal, unitPrice valueobject.Money) (*OrderLine, error) {
	if articleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Article ID cannot be empty")
	}
	if articleName == "" {
		return nil, shared.NewDomainError("INVALID_ARTICLE_NAME", "Article name cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &OrderLine{
		ID:          uuid.New(),
		OrderID:     orderID,
		ArticleID:   articleID,
		ArticleCode: articleCode,
		ArticleName: articleName,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		Amount:      quantity.Mul(unitPrice.Amount()),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateQuantity updates the line quantity and recalculates the amount
func (l *OrderLine) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	l.Quantity = quantity
	l.Amount = quantity.Mul(l.UnitPrice)
	l.UpdatedAt = time.Now()
	return nil
}

// UpdateUnitPrice updates the unit price and recalculates the amount
func (l *OrderLine) UpdateUnitPrice(unitPrice valueobject.Money) error {
	if unitPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	l.UnitPrice = unitPrice.Amount()
	l.Amount = l.Quantity.Mul(l.UnitPrice)
	l.UpdatedAt = time.Now()
	return nil
}

// GetAmountMoney returns the line amount as Money value object
func (l *OrderLine) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(l.Amount)
}

// PurchaseOrder represents a forecast purchase order aggregate root.
// It lists the articles expected for a flight; deliveries are later
// reconciled against it line by line.
type PurchaseOrder struct {
	shared.TenantAggregateRoot
	OrderNumber  string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_purchase_order_tenant_number,priority:2"`
	FlightID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	FlightNumber string              `gorm:"type:varchar(20);not null"`
	OrderDate    time.Time           `gorm:"not null;index"`
	Lines        []OrderLine         `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	Remark       string              `gorm:"type:text"`
	SentAt       *time.Time
	ConfirmedAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new forecast purchase order
func NewPurchaseOrder(tenantID uuid.UUID, orderNumber string, flightID uuid.UUID, flightNumber string, orderDate time.Time) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if flightID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FLIGHT", "Flight ID cannot be empty")
	}
	if orderDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ORDER_DATE", "Order date cannot be empty")
	}

	order := &PurchaseOrder{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		OrderNumber:         orderNumber,
		FlightID:            flightID,
		FlightNumber:        flightNumber,
		OrderDate:           orderDate,
		Lines:               make([]OrderLine, 0),
		TotalAmount:         decimal.Zero,
		Status:              PurchaseOrderStatusDraft,
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// AddLine adds a new line to the order.
// Only allowed in DRAFT status. Each article may appear at most once.
func (o *PurchaseOrder) AddLine(articleID uuid.UUID, articleCode, articleName string, quantity decimal.Decimal, unitPrice valueobject.Money) (*OrderLine, error) {
	if o.Status != PurchaseOrderStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add lines to a non-draft order")
	}

	for _, line := range o.Lines {
		if line.ArticleID == articleID {
			return nil, shared.NewDomainError("DUPLICATE_ARTICLE", "Article already exists in order, update quantity instead")
		}
	}

	line, err := NewOrderLine(o.ID, articleID, articleCode, articleName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Lines = append(o.Lines, *line)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return line, nil
}

// UpdateLineQuantity updates the quantity of an existing line.
// Only allowed in DRAFT status.
func (o *PurchaseOrder) UpdateLineQuantity(lineID uuid.UUID, quantity decimal.Decimal) error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Cannot update lines in a non-draft order")
	}

	for idx := range o.Lines {
		if o.Lines[idx].ID == lineID {
			if err := o.Lines[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			o.recalculateTotal()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
}

// RemoveLine removes a line from the order.
// Only allowed in DRAFT status.
func (o *PurchaseOrder) RemoveLine(lineID uuid.UUID) error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove lines from a non-draft order")
	}

	for idx, line := range o.Lines {
		if line.ID == lineID {
			o.Lines = append(o.Lines[:idx], o.Lines[idx+1:]...)
			o.recalculateTotal()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
}

// SetRemark sets the order remark
func (o *PurchaseOrder) SetRemark(remark string) {
	o.Remark = remark
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Send marks the order as sent to the supplier, transitioning DRAFT to SENT.
// Requires at least one line.
func (o *PurchaseOrder) Send() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusSent) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot send order in %s status", o.Status))
	}
	if len(o.Lines) == 0 {
		return shared.NewDomainError("NO_LINES", "Cannot send order without lines")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusSent
	o.SentAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// Confirm records the supplier's confirmation, transitioning SENT to CONFIRMED
func (o *PurchaseOrder) Confirm() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusConfirmed) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot confirm order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusConfirmed
	o.ConfirmedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderConfirmedEvent(o))

	return nil
}

// Cancel cancels the order.
// Allowed only in DRAFT or SENT status.
func (o *PurchaseOrder) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// recalculateTotal recalculates the order total
func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Amount)
	}
	o.TotalAmount = total
}

// GetTotalAmountMoney returns total amount as Money
func (o *PurchaseOrder) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.TotalAmount)
}

// LineCount returns the number of lines in the order
func (o *PurchaseOrder) LineCount() int {
	return len(o.Lines)
}

// IsDraft returns true if order is in draft status
func (o *PurchaseOrder) IsDraft() bool {
	return o.Status == PurchaseOrderStatusDraft
}

// IsTerminal returns true if order is in a terminal state
func (o *PurchaseOrder) IsTerminal() bool {
	return o.Status == PurchaseOrderStatusConfirmed || o.Status == PurchaseOrderStatusCancelled
}

// CanModify returns true if the order lines can still be edited
func (o *PurchaseOrder) CanModify() bool {
	return o.IsDraft()
}

// GetLine returns a line by its ID
func (o *PurchaseOrder) GetLine(lineID uuid.UUID) *OrderLine {
	for idx := range o.Lines {
		if o.Lines[idx].ID == lineID {
			return &o.Lines[idx]
		}
	}
	return nil
}

// GetLineByArticle returns a line by article ID
func (o *PurchaseOrder) GetLineByArticle(articleID uuid.UUID) *OrderLine {
	for idx := range o.Lines {
		if o.Lines[idx].ArticleID == articleID {
			return &o.Lines[idx]
		}
	}
	return nil
}
