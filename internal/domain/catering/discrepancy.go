package catering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DiscrepancyKind classifies the difference found between an order line and
// the matching delivery line.
type DiscrepancyKind string

const (
	DiscrepancyKindQuantityOver   DiscrepancyKind = "QUANTITY_OVER"
	DiscrepancyKindQuantityUnder  DiscrepancyKind = "QUANTITY_UNDER"
	DiscrepancyKindArticleMissing DiscrepancyKind = "ARTICLE_MISSING"
	DiscrepancyKindArticleExtra   DiscrepancyKind = "ARTICLE_EXTRA"
	DiscrepancyKindPriceMismatch  DiscrepancyKind = "PRICE_MISMATCH"
)

// IsValid checks if the kind is a valid DiscrepancyKind
func (k DiscrepancyKind) IsValid() bool {
	switch k {
	case DiscrepancyKindQuantityOver, DiscrepancyKindQuantityUnder,
		DiscrepancyKindArticleMissing, DiscrepancyKindArticleExtra,
		DiscrepancyKindPriceMismatch:
		return true
	}
	return false
}

// String returns the string representation of DiscrepancyKind
func (k DiscrepancyKind) String() string {
	return string(k)
}

// DiscrepancyStatus represents the triage status of a discrepancy
type DiscrepancyStatus string

const (
	DiscrepancyStatusPending    DiscrepancyStatus = "PENDING"
	DiscrepancyStatusInProgress DiscrepancyStatus = "IN_PROGRESS"
	DiscrepancyStatusResolved   DiscrepancyStatus = "RESOLVED"
	DiscrepancyStatusAccepted   DiscrepancyStatus = "ACCEPTED"
	DiscrepancyStatusRejected   DiscrepancyStatus = "REJECTED"
)

// IsValid checks if the status is a valid DiscrepancyStatus
func (s DiscrepancyStatus) IsValid() bool {
	switch s {
	case DiscrepancyStatusPending, DiscrepancyStatusInProgress,
		DiscrepancyStatusResolved, DiscrepancyStatusAccepted, DiscrepancyStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of DiscrepancyStatus
func (s DiscrepancyStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s DiscrepancyStatus) CanTransitionTo(target DiscrepancyStatus) bool {
	switch s {
	case DiscrepancyStatusPending:
		return target == DiscrepancyStatusInProgress || target == DiscrepancyStatusAccepted || target == DiscrepancyStatusRejected
	case DiscrepancyStatusInProgress:
		return target == DiscrepancyStatusResolved || target == DiscrepancyStatusAccepted || target == DiscrepancyStatusRejected
	case DiscrepancyStatusResolved, DiscrepancyStatusAccepted, DiscrepancyStatusRejected:
		return false // Terminal states
	}
	return false
}

// Discrepancy records a single difference detected while reconciling a
// delivery against its forecast order. Quantities and amounts snapshot both
// sides at detection time; deltas are delivered minus ordered.
type Discrepancy struct {
	shared.TenantAggregateRoot
	FlightID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	DeliveryID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	PurchaseOrderID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ArticleID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	ArticleCode      string            `gorm:"type:varchar(50)"`
	ArticleName      string            `gorm:"type:varchar(200);not null"`
	Description      string            `gorm:"type:varchar(500)"`
	Kind             DiscrepancyKind   `gorm:"type:varchar(20);not null;index"`
	QtyOrdered       decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	QtyDelivered     decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	QtyDelta         decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	AmountOrdered    decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	AmountDelivered  decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	AmountDelta      decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	DetectedAt       time.Time         `gorm:"not null;index"`
	Status           DiscrepancyStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	AssignedTo       string            `gorm:"type:varchar(100)"`
	CorrectiveAction string            `gorm:"type:varchar(500)"`
	ResolutionNote   string            `gorm:"type:varchar(500)"`
	ResolvedAt       *time.Time
}

// TableName returns the table name for GORM
func (Discrepancy) TableName() string {
	return "discrepancies"
}

// NewDiscrepancy creates a new discrepancy record in PENDING status
func NewDiscrepancy(tenantID, flightID, deliveryID, orderID, articleID uuid.UUID, articleCode, articleName, description string, kind DiscrepancyKind, qtyOrdered, qtyDelivered, amountOrdered, amountDelivered decimal.Decimal, detectedAt time.Time) (*Discrepancy, error) {
	if flightID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FLIGHT", "Flight ID cannot be empty")
	}
	if deliveryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DELIVERY", "Delivery ID cannot be empty")
	}
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if articleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Article ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", fmt.Sprintf("Unknown discrepancy kind %q", kind))
	}

	return &Discrepancy{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FlightID:            flightID,
		DeliveryID:          deliveryID,
		PurchaseOrderID:     orderID,
		ArticleID:           articleID,
		ArticleCode:         articleCode,
		ArticleName:         articleName,
		Description:         description,
		Kind:                kind,
		QtyOrdered:          qtyOrdered,
		QtyDelivered:        qtyDelivered,
		QtyDelta:            qtyDelivered.Sub(qtyOrdered),
		AmountOrdered:       amountOrdered,
		AmountDelivered:     amountDelivered,
		AmountDelta:         amountDelivered.Sub(amountOrdered),
		DetectedAt:          detectedAt,
		Status:              DiscrepancyStatusPending,
	}, nil
}

// Start assigns the discrepancy to a handler, transitioning PENDING to IN_PROGRESS
func (e *Discrepancy) Start(assignedTo string) error {
	if !e.Status.CanTransitionTo(DiscrepancyStatusInProgress) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot start handling discrepancy in %s status", e.Status))
	}
	if assignedTo == "" {
		return shared.NewDomainError("INVALID_ASSIGNEE", "Assignee is required")
	}

	e.Status = DiscrepancyStatusInProgress
	e.AssignedTo = assignedTo
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// Resolve closes the discrepancy with a corrective action, transitioning
// IN_PROGRESS to RESOLVED
func (e *Discrepancy) Resolve(correctiveAction, note string, at time.Time) error {
	if !e.Status.CanTransitionTo(DiscrepancyStatusResolved) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot resolve discrepancy in %s status", e.Status))
	}
	if correctiveAction == "" {
		return shared.NewDomainError("INVALID_ACTION", "Corrective action is required")
	}

	e.Status = DiscrepancyStatusResolved
	e.CorrectiveAction = correctiveAction
	e.ResolutionNote = note
	e.ResolvedAt = &at
	e.UpdatedAt = at
	e.IncrementVersion()

	return nil
}

// Accept closes the discrepancy as accepted without corrective action
func (e *Discrepancy) Accept(at time.Time) error {
	if !e.Status.CanTransitionTo(DiscrepancyStatusAccepted) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot accept discrepancy in %s status", e.Status))
	}

	e.Status = DiscrepancyStatusAccepted
	e.ResolvedAt = &at
	e.UpdatedAt = at
	e.IncrementVersion()

	return nil
}

// RejectTriage closes the discrepancy as rejected (for example a data-entry
// artifact rather than a real supplier issue)
func (e *Discrepancy) RejectTriage(reason string, at time.Time) error {
	if !e.Status.CanTransitionTo(DiscrepancyStatusRejected) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot reject discrepancy in %s status", e.Status))
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Reject reason is required")
	}

	e.Status = DiscrepancyStatusRejected
	e.ResolutionNote = reason
	e.ResolvedAt = &at
	e.UpdatedAt = at
	e.IncrementVersion()

	return nil
}

// IsOpen returns true while the discrepancy still needs handling
func (e *Discrepancy) IsOpen() bool {
	return e.Status == DiscrepancyStatusPending || e.Status == DiscrepancyStatusInProgress
}

// GetAmountDeltaMoney returns the amount delta as Money value object
func (e *Discrepancy) GetAmountDeltaMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(e.AmountDelta)
}
