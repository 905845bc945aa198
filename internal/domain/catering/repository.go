package catering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ArticleRepository defines the interface for catalog article persistence
type ArticleRepository interface {
	// FindByIDForTenant finds an article by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Article, error)

	// FindByCode finds an article by code for a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Article, error)

	// FindAllForTenant finds all articles for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Article, error)

	// Save creates or updates an article
	Save(ctx context.Context, article *Article) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, article *Article) error

	// DeleteForTenant deletes an article for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts articles for a tenant with optional filters
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByCode checks if an article code exists for a tenant
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
}

// FlightRepository defines the interface for flight persistence
type FlightRepository interface {
	// FindByIDForTenant finds a flight by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Flight, error)

	// FindAllForTenant finds all flights for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Flight, error)

	// FindByDepartureWindow finds flights departing within a time window
	FindByDepartureWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, filter shared.Filter) ([]Flight, error)

	// Save creates or updates a flight
	Save(ctx context.Context, flight *Flight) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, flight *Flight) error

	// DeleteForTenant deletes a flight for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts flights for a tenant with optional filters
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// PurchaseOrderRepository defines the interface for forecast order persistence
type PurchaseOrderRepository interface {
	// FindByIDForTenant finds a purchase order by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds a purchase order by order number for a tenant
	FindByOrderNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*PurchaseOrder, error)

	// FindAllForTenant finds all purchase orders for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByFlight finds purchase orders for a flight
	FindByFlight(ctx context.Context, tenantID, flightID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByStatus finds purchase orders by status for a tenant
	FindByStatus(ctx context.Context, tenantID uuid.UUID, status PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrder, error)

	// Save creates or updates a purchase order
	Save(ctx context.Context, order *PurchaseOrder) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, order *PurchaseOrder) error

	// DeleteForTenant deletes a purchase order for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts purchase orders for a tenant with optional filters
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts purchase orders by status for a tenant
	CountByStatus(ctx context.Context, tenantID uuid.UUID, status PurchaseOrderStatus) (int64, error)

	// GenerateOrderNumber generates a unique order number for a tenant
	GenerateOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// DeliveryRepository defines the interface for delivery note persistence
type DeliveryRepository interface {
	// FindByIDForTenant finds a delivery by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Delivery, error)

	// FindByDeliveryNumber finds a delivery by delivery number for a tenant
	FindByDeliveryNumber(ctx context.Context, tenantID uuid.UUID, deliveryNumber string) (*Delivery, error)

	// FindAllForTenant finds all deliveries for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Delivery, error)

	// FindByPurchaseOrder finds deliveries linked to a purchase order
	FindByPurchaseOrder(ctx context.Context, tenantID, orderID uuid.UUID, filter shared.Filter) ([]Delivery, error)

	// FindByStatus finds deliveries by status for a tenant
	FindByStatus(ctx context.Context, tenantID uuid.UUID, status DeliveryStatus, filter shared.Filter) ([]Delivery, error)

	// Save creates or updates a delivery
	Save(ctx context.Context, delivery *Delivery) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, delivery *Delivery) error

	// SaveValidation persists the validated delivery and its generated
	// discrepancies in a single transaction. Either both the status change
	// and every discrepancy are stored, or neither is.
	SaveValidation(ctx context.Context, delivery *Delivery, discrepancies []*Discrepancy) error

	// DeleteForTenant deletes a delivery for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts deliveries for a tenant with optional filters
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts deliveries by status for a tenant
	CountByStatus(ctx context.Context, tenantID uuid.UUID, status DeliveryStatus) (int64, error)

	// GenerateDeliveryNumber generates a unique delivery number for a tenant
	GenerateDeliveryNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// DiscrepancyRepository defines the interface for discrepancy persistence
type DiscrepancyRepository interface {
	// FindByIDForTenant finds a discrepancy by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Discrepancy, error)

	// FindAllForTenant finds all discrepancies for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Discrepancy, error)

	// FindByDelivery finds discrepancies recorded for a delivery
	FindByDelivery(ctx context.Context, tenantID, deliveryID uuid.UUID) ([]Discrepancy, error)

	// FindByPurchaseOrder finds discrepancies recorded against an order
	FindByPurchaseOrder(ctx context.Context, tenantID, orderID uuid.UUID) ([]Discrepancy, error)

	// Save creates or updates a discrepancy
	Save(ctx context.Context, discrepancy *Discrepancy) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, discrepancy *Discrepancy) error

	// DeleteByDelivery deletes all discrepancies for a delivery
	DeleteByDelivery(ctx context.Context, tenantID, deliveryID uuid.UUID) error

	// CountForTenant counts discrepancies for a tenant with optional filters
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByKind counts discrepancies per kind for a tenant
	CountByKind(ctx context.Context, tenantID uuid.UUID) (map[DiscrepancyKind]int64, error)
}

// FlightBudgetRow is one per-flight row of the budget statistics report
type FlightBudgetRow struct {
	FlightID         uuid.UUID
	FlightNumber     string
	OrderedAmount    decimal.Decimal
	DeliveredAmount  decimal.Decimal
	AmountDelta      decimal.Decimal
	DiscrepancyCount int64
}

// BudgetReportRepository aggregates order, delivery and discrepancy figures
// for budget reporting
type BudgetReportRepository interface {
	// FlightBudgets returns per-flight ordered/delivered totals in the window
	FlightBudgets(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]FlightBudgetRow, error)

	// DiscrepancyCountsByKind returns discrepancy counts per kind in the window
	DiscrepancyCountsByKind(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (map[DiscrepancyKind]int64, error)
}
