package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBudgetReportRepository implements BudgetReportRepository using GORM
type GormBudgetReportRepository struct {
	db *gorm.DB
}

// NewGormBudgetReportRepository creates a new GormBudgetReportRepository
func NewGormBudgetReportRepository(db *gorm.DB) *GormBudgetReportRepository {
	return &GormBudgetReportRepository{db: db}
}

// FlightBudgets returns per-flight ordered and delivered totals within the
// window. Ordered totals come from confirmed and sent orders; delivered
// totals come from validated deliveries only.
func (r *GormBudgetReportRepository) FlightBudgets(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]catering.FlightBudgetRow, error) {
	type budgetResult struct {
		FlightID         uuid.UUID
		FlightNumber     string
		OrderedAmount    decimal.Decimal
		DeliveredAmount  decimal.Decimal
		DiscrepancyCount int64
	}

	var results []budgetResult

	err := r.db.WithContext(ctx).Table("flights f").
		Select(`
			f.id as flight_id,
			f.flight_number,
			COALESCE(po.ordered_amount, 0) as ordered_amount,
			COALESCE(dl.delivered_amount, 0) as delivered_amount,
			COALESCE(dc.discrepancy_count, 0) as discrepancy_count
		`).
		Joins(`LEFT JOIN (
			SELECT flight_id, SUM(total_amount) as ordered_amount
			FROM purchase_orders
			WHERE tenant_id = ? AND status IN ? AND order_date BETWEEN ? AND ?
			GROUP BY flight_id
		) po ON po.flight_id = f.id`, tenantID,
			[]string{string(catering.PurchaseOrderStatusSent), string(catering.PurchaseOrderStatusConfirmed)}, from, to).
		Joins(`LEFT JOIN (
			SELECT flight_id, SUM(total_amount) as delivered_amount
			FROM deliveries
			WHERE tenant_id = ? AND status = ? AND delivery_date BETWEEN ? AND ?
			GROUP BY flight_id
		) dl ON dl.flight_id = f.id`, tenantID, string(catering.DeliveryStatusValidated), from, to).
		Joins(`LEFT JOIN (
			SELECT d.flight_id, COUNT(*) as discrepancy_count
			FROM discrepancies dis
			JOIN deliveries d ON d.id = dis.delivery_id
			WHERE dis.tenant_id = ? AND dis.detected_at BETWEEN ? AND ?
			GROUP BY d.flight_id
		) dc ON dc.flight_id = f.id`, tenantID, from, to).
		Where("f.tenant_id = ?", tenantID).
		Where("po.ordered_amount IS NOT NULL OR dl.delivered_amount IS NOT NULL").
		Order("f.flight_number ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]catering.FlightBudgetRow, len(results))
	for i, result := range results {
		rows[i] = catering.FlightBudgetRow{
			FlightID:         result.FlightID,
			FlightNumber:     result.FlightNumber,
			OrderedAmount:    result.OrderedAmount,
			DeliveredAmount:  result.DeliveredAmount,
			AmountDelta:      result.DeliveredAmount.Sub(result.OrderedAmount),
			DiscrepancyCount: result.DiscrepancyCount,
		}
	}
	return rows, nil
}

// DiscrepancyCountsByKind returns discrepancy counts per kind within the window
func (r *GormBudgetReportRepository) DiscrepancyCountsByKind(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (map[catering.DiscrepancyKind]int64, error) {
	type kindCount struct {
		Kind  string
		Count int64
	}

	var rows []kindCount
	if err := r.db.WithContext(ctx).
		Model(&catering.Discrepancy{}).
		Select("kind, COUNT(*) as count").
		Where("tenant_id = ? AND detected_at BETWEEN ? AND ?", tenantID, from, to).
		Group("kind").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[catering.DiscrepancyKind]int64, len(rows))
	for _, row := range rows {
		counts[catering.DiscrepancyKind(row.Kind)] = row.Count
	}
	return counts, nil
}

// Ensure GormBudgetReportRepository implements BudgetReportRepository
var _ catering.BudgetReportRepository = (*GormBudgetReportRepository)(nil)
