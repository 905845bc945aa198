package catering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BudgetReportService computes budget statistics over orders, deliveries and
// discrepancies
type BudgetReportService struct {
	reportRepo catering.BudgetReportRepository
}

// NewBudgetReportService creates a new BudgetReportService
func NewBudgetReportService(reportRepo catering.BudgetReportRepository) *BudgetReportService {
	return &BudgetReportService{
		reportRepo: reportRepo,
	}
}

// Statistics returns per-flight and aggregate budget figures for the window
func (s *BudgetReportService) Statistics(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (*BudgetStatisticsResponse, error) {
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Window end must not precede window start")
	}

	rows, err := s.reportRepo.FlightBudgets(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	byKind, err := s.reportRepo.DiscrepancyCountsByKind(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	flights := make([]FlightBudgetResponse, len(rows))
	totalOrdered := decimal.Zero
	totalDelivered := decimal.Zero
	for i, row := range rows {
		flights[i] = FlightBudgetResponse{
			FlightID:         row.FlightID,
			FlightNumber:     row.FlightNumber,
			OrderedAmount:    row.OrderedAmount,
			DeliveredAmount:  row.DeliveredAmount,
			AmountDelta:      row.DeliveredAmount.Sub(row.OrderedAmount),
			DiscrepancyCount: row.DiscrepancyCount,
		}
		totalOrdered = totalOrdered.Add(row.OrderedAmount)
		totalDelivered = totalDelivered.Add(row.DeliveredAmount)
	}

	return &BudgetStatisticsResponse{
		From:                 from,
		To:                   to,
		TotalOrderedAmount:   totalOrdered,
		TotalDeliveredAmount: totalDelivered,
		TotalAmountDelta:     totalDelivered.Sub(totalOrdered),
		Flights:              flights,
		DiscrepancyByKind:    byKind,
	}, nil
}
