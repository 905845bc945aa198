package catering

import (
	"context"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
)

// DiscrepancyService handles discrepancy queries and triage
type DiscrepancyService struct {
	discrepancyRepo catering.DiscrepancyRepository
	clock           shared.Clock
}

// NewDiscrepancyService creates a new DiscrepancyService
func NewDiscrepancyService(discrepancyRepo catering.DiscrepancyRepository, clock shared.Clock) *DiscrepancyService {
	return &DiscrepancyService{
		discrepancyRepo: discrepancyRepo,
		clock:           clock,
	}
}

// GetByID retrieves a discrepancy by ID
func (s *DiscrepancyService) GetByID(ctx context.Context, tenantID, discrepancyID uuid.UUID) (*DiscrepancyResponse, error) {
	disc, err := s.discrepancyRepo.FindByIDForTenant(ctx, tenantID, discrepancyID)
	if err != nil {
		return nil, err
	}
	response := ToDiscrepancyResponse(disc)
	return &response, nil
}

// List retrieves discrepancies with filtering and pagination
func (s *DiscrepancyService) List(ctx context.Context, tenantID uuid.UUID, filter DiscrepancyListFilter) ([]DiscrepancyResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "detected_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.DeliveryID != nil {
		domainFilter.Filters["delivery_id"] = *filter.DeliveryID
	}
	if filter.PurchaseOrderID != nil {
		domainFilter.Filters["purchase_order_id"] = *filter.PurchaseOrderID
	}
	if filter.Kind != nil {
		domainFilter.Filters["kind"] = string(*filter.Kind)
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}

	discrepancies, err := s.discrepancyRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.discrepancyRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDiscrepancyResponses(discrepancies), total, nil
}

// ListByDelivery retrieves all discrepancies recorded for a delivery
func (s *DiscrepancyService) ListByDelivery(ctx context.Context, tenantID, deliveryID uuid.UUID) ([]DiscrepancyResponse, error) {
	discrepancies, err := s.discrepancyRepo.FindByDelivery(ctx, tenantID, deliveryID)
	if err != nil {
		return nil, err
	}
	return ToDiscrepancyResponses(discrepancies), nil
}

// Start assigns a discrepancy to a handler
func (s *DiscrepancyService) Start(ctx context.Context, tenantID, discrepancyID uuid.UUID, assignedTo string) (*DiscrepancyResponse, error) {
	disc, err := s.discrepancyRepo.FindByIDForTenant(ctx, tenantID, discrepancyID)
	if err != nil {
		return nil, err
	}

	if err := disc.Start(assignedTo); err != nil {
		return nil, err
	}

	if err := s.discrepancyRepo.SaveWithLock(ctx, disc); err != nil {
		return nil, err
	}

	response := ToDiscrepancyResponse(disc)
	return &response, nil
}

// Resolve closes a discrepancy with a corrective action
func (s *DiscrepancyService) Resolve(ctx context.Context, tenantID, discrepancyID uuid.UUID, correctiveAction, note string) (*DiscrepancyResponse, error) {
	disc, err := s.discrepancyRepo.FindByIDForTenant(ctx, tenantID, discrepancyID)
	if err != nil {
		return nil, err
	}

	if err := disc.Resolve(correctiveAction, note, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.discrepancyRepo.SaveWithLock(ctx, disc); err != nil {
		return nil, err
	}

	response := ToDiscrepancyResponse(disc)
	return &response, nil
}

// Accept closes a discrepancy as accepted
func (s *DiscrepancyService) Accept(ctx context.Context, tenantID, discrepancyID uuid.UUID) (*DiscrepancyResponse, error) {
	disc, err := s.discrepancyRepo.FindByIDForTenant(ctx, tenantID, discrepancyID)
	if err != nil {
		return nil, err
	}

	if err := disc.Accept(s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.discrepancyRepo.SaveWithLock(ctx, disc); err != nil {
		return nil, err
	}

	response := ToDiscrepancyResponse(disc)
	return &response, nil
}

// Reject closes a discrepancy as rejected
func (s *DiscrepancyService) Reject(ctx context.Context, tenantID, discrepancyID uuid.UUID, reason string) (*DiscrepancyResponse, error) {
	disc, err := s.discrepancyRepo.FindByIDForTenant(ctx, tenantID, discrepancyID)
	if err != nil {
		return nil, err
	}

	if err := disc.RejectTriage(reason, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.discrepancyRepo.SaveWithLock(ctx, disc); err != nil {
		return nil, err
	}

	response := ToDiscrepancyResponse(disc)
	return &response, nil
}

// CountByKind returns discrepancy counts per kind
func (s *DiscrepancyService) CountByKind(ctx context.Context, tenantID uuid.UUID) (map[catering.DiscrepancyKind]int64, error) {
	return s.discrepancyRepo.CountByKind(ctx, tenantID)
}
