package catering

import (
	"context"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PurchaseOrderService handles forecast order operations
type PurchaseOrderService struct {
	orderRepo      catering.PurchaseOrderRepository
	flightRepo     catering.FlightRepository
	articleRepo    catering.ArticleRepository
	eventPublisher shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orderRepo catering.PurchaseOrderRepository, flightRepo catering.FlightRepository, articleRepo catering.ArticleRepository) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		flightRepo:  flightRepo,
		articleRepo: articleRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new forecast order for a flight
func (s *PurchaseOrderService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	flight, err := s.flightRepo.FindByIDForTenant(ctx, tenantID, req.FlightID)
	if err != nil {
		return nil, err
	}

	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	order, err := catering.NewPurchaseOrder(tenantID, orderNumber, flight.ID, flight.FlightNumber, req.OrderDate)
	if err != nil {
		return nil, err
	}

	for _, lineReq := range req.Lines {
		if err := s.addLine(ctx, tenantID, order, lineReq.ArticleID, lineReq.Quantity, lineReq.UnitPrice); err != nil {
			return nil, err
		}
	}

	if req.Remark != "" {
		order.SetRemark(req.Remark)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a forecast order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a forecast order by its order number
func (s *PurchaseOrderService) GetByOrderNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, tenantID, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves forecast orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, tenantID uuid.UUID, filter PurchaseOrderListFilter) ([]PurchaseOrderListItemResponse, int64, error) {
	domainFilter := buildOrderFilter(filter)

	orders, err := s.orderRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderListItemResponses(orders), total, nil
}

// AddLine adds a line to a draft order
func (s *PurchaseOrderService) AddLine(ctx context.Context, tenantID, orderID uuid.UUID, req AddOrderLineRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.addLine(ctx, tenantID, order, req.ArticleID, req.Quantity, req.UnitPrice); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// RemoveLine removes a line from a draft order
func (s *PurchaseOrderService) RemoveLine(ctx context.Context, tenantID, orderID, lineID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RemoveLine(lineID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Send marks a draft order as sent to the supplier
func (s *PurchaseOrderService) Send(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Send(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Confirm records the supplier's confirmation of a sent order
func (s *PurchaseOrderService) Confirm(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Confirm(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels a draft or sent order
func (s *PurchaseOrderService) Cancel(ctx context.Context, tenantID, orderID uuid.UUID, reason string) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(reason); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Delete removes a draft order
func (s *PurchaseOrderService) Delete(ctx context.Context, tenantID, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return err
	}

	if !order.IsDraft() {
		return shared.NewDomainError("INVALID_STATE", "Only draft orders can be deleted")
	}

	return s.orderRepo.DeleteForTenant(ctx, tenantID, orderID)
}

// GetStatusSummary returns order counts per status
func (s *PurchaseOrderService) GetStatusSummary(ctx context.Context, tenantID uuid.UUID) (map[string]int64, error) {
	statuses := []catering.PurchaseOrderStatus{
		catering.PurchaseOrderStatusDraft,
		catering.PurchaseOrderStatusSent,
		catering.PurchaseOrderStatusConfirmed,
		catering.PurchaseOrderStatusCancelled,
	}

	summary := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		count, err := s.orderRepo.CountByStatus(ctx, tenantID, status)
		if err != nil {
			return nil, err
		}
		summary[status.String()] = count
	}
	return summary, nil
}

// addLine resolves the article and appends a line to the order. A nil unit
// price falls back to the catalog price.
func (s *PurchaseOrderService) addLine(ctx context.Context, tenantID uuid.UUID, order *catering.PurchaseOrder, articleID uuid.UUID, quantity decimal.Decimal, unitPrice *decimal.Decimal) error {
	article, err := s.articleRepo.FindByIDForTenant(ctx, tenantID, articleID)
	if err != nil {
		return err
	}
	if !article.Active {
		return shared.NewDomainError("INVALID_ARTICLE", "Article is inactive")
	}

	price := article.UnitPrice
	if unitPrice != nil {
		price = *unitPrice
	}

	_, err = order.AddLine(article.ID, article.Code, article.Name, quantity, valueobject.NewMoneyEUR(price))
	return err
}

// publishEvents publishes pending domain events if a publisher is configured
func (s *PurchaseOrderService) publishEvents(ctx context.Context, order *catering.PurchaseOrder) {
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	order.ClearDomainEvents()
}

// buildOrderFilter translates the list filter into a domain filter
func buildOrderFilter(filter PurchaseOrderListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.FlightID != nil {
		domainFilter.Filters["flight_id"] = *filter.FlightID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}
	return domainFilter
}
