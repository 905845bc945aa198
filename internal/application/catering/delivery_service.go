package catering

import (
	"context"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
)

// DeliveryService handles delivery note operations, including the validation
// flow that reconciles a delivery against its forecast order.
type DeliveryService struct {
	deliveryRepo   catering.DeliveryRepository
	orderRepo      catering.PurchaseOrderRepository
	flightRepo     catering.FlightRepository
	articleRepo    catering.ArticleRepository
	clock          shared.Clock
	eventPublisher shared.EventPublisher
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(deliveryRepo catering.DeliveryRepository, orderRepo catering.PurchaseOrderRepository, flightRepo catering.FlightRepository, articleRepo catering.ArticleRepository, clock shared.Clock) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		flightRepo:   flightRepo,
		articleRepo:  articleRepo,
		clock:        clock,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *DeliveryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new delivery note
func (s *DeliveryService) Create(ctx context.Context, tenantID uuid.UUID, req CreateDeliveryRequest) (*DeliveryResponse, error) {
	flight, err := s.flightRepo.FindByIDForTenant(ctx, tenantID, req.FlightID)
	if err != nil {
		return nil, err
	}

	deliveryNumber, err := s.deliveryRepo.GenerateDeliveryNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	delivery, err := catering.NewDelivery(tenantID, deliveryNumber, flight.ID, flight.FlightNumber, req.SupplierName, req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	if req.PurchaseOrderID != nil {
		order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, *req.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if err := delivery.LinkPurchaseOrder(order.ID); err != nil {
			return nil, err
		}
	}

	for _, lineReq := range req.Lines {
		if err := s.addLine(ctx, tenantID, delivery, lineReq); err != nil {
			return nil, err
		}
	}

	if req.Remark != "" {
		delivery.Remark = req.Remark
	}

	if err := s.deliveryRepo.Save(ctx, delivery); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, delivery)

	response := ToDeliveryResponse(delivery)
	return &response, nil
}

// GetByID retrieves a delivery by ID
func (s *DeliveryService) GetByID(ctx context.Context, tenantID, deliveryID uuid.UUID) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForTenant(ctx, tenantID, deliveryID)
	if err != nil {
		return nil, err
	}
	response := ToDeliveryResponse(delivery)
	return &response, nil
}

// List retrieves deliveries with filtering and pagination
func (s *DeliveryService) List(ctx context.Context, tenantID uuid.UUID, filter DeliveryListFilter) ([]DeliveryListItemResponse, int64, error) {
	domainFilter := buildDeliveryFilter(filter)

	deliveries, err := s.deliveryRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.deliveryRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDeliveryListItemResponses(deliveries), total, nil
}

// Receive records physical receipt of a pending delivery
func (s *DeliveryService) Receive(ctx context.Context, tenantID, deliveryID uuid.UUID, receivedBy string) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForTenant(ctx, tenantID, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := delivery.Receive(receivedBy); err != nil {
		return nil, err
	}

	if err := s.deliveryRepo.SaveWithLock(ctx, delivery); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, delivery)

	response := ToDeliveryResponse(delivery)
	return &response, nil
}

// Validate validates a delivery. When the delivery is linked to a
// forecast order, the two are reconciled and every detected discrepancy is
// persisted together with the status change in a single transaction; a
// storage failure leaves the delivery untouched. Deliveries without a linked
// order validate with zero discrepancies.
func (s *DeliveryService) Validate(ctx context.Context, tenantID, deliveryID uuid.UUID, validatedBy string) (*ValidationResult, error) {
	delivery, err := s.deliveryRepo.FindByIDForTenant(ctx, tenantID, deliveryID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var discrepancies []*catering.Discrepancy
	if delivery.HasLinkedOrder() {
		order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, *delivery.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		discrepancies, err = catering.DetectDiscrepancies(order, delivery, now)
		if err != nil {
			return nil, err
		}
	}

	if err := delivery.Validate(validatedBy, now); err != nil {
		return nil, err
	}

	if err := s.deliveryRepo.SaveValidation(ctx, delivery, discrepancies); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, delivery)

	return &ValidationResult{
		DeliveryID:             delivery.ID,
		DeliveryNumber:         delivery.DeliveryNumber,
		Success:                true,
		DiscrepanciesGenerated: len(discrepancies),
		ValidatedBy:            validatedBy,
		ValidatedAt:            now,
	}, nil
}

// Reject rejects a delivery that has not been validated yet
func (s *DeliveryService) Reject(ctx context.Context, tenantID, deliveryID uuid.UUID, rejectedBy, reason string) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForTenant(ctx, tenantID, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := delivery.Reject(rejectedBy, reason, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.deliveryRepo.SaveWithLock(ctx, delivery); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, delivery)

	response := ToDeliveryResponse(delivery)
	return &response, nil
}

// Delete removes a pending delivery
func (s *DeliveryService) Delete(ctx context.Context, tenantID, deliveryID uuid.UUID) error {
	delivery, err := s.deliveryRepo.FindByIDForTenant(ctx, tenantID, deliveryID)
	if err != nil {
		return err
	}

	if !delivery.IsPending() {
		return shared.NewDomainError("INVALID_STATE", "Only pending deliveries can be deleted")
	}

	return s.deliveryRepo.DeleteForTenant(ctx, tenantID, deliveryID)
}

// addLine appends one request line to the delivery, resolving the catalog
// article when one is referenced
func (s *DeliveryService) addLine(ctx context.Context, tenantID uuid.UUID, delivery *catering.Delivery, lineReq CreateDeliveryLineRequest) error {
	price := valueobject.NewMoneyEUR(lineReq.UnitPrice)

	if lineReq.ArticleID == nil {
		_, err := delivery.AddFreeTextLine(lineReq.Description, lineReq.Quantity, price)
		return err
	}

	article, err := s.articleRepo.FindByIDForTenant(ctx, tenantID, *lineReq.ArticleID)
	if err != nil {
		return err
	}

	description := lineReq.Description
	if description == "" {
		description = article.Name
	}

	_, err = delivery.AddLine(article.ID, article.Code, description, lineReq.Quantity, price)
	return err
}

// publishEvents publishes pending domain events if a publisher is configured
func (s *DeliveryService) publishEvents(ctx context.Context, delivery *catering.Delivery) {
	if s.eventPublisher == nil {
		return
	}
	events := delivery.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	delivery.ClearDomainEvents()
}

// buildDeliveryFilter translates the list filter into a domain filter
func buildDeliveryFilter(filter DeliveryListFilter) shared.Filter {
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
	if filter.PurchaseOrderID != nil {
		domainFilter.Filters["purchase_order_id"] = *filter.PurchaseOrderID
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
