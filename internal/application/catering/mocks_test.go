package catering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Article, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*catering.Article, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.Article), args.Error(1)
}

func (m *MockArticleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Article, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Article), args.Error(1)
}

func (m *MockArticleRepository) Save(ctx context.Context, article *catering.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) SaveWithLock(ctx context.Context, article *catering.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockArticleRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

// MockFlightRepository is a mock implementation of FlightRepository
type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Flight, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Flight, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByDepartureWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, filter shared.Filter) ([]catering.Flight, error) {
	args := m.Called(ctx, tenantID, from, to, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Flight), args.Error(1)
}

func (m *MockFlightRepository) Save(ctx context.Context, flight *catering.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) SaveWithLock(ctx context.Context, flight *catering.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockFlightRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*catering.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByFlight(ctx context.Context, tenantID, flightID uuid.UUID, filter shared.Filter) ([]catering.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, flightID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status catering.PurchaseOrderStatus, filter shared.Filter) ([]catering.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *catering.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) SaveWithLock(ctx context.Context, order *catering.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status catering.PurchaseOrderStatus) (int64, error) {
	args := m.Called(ctx, tenantID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) GenerateOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

// MockDeliveryRepository is a mock implementation of DeliveryRepository
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Delivery, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindByDeliveryNumber(ctx context.Context, tenantID uuid.UUID, deliveryNumber string) (*catering.Delivery, error) {
	args := m.Called(ctx, tenantID, deliveryNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Delivery, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindByPurchaseOrder(ctx context.Context, tenantID, orderID uuid.UUID, filter shared.Filter) ([]catering.Delivery, error) {
	args := m.Called(ctx, tenantID, orderID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status catering.DeliveryStatus, filter shared.Filter) ([]catering.Delivery, error) {
	args := m.Called(ctx, tenantID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Save(ctx context.Context, delivery *catering.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *MockDeliveryRepository) SaveWithLock(ctx context.Context, delivery *catering.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *MockDeliveryRepository) SaveValidation(ctx context.Context, delivery *catering.Delivery, discrepancies []*catering.Discrepancy) error {
	args := m.Called(ctx, delivery, discrepancies)
	return args.Error(0)
}

func (m *MockDeliveryRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockDeliveryRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status catering.DeliveryStatus) (int64, error) {
	args := m.Called(ctx, tenantID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) GenerateDeliveryNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

// MockDiscrepancyRepository is a mock implementation of DiscrepancyRepository
type MockDiscrepancyRepository struct {
	mock.Mock
}

func (m *MockDiscrepancyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Discrepancy, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catering.Discrepancy), args.Error(1)
}

func (m *MockDiscrepancyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Discrepancy, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Discrepancy), args.Error(1)
}

func (m *MockDiscrepancyRepository) FindByDelivery(ctx context.Context, tenantID, deliveryID uuid.UUID) ([]catering.Discrepancy, error) {
	args := m.Called(ctx, tenantID, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Discrepancy), args.Error(1)
}

func (m *MockDiscrepancyRepository) FindByPurchaseOrder(ctx context.Context, tenantID, orderID uuid.UUID) ([]catering.Discrepancy, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catering.Discrepancy), args.Error(1)
}

func (m *MockDiscrepancyRepository) Save(ctx context.Context, discrepancy *catering.Discrepancy) error {
	args := m.Called(ctx, discrepancy)
	return args.Error(0)
}

func (m *MockDiscrepancyRepository) SaveWithLock(ctx context.Context, discrepancy *catering.Discrepancy) error {
	args := m.Called(ctx, discrepancy)
	return args.Error(0)
}

func (m *MockDiscrepancyRepository) DeleteByDelivery(ctx context.Context, tenantID, deliveryID uuid.UUID) error {
	args := m.Called(ctx, tenantID, deliveryID)
	return args.Error(0)
}

func (m *MockDiscrepancyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiscrepancyRepository) CountByKind(ctx context.Context, tenantID uuid.UUID) (map[catering.DiscrepancyKind]int64, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[catering.DiscrepancyKind]int64), args.Error(1)
}
