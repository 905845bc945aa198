package catering

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTenantID = uuid.New()
	testFlightID = uuid.New()
	testNow      = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
)

func createTestOrder(t *testing.T) *PurchaseOrder {
	t.Helper()
	order, err := NewPurchaseOrder(testTenantID, "BCP-2025-00001", testFlightID, "AT1234", testNow.AddDate(0, 0, -3))
	require.NoError(t, err)
	return order
}

func createTestDelivery(t *testing.T, order *PurchaseOrder) *Delivery {
	t.Helper()
	delivery, err := NewDelivery(testTenantID, "BL-2025-00001", testFlightID, "AT1234", "Atlas Catering", testNow.AddDate(0, 0, -1))
	require.NoError(t, err)
	if order != nil {
		require.NoError(t, delivery.LinkPurchaseOrder(order.ID))
	}
	return delivery
}

func addOrderLine(t *testing.T, order *PurchaseOrder, articleID uuid.UUID, name string, qty float64, price float64) {
	t.Helper()
	_, err := order.AddLine(articleID, "ART-"+name, name, decimal.NewFromFloat(qty), valueobject.NewMoneyEURFromFloat(price))
	require.NoError(t, err)
}

func addDeliveryLine(t *testing.T, delivery *Delivery, articleID uuid.UUID, name string, qty float64, price float64) {
	t.Helper()
	_, err := delivery.AddLine(articleID, "ART-"+name, name, decimal.NewFromFloat(qty), valueobject.NewMoneyEURFromFloat(price))
	require.NoError(t, err)
}

func TestDetectDiscrepancies_MatchingLinesProduceNothing(t *testing.T) {
	juiceID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, juiceID, "Orange Juice", 50, 1.20)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, juiceID, "Orange Juice", 50, 1.20)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDetectDiscrepancies_QuantityUnder(t *testing.T) {
	waterID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, waterID, "Water Bottle", 10, 2.00)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, waterID, "Water Bottle", 8, 2.00)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 1)

	disc := result[0]
	assert.Equal(t, DiscrepancyKindQuantityUnder, disc.Kind)
	assert.Equal(t, testFlightID, disc.FlightID)
	assert.Equal(t, "Ordered 10, delivered 8", disc.Description)
	assert.True(t, disc.QtyDelta.Equal(decimal.NewFromInt(-2)))
	assert.True(t, disc.AmountDelta.Equal(decimal.NewFromInt(-4)))
	assert.True(t, disc.QtyOrdered.Equal(decimal.NewFromInt(10)))
	assert.True(t, disc.QtyDelivered.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, testNow, disc.DetectedAt)
	assert.Equal(t, DiscrepancyStatusPending, disc.Status)
}

func TestDetectDiscrepancies_QuantityOver(t *testing.T) {
	mealID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, mealID, "Meal Tray", 100, 8.50)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, mealID, "Meal Tray", 110, 8.50)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 1)

	disc := result[0]
	assert.Equal(t, DiscrepancyKindQuantityOver, disc.Kind)
	assert.True(t, disc.QtyDelta.Equal(decimal.NewFromInt(10)))
	assert.True(t, disc.AmountDelta.Equal(decimal.NewFromInt(85)))
}

func TestDetectDiscrepancies_PriceMismatch(t *testing.T) {
	coffeeID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, coffeeID, "Coffee Pack", 20, 3.00)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, coffeeID, "Coffee Pack", 20, 3.25)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 1)

	disc := result[0]
	assert.Equal(t, DiscrepancyKindPriceMismatch, disc.Kind)
	assert.True(t, disc.QtyDelta.IsZero())
	assert.True(t, disc.AmountDelta.Equal(decimal.NewFromInt(5)))
}

func TestDetectDiscrepancies_AmountBelowToleranceIgnored(t *testing.T) {
	teaID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, teaID, "Tea Box", 1, 5.000)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, teaID, "Tea Box", 1, 5.005)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDetectDiscrepancies_AmountAtToleranceIgnored(t *testing.T) {
	teaID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, teaID, "Tea Box", 1, 5.00)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, teaID, "Tea Box", 1, 5.01)

	// |amountDelta| == 0.01 sits exactly on the tolerance and is absorbed.
	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDetectDiscrepancies_AmountJustAboveTolerance(t *testing.T) {
	teaID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, teaID, "Tea Box", 1, 5.00)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, teaID, "Tea Box", 1, 5.02)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, DiscrepancyKindPriceMismatch, result[0].Kind)
	assert.True(t, result[0].AmountDelta.Equal(decimal.NewFromFloat(0.02)))
}

func TestDetectDiscrepancies_ArticleMissing(t *testing.T) {
	breadID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, breadID, "Bread Roll", 40, 0.50)

	delivery := createTestDelivery(t, order)
	_, err := delivery.AddFreeTextLine("Transport surcharge", decimal.NewFromInt(1), valueobject.NewMoneyEURFromFloat(15))
	require.NoError(t, err)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 1)

	disc := result[0]
	assert.Equal(t, DiscrepancyKindArticleMissing, disc.Kind)
	assert.Equal(t, testFlightID, disc.FlightID)
	assert.True(t, disc.QtyDelivered.IsZero())
	assert.True(t, disc.AmountDelivered.IsZero())
	assert.True(t, disc.QtyDelta.Equal(decimal.NewFromInt(-40)))
	assert.True(t, disc.AmountDelta.Equal(decimal.NewFromInt(-20)))
}

func TestDetectDiscrepancies_ArticleExtra(t *testing.T) {
	cheeseID := uuid.New()
	order := createTestOrder(t)
	addOrderLine(t, order, uuid.New(), "Snack Box", 10, 4.00)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, cheeseID, "Cheese Plate", 5, 6.00)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Snack Box missing first (order pass), then the extra cheese.
	assert.Equal(t, DiscrepancyKindArticleMissing, result[0].Kind)
	assert.Equal(t, DiscrepancyKindArticleExtra, result[1].Kind)

	extra := result[1]
	assert.Equal(t, cheeseID, extra.ArticleID)
	assert.Equal(t, testFlightID, extra.FlightID)
	assert.True(t, extra.QtyOrdered.IsZero())
	assert.True(t, extra.AmountOrdered.IsZero())
	assert.True(t, extra.QtyDelta.Equal(decimal.NewFromInt(5)))
	assert.True(t, extra.AmountDelta.Equal(decimal.NewFromInt(30)))
}

func TestDetectDiscrepancies_FreeTextLinesSkipped(t *testing.T) {
	order := createTestOrder(t)
	addOrderLine(t, order, uuid.New(), "Meal Tray", 10, 8.00)

	delivery := createTestDelivery(t, order)
	_, err := delivery.AddFreeTextLine("Handling fee", decimal.NewFromInt(1), valueobject.NewMoneyEURFromFloat(25))
	require.NoError(t, err)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, DiscrepancyKindArticleMissing, result[0].Kind)
}

func TestDetectDiscrepancies_MixedScenario(t *testing.T) {
	waterID := uuid.New()
	breadID := uuid.New()
	cheeseID := uuid.New()
	juiceID := uuid.New()

	order := createTestOrder(t)
	addOrderLine(t, order, waterID, "Water Bottle", 10, 2.00)
	addOrderLine(t, order, breadID, "Bread Roll", 40, 0.50)
	addOrderLine(t, order, juiceID, "Orange Juice", 50, 1.20)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, waterID, "Water Bottle", 8, 2.00)
	addDeliveryLine(t, delivery, juiceID, "Orange Juice", 50, 1.20)
	addDeliveryLine(t, delivery, cheeseID, "Cheese Plate", 5, 6.00)

	result, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Order-line pass first in order-line order, then delivery-only lines.
	assert.Equal(t, DiscrepancyKindQuantityUnder, result[0].Kind)
	assert.Equal(t, waterID, result[0].ArticleID)
	assert.Equal(t, DiscrepancyKindArticleMissing, result[1].Kind)
	assert.Equal(t, breadID, result[1].ArticleID)
	assert.Equal(t, DiscrepancyKindArticleExtra, result[2].Kind)
	assert.Equal(t, cheeseID, result[2].ArticleID)
}

func TestDetectDiscrepancies_Deterministic(t *testing.T) {
	waterID := uuid.New()
	breadID := uuid.New()

	order := createTestOrder(t)
	addOrderLine(t, order, waterID, "Water Bottle", 10, 2.00)
	addOrderLine(t, order, breadID, "Bread Roll", 40, 0.50)

	delivery := createTestDelivery(t, order)
	addDeliveryLine(t, delivery, waterID, "Water Bottle", 9, 2.00)

	first, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)
	second, err := DetectDiscrepancies(order, delivery, testNow)
	require.NoError(t, err)

	require.Len(t, first, len(second))
	for i := range first {
		assert.Equal(t, first[i].ArticleID, second[i].ArticleID)
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.True(t, first[i].QtyDelta.Equal(second[i].QtyDelta))
	}
}
