package catering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseOrder(t *testing.T) {
	tests := []struct {
		name        string
		orderNumber string
		flightID    uuid.UUID
		wantErr     bool
	}{
		{"valid order", "BCP-2025-00001", testFlightID, false},
		{"empty order number", "", testFlightID, true},
		{"nil flight", "BCP-2025-00002", uuid.Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewPurchaseOrder(testTenantID, tt.orderNumber, tt.flightID, "AT1234", testNow)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
			assert.True(t, order.TotalAmount.IsZero())
			assert.Len(t, order.GetDomainEvents(), 1)
		})
	}
}

func TestPurchaseOrder_AddLine(t *testing.T) {
	order := createTestOrder(t)
	articleID := uuid.New()

	line, err := order.AddLine(articleID, "ART-001", "Water Bottle", decimal.NewFromInt(10), valueobject.NewMoneyEURFromFloat(2))
	require.NoError(t, err)
	assert.True(t, line.Amount.Equal(decimal.NewFromInt(20)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 2, order.GetVersion())

	t.Run("duplicate article rejected", func(t *testing.T) {
		_, err := order.AddLine(articleID, "ART-001", "Water Bottle", decimal.NewFromInt(5), valueobject.NewMoneyEURFromFloat(2))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_ARTICLE", domainErr.Code)
	})

	t.Run("zero quantity allowed", func(t *testing.T) {
		line, err := order.AddLine(uuid.New(), "ART-002", "Juice", decimal.Zero, valueobject.NewMoneyEURFromFloat(1.2))
		require.NoError(t, err)
		assert.True(t, line.Amount.IsZero())
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := order.AddLine(uuid.New(), "ART-003", "Milk", decimal.NewFromInt(-1), valueobject.NewMoneyEURFromFloat(1.2))
		assert.Error(t, err)
	})
}

func TestPurchaseOrder_UpdateLineQuantity(t *testing.T) {
	order := createTestOrder(t)
	articleID := uuid.New()
	line, err := order.AddLine(articleID, "ART-001", "Water Bottle", decimal.NewFromInt(10), valueobject.NewMoneyEURFromFloat(2))
	require.NoError(t, err)

	require.NoError(t, order.UpdateLineQuantity(line.ID, decimal.NewFromInt(15)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(30)))

	err = order.UpdateLineQuantity(uuid.New(), decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestPurchaseOrder_SendAndConfirm(t *testing.T) {
	order := createTestOrder(t)

	// Cannot send without lines
	err := order.Send()
	require.Error(t, err)

	addOrderLine(t, order, uuid.New(), "Meal Tray", 100, 8.50)

	require.NoError(t, order.Send())
	assert.Equal(t, PurchaseOrderStatusSent, order.Status)
	require.NotNil(t, order.SentAt)

	// Lines are frozen after sending
	_, err = order.AddLine(uuid.New(), "ART-003", "Snack", decimal.NewFromInt(1), valueobject.NewMoneyEURFromFloat(4))
	assert.Error(t, err)

	require.NoError(t, order.Confirm())
	assert.Equal(t, PurchaseOrderStatusConfirmed, order.Status)
	require.NotNil(t, order.ConfirmedAt)
	assert.True(t, order.IsTerminal())

	// Terminal
	assert.Error(t, order.Confirm())
	assert.Error(t, order.Cancel("too late"))
}

func TestPurchaseOrder_ConfirmFromDraftRejected(t *testing.T) {
	order := createTestOrder(t)
	addOrderLine(t, order, uuid.New(), "Meal Tray", 100, 8.50)

	err := order.Confirm()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestPurchaseOrder_Cancel(t *testing.T) {
	order := createTestOrder(t)
	addOrderLine(t, order, uuid.New(), "Meal Tray", 100, 8.50)

	err := order.Cancel("")
	require.Error(t, err)

	require.NoError(t, order.Cancel("flight cancelled"))
	assert.Equal(t, PurchaseOrderStatusCancelled, order.Status)
	assert.Equal(t, "flight cancelled", order.CancelReason)
}

func TestPurchaseOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from   PurchaseOrderStatus
		to     PurchaseOrderStatus
		wanted bool
	}{
		{PurchaseOrderStatusDraft, PurchaseOrderStatusSent, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusConfirmed, false},
		{PurchaseOrderStatusSent, PurchaseOrderStatusConfirmed, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusConfirmed, PurchaseOrderStatusCancelled, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusSent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.wanted, tt.from.CanTransitionTo(tt.to))
		})
	}
}
