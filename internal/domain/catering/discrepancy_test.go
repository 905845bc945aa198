package catering

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDiscrepancy(t *testing.T) *Discrepancy {
	t.Helper()
	disc, err := NewDiscrepancy(
		testTenantID, testFlightID, uuid.New(), uuid.New(), uuid.New(),
		"ART-001", "Water Bottle", "Ordered 10, delivered 8", DiscrepancyKindQuantityUnder,
		decimal.NewFromInt(10), decimal.NewFromInt(8),
		decimal.NewFromInt(20), decimal.NewFromInt(16),
		testNow,
	)
	require.NoError(t, err)
	return disc
}

func TestNewDiscrepancy(t *testing.T) {
	disc := createTestDiscrepancy(t)

	assert.Equal(t, DiscrepancyStatusPending, disc.Status)
	assert.Equal(t, testFlightID, disc.FlightID)
	assert.Equal(t, "Ordered 10, delivered 8", disc.Description)
	assert.True(t, disc.QtyDelta.Equal(decimal.NewFromInt(-2)))
	assert.True(t, disc.AmountDelta.Equal(decimal.NewFromInt(-4)))
	assert.Equal(t, testNow, disc.DetectedAt)
	assert.True(t, disc.IsOpen())
}

func TestNewDiscrepancy_NilFlight(t *testing.T) {
	_, err := NewDiscrepancy(
		testTenantID, uuid.Nil, uuid.New(), uuid.New(), uuid.New(),
		"ART-001", "Water Bottle", "", DiscrepancyKindQuantityUnder,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, testNow,
	)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_FLIGHT", domainErr.Code)
}

func TestNewDiscrepancy_InvalidKind(t *testing.T) {
	_, err := NewDiscrepancy(
		testTenantID, testFlightID, uuid.New(), uuid.New(), uuid.New(),
		"ART-001", "Water Bottle", "", DiscrepancyKind("BOGUS"),
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, testNow,
	)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_KIND", domainErr.Code)
}

func TestDiscrepancy_TriageFlow(t *testing.T) {
	disc := createTestDiscrepancy(t)

	require.NoError(t, disc.Start("ops.agent"))
	assert.Equal(t, DiscrepancyStatusInProgress, disc.Status)
	assert.Equal(t, "ops.agent", disc.AssignedTo)

	resolvedAt := testNow.Add(2 * time.Hour)
	require.NoError(t, disc.Resolve("credit note requested", "supplier notified", resolvedAt))
	assert.Equal(t, DiscrepancyStatusResolved, disc.Status)
	assert.Equal(t, "credit note requested", disc.CorrectiveAction)
	require.NotNil(t, disc.ResolvedAt)
	assert.Equal(t, resolvedAt, *disc.ResolvedAt)
	assert.False(t, disc.IsOpen())

	// Terminal
	assert.Error(t, disc.Start("someone.else"))
	assert.Error(t, disc.Accept(resolvedAt))
}

func TestDiscrepancy_AcceptFromPending(t *testing.T) {
	disc := createTestDiscrepancy(t)
	require.NoError(t, disc.Accept(testNow))
	assert.Equal(t, DiscrepancyStatusAccepted, disc.Status)
	assert.False(t, disc.IsOpen())
}

func TestDiscrepancy_RejectTriage(t *testing.T) {
	disc := createTestDiscrepancy(t)

	err := disc.RejectTriage("", testNow)
	require.Error(t, err)

	require.NoError(t, disc.RejectTriage("data entry error", testNow))
	assert.Equal(t, DiscrepancyStatusRejected, disc.Status)
	assert.Equal(t, "data entry error", disc.ResolutionNote)
}

func TestDiscrepancy_ResolveRequiresInProgress(t *testing.T) {
	disc := createTestDiscrepancy(t)
	err := disc.Resolve("credit note", "", testNow)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestDiscrepancyStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from   DiscrepancyStatus
		to     DiscrepancyStatus
		wanted bool
	}{
		{DiscrepancyStatusPending, DiscrepancyStatusInProgress, true},
		{DiscrepancyStatusPending, DiscrepancyStatusAccepted, true},
		{DiscrepancyStatusPending, DiscrepancyStatusRejected, true},
		{DiscrepancyStatusPending, DiscrepancyStatusResolved, false},
		{DiscrepancyStatusInProgress, DiscrepancyStatusResolved, true},
		{DiscrepancyStatusResolved, DiscrepancyStatusInProgress, false},
		{DiscrepancyStatusAccepted, DiscrepancyStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.wanted, tt.from.CanTransitionTo(tt.to))
		})
	}
}
