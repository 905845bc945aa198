package catering

import (
	"context"
	"fmt"

	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DeliveryValidatedHandler handles DeliveryValidatedEvent and flags
// validations that produced open discrepancies for purchasing follow-up
type DeliveryValidatedHandler struct {
	discrepancyRepo catering.DiscrepancyRepository
	logger          *zap.Logger
}

// NewDeliveryValidatedHandler creates a new handler for delivery validated events
func NewDeliveryValidatedHandler(
	discrepancyRepo catering.DiscrepancyRepository,
	logger *zap.Logger,
) *DeliveryValidatedHandler {
	return &DeliveryValidatedHandler{
		discrepancyRepo: discrepancyRepo,
		logger:          logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *DeliveryValidatedHandler) EventTypes() []string {
	return []string{catering.EventTypeDeliveryValidated}
}

// Handle processes a DeliveryValidatedEvent
func (h *DeliveryValidatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	validatedEvent, ok := event.(*catering.DeliveryValidatedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", catering.EventTypeDeliveryValidated),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			catering.EventTypeDeliveryValidated, event.EventType())
	}

	discrepancies, err := h.discrepancyRepo.FindByDelivery(ctx, validatedEvent.TenantID(), validatedEvent.DeliveryID)
	if err != nil {
		h.logger.Error("failed to load discrepancies for validated delivery",
			zap.String("delivery_id", validatedEvent.DeliveryID.String()),
			zap.String("delivery_number", validatedEvent.DeliveryNumber),
			zap.Error(err),
		)
		return fmt.Errorf("failed to load discrepancies: %w", err)
	}

	if len(discrepancies) == 0 {
		h.logger.Info("delivery validated without discrepancies",
			zap.String("delivery_id", validatedEvent.DeliveryID.String()),
			zap.String("delivery_number", validatedEvent.DeliveryNumber),
			zap.String("validated_by", validatedEvent.ValidatedBy),
		)
		return nil
	}

	open := 0
	for _, d := range discrepancies {
		if d.Status == catering.DiscrepancyStatusPending || d.Status == catering.DiscrepancyStatusInProgress {
			open++
		}
	}

	h.logger.Warn("delivery validated with discrepancies, purchasing follow-up required",
		zap.String("delivery_id", validatedEvent.DeliveryID.String()),
		zap.String("delivery_number", validatedEvent.DeliveryNumber),
		zap.String("validated_by", validatedEvent.ValidatedBy),
		zap.Int("discrepancy_count", len(discrepancies)),
		zap.Int("open_count", open),
	)

	return nil
}

// Ensure DeliveryValidatedHandler implements shared.EventHandler
var _ shared.EventHandler = (*DeliveryValidatedHandler)(nil)
