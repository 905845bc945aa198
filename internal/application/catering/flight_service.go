package catering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
)

// FlightService handles flight record operations
type FlightService struct {
	flightRepo catering.FlightRepository
}

// NewFlightService creates a new FlightService
func NewFlightService(flightRepo catering.FlightRepository) *FlightService {
	return &FlightService{
		flightRepo: flightRepo,
	}
}

// Create registers a new flight
func (s *FlightService) Create(ctx context.Context, tenantID uuid.UUID, req CreateFlightRequest) (*FlightResponse, error) {
	flight, err := catering.NewFlight(tenantID, req.FlightNumber, req.Origin, req.Destination, req.ScheduledDeparture, req.Season)
	if err != nil {
		return nil, err
	}

	if req.AircraftType != "" || req.PassengerCount > 0 {
		if err := flight.SetAircraft(req.AircraftType, req.PassengerCount); err != nil {
			return nil, err
		}
	}

	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	response := ToFlightResponse(flight)
	return &response, nil
}

// GetByID retrieves a flight by ID
func (s *FlightService) GetByID(ctx context.Context, tenantID, flightID uuid.UUID) (*FlightResponse, error) {
	flight, err := s.flightRepo.FindByIDForTenant(ctx, tenantID, flightID)
	if err != nil {
		return nil, err
	}
	response := ToFlightResponse(flight)
	return &response, nil
}

// List retrieves flights with filtering and pagination
func (s *FlightService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]FlightResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.Filters == nil {
		filter.Filters = make(map[string]interface{})
	}

	flights, err := s.flightRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.flightRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToFlightResponses(flights), total, nil
}

// ListByDepartureWindow retrieves flights departing within a window
func (s *FlightService) ListByDepartureWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, filter shared.Filter) ([]FlightResponse, error) {
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Window end must not precede window start")
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	flights, err := s.flightRepo.FindByDepartureWindow(ctx, tenantID, from, to, filter)
	if err != nil {
		return nil, err
	}
	return ToFlightResponses(flights), nil
}

// UpdateSchedule updates a flight's scheduled departure
func (s *FlightService) UpdateSchedule(ctx context.Context, tenantID, flightID uuid.UUID, scheduledDeparture time.Time) (*FlightResponse, error) {
	flight, err := s.flightRepo.FindByIDForTenant(ctx, tenantID, flightID)
	if err != nil {
		return nil, err
	}

	if err := flight.UpdateSchedule(scheduledDeparture); err != nil {
		return nil, err
	}

	if err := s.flightRepo.SaveWithLock(ctx, flight); err != nil {
		return nil, err
	}

	response := ToFlightResponse(flight)
	return &response, nil
}

// Delete removes a flight record
func (s *FlightService) Delete(ctx context.Context, tenantID, flightID uuid.UUID) error {
	if _, err := s.flightRepo.FindByIDForTenant(ctx, tenantID, flightID); err != nil {
		return err
	}
	return s.flightRepo.DeleteForTenant(ctx, tenantID, flightID)
}
