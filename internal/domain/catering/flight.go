package catering

import (
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
)

// Season represents a flight scheduling season
type Season string

const (
	SeasonSummer Season = "SUMMER"
	SeasonWinter Season = "WINTER"
)

// IsValid checks if the season is a valid Season
func (s Season) IsValid() bool {
	switch s {
	case SeasonSummer, SeasonWinter:
		return true
	}
	return false
}

// String returns the string representation of Season
func (s Season) String() string {
	return string(s)
}

// Flight represents a catered flight. Forecast orders and deliveries
// reference a flight for per-flight budget tracking.
type Flight struct {
	shared.TenantAggregateRoot
	FlightNumber       string    `gorm:"type:varchar(20);not null;index:idx_flight_tenant_number"`
	Origin             string    `gorm:"type:varchar(10);not null"`
	Destination        string    `gorm:"type:varchar(10);not null"`
	ScheduledDeparture time.Time `gorm:"not null;index"`
	AircraftType       string    `gorm:"type:varchar(50)"`
	PassengerCount     int       `gorm:"not null;default:0"`
	Season             Season    `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// NewFlight creates a new flight record
func NewFlight(tenantID uuid.UUID, flightNumber, origin, destination string, scheduledDeparture time.Time, season Season) (*Flight, error) {
	if flightNumber == "" {
		return nil, shared.NewDomainError("INVALID_FLIGHT_NUMBER", "Flight number cannot be empty")
	}
	if origin == "" || destination == "" {
		return nil, shared.NewDomainError("INVALID_ROUTE", "Origin and destination cannot be empty")
	}
	if origin == destination {
		return nil, shared.NewDomainError("INVALID_ROUTE", "Origin and destination must differ")
	}
	if scheduledDeparture.IsZero() {
		return nil, shared.NewDomainError("INVALID_DEPARTURE", "Scheduled departure cannot be empty")
	}
	if !season.IsValid() {
		return nil, shared.NewDomainError("INVALID_SEASON", "Season must be SUMMER or WINTER")
	}

	return &Flight{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FlightNumber:        flightNumber,
		Origin:              origin,
		Destination:         destination,
		ScheduledDeparture:  scheduledDeparture,
		Season:              season,
	}, nil
}

// UpdateSchedule updates the scheduled departure
func (f *Flight) UpdateSchedule(scheduledDeparture time.Time) error {
	if scheduledDeparture.IsZero() {
		return shared.NewDomainError("INVALID_DEPARTURE", "Scheduled departure cannot be empty")
	}
	f.ScheduledDeparture = scheduledDeparture
	f.UpdatedAt = time.Now()
	f.IncrementVersion()
	return nil
}

// SetAircraft records the aircraft type and passenger count
func (f *Flight) SetAircraft(aircraftType string, passengerCount int) error {
	if passengerCount < 0 {
		return shared.NewDomainError("INVALID_PASSENGER_COUNT", "Passenger count cannot be negative")
	}
	f.AircraftType = aircraftType
	f.PassengerCount = passengerCount
	f.UpdatedAt = time.Now()
	f.IncrementVersion()
	return nil
}

// Route returns the flight route as "ORIGIN-DESTINATION"
func (f *Flight) Route() string {
	return f.Origin + "-" + f.Destination
}
