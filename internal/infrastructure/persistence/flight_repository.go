package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFlightRepository implements FlightRepository using GORM
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GormFlightRepository
func NewGormFlightRepository(db *gorm.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

// FindByIDForTenant finds a flight by ID within a tenant
func (r *GormFlightRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Flight, error) {
	var flight catering.Flight
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&flight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &flight, nil
}

// FindAllForTenant finds all flights for a tenant with filtering
func (r *GormFlightRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Flight, error) {
	var flights []catering.Flight

	query := r.db.WithContext(ctx).Model(&catering.Flight{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// FindByDepartureWindow finds flights departing within a time window
func (r *GormFlightRepository) FindByDepartureWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, filter shared.Filter) ([]catering.Flight, error) {
	var flights []catering.Flight

	query := r.db.WithContext(ctx).Model(&catering.Flight{}).
		Where("tenant_id = ? AND scheduled_departure >= ? AND scheduled_departure <= ?", tenantID, from, to)
	query = r.applyFilter(query, filter)

	if err := query.Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// Save creates or updates a flight
func (r *GormFlightRepository) Save(ctx context.Context, flight *catering.Flight) error {
	return r.db.WithContext(ctx).Save(flight).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormFlightRepository) SaveWithLock(ctx context.Context, flight *catering.Flight) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&catering.Flight{}).
			Where("id = ?", flight.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != flight.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The flight has been modified by another user")
		}

		flight.Version++
		flight.UpdatedAt = time.Now()

		result := tx.Model(&catering.Flight{}).
			Where("id = ? AND version = ?", flight.ID, currentVersion).
			Updates(map[string]interface{}{
				"flight_number":       flight.FlightNumber,
				"origin":              flight.Origin,
				"destination":         flight.Destination,
				"scheduled_departure": flight.ScheduledDeparture,
				"aircraft_type":       flight.AircraftType,
				"passenger_count":     flight.PassengerCount,
				"season":              flight.Season,
				"version":             flight.Version,
				"updated_at":          flight.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The flight has been modified by another user")
		}
		return nil
	})
}

// DeleteForTenant deletes a flight for a tenant
func (r *GormFlightRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catering.Flight{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts flights for a tenant with optional filters
func (r *GormFlightRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catering.Flight{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormFlightRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, FlightSortFields, "")
		if sortField != "" {
			sortOrder := ValidateSortOrder(filter.OrderDir)
			query = query.Order(sortField + " " + sortOrder)
		} else {
			query = query.Order("scheduled_departure ASC")
		}
	} else {
		query = query.Order("scheduled_departure ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFlightRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("flight_number ILIKE ? OR origin ILIKE ? OR destination ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "season":
			query = query.Where("season = ?", value)
		case "origin":
			query = query.Where("origin = ?", value)
		case "destination":
			query = query.Where("destination = ?", value)
		}
	}

	return query
}

// Ensure GormFlightRepository implements FlightRepository
var _ catering.FlightRepository = (*GormFlightRepository)(nil)
