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

// GormDiscrepancyRepository implements DiscrepancyRepository using GORM
type GormDiscrepancyRepository struct {
	db *gorm.DB
}

// NewGormDiscrepancyRepository creates a new GormDiscrepancyRepository
func NewGormDiscrepancyRepository(db *gorm.DB) *GormDiscrepancyRepository {
	return &GormDiscrepancyRepository{db: db}
}

// FindByIDForTenant finds a discrepancy by ID within a tenant
func (r *GormDiscrepancyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Discrepancy, error) {
	var discrepancy catering.Discrepancy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&discrepancy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &discrepancy, nil
}

// FindAllForTenant finds all discrepancies for a tenant with filtering
func (r *GormDiscrepancyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Discrepancy, error) {
	var discrepancies []catering.Discrepancy

	query := r.db.WithContext(ctx).Model(&catering.Discrepancy{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&discrepancies).Error; err != nil {
		return nil, err
	}
	return discrepancies, nil
}

// FindByDelivery finds discrepancies recorded for a delivery
func (r *GormDiscrepancyRepository) FindByDelivery(ctx context.Context, tenantID, deliveryID uuid.UUID) ([]catering.Discrepancy, error) {
	var discrepancies []catering.Discrepancy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND delivery_id = ?", tenantID, deliveryID).
		Order("detected_at ASC, article_code ASC").
		Find(&discrepancies).Error; err != nil {
		return nil, err
	}
	return discrepancies, nil
}

// FindByPurchaseOrder finds discrepancies recorded against an order
func (r *GormDiscrepancyRepository) FindByPurchaseOrder(ctx context.Context, tenantID, orderID uuid.UUID) ([]catering.Discrepancy, error) {
	var discrepancies []catering.Discrepancy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND purchase_order_id = ?", tenantID, orderID).
		Order("detected_at ASC, article_code ASC").
		Find(&discrepancies).Error; err != nil {
		return nil, err
	}
	return discrepancies, nil
}

// Save creates or updates a discrepancy
func (r *GormDiscrepancyRepository) Save(ctx context.Context, discrepancy *catering.Discrepancy) error {
	return r.db.WithContext(ctx).Save(discrepancy).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormDiscrepancyRepository) SaveWithLock(ctx context.Context, discrepancy *catering.Discrepancy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&catering.Discrepancy{}).
			Where("id = ?", discrepancy.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != discrepancy.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The discrepancy has been modified by another user")
		}

		discrepancy.Version++
		discrepancy.UpdatedAt = time.Now()

		result := tx.Model(&catering.Discrepancy{}).
			Where("id = ? AND version = ?", discrepancy.ID, currentVersion).
			Updates(map[string]interface{}{
				"status":            discrepancy.Status,
				"assigned_to":       discrepancy.AssignedTo,
				"corrective_action": discrepancy.CorrectiveAction,
				"resolution_note":   discrepancy.ResolutionNote,
				"resolved_at":       discrepancy.ResolvedAt,
				"version":           discrepancy.Version,
				"updated_at":        discrepancy.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The discrepancy has been modified by another user")
		}
		return nil
	})
}

// DeleteByDelivery deletes all discrepancies for a delivery
func (r *GormDiscrepancyRepository) DeleteByDelivery(ctx context.Context, tenantID, deliveryID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&catering.Discrepancy{}, "tenant_id = ? AND delivery_id = ?", tenantID, deliveryID).Error
}

// CountForTenant counts discrepancies for a tenant with optional filters
func (r *GormDiscrepancyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catering.Discrepancy{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByKind counts discrepancies per kind for a tenant
func (r *GormDiscrepancyRepository) CountByKind(ctx context.Context, tenantID uuid.UUID) (map[catering.DiscrepancyKind]int64, error) {
	type kindCount struct {
		Kind  string
		Count int64
	}

	var rows []kindCount
	if err := r.db.WithContext(ctx).
		Model(&catering.Discrepancy{}).
		Select("kind, COUNT(*) as count").
		Where("tenant_id = ?", tenantID).
		Group("kind").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[catering.DiscrepancyKind]int64, len(rows))
	for _, row := range rows {
		counts[catering.DiscrepancyKind(row.Kind)] = row.Count
	}
	return counts, nil
}

// applyFilter applies filter options to the query
func (r *GormDiscrepancyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, DiscrepancySortFields, "")
		if sortField != "" {
			sortOrder := ValidateSortOrder(filter.OrderDir)
			query = query.Order(sortField + " " + sortOrder)
		} else {
			query = query.Order("detected_at DESC")
		}
	} else {
		query = query.Order("detected_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormDiscrepancyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("article_code ILIKE ? OR article_name ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "delivery_id":
			query = query.Where("delivery_id = ?", value)
		case "purchase_order_id":
			query = query.Where("purchase_order_id = ?", value)
		case "article_id":
			query = query.Where("article_id = ?", value)
		case "kind":
			query = query.Where("kind = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("detected_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("detected_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormDiscrepancyRepository implements DiscrepancyRepository
var _ catering.DiscrepancyRepository = (*GormDiscrepancyRepository)(nil)
