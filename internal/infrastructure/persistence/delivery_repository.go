package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GormDeliveryRepository
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// FindByIDForTenant finds a delivery by ID within a tenant
func (r *GormDeliveryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Delivery, error) {
	var delivery catering.Delivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// FindByDeliveryNumber finds a delivery by delivery number for a tenant
func (r *GormDeliveryRepository) FindByDeliveryNumber(ctx context.Context, tenantID uuid.UUID, deliveryNumber string) (*catering.Delivery, error) {
	var delivery catering.Delivery
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("tenant_id = ? AND delivery_number = ?", tenantID, deliveryNumber).
		First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// FindAllForTenant finds all deliveries for a tenant with filtering
func (r *GormDeliveryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Delivery, error) {
	var deliveries []catering.Delivery

	query := r.db.WithContext(ctx).Model(&catering.Delivery{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Preload("Lines").Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindByPurchaseOrder finds deliveries linked to a purchase order
func (r *GormDeliveryRepository) FindByPurchaseOrder(ctx context.Context, tenantID, orderID uuid.UUID, filter shared.Filter) ([]catering.Delivery, error) {
	var deliveries []catering.Delivery

	query := r.db.WithContext(ctx).Model(&catering.Delivery{}).
		Where("tenant_id = ? AND purchase_order_id = ?", tenantID, orderID)
	query = r.applyFilter(query, filter)

	if err := query.Preload("Lines").Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindByStatus finds deliveries by status for a tenant
func (r *GormDeliveryRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status catering.DeliveryStatus, filter shared.Filter) ([]catering.Delivery, error) {
	var deliveries []catering.Delivery

	query := r.db.WithContext(ctx).Model(&catering.Delivery{}).
		Where("tenant_id = ? AND status = ?", tenantID, status)
	query = r.applyFilter(query, filter)

	if err := query.Preload("Lines").Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// Save creates or updates a delivery together with its lines
func (r *GormDeliveryRepository) Save(ctx context.Context, delivery *catering.Delivery) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Save(delivery).Error; err != nil {
			return err
		}
		return r.syncLines(tx, delivery)
	})
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormDeliveryRepository) SaveWithLock(ctx context.Context, delivery *catering.Delivery) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.saveWithLockTx(tx, delivery)
	})
}

// SaveValidation persists the validated delivery and its generated
// discrepancies atomically. The status flip and every discrepancy row share
// one transaction, so a failure while storing discrepancies rolls back the
// validation as well.
func (r *GormDeliveryRepository) SaveValidation(ctx context.Context, delivery *catering.Delivery, discrepancies []*catering.Discrepancy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.saveWithLockTx(tx, delivery); err != nil {
			return err
		}

		for _, discrepancy := range discrepancies {
			if err := tx.Create(discrepancy).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// saveWithLockTx updates the delivery header with a version check inside an
// existing transaction
func (r *GormDeliveryRepository) saveWithLockTx(tx *gorm.DB, delivery *catering.Delivery) error {
	var currentVersion int
	if err := tx.Model(&catering.Delivery{}).
		Where("id = ?", delivery.ID).
		Select("version").
		Scan(&currentVersion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}

	if currentVersion != delivery.Version {
		return shared.NewDomainError("CONCURRENT_MODIFICATION", "The delivery has been modified by another user")
	}

	delivery.Version++
	delivery.UpdatedAt = time.Now()

	result := tx.Model(&catering.Delivery{}).
		Where("id = ? AND version = ?", delivery.ID, currentVersion).
		Updates(map[string]interface{}{
			"purchase_order_id": delivery.PurchaseOrderID,
			"supplier_name":     delivery.SupplierName,
			"delivery_date":     delivery.DeliveryDate,
			"total_amount":      delivery.TotalAmount,
			"status":            delivery.Status,
			"remark":            delivery.Remark,
			"received_by":       delivery.ReceivedBy,
			"received_at":       delivery.ReceivedAt,
			"validated_by":      delivery.ValidatedBy,
			"validated_at":      delivery.ValidatedAt,
			"rejected_by":       delivery.RejectedBy,
			"rejected_at":       delivery.RejectedAt,
			"reject_reason":     delivery.RejectReason,
			"version":           delivery.Version,
			"updated_at":        delivery.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENT_MODIFICATION", "The delivery has been modified by another user")
	}

	return r.syncLines(tx, delivery)
}

// syncLines reconciles the persisted delivery lines with the aggregate's
// lines: removed lines are deleted, the rest are upserted.
func (r *GormDeliveryRepository) syncLines(tx *gorm.DB, delivery *catering.Delivery) error {
	currentLineIDs := make([]uuid.UUID, len(delivery.Lines))
	for i, line := range delivery.Lines {
		currentLineIDs[i] = line.ID
	}

	if len(currentLineIDs) > 0 {
		if err := tx.Where("delivery_id = ? AND id NOT IN ?", delivery.ID, currentLineIDs).
			Delete(&catering.DeliveryLine{}).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Where("delivery_id = ?", delivery.ID).
			Delete(&catering.DeliveryLine{}).Error; err != nil {
			return err
		}
	}

	for i := range delivery.Lines {
		delivery.Lines[i].DeliveryID = delivery.ID
		if err := tx.Save(&delivery.Lines[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteForTenant deletes a delivery and its lines for a tenant
func (r *GormDeliveryRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var delivery catering.Delivery
		if err := tx.Where("tenant_id = ? AND id = ?", tenantID, id).First(&delivery).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Where("delivery_id = ?", id).Delete(&catering.DeliveryLine{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&catering.Delivery{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountForTenant counts deliveries for a tenant with optional filters
func (r *GormDeliveryRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catering.Delivery{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts deliveries by status for a tenant
func (r *GormDeliveryRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status catering.DeliveryStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catering.Delivery{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByDeliveryNumber checks if a delivery number exists for a tenant
func (r *GormDeliveryRepository) ExistsByDeliveryNumber(ctx context.Context, tenantID uuid.UUID, deliveryNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catering.Delivery{}).
		Where("tenant_id = ? AND delivery_number = ?", tenantID, deliveryNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GenerateDeliveryNumber generates a unique delivery number for a tenant.
// Format: BL-YYYY-NNNNN (e.g., BL-2026-00001)
func (r *GormDeliveryRepository) GenerateDeliveryNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("BL-%d-", year)

	var lastDelivery catering.Delivery
	err := r.db.WithContext(ctx).
		Model(&catering.Delivery{}).
		Where("tenant_id = ? AND delivery_number LIKE ?", tenantID, prefix+"%").
		Order("delivery_number DESC").
		First(&lastDelivery).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastDelivery.DeliveryNumber != "" {
		parts := strings.Split(lastDelivery.DeliveryNumber, "-")
		if len(parts) == 3 {
			var num int64
			_, parseErr := fmt.Sscanf(parts[2], "%d", &num)
			if parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	deliveryNumber := fmt.Sprintf("%s%05d", prefix, nextNum)

	exists, err := r.ExistsByDeliveryNumber(ctx, tenantID, deliveryNumber)
	if err != nil {
		return "", err
	}
	if exists {
		for i := 0; i < 100; i++ {
			nextNum++
			deliveryNumber = fmt.Sprintf("%s%05d", prefix, nextNum)
			exists, err = r.ExistsByDeliveryNumber(ctx, tenantID, deliveryNumber)
			if err != nil {
				return "", err
			}
			if !exists {
				break
			}
		}
	}

	return deliveryNumber, nil
}

// applyFilter applies filter options to the query
func (r *GormDeliveryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, DeliverySortFields, "")
		if sortField != "" {
			sortOrder := ValidateSortOrder(filter.OrderDir)
			query = query.Order(sortField + " " + sortOrder)
		} else {
			query = query.Order("created_at DESC")
		}
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormDeliveryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("delivery_number ILIKE ? OR supplier_name ILIKE ? OR flight_number ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "flight_id":
			query = query.Where("flight_id = ?", value)
		case "purchase_order_id":
			query = query.Where("purchase_order_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "statuses":
			if statuses, ok := value.([]string); ok && len(statuses) > 0 {
				query = query.Where("status IN ?", statuses)
			}
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("delivery_date >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("delivery_date <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormDeliveryRepository implements DeliveryRepository
var _ catering.DeliveryRepository = (*GormDeliveryRepository)(nil)
