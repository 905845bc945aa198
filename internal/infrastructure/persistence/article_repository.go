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

// GormArticleRepository implements ArticleRepository using GORM
type GormArticleRepository struct {
	db *gorm.DB
}

// NewGormArticleRepository creates a new GormArticleRepository
func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// FindByIDForTenant finds an article by ID within a tenant
func (r *GormArticleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catering.Article, error) {
	var article catering.Article
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindByCode finds an article by its code for a tenant
func (r *GormArticleRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*catering.Article, error) {
	var article catering.Article
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindAllForTenant finds all articles for a tenant with filtering
func (r *GormArticleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catering.Article, error) {
	var articles []catering.Article

	query := r.db.WithContext(ctx).Model(&catering.Article{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Save creates or updates an article
func (r *GormArticleRepository) Save(ctx context.Context, article *catering.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormArticleRepository) SaveWithLock(ctx context.Context, article *catering.Article) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&catering.Article{}).
			Where("id = ?", article.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != article.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The article has been modified by another user")
		}

		article.Version++
		article.UpdatedAt = time.Now()

		result := tx.Model(&catering.Article{}).
			Where("id = ? AND version = ?", article.ID, currentVersion).
			Updates(map[string]interface{}{
				"code":        article.Code,
				"name":        article.Name,
				"description": article.Description,
				"unit":        article.Unit,
				"unit_price":  article.UnitPrice,
				"perishable":  article.Perishable,
				"active":      article.Active,
				"version":     article.Version,
				"updated_at":  article.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The article has been modified by another user")
		}
		return nil
	})
}

// DeleteForTenant deletes an article for a tenant
func (r *GormArticleRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catering.Article{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts articles for a tenant with optional filters
func (r *GormArticleRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catering.Article{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if an article code exists for a tenant
func (r *GormArticleRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catering.Article{}).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormArticleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, ArticleSortFields, "")
		if sortField != "" {
			sortOrder := ValidateSortOrder(filter.OrderDir)
			query = query.Order(sortField + " " + sortOrder)
		} else {
			query = query.Order("code ASC")
		}
	} else {
		query = query.Order("code ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormArticleRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "perishable":
			query = query.Where("perishable = ?", value)
		case "unit":
			query = query.Where("unit = ?", value)
		}
	}

	return query
}

// Ensure GormArticleRepository implements ArticleRepository
var _ catering.ArticleRepository = (*GormArticleRepository)(nil)
