package catering

import (
	"context"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
)

// ArticleService handles catalog article operations
type ArticleService struct {
	articleRepo catering.ArticleRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo catering.ArticleRepository) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
	}
}

// Create creates a new catalog article
func (s *ArticleService) Create(ctx context.Context, tenantID uuid.UUID, req CreateArticleRequest) (*ArticleResponse, error) {
	exists, err := s.articleRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Article code already exists")
	}

	article, err := catering.NewArticle(tenantID, req.Code, req.Name, req.Unit, valueobject.NewMoneyEUR(req.UnitPrice))
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		article.Description = req.Description
	}
	if req.Perishable {
		article.SetPerishable(true)
	}

	if err := s.articleRepo.Save(ctx, article); err != nil {
		return nil, err
	}

	response := ToArticleResponse(article)
	return &response, nil
}

// GetByID retrieves an article by ID
func (s *ArticleService) GetByID(ctx context.Context, tenantID, articleID uuid.UUID) (*ArticleResponse, error) {
	article, err := s.articleRepo.FindByIDForTenant(ctx, tenantID, articleID)
	if err != nil {
		return nil, err
	}
	response := ToArticleResponse(article)
	return &response, nil
}

// List retrieves articles with filtering and pagination
func (s *ArticleService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ArticleResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.Filters == nil {
		filter.Filters = make(map[string]interface{})
	}

	articles, err := s.articleRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.articleRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToArticleResponses(articles), total, nil
}

// Update updates an article's display fields
func (s *ArticleService) Update(ctx context.Context, tenantID, articleID uuid.UUID, req UpdateArticleRequest) (*ArticleResponse, error) {
	article, err := s.articleRepo.FindByIDForTenant(ctx, tenantID, articleID)
	if err != nil {
		return nil, err
	}

	if err := article.Update(req.Name, req.Description, req.Unit, valueobject.NewMoneyEUR(req.UnitPrice)); err != nil {
		return nil, err
	}
	if req.Perishable != nil {
		article.SetPerishable(*req.Perishable)
	}

	if err := s.articleRepo.SaveWithLock(ctx, article); err != nil {
		return nil, err
	}

	response := ToArticleResponse(article)
	return &response, nil
}

// Deactivate removes an article from active use
func (s *ArticleService) Deactivate(ctx context.Context, tenantID, articleID uuid.UUID) error {
	article, err := s.articleRepo.FindByIDForTenant(ctx, tenantID, articleID)
	if err != nil {
		return err
	}

	if err := article.Deactivate(); err != nil {
		return err
	}

	return s.articleRepo.SaveWithLock(ctx, article)
}

// Activate returns an article to active use
func (s *ArticleService) Activate(ctx context.Context, tenantID, articleID uuid.UUID) error {
	article, err := s.articleRepo.FindByIDForTenant(ctx, tenantID, articleID)
	if err != nil {
		return err
	}

	if err := article.Activate(); err != nil {
		return err
	}

	return s.articleRepo.SaveWithLock(ctx, article)
}
