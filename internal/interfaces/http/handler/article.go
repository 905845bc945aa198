package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cateringapp "github.com/gsc/backend/internal/application/catering"
	"github.com/gsc/backend/internal/domain/shared"
)

// ArticleHandler handles catalog article API endpoints
type ArticleHandler struct {
	BaseHandler
	articleService *cateringapp.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService *cateringapp.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// CreateArticleRequest represents a request to create a catalog article
// @Description Request body for creating a new catalog article
type CreateArticleRequest struct {
	Code        string  `json:"code" binding:"required,min=1,max=50" example:"ART-WATER-50"`
	Name        string  `json:"name" binding:"required,min=1,max=200" example:"Mineral water 50cl"`
	Description string  `json:"description" binding:"max=500" example:"Still mineral water, 50cl bottle"`
	Unit        string  `json:"unit" binding:"required,min=1,max=20" example:"BOTTLE"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0" example:"2.50"`
	Perishable  bool    `json:"perishable" example:"false"`
}

// UpdateArticleRequest represents a request to update a catalog article
// @Description Request body for updating a catalog article
type UpdateArticleRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200" example:"Mineral water 50cl"`
	Description string  `json:"description" binding:"max=500" example:"Still mineral water"`
	Unit        string  `json:"unit" binding:"required,min=1,max=20" example:"BOTTLE"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0" example:"2.80"`
	Perishable  *bool   `json:"perishable" example:"true"`
}

// ArticleListRequest represents article list query parameters
type ArticleListRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search     string `form:"search"`
	Active     *bool  `form:"active"`
	Perishable *bool  `form:"perishable"`
	Unit       string `form:"unit"`
}

// Create godoc
// @Summary      Create a catalog article
// @Description  Create a new article in the catering catalog
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body CreateArticleRequest true "Article creation request"
// @Success      201 {object} dto.Response{data=cateringapp.ArticleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), tenantID, cateringapp.CreateArticleRequest{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		UnitPrice:   toDecimal(req.UnitPrice),
		Perishable:  req.Perishable,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, article)
}

// GetByID godoc
// @Summary      Get article by ID
// @Description  Retrieve a catalog article by its ID
// @Tags         articles
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Article ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.ArticleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid article ID format")
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), tenantID, articleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, article)
}

// List godoc
// @Summary      List catalog articles
// @Description  Retrieve a paginated list of catalog articles with optional filtering
// @Tags         articles
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (code, name)"
// @Param        active query bool false "Filter by active flag"
// @Param        perishable query bool false "Filter by perishable flag"
// @Param        unit query string false "Filter by unit"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(code)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(asc)
// @Success      200 {object} dto.Response{data=[]cateringapp.ArticleResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req ArticleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Filters:  make(map[string]interface{}),
	}
	if req.Active != nil {
		filter.Filters["active"] = *req.Active
	}
	if req.Perishable != nil {
		filter.Filters["perishable"] = *req.Perishable
	}
	if req.Unit != "" {
		filter.Filters["unit"] = req.Unit
	}

	articles, total, err := h.articleService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, articles, total, req.Page, req.PageSize)
}

// Update godoc
// @Summary      Update a catalog article
// @Description  Update an existing article's details
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Article ID" format(uuid)
// @Param        request body UpdateArticleRequest true "Article update request"
// @Success      200 {object} dto.Response{data=cateringapp.ArticleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid article ID format")
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), tenantID, articleID, cateringapp.UpdateArticleRequest{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		UnitPrice:   toDecimal(req.UnitPrice),
		Perishable:  req.Perishable,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, article)
}

// Activate godoc
// @Summary      Activate an article
// @Description  Reactivate a deactivated catalog article
// @Tags         articles
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Article ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/articles/{id}/activate [post]
func (h *ArticleHandler) Activate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid article ID format")
		return
	}

	if err := h.articleService.Activate(c.Request.Context(), tenantID, articleID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate godoc
// @Summary      Deactivate an article
// @Description  Deactivate an article so it cannot appear on new orders
// @Tags         articles
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Article ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/articles/{id}/deactivate [post]
func (h *ArticleHandler) Deactivate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid article ID format")
		return
	}

	if err := h.articleService.Deactivate(c.Request.Context(), tenantID, articleID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
