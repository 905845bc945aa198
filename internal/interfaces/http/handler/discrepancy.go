package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cateringapp "github.com/gsc/backend/internal/application/catering"
	"github.com/gsc/backend/internal/domain/catering"
)

// DiscrepancyHandler handles discrepancy workflow API endpoints
type DiscrepancyHandler struct {
	BaseHandler
	discrepancyService *cateringapp.DiscrepancyService
}

// NewDiscrepancyHandler creates a new DiscrepancyHandler
func NewDiscrepancyHandler(discrepancyService *cateringapp.DiscrepancyService) *DiscrepancyHandler {
	return &DiscrepancyHandler{
		discrepancyService: discrepancyService,
	}
}

// StartDiscrepancyRequest represents a request to start working a discrepancy
// @Description Request body for taking ownership of a discrepancy
type StartDiscrepancyRequest struct {
	AssignedTo string `json:"assigned_to" binding:"required,min=1,max=100" example:"a.benali"`
}

// ResolveDiscrepancyRequest represents a request to resolve a discrepancy
// @Description Request body for resolving a discrepancy with a corrective action
type ResolveDiscrepancyRequest struct {
	CorrectiveAction string `json:"corrective_action" binding:"required,min=1,max=500" example:"Credit note requested from the caterer"`
	Note             string `json:"note" binding:"max=500"`
}

// RejectDiscrepancyRequest represents a request to reject a discrepancy
// @Description Request body for rejecting a discrepancy as not actionable
type RejectDiscrepancyRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500" example:"Counting error during reception"`
}

// DiscrepancyListRequest represents discrepancy list query parameters
type DiscrepancyListRequest struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	DeliveryID      string `form:"delivery_id" binding:"omitempty,uuid"`
	PurchaseOrderID string `form:"purchase_order_id" binding:"omitempty,uuid"`
	Kind            string `form:"kind" binding:"omitempty,oneof=QUANTITY_OVER QUANTITY_UNDER ARTICLE_MISSING ARTICLE_EXTRA PRICE_MISMATCH"`
	Status          string `form:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS RESOLVED ACCEPTED REJECTED"`
}

// GetByID godoc
// @Summary      Get discrepancy by ID
// @Description  Retrieve a discrepancy by its ID
// @Tags         discrepancies
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Discrepancy ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.DiscrepancyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/discrepancies/{id} [get]
func (h *DiscrepancyHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	discrepancyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid discrepancy ID format")
		return
	}

	discrepancy, err := h.discrepancyService.GetByID(c.Request.Context(), tenantID, discrepancyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, discrepancy)
}

// List godoc
// @Summary      List discrepancies
// @Description  Retrieve a paginated list of discrepancies with optional filtering
// @Tags         discrepancies
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        delivery_id query string false "Filter by delivery" format(uuid)
// @Param        purchase_order_id query string false "Filter by purchase order" format(uuid)
// @Param        kind query string false "Discrepancy kind" Enums(QUANTITY_OVER, QUANTITY_UNDER, ARTICLE_MISSING, ARTICLE_EXTRA, PRICE_MISMATCH)
// @Param        status query string false "Discrepancy status" Enums(PENDING, IN_PROGRESS, RESOLVED, ACCEPTED, REJECTED)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]cateringapp.DiscrepancyResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/discrepancies [get]
func (h *DiscrepancyHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req DiscrepancyListRequest
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

	filter := cateringapp.DiscrepancyListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
	}
	if req.DeliveryID != "" {
		deliveryID, err := uuid.Parse(req.DeliveryID)
		if err != nil {
			h.BadRequest(c, "Invalid delivery ID format")
			return
		}
		filter.DeliveryID = &deliveryID
	}
	if req.PurchaseOrderID != "" {
		orderID, err := uuid.Parse(req.PurchaseOrderID)
		if err != nil {
			h.BadRequest(c, "Invalid purchase order ID format")
			return
		}
		filter.PurchaseOrderID = &orderID
	}
	if req.Kind != "" {
		kind := catering.DiscrepancyKind(req.Kind)
		filter.Kind = &kind
	}
	if req.Status != "" {
		status := catering.DiscrepancyStatus(req.Status)
		filter.Status = &status
	}

	discrepancies, total, err := h.discrepancyService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, discrepancies, total, req.Page, req.PageSize)
}

// ListByDelivery godoc
// @Summary      List discrepancies of a delivery
// @Description  Retrieve all discrepancies recorded for one delivery note
// @Tags         discrepancies
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Delivery ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]cateringapp.DiscrepancyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries/{id}/discrepancies [get]
func (h *DiscrepancyHandler) ListByDelivery(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid delivery ID format")
		return
	}

	discrepancies, err := h.discrepancyService.ListByDelivery(c.Request.Context(), tenantID, deliveryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, discrepancies)
}

// Start godoc
// @Summary      Start working a discrepancy
// @Description  Assign a pending discrepancy and move it to in-progress
// @Tags         discrepancies
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Discrepancy ID" format(uuid)
// @Param        request body StartDiscrepancyRequest true "Assignment details"
// @Success      200 {object} dto.Response{data=cateringapp.DiscrepancyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/discrepancies/{id}/start [post]
func (h *DiscrepancyHandler) Start(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	discrepancyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid discrepancy ID format")
		return
	}

	var req StartDiscrepancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	discrepancy, err := h.discrepancyService.Start(c.Request.Context(), tenantID, discrepancyID, req.AssignedTo)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, discrepancy)
}

// Resolve godoc
// @Summary      Resolve a discrepancy
// @Description  Record the corrective action taken for an in-progress discrepancy
// @Tags         discrepancies
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Discrepancy ID" format(uuid)
// @Param        request body ResolveDiscrepancyRequest true "Resolution details"
// @Success      200 {object} dto.Response{data=cateringapp.DiscrepancyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/discrepancies/{id}/resolve [post]
func (h *DiscrepancyHandler) Resolve(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	discrepancyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid discrepancy ID format")
		return
	}

	var req ResolveDiscrepancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	discrepancy, err := h.discrepancyService.Resolve(c.Request.Context(), tenantID, discrepancyID, req.CorrectiveAction, req.Note)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, discrepancy)
}

// Accept godoc
// @Summary      Accept a discrepancy
// @Description  Accept a discrepancy as-is without corrective action
// @Tags         discrepancies
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Discrepancy ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.DiscrepancyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/discrepancies/{id}/accept [post]
func (h *DiscrepancyHandler) Accept(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	discrepancyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid discrepancy ID format")
		return
	}

	discrepancy, err := h.discrepancyService.Accept(c.Request.Context(), tenantID, discrepancyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, discrepancy)
}

// Reject godoc
// @Summary      Reject a discrepancy
// @Description  Reject a discrepancy that turned out not to be actionable
// @Tags         discrepancies
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Discrepancy ID" format(uuid)
// @Param        request body RejectDiscrepancyRequest true "Rejection details"
// @Success      200 {object} dto.Response{data=cateringapp.DiscrepancyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/discrepancies/{id}/reject [post]
func (h *DiscrepancyHandler) Reject(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	discrepancyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid discrepancy ID format")
		return
	}

	var req RejectDiscrepancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	discrepancy, err := h.discrepancyService.Reject(c.Request.Context(), tenantID, discrepancyID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, discrepancy)
}

// CountByKind godoc
// @Summary      Get discrepancy counts by kind
// @Description  Get the count of discrepancies grouped by kind
// @Tags         discrepancies
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Success      200 {object} dto.Response{data=map[string]int64}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/discrepancies/stats/by-kind [get]
func (h *DiscrepancyHandler) CountByKind(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	counts, err := h.discrepancyService.CountByKind(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, counts)
}
