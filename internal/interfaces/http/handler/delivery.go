package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cateringapp "github.com/gsc/backend/internal/application/catering"
	"github.com/gsc/backend/internal/domain/catering"
)

// DeliveryHandler handles delivery note API endpoints
type DeliveryHandler struct {
	BaseHandler
	deliveryService *cateringapp.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(deliveryService *cateringapp.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryService: deliveryService,
	}
}

// CreateDeliveryLineRequest represents one line of a delivery note
// @Description One delivery line. Omit article_id for a free-text line.
type CreateDeliveryLineRequest struct {
	ArticleID   *string `json:"article_id" binding:"omitempty,uuid" example:"d7f1a9b0-3c2e-4f5a-8b6d-1e2f3a4b5c6d"`
	Description string  `json:"description" binding:"max=200" example:"Mineral water 50cl"`
	Quantity    float64 `json:"quantity" binding:"gte=0" example:"118"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0" example:"2.50"`
}

// CreateDeliveryRequest represents a request to register a delivery note
// @Description Request body for registering a caterer delivery note
type CreateDeliveryRequest struct {
	FlightID        string                     `json:"flight_id" binding:"required,uuid" example:"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"`
	PurchaseOrderID *string                    `json:"purchase_order_id" binding:"omitempty,uuid"`
	SupplierName    string                     `json:"supplier_name" binding:"required,min=1,max=200" example:"SkyMeals Casablanca"`
	DeliveryDate    time.Time                  `json:"delivery_date" binding:"required" example:"2026-07-01T06:00:00Z"`
	Remark          string                     `json:"remark" binding:"max=500"`
	Lines           []CreateDeliveryLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ReceiveDeliveryRequest represents a request to mark a delivery as received
// @Description Request body for marking a delivery note as received
type ReceiveDeliveryRequest struct {
	ReceivedBy string `json:"received_by" binding:"required,min=1,max=100" example:"a.benali"`
}

// ValidateDeliveryRequest represents a request to validate a delivery
// @Description Request body for validating a delivery against its order
type ValidateDeliveryRequest struct {
	ValidatedBy string `json:"validated_by" binding:"required,min=1,max=100" example:"a.benali"`
}

// RejectDeliveryRequest represents a request to reject a delivery
// @Description Request body for rejecting a delivery note
type RejectDeliveryRequest struct {
	RejectedBy string `json:"rejected_by" binding:"required,min=1,max=100" example:"a.benali"`
	Reason     string `json:"reason" binding:"required,min=1,max=500" example:"Wrong flight on the paperwork"`
}

// DeliveryListRequest represents delivery list query parameters
type DeliveryListRequest struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search          string `form:"search"`
	FlightID        string `form:"flight_id" binding:"omitempty,uuid"`
	PurchaseOrderID string `form:"purchase_order_id" binding:"omitempty,uuid"`
	Status          string `form:"status" binding:"omitempty,oneof=PENDING RECEIVED VALIDATED REJECTED"`
	StartDate       string `form:"start_date"`
	EndDate         string `form:"end_date"`
}

// Create godoc
// @Summary      Register a delivery note
// @Description  Register a caterer delivery note with its lines
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body CreateDeliveryRequest true "Delivery note registration request"
// @Success      201 {object} dto.Response{data=cateringapp.DeliveryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries [post]
func (h *DeliveryHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		h.BadRequest(c, "Invalid flight ID format")
		return
	}

	appReq := cateringapp.CreateDeliveryRequest{
		FlightID:     flightID,
		SupplierName: req.SupplierName,
		DeliveryDate: req.DeliveryDate,
		Remark:       req.Remark,
		Lines:        make([]cateringapp.CreateDeliveryLineRequest, 0, len(req.Lines)),
	}
	if req.PurchaseOrderID != nil {
		orderID, err := uuid.Parse(*req.PurchaseOrderID)
		if err != nil {
			h.BadRequest(c, "Invalid purchase order ID format")
			return
		}
		appReq.PurchaseOrderID = &orderID
	}
	for _, line := range req.Lines {
		appLine := cateringapp.CreateDeliveryLineRequest{
			Description: line.Description,
			Quantity:    toDecimal(line.Quantity),
			UnitPrice:   toDecimal(line.UnitPrice),
		}
		if line.ArticleID != nil {
			articleID, err := uuid.Parse(*line.ArticleID)
			if err != nil {
				h.BadRequest(c, "Invalid article ID format")
				return
			}
			appLine.ArticleID = &articleID
		}
		appReq.Lines = append(appReq.Lines, appLine)
	}

	delivery, err := h.deliveryService.Create(c.Request.Context(), tenantID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, delivery)
}

// GetByID godoc
// @Summary      Get delivery by ID
// @Description  Retrieve a delivery note with its lines
// @Tags         deliveries
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Delivery ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.DeliveryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries/{id} [get]
func (h *DeliveryHandler) GetByID(c *gin.Context) {
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

	delivery, err := h.deliveryService.GetByID(c.Request.Context(), tenantID, deliveryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, delivery)
}

// List godoc
// @Summary      List delivery notes
// @Description  Retrieve a paginated list of delivery notes with optional filtering
// @Tags         deliveries
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (delivery number, supplier)"
// @Param        flight_id query string false "Filter by flight" format(uuid)
// @Param        purchase_order_id query string false "Filter by purchase order" format(uuid)
// @Param        status query string false "Delivery status" Enums(PENDING, RECEIVED, VALIDATED, REJECTED)
// @Param        start_date query string false "Delivery date window start (YYYY-MM-DD)"
// @Param        end_date query string false "Delivery date window end (YYYY-MM-DD)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]cateringapp.DeliveryListItemResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries [get]
func (h *DeliveryHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req DeliveryListRequest
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

	filter := cateringapp.DeliveryListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}
	if req.FlightID != "" {
		flightID, err := uuid.Parse(req.FlightID)
		if err != nil {
			h.BadRequest(c, "Invalid flight ID format")
			return
		}
		filter.FlightID = &flightID
	}
	if req.PurchaseOrderID != "" {
		orderID, err := uuid.Parse(req.PurchaseOrderID)
		if err != nil {
			h.BadRequest(c, "Invalid purchase order ID format")
			return
		}
		filter.PurchaseOrderID = &orderID
	}
	if req.Status != "" {
		status := catering.DeliveryStatus(req.Status)
		filter.Status = &status
	}
	if req.StartDate != "" {
		startDate, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			h.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		filter.StartDate = &startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			h.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		endDate = endDate.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &endDate
	}

	deliveries, total, err := h.deliveryService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, deliveries, total, req.Page, req.PageSize)
}

// Receive godoc
// @Summary      Mark a delivery as received
// @Description  Record the physical reception of a pending delivery note
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Delivery ID" format(uuid)
// @Param        request body ReceiveDeliveryRequest true "Reception details"
// @Success      200 {object} dto.Response{data=cateringapp.DeliveryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries/{id}/receive [post]
func (h *DeliveryHandler) Receive(c *gin.Context) {
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

	var req ReceiveDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	delivery, err := h.deliveryService.Receive(c.Request.Context(), tenantID, deliveryID, req.ReceivedBy)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, delivery)
}

// Validate godoc
// @Summary      Validate a delivery
// @Description  Compare a delivery against its forecast order, record any discrepancies and finalize the delivery. A delivery can only be validated once.
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Delivery ID" format(uuid)
// @Param        request body ValidateDeliveryRequest true "Validation details"
// @Success      200 {object} dto.Response{data=cateringapp.ValidationResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries/{id}/validate [post]
func (h *DeliveryHandler) Validate(c *gin.Context) {
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

	var req ValidateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.deliveryService.Validate(c.Request.Context(), tenantID, deliveryID, req.ValidatedBy)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Reject godoc
// @Summary      Reject a delivery
// @Description  Reject a pending or received delivery note
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Delivery ID" format(uuid)
// @Param        request body RejectDeliveryRequest true "Rejection details"
// @Success      200 {object} dto.Response{data=cateringapp.DeliveryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries/{id}/reject [post]
func (h *DeliveryHandler) Reject(c *gin.Context) {
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

	var req RejectDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	delivery, err := h.deliveryService.Reject(c.Request.Context(), tenantID, deliveryID, req.RejectedBy, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, delivery)
}

// Delete godoc
// @Summary      Delete a pending delivery
// @Description  Delete a delivery note that has not been received yet
// @Tags         deliveries
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Delivery ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/deliveries/{id} [delete]
func (h *DeliveryHandler) Delete(c *gin.Context) {
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

	if err := h.deliveryService.Delete(c.Request.Context(), tenantID, deliveryID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
