package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cateringapp "github.com/gsc/backend/internal/application/catering"
	"github.com/gsc/backend/internal/domain/catering"
)

// PurchaseOrderHandler handles forecast purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService *cateringapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *cateringapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		orderService: orderService,
	}
}

// CreateOrderLineRequest represents one line of an order creation request
// @Description One order line. Omit unit_price to use the catalog price.
type CreateOrderLineRequest struct {
	ArticleID string   `json:"article_id" binding:"required,uuid" example:"d7f1a9b0-3c2e-4f5a-8b6d-1e2f3a4b5c6d"`
	Quantity  float64  `json:"quantity" binding:"gte=0" example:"120"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,gt=0" example:"2.50"`
}

// CreatePurchaseOrderRequest represents a request to create a forecast order
// @Description Request body for creating a forecast purchase order
type CreatePurchaseOrderRequest struct {
	FlightID  string                   `json:"flight_id" binding:"required,uuid" example:"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"`
	OrderDate time.Time                `json:"order_date" binding:"required" example:"2026-06-28T00:00:00Z"`
	Remark    string                   `json:"remark" binding:"max=500" example:"Extra water for summer rotation"`
	Lines     []CreateOrderLineRequest `json:"lines" binding:"omitempty,dive"`
}

// AddOrderLineRequest represents a request to add a line to a draft order
// @Description Request body for adding a line to a draft order
type AddOrderLineRequest struct {
	ArticleID string   `json:"article_id" binding:"required,uuid"`
	Quantity  float64  `json:"quantity" binding:"gte=0" example:"40"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,gt=0" example:"0.80"`
}

// CancelOrderRequest represents a request to cancel an order
// @Description Request body for cancelling an order
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500" example:"Flight cancelled"`
}

// PurchaseOrderListRequest represents order list query parameters
type PurchaseOrderListRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	FlightID  string `form:"flight_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT SENT CONFIRMED CANCELLED"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Create godoc
// @Summary      Create a forecast order
// @Description  Create a forecast purchase order for a flight, optionally with initial lines
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body CreatePurchaseOrderRequest true "Order creation request"
// @Success      201 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		h.BadRequest(c, "Invalid flight ID format")
		return
	}

	appReq := cateringapp.CreatePurchaseOrderRequest{
		FlightID:  flightID,
		OrderDate: req.OrderDate,
		Remark:    req.Remark,
		Lines:     make([]cateringapp.CreateOrderLineRequest, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		articleID, err := uuid.Parse(line.ArticleID)
		if err != nil {
			h.BadRequest(c, "Invalid article ID format")
			return
		}
		appLine := cateringapp.CreateOrderLineRequest{
			ArticleID: articleID,
			Quantity:  toDecimal(line.Quantity),
		}
		if line.UnitPrice != nil {
			appLine.UnitPrice = toDecimalPtr(*line.UnitPrice)
		}
		appReq.Lines = append(appReq.Lines, appLine)
	}

	order, err := h.orderService.Create(c.Request.Context(), tenantID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID godoc
// @Summary      Get order by ID
// @Description  Retrieve a purchase order with its lines
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), tenantID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByOrderNumber godoc
// @Summary      Get order by order number
// @Description  Retrieve a purchase order by its human-readable number
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        order_number path string true "Order number" example(BCP-2026-00042)
// @Success      200 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/number/{order_number} [get]
func (h *PurchaseOrderHandler) GetByOrderNumber(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderNumber := c.Param("order_number")
	if orderNumber == "" {
		h.BadRequest(c, "Order number is required")
		return
	}

	order, err := h.orderService.GetByOrderNumber(c.Request.Context(), tenantID, orderNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// List godoc
// @Summary      List purchase orders
// @Description  Retrieve a paginated list of purchase orders with optional filtering
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (order number, flight number)"
// @Param        flight_id query string false "Filter by flight" format(uuid)
// @Param        status query string false "Order status" Enums(DRAFT, SENT, CONFIRMED, CANCELLED)
// @Param        start_date query string false "Order date window start (YYYY-MM-DD)"
// @Param        end_date query string false "Order date window end (YYYY-MM-DD)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]cateringapp.PurchaseOrderListItemResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req PurchaseOrderListRequest
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

	filter := cateringapp.PurchaseOrderListFilter{
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
	if req.Status != "" {
		status := catering.PurchaseOrderStatus(req.Status)
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

	orders, total, err := h.orderService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, req.Page, req.PageSize)
}

// AddLine godoc
// @Summary      Add a line to a draft order
// @Description  Add an article line to a draft purchase order
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body AddOrderLineRequest true "Order line"
// @Success      200 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/{id}/lines [post]
func (h *PurchaseOrderHandler) AddLine(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req AddOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	articleID, err := uuid.Parse(req.ArticleID)
	if err != nil {
		h.BadRequest(c, "Invalid article ID format")
		return
	}

	appReq := cateringapp.AddOrderLineRequest{
		ArticleID: articleID,
		Quantity:  toDecimal(req.Quantity),
	}
	if req.UnitPrice != nil {
		appReq.UnitPrice = toDecimalPtr(*req.UnitPrice)
	}

	order, err := h.orderService.AddLine(c.Request.Context(), tenantID, orderID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// RemoveLine godoc
// @Summary      Remove a line from a draft order
// @Description  Remove an article line from a draft purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Order ID" format(uuid)
// @Param        line_id path string true "Line ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/{id}/lines/{line_id} [delete]
func (h *PurchaseOrderHandler) RemoveLine(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	lineID, err := uuid.Parse(c.Param("line_id"))
	if err != nil {
		h.BadRequest(c, "Invalid line ID format")
		return
	}

	order, err := h.orderService.RemoveLine(c.Request.Context(), tenantID, orderID, lineID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Send godoc
// @Summary      Send an order to the caterer
// @Description  Transition a draft order to sent; the order must have at least one line
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/{id}/send [post]
func (h *PurchaseOrderHandler) Send(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Send(c.Request.Context(), tenantID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Confirm godoc
// @Summary      Confirm an order
// @Description  Record the caterer's confirmation of a sent order
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/{id}/confirm [post]
func (h *PurchaseOrderHandler) Confirm(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Confirm(c.Request.Context(), tenantID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel godoc
// @Summary      Cancel an order
// @Description  Cancel an order that has not been confirmed yet
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body CancelOrderRequest true "Cancellation reason"
// @Success      200 {object} dto.Response{data=cateringapp.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/{id}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), tenantID, orderID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete godoc
// @Summary      Delete a draft order
// @Description  Delete a purchase order that is still in draft
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Order ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), tenantID, orderID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// GetStatusSummary godoc
// @Summary      Get order counts by status
// @Description  Get the count of purchase orders grouped by status
// @Tags         purchase-orders
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Success      200 {object} dto.Response{data=map[string]int64}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/purchase-orders/stats/summary [get]
func (h *PurchaseOrderHandler) GetStatusSummary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	summary, err := h.orderService.GetStatusSummary(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
