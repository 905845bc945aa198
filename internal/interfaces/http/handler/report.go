package handler

import (
	"github.com/gin-gonic/gin"
	cateringapp "github.com/gsc/backend/internal/application/catering"
)

// ReportHandler handles budget reporting API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *cateringapp.BudgetReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *cateringapp.BudgetReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// BudgetStatisticsRequest represents budget statistics query parameters
type BudgetStatisticsRequest struct {
	From string `form:"from" binding:"required" example:"2026-06-01"`
	To   string `form:"to" binding:"required" example:"2026-06-30"`
}

// GetBudgetStatistics godoc
// @Summary      Get budget statistics
// @Description  Compare forecast order spend against delivered spend per flight over a date window
// @Tags         reports
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        from query string true "Window start date (YYYY-MM-DD)"
// @Param        to query string true "Window end date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=cateringapp.BudgetStatisticsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/reports/budget [get]
func (h *ReportHandler) GetBudgetStatistics(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req BudgetStatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	from, to, err := parseDateWindow(req.From, req.To)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stats, err := h.reportService.Statistics(c.Request.Context(), tenantID, from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}
