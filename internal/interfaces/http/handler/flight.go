package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cateringapp "github.com/gsc/backend/internal/application/catering"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/gsc/backend/internal/domain/shared"
)

// FlightHandler handles flight API endpoints
type FlightHandler struct {
	BaseHandler
	flightService *cateringapp.FlightService
}

// NewFlightHandler creates a new FlightHandler
func NewFlightHandler(flightService *cateringapp.FlightService) *FlightHandler {
	return &FlightHandler{
		flightService: flightService,
	}
}

// CreateFlightRequest represents a request to register a flight
// @Description Request body for registering a flight
type CreateFlightRequest struct {
	FlightNumber       string    `json:"flight_number" binding:"required,min=3,max=10" example:"AT1234"`
	Origin             string    `json:"origin" binding:"required,len=3" example:"CMN"`
	Destination        string    `json:"destination" binding:"required,len=3" example:"CDG"`
	ScheduledDeparture time.Time `json:"scheduled_departure" binding:"required" example:"2026-07-01T08:30:00Z"`
	AircraftType       string    `json:"aircraft_type" binding:"max=50" example:"B737-800"`
	PassengerCount     int       `json:"passenger_count" binding:"min=0" example:"174"`
	Season             string    `json:"season" binding:"required,oneof=SUMMER WINTER" example:"SUMMER"`
}

// UpdateFlightScheduleRequest represents a request to reschedule a flight
// @Description Request body for updating a flight's scheduled departure
type UpdateFlightScheduleRequest struct {
	ScheduledDeparture time.Time `json:"scheduled_departure" binding:"required" example:"2026-07-01T10:15:00Z"`
}

// FlightListRequest represents flight list query parameters
type FlightListRequest struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search      string `form:"search"`
	Season      string `form:"season" binding:"omitempty,oneof=SUMMER WINTER"`
	Origin      string `form:"origin" binding:"omitempty,len=3"`
	Destination string `form:"destination" binding:"omitempty,len=3"`
}

// FlightDepartureWindowRequest represents a departure window query
type FlightDepartureWindowRequest struct {
	From string `form:"from" binding:"required" example:"2026-07-01"`
	To   string `form:"to" binding:"required" example:"2026-07-31"`
}

// Create godoc
// @Summary      Register a flight
// @Description  Register a flight to order catering for
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body CreateFlightRequest true "Flight registration request"
// @Success      201 {object} dto.Response{data=cateringapp.FlightResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/flights [post]
func (h *FlightHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	flight, err := h.flightService.Create(c.Request.Context(), tenantID, cateringapp.CreateFlightRequest{
		FlightNumber:       req.FlightNumber,
		Origin:             req.Origin,
		Destination:        req.Destination,
		ScheduledDeparture: req.ScheduledDeparture,
		AircraftType:       req.AircraftType,
		PassengerCount:     req.PassengerCount,
		Season:             catering.Season(req.Season),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, flight)
}

// GetByID godoc
// @Summary      Get flight by ID
// @Description  Retrieve a flight by its ID
// @Tags         flights
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Flight ID" format(uuid)
// @Success      200 {object} dto.Response{data=cateringapp.FlightResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/flights/{id} [get]
func (h *FlightHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	flightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid flight ID format")
		return
	}

	flight, err := h.flightService.GetByID(c.Request.Context(), tenantID, flightID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, flight)
}

// List godoc
// @Summary      List flights
// @Description  Retrieve a paginated list of flights with optional filtering
// @Tags         flights
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (flight number)"
// @Param        season query string false "Season" Enums(SUMMER, WINTER)
// @Param        origin query string false "Origin airport code"
// @Param        destination query string false "Destination airport code"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(scheduled_departure)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(asc)
// @Success      200 {object} dto.Response{data=[]cateringapp.FlightResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/flights [get]
func (h *FlightHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req FlightListRequest
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
	if req.Season != "" {
		filter.Filters["season"] = req.Season
	}
	if req.Origin != "" {
		filter.Filters["origin"] = req.Origin
	}
	if req.Destination != "" {
		filter.Filters["destination"] = req.Destination
	}

	flights, total, err := h.flightService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, flights, total, req.Page, req.PageSize)
}

// ListDepartures godoc
// @Summary      List flights departing in a window
// @Description  Retrieve flights with a scheduled departure inside the given date window
// @Tags         flights
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        from query string true "Window start date (YYYY-MM-DD)"
// @Param        to query string true "Window end date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]cateringapp.FlightResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/flights/departures [get]
func (h *FlightHandler) ListDepartures(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req FlightDepartureWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	from, to, err := parseDateWindow(req.From, req.To)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	flights, err := h.flightService.ListByDepartureWindow(c.Request.Context(), tenantID, from, to, shared.DefaultFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, flights)
}

// UpdateSchedule godoc
// @Summary      Reschedule a flight
// @Description  Update a flight's scheduled departure time
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Flight ID" format(uuid)
// @Param        request body UpdateFlightScheduleRequest true "New departure time"
// @Success      200 {object} dto.Response{data=cateringapp.FlightResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/flights/{id}/schedule [put]
func (h *FlightHandler) UpdateSchedule(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	flightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid flight ID format")
		return
	}

	var req UpdateFlightScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	flight, err := h.flightService.UpdateSchedule(c.Request.Context(), tenantID, flightID, req.ScheduledDeparture)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, flight)
}

// Delete godoc
// @Summary      Delete a flight
// @Description  Delete a flight that has no orders attached
// @Tags         flights
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Flight ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catering/flights/{id} [delete]
func (h *FlightHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	flightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid flight ID format")
		return
	}

	if err := h.flightService.Delete(c.Request.Context(), tenantID, flightID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
