package catering

import (
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/catering"
	"github.com/shopspring/decimal"
)

// --- Article DTOs ---

// CreateArticleRequest is the request to create a catalog article
type CreateArticleRequest struct {
	Code        string
	Name        string
	Description string
	Unit        string
	UnitPrice   decimal.Decimal
	Perishable  bool
}

// UpdateArticleRequest is the request to update a catalog article
type UpdateArticleRequest struct {
	Name        string
	Description string
	Unit        string
	UnitPrice   decimal.Decimal
	Perishable  *bool
}

// ArticleResponse is the article representation returned to callers
type ArticleResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Perishable  bool            `json:"perishable"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToArticleResponse maps an article aggregate to its response
func ToArticleResponse(a *catering.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		Description: a.Description,
		Unit:        a.Unit,
		UnitPrice:   a.UnitPrice,
		Perishable:  a.Perishable,
		Active:      a.Active,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToArticleResponses maps a slice of articles to responses
func ToArticleResponses(articles []catering.Article) []ArticleResponse {
	responses := make([]ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = ToArticleResponse(&articles[i])
	}
	return responses
}

// --- Flight DTOs ---

// CreateFlightRequest is the request to register a flight
type CreateFlightRequest struct {
	FlightNumber       string
	Origin             string
	Destination        string
	ScheduledDeparture time.Time
	AircraftType       string
	PassengerCount     int
	Season             catering.Season
}

// FlightResponse is the flight representation returned to callers
type FlightResponse struct {
	ID                 uuid.UUID       `json:"id"`
	FlightNumber       string          `json:"flight_number"`
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	Route              string          `json:"route"`
	ScheduledDeparture time.Time       `json:"scheduled_departure"`
	AircraftType       string          `json:"aircraft_type,omitempty"`
	PassengerCount     int             `json:"passenger_count"`
	Season             catering.Season `json:"season"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToFlightResponse maps a flight aggregate to its response
func ToFlightResponse(f *catering.Flight) FlightResponse {
	return FlightResponse{
		ID:                 f.ID,
		FlightNumber:       f.FlightNumber,
		Origin:             f.Origin,
		Destination:        f.Destination,
		Route:              f.Route(),
		ScheduledDeparture: f.ScheduledDeparture,
		AircraftType:       f.AircraftType,
		PassengerCount:     f.PassengerCount,
		Season:             f.Season,
		CreatedAt:          f.CreatedAt,
		UpdatedAt:          f.UpdatedAt,
	}
}

// ToFlightResponses maps a slice of flights to responses
func ToFlightResponses(flights []catering.Flight) []FlightResponse {
	responses := make([]FlightResponse, len(flights))
	for i := range flights {
		responses[i] = ToFlightResponse(&flights[i])
	}
	return responses
}

// --- Purchase order DTOs ---

// CreateOrderLineRequest is one line of a create-order request
type CreateOrderLineRequest struct {
	ArticleID uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice *decimal.Decimal // nil means use the catalog price
}

// CreatePurchaseOrderRequest is the request to create a forecast order
type CreatePurchaseOrderRequest struct {
	FlightID  uuid.UUID
	OrderDate time.Time
	Remark    string
	Lines     []CreateOrderLineRequest
}

// AddOrderLineRequest is the request to add a line to a draft order
type AddOrderLineRequest struct {
	ArticleID uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice *decimal.Decimal
}

// OrderLineResponse is one order line in a response
type OrderLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleCode string          `json:"article_code"`
	ArticleName string          `json:"article_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse is the full order representation
type PurchaseOrderResponse struct {
	ID           uuid.UUID                    `json:"id"`
	OrderNumber  string                       `json:"order_number"`
	FlightID     uuid.UUID                    `json:"flight_id"`
	FlightNumber string                       `json:"flight_number"`
	OrderDate    time.Time                    `json:"order_date"`
	Status       catering.PurchaseOrderStatus `json:"status"`
	TotalAmount  decimal.Decimal              `json:"total_amount"`
	Remark       string                       `json:"remark,omitempty"`
	Lines        []OrderLineResponse          `json:"lines"`
	SentAt       *time.Time                   `json:"sent_at,omitempty"`
	ConfirmedAt  *time.Time                   `json:"confirmed_at,omitempty"`
	CancelledAt  *time.Time                   `json:"cancelled_at,omitempty"`
	CancelReason string                       `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

// ToPurchaseOrderResponse maps an order aggregate to its response
func ToPurchaseOrderResponse(o *catering.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = OrderLineResponse{
			ID:          line.ID,
			ArticleID:   line.ArticleID,
			ArticleCode: line.ArticleCode,
			ArticleName: line.ArticleName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		}
	}
	return PurchaseOrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		FlightID:     o.FlightID,
		FlightNumber: o.FlightNumber,
		OrderDate:    o.OrderDate,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		Remark:       o.Remark,
		Lines:        lines,
		SentAt:       o.SentAt,
		ConfirmedAt:  o.ConfirmedAt,
		CancelledAt:  o.CancelledAt,
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// PurchaseOrderListItemResponse is the compact order representation for lists
type PurchaseOrderListItemResponse struct {
	ID           uuid.UUID                    `json:"id"`
	OrderNumber  string                       `json:"order_number"`
	FlightNumber string                       `json:"flight_number"`
	OrderDate    time.Time                    `json:"order_date"`
	Status       catering.PurchaseOrderStatus `json:"status"`
	TotalAmount  decimal.Decimal              `json:"total_amount"`
	LineCount    int                          `json:"line_count"`
	CreatedAt    time.Time                    `json:"created_at"`
}

// ToPurchaseOrderListItemResponses maps orders to list items
func ToPurchaseOrderListItemResponses(orders []catering.PurchaseOrder) []PurchaseOrderListItemResponse {
	responses := make([]PurchaseOrderListItemResponse, len(orders))
	for i := range orders {
		o := &orders[i]
		responses[i] = PurchaseOrderListItemResponse{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			FlightNumber: o.FlightNumber,
			OrderDate:    o.OrderDate,
			Status:       o.Status,
			TotalAmount:  o.TotalAmount,
			LineCount:    len(o.Lines),
			CreatedAt:    o.CreatedAt,
		}
	}
	return responses
}

// PurchaseOrderListFilter filters order listings
type PurchaseOrderListFilter struct {
	Page      int
	PageSize  int
	OrderBy   string
	OrderDir  string
	Search    string
	FlightID  *uuid.UUID
	Status    *catering.PurchaseOrderStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// --- Delivery DTOs ---

// CreateDeliveryLineRequest is one line of a create-delivery request.
// ArticleID nil creates a free-text line.
type CreateDeliveryLineRequest struct {
	ArticleID   *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// CreateDeliveryRequest is the request to register a delivery note
type CreateDeliveryRequest struct {
	FlightID        uuid.UUID
	PurchaseOrderID *uuid.UUID
	SupplierName    string
	DeliveryDate    time.Time
	Remark          string
	Lines           []CreateDeliveryLineRequest
}

// DeliveryLineResponse is one delivery line in a response
type DeliveryLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ArticleID   *uuid.UUID      `json:"article_id,omitempty"`
	ArticleCode string          `json:"article_code,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// DeliveryResponse is the full delivery representation
type DeliveryResponse struct {
	ID              uuid.UUID               `json:"id"`
	DeliveryNumber  string                  `json:"delivery_number"`
	PurchaseOrderID *uuid.UUID              `json:"purchase_order_id,omitempty"`
	FlightID        uuid.UUID               `json:"flight_id"`
	FlightNumber    string                  `json:"flight_number"`
	SupplierName    string                  `json:"supplier_name"`
	DeliveryDate    time.Time               `json:"delivery_date"`
	Status          catering.DeliveryStatus `json:"status"`
	TotalAmount     decimal.Decimal         `json:"total_amount"`
	Remark          string                  `json:"remark,omitempty"`
	Lines           []DeliveryLineResponse  `json:"lines"`
	ReceivedBy      string                  `json:"received_by,omitempty"`
	ReceivedAt      *time.Time              `json:"received_at,omitempty"`
	ValidatedBy     string                  `json:"validated_by,omitempty"`
	ValidatedAt     *time.Time              `json:"validated_at,omitempty"`
	RejectedBy      string                  `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time              `json:"rejected_at,omitempty"`
	RejectReason    string                  `json:"reject_reason,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// ToDeliveryResponse maps a delivery aggregate to its response
func ToDeliveryResponse(d *catering.Delivery) DeliveryResponse {
	lines := make([]DeliveryLineResponse, len(d.Lines))
	for i, line := range d.Lines {
		lines[i] = DeliveryLineResponse{
			ID:          line.ID,
			ArticleID:   line.ArticleID,
			ArticleCode: line.ArticleCode,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		}
	}
	return DeliveryResponse{
		ID:              d.ID,
		DeliveryNumber:  d.DeliveryNumber,
		PurchaseOrderID: d.PurchaseOrderID,
		FlightID:        d.FlightID,
		FlightNumber:    d.FlightNumber,
		SupplierName:    d.SupplierName,
		DeliveryDate:    d.DeliveryDate,
		Status:          d.Status,
		TotalAmount:     d.TotalAmount,
		Remark:          d.Remark,
		Lines:           lines,
		ReceivedBy:      d.ReceivedBy,
		ReceivedAt:      d.ReceivedAt,
		ValidatedBy:     d.ValidatedBy,
		ValidatedAt:     d.ValidatedAt,
		RejectedBy:      d.RejectedBy,
		RejectedAt:      d.RejectedAt,
		RejectReason:    d.RejectReason,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// DeliveryListItemResponse is the compact delivery representation for lists
type DeliveryListItemResponse struct {
	ID             uuid.UUID               `json:"id"`
	DeliveryNumber string                  `json:"delivery_number"`
	FlightNumber   string                  `json:"flight_number"`
	SupplierName   string                  `json:"supplier_name"`
	DeliveryDate   time.Time               `json:"delivery_date"`
	Status         catering.DeliveryStatus `json:"status"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	LineCount      int                     `json:"line_count"`
	CreatedAt      time.Time               `json:"created_at"`
}

// ToDeliveryListItemResponses maps deliveries to list items
func ToDeliveryListItemResponses(deliveries []catering.Delivery) []DeliveryListItemResponse {
	responses := make([]DeliveryListItemResponse, len(deliveries))
	for i := range deliveries {
		d := &deliveries[i]
		responses[i] = DeliveryListItemResponse{
			ID:             d.ID,
			DeliveryNumber: d.DeliveryNumber,
			FlightNumber:   d.FlightNumber,
			SupplierName:   d.SupplierName,
			DeliveryDate:   d.DeliveryDate,
			Status:         d.Status,
			TotalAmount:    d.TotalAmount,
			LineCount:      len(d.Lines),
			CreatedAt:      d.CreatedAt,
		}
	}
	return responses
}

// DeliveryListFilter filters delivery listings
type DeliveryListFilter struct {
	Page            int
	PageSize        int
	OrderBy         string
	OrderDir        string
	Search          string
	FlightID        *uuid.UUID
	PurchaseOrderID *uuid.UUID
	Status          *catering.DeliveryStatus
	StartDate       *time.Time
	EndDate         *time.Time
}

// ValidationResult reports the outcome of validating a delivery
type ValidationResult struct {
	DeliveryID             uuid.UUID `json:"delivery_id"`
	DeliveryNumber         string    `json:"delivery_number"`
	Success                bool      `json:"success"`
	DiscrepanciesGenerated int       `json:"discrepancies_generated"`
	ValidatedBy            string    `json:"validated_by"`
	ValidatedAt            time.Time `json:"validated_at"`
}

// --- Discrepancy DTOs ---

// DiscrepancyResponse is the discrepancy representation returned to callers
type DiscrepancyResponse struct {
	ID               uuid.UUID                  `json:"id"`
	FlightID         uuid.UUID                  `json:"flight_id"`
	DeliveryID       uuid.UUID                  `json:"delivery_id"`
	PurchaseOrderID  uuid.UUID                  `json:"purchase_order_id"`
	ArticleID        uuid.UUID                  `json:"article_id"`
	ArticleCode      string                     `json:"article_code,omitempty"`
	ArticleName      string                     `json:"article_name"`
	Description      string                     `json:"description,omitempty"`
	Kind             catering.DiscrepancyKind   `json:"kind"`
	QtyOrdered       decimal.Decimal            `json:"qty_ordered"`
	QtyDelivered     decimal.Decimal            `json:"qty_delivered"`
	QtyDelta         decimal.Decimal            `json:"qty_delta"`
	AmountOrdered    decimal.Decimal            `json:"amount_ordered"`
	AmountDelivered  decimal.Decimal            `json:"amount_delivered"`
	AmountDelta      decimal.Decimal            `json:"amount_delta"`
	DetectedAt       time.Time                  `json:"detected_at"`
	Status           catering.DiscrepancyStatus `json:"status"`
	AssignedTo       string                     `json:"assigned_to,omitempty"`
	CorrectiveAction string                     `json:"corrective_action,omitempty"`
	ResolutionNote   string                     `json:"resolution_note,omitempty"`
	ResolvedAt       *time.Time                 `json:"resolved_at,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// ToDiscrepancyResponse maps a discrepancy aggregate to its response
func ToDiscrepancyResponse(e *catering.Discrepancy) DiscrepancyResponse {
	return DiscrepancyResponse{
		ID:               e.ID,
		FlightID:         e.FlightID,
		DeliveryID:       e.DeliveryID,
		PurchaseOrderID:  e.PurchaseOrderID,
		ArticleID:        e.ArticleID,
		ArticleCode:      e.ArticleCode,
		ArticleName:      e.ArticleName,
		Description:      e.Description,
		Kind:             e.Kind,
		QtyOrdered:       e.QtyOrdered,
		QtyDelivered:     e.QtyDelivered,
		QtyDelta:         e.QtyDelta,
		AmountOrdered:    e.AmountOrdered,
		AmountDelivered:  e.AmountDelivered,
		AmountDelta:      e.AmountDelta,
		DetectedAt:       e.DetectedAt,
		Status:           e.Status,
		AssignedTo:       e.AssignedTo,
		CorrectiveAction: e.CorrectiveAction,
		ResolutionNote:   e.ResolutionNote,
		ResolvedAt:       e.ResolvedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ToDiscrepancyResponses maps a slice of discrepancies to responses
func ToDiscrepancyResponses(discrepancies []catering.Discrepancy) []DiscrepancyResponse {
	responses := make([]DiscrepancyResponse, len(discrepancies))
	for i := range discrepancies {
		responses[i] = ToDiscrepancyResponse(&discrepancies[i])
	}
	return responses
}

// DiscrepancyListFilter filters discrepancy listings
type DiscrepancyListFilter struct {
	Page            int
	PageSize        int
	OrderBy         string
	OrderDir        string
	DeliveryID      *uuid.UUID
	PurchaseOrderID *uuid.UUID
	Kind            *catering.DiscrepancyKind
	Status          *catering.DiscrepancyStatus
}

// --- Budget report DTOs ---

// FlightBudgetResponse is one per-flight row of the budget report
type FlightBudgetResponse struct {
	FlightID         uuid.UUID       `json:"flight_id"`
	FlightNumber     string          `json:"flight_number"`
	OrderedAmount    decimal.Decimal `json:"ordered_amount"`
	DeliveredAmount  decimal.Decimal `json:"delivered_amount"`
	AmountDelta      decimal.Decimal `json:"amount_delta"`
	DiscrepancyCount int64           `json:"discrepancy_count"`
}

// BudgetStatisticsResponse is the aggregate budget report
type BudgetStatisticsResponse struct {
	From                 time.Time                          `json:"from"`
	To                   time.Time                          `json:"to"`
	TotalOrderedAmount   decimal.Decimal                    `json:"total_ordered_amount"`
	TotalDeliveredAmount decimal.Decimal                    `json:"total_delivered_amount"`
	TotalAmountDelta     decimal.Decimal                    `json:"total_amount_delta"`
	Flights              []FlightBudgetResponse             `json:"flights"`
	DiscrepancyByKind    map[catering.DiscrepancyKind]int64 `json:"discrepancy_by_kind"`
}
