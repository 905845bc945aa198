package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ArticleSortFields contains allowed sort fields for catalog articles
var ArticleSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"unit":       true,
	"unit_price": true,
	"active":     true,
	"perishable": true,
}

// FlightSortFields contains allowed sort fields for flights
var FlightSortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"flight_number":       true,
	"origin":              true,
	"destination":         true,
	"scheduled_departure": true,
	"season":              true,
	"passenger_count":     true,
}

// PurchaseOrderSortFields contains allowed sort fields for forecast orders
var PurchaseOrderSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"flight_id":    true,
	"order_date":   true,
	"status":       true,
	"total_amount": true,
	"sent_at":      true,
	"confirmed_at": true,
}

// DeliverySortFields contains allowed sort fields for deliveries
var DeliverySortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"delivery_number": true,
	"flight_id":       true,
	"supplier_name":   true,
	"delivery_date":   true,
	"status":          true,
	"total_amount":    true,
	"received_at":     true,
	"validated_at":    true,
}

// DiscrepancySortFields contains allowed sort fields for discrepancies
var DiscrepancySortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"flight_id":    true,
	"kind":         true,
	"status":       true,
	"article_code": true,
	"qty_delta":    true,
	"amount_delta": true,
	"detected_at":  true,
	"resolved_at":  true,
}
