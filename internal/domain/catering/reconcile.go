package catering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmountTolerance is the monetary tolerance up to which an amount difference
// on a quantity-matched line is not reported.
var AmountTolerance = decimal.NewFromFloat(0.01)

// orderLineIndex builds a lookup of order lines by article ID. Duplicate
// articles keep the last line (duplicates are rejected at the aggregate
// boundary, so they can only come from legacy data).
func orderLineIndex(order *PurchaseOrder) map[uuid.UUID]*OrderLine {
	idx := make(map[uuid.UUID]*OrderLine, len(order.Lines))
	for i := range order.Lines {
		idx[order.Lines[i].ArticleID] = &order.Lines[i]
	}
	return idx
}

// deliveryLineIndex builds a lookup of delivery lines by article ID.
// Free-text lines (nil article) are excluded.
func deliveryLineIndex(delivery *Delivery) map[uuid.UUID]*DeliveryLine {
	idx := make(map[uuid.UUID]*DeliveryLine, len(delivery.Lines))
	for i := range delivery.Lines {
		if delivery.Lines[i].ArticleID != nil {
			idx[*delivery.Lines[i].ArticleID] = &delivery.Lines[i]
		}
	}
	return idx
}

// DetectDiscrepancies compares a delivery against its forecast order and
// returns one discrepancy per differing article. It performs no I/O; the
// detection timestamp is taken from the caller's clock.
//
// Two passes: order lines first (quantity/price differences and missing
// articles, in order-line order), then delivery lines whose article does not
// appear on the order (extra articles, in delivery-line order). Delivery
// lines without an article reference are skipped.
func DetectDiscrepancies(order *PurchaseOrder, delivery *Delivery, now time.Time) ([]*Discrepancy, error) {
	orderIdx := orderLineIndex(order)
	deliveryIdx := deliveryLineIndex(delivery)

	result := make([]*Discrepancy, 0)

	for i := range order.Lines {
		ol := &order.Lines[i]
		dl, delivered := deliveryIdx[ol.ArticleID]

		var disc *Discrepancy
		var err error
		if delivered {
			disc, err = compareLines(order, delivery, ol, dl, now)
		} else {
			disc, err = missingArticle(order, delivery, ol, now)
		}
		if err != nil {
			return nil, err
		}
		if disc != nil {
			result = append(result, disc)
		}
	}

	for i := range delivery.Lines {
		dl := &delivery.Lines[i]
		if dl.ArticleID == nil {
			continue
		}
		if _, ordered := orderIdx[*dl.ArticleID]; ordered {
			continue
		}
		disc, err := extraArticle(order, delivery, dl, now)
		if err != nil {
			return nil, err
		}
		result = append(result, disc)
	}

	return result, nil
}

// compareLines reports the difference between a matched order/delivery line
// pair, or nil when quantities match and the amount difference is within
// tolerance.
func compareLines(order *PurchaseOrder, delivery *Delivery, ol *OrderLine, dl *DeliveryLine, now time.Time) (*Discrepancy, error) {
	qtyDelta := dl.Quantity.Sub(ol.Quantity)
	amountDelta := dl.Amount.Sub(ol.Amount)

	if qtyDelta.IsZero() && amountDelta.Abs().LessThanOrEqual(AmountTolerance) {
		return nil, nil
	}

	var kind DiscrepancyKind
	var description string
	switch {
	case qtyDelta.IsPositive():
		kind = DiscrepancyKindQuantityOver
		description = fmt.Sprintf("Ordered %s, delivered %s", ol.Quantity, dl.Quantity)
	case qtyDelta.IsNegative():
		kind = DiscrepancyKindQuantityUnder
		description = fmt.Sprintf("Ordered %s, delivered %s", ol.Quantity, dl.Quantity)
	default:
		kind = DiscrepancyKindPriceMismatch
		description = fmt.Sprintf("Amount differs at equal quantity: ordered %s, delivered %s", ol.Amount, dl.Amount)
	}

	return NewDiscrepancy(
		order.TenantID, delivery.FlightID, delivery.ID, order.ID, ol.ArticleID,
		ol.ArticleCode, ol.ArticleName, description, kind,
		ol.Quantity, dl.Quantity, ol.Amount, dl.Amount, now,
	)
}

// missingArticle reports an ordered article absent from the delivery
func missingArticle(order *PurchaseOrder, delivery *Delivery, ol *OrderLine, now time.Time) (*Discrepancy, error) {
	description := fmt.Sprintf("Article ordered (%s) but not delivered", ol.Quantity)
	return NewDiscrepancy(
		order.TenantID, delivery.FlightID, delivery.ID, order.ID, ol.ArticleID,
		ol.ArticleCode, ol.ArticleName, description, DiscrepancyKindArticleMissing,
		ol.Quantity, decimal.Zero, ol.Amount, decimal.Zero, now,
	)
}

// extraArticle reports a delivered article that was never ordered
func extraArticle(order *PurchaseOrder, delivery *Delivery, dl *DeliveryLine, now time.Time) (*Discrepancy, error) {
	description := fmt.Sprintf("Article delivered (%s) but not ordered", dl.Quantity)
	return NewDiscrepancy(
		order.TenantID, delivery.FlightID, delivery.ID, order.ID, *dl.ArticleID,
		dl.ArticleCode, dl.Description, description, DiscrepancyKindArticleExtra,
		decimal.Zero, dl.Quantity, decimal.Zero, dl.Amount, now,
	)
}
