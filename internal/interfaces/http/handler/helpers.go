package handler

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// toDecimalPtr converts a float64 to a *decimal.Decimal
func toDecimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// toDecimal converts a float64 to a decimal.Decimal
func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// parseDateWindow parses an inclusive YYYY-MM-DD date window. The end of the
// window is extended to the last instant of its day so that BETWEEN queries
// cover the whole end date.
func parseDateWindow(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date, expected YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to date must not be before from date")
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}
