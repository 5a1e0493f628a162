package bar

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Monetary constants. Every derived money value is rounded half-up to two
// decimals before it is stored or compared; no unrounded intermediate ever
// crosses an operation boundary.
var (
	taxRate         = decimal.NewFromFloat(0.0875)
	happyHourFactor = decimal.NewFromFloat(0.80)
	doubleSurcharge = decimal.NewFromInt(3)
)

const (
	happyHourStartHour = 16
	happyHourEndHour   = 19
)

// TipPercents are the suggestions offered when the customer closes out.
var TipPercents = []int{18, 20, 25}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// HappyHourActive reports whether the cocktail discount window covers the
// given wall-clock hour.
func HappyHourActive(hour int) bool {
	return hour >= happyHourStartHour && hour < happyHourEndHour
}

// HappyHourStatus returns the active flag plus the line Max says about it.
func HappyHourStatus(hour int) (bool, string) {
	if HappyHourActive(hour) {
		return true, "Yes! It's happy hour! All cocktails are 20% off until 7 PM."
	}
	if hour < happyHourStartHour {
		return false, fmt.Sprintf("Happy hour starts at 4 PM. Just %d more hours!", happyHourStartHour-hour)
	}
	return false, "Happy hour ended at 7 PM. But our drinks are still worth full price!"
}

// PriceItem computes the charged unit price for an entry. A "double"
// modifier adds a fixed surcharge; cocktails get 20% off during happy hour,
// in which case the pre-discount price is returned for receipt display.
func PriceItem(entry CatalogEntry, modifiers string, hour int) (unit decimal.Decimal, happyHour bool, original *decimal.Decimal) {
	unit = entry.UnitPrice
	if strings.Contains(strings.ToLower(modifiers), "double") {
		unit = unit.Add(doubleSurcharge)
	}
	if entry.Category == CategoryCocktail && HappyHourActive(hour) {
		full := unit
		unit = round2(unit.Mul(happyHourFactor))
		return unit, true, &full
	}
	return round2(unit), false, nil
}

// Aggregate recomputes subtotal, tax and total from the line items.
// Recomputing from the same items always yields identical values.
func Aggregate(items []LineItem) (subtotal, tax, total decimal.Decimal) {
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	subtotal = round2(subtotal)
	tax = round2(subtotal.Mul(taxRate))
	total = round2(subtotal.Add(tax))
	return subtotal, tax, total
}

// TipOption is one suggested tip, rounded independently of the others so a
// rounding error in one suggestion never compounds into the next.
type TipOption struct {
	Percent int
	Amount  decimal.Decimal
	Total   decimal.Decimal
}

// TipOptions computes the standard tip suggestions for a tab.
func TipOptions(subtotal, total decimal.Decimal) []TipOption {
	opts := make([]TipOption, 0, len(TipPercents))
	for _, pct := range TipPercents {
		amount, final := CloseTip(subtotal, total, pct)
		opts = append(opts, TipOption{Percent: pct, Amount: amount, Total: final})
	}
	return opts
}

// CloseTip computes the tip on the subtotal and the settled total.
func CloseTip(subtotal, total decimal.Decimal, tipPercent int) (tip, finalTotal decimal.Decimal) {
	pct := decimal.NewFromInt(int64(tipPercent)).Div(decimal.NewFromInt(100))
	tip = round2(subtotal.Mul(pct))
	finalTotal = round2(total.Add(tip))
	return tip, finalTotal
}
