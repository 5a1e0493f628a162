package bar

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one distinct drink entry on a tab. Lines are keyed by
// SKU+Modifiers: ordering the same drink the same way again bumps the
// quantity instead of adding a new line.
type LineItem struct {
	SKU               string           `json:"sku"`
	Name              string           `json:"name"`
	UnitPriceCharged  decimal.Decimal  `json:"unit_price_charged"`
	Quantity          int              `json:"quantity"`
	Modifiers         string           `json:"modifiers,omitempty"`
	LineTotal         decimal.Decimal  `json:"line_total"`
	Category          Category         `json:"category"`
	ABVPercent        float64          `json:"abv_percent"`
	OriginalUnitPrice *decimal.Decimal `json:"original_unit_price,omitempty"`
}

// Alcoholic reports whether the line counts against responsible service.
func (li LineItem) Alcoholic() bool {
	return li.ABVPercent > 0
}

func (li *LineItem) recalcTotal() {
	li.LineTotal = round2(li.UnitPriceCharged.Mul(decimal.NewFromInt(int64(li.Quantity))))
}

// Tab is the running order record for one customer session. It is opaque
// data owned by the caller: operations take the current tab and hand back
// the next one, so the engine holds no per-session state.
type Tab struct {
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	ItemCount       int             `json:"item_count"`
	AlcoholicCount  int             `json:"alcoholic_count"`
	LastAlcoholicAt *time.Time      `json:"last_alcoholic_at,omitempty"`
}

// NewTab returns an empty tab with all aggregates at zero.
func NewTab() *Tab {
	return &Tab{
		Items:    []LineItem{},
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
}

// IsEmpty reports whether the tab has no line items.
func (t *Tab) IsEmpty() bool {
	return len(t.Items) == 0
}

// Clone deep-copies the tab so an operation can stage changes without
// touching the caller's state until it commits.
func (t *Tab) Clone() *Tab {
	c := *t
	c.Items = make([]LineItem, len(t.Items))
	copy(c.Items, t.Items)
	if t.LastAlcoholicAt != nil {
		ts := *t.LastAlcoholicAt
		c.LastAlcoholicAt = &ts
	}
	return &c
}

// findLine locates the line matching sku+modifiers, the merge key.
func (t *Tab) findLine(sku, modifiers string) *LineItem {
	for i := range t.Items {
		if t.Items[i].SKU == sku && t.Items[i].Modifiers == modifiers {
			return &t.Items[i]
		}
	}
	return nil
}

// findLineByName locates the first line whose display name contains the
// given text, case-insensitively. Removal matches against the tab only,
// never the catalog.
func (t *Tab) findLineByName(name string) int {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return -1
	}
	for i := range t.Items {
		if strings.Contains(strings.ToLower(t.Items[i].Name), needle) {
			return i
		}
	}
	return -1
}

// recalc rebuilds every aggregate from the line items.
func (t *Tab) recalc() {
	t.Subtotal, t.Tax, t.Total = Aggregate(t.Items)
	t.ItemCount = 0
	t.AlcoholicCount = 0
	for _, item := range t.Items {
		t.ItemCount += item.Quantity
		if item.Alcoholic() {
			t.AlcoholicCount += item.Quantity
		}
	}
}

// reset clears the tab back to its empty initial state after close.
func (t *Tab) reset() {
	t.Items = []LineItem{}
	t.Subtotal = decimal.Zero
	t.Tax = decimal.Zero
	t.Total = decimal.Zero
	t.ItemCount = 0
	t.AlcoholicCount = 0
	t.LastAlcoholicAt = nil
}
