package pkg

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// TabTopic delivers every change to a customer's running tab.
	TabTopic = "bar.tabs"
	// HappyHourTopic carries happy hour status announcements for UI banners.
	HappyHourTopic = "bar.happyhour"

	// EventDrinkAdded identifies a drink added to a tab.
	EventDrinkAdded = "drink_added"
	// EventDrinkRemoved identifies a drink removed from a tab.
	EventDrinkRemoved = "drink_removed"
	// EventTabReview identifies a tab review, optionally with tip suggestions.
	EventTabReview = "tab_review"
	// EventTabClosed identifies a tab closed and settled.
	EventTabClosed = "tab_closed"
	// EventHappyHourStatus identifies a happy hour status check.
	EventHappyHourStatus = "happy_hour_status"
)

// DrinkSnapshot is the wire representation of one tab line.
type DrinkSnapshot struct {
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	Quantity      int              `json:"quantity"`
	LineTotal     decimal.Decimal  `json:"line_total"`
	Modifiers     string           `json:"modifiers,omitempty"`
	Category      string           `json:"category"`
	ABVPercent    float64          `json:"abv_percent"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
}

// DrinkAddedEvent notifies observers that a drink landed on the tab.
type DrinkAddedEvent struct {
	EventType  string          `json:"event_type"`
	Drink      DrinkSnapshot   `json:"drink"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// DrinkRemovedEvent notifies observers that a drink left the tab.
type DrinkRemovedEvent struct {
	EventType  string          `json:"event_type"`
	DrinkName  string          `json:"drink_name"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	Items      []DrinkSnapshot `json:"items"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// TipSuggestion is one precomputed tip choice offered at close time.
type TipSuggestion struct {
	Amount decimal.Decimal `json:"amount"`
	Total  decimal.Decimal `json:"total"`
}

// TabReviewEvent carries the tab totals for display. A plain review is a
// summary (count and totals); a closing review also carries the full item
// list and tip suggestions.
type TabReviewEvent struct {
	EventType      string                   `json:"event_type"`
	ItemCount      int                      `json:"item_count"`
	Items          []DrinkSnapshot          `json:"items,omitempty"`
	Subtotal       decimal.Decimal          `json:"subtotal"`
	Tax            decimal.Decimal          `json:"tax"`
	Total          decimal.Decimal          `json:"total"`
	TipSuggestions map[string]TipSuggestion `json:"tip_suggestions,omitempty"`
	OccurredAt     time.Time                `json:"occurred_at"`
}

// TabClosedEvent is the settlement record emitted when a tab closes.
type TabClosedEvent struct {
	EventType  string          `json:"event_type"`
	FinalTotal decimal.Decimal `json:"final_total"`
	TipAmount  decimal.Decimal `json:"tip_amount"`
	TipPercent int             `json:"tip_percent"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// HappyHourStatusEvent updates happy hour banners.
type HappyHourStatusEvent struct {
	EventType  string    `json:"event_type"`
	Active     bool      `json:"active"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
