package bar

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Service limits.
const (
	// MaxDrinksPerTab caps the total quantity a single tab may hold.
	MaxDrinksPerTab = 20
	// AlcoholAdvisoryCount is the alcoholic-drink count at which Max starts
	// recommending water alongside further alcohol.
	AlcoholAdvisoryCount = 3
	// AlcoholRefusalCount is the alcoholic-drink count at which further
	// alcohol is refused outright.
	AlcoholRefusalCount = 5
	// ApproachingDrinkCount is where successful adds start mentioning the
	// drink maximum.
	ApproachingDrinkCount = 15
)

// MaxTabAmount caps the tax-inclusive tab total.
var MaxTabAmount = decimal.NewFromInt(200)

// ApproachingTabAmount is where successful adds start mentioning the spend
// limit.
var ApproachingTabAmount = decimal.NewFromInt(150)

// RejectReason classifies why the policy blocked an add.
type RejectReason string

const (
	RejectQuantityCap        RejectReason = "quantity_cap"
	RejectSpendCap           RejectReason = "spend_cap"
	RejectResponsibleService RejectReason = "responsible_service"
)

// Verdict is the outcome of a single policy check. A failed verdict carries
// the narration Max uses to decline; the tab is never touched.
type Verdict struct {
	OK        bool
	Reason    RejectReason
	Narration string
}

func allow() Verdict {
	return Verdict{OK: true}
}

// CheckQuantityCap verifies the requested quantity fits under the per-tab
// drink maximum. Partial fills are never offered.
func CheckQuantityCap(tab *Tab, quantity int) Verdict {
	if tab.ItemCount+quantity <= MaxDrinksPerTab {
		return allow()
	}
	remaining := MaxDrinksPerTab - tab.ItemCount
	if remaining > 0 {
		return Verdict{
			Reason:    RejectQuantityCap,
			Narration: fmt.Sprintf("You can only add %d more drinks. We have a %d drink maximum per tab. Ready to close out?", remaining, MaxDrinksPerTab),
		}
	}
	return Verdict{
		Reason:    RejectQuantityCap,
		Narration: fmt.Sprintf("You've reached our %d drink limit. Your total is %s. Ready to close your tab?", MaxDrinksPerTab, DollarsToWords(tab.Total)),
	}
}

// CheckResponsibleService refuses further alcohol once the tab already
// holds the refusal count. Checked only for alcoholic entries; water and
// mocktails always pour.
func CheckResponsibleService(tab *Tab, entry CatalogEntry) Verdict {
	if !entry.Alcoholic() {
		return allow()
	}
	if tab.AlcoholicCount >= AlcoholRefusalCount {
		return Verdict{
			Reason:    RejectResponsibleService,
			Narration: "I think that's enough for tonight. How about some water?",
		}
	}
	return allow()
}

// ServiceAdvisory returns the caution Max attaches to an allowed alcoholic
// pour once the customer is in the advisory band, or "" below it.
func ServiceAdvisory(tab *Tab, entry CatalogEntry) string {
	if !entry.Alcoholic() {
		return ""
	}
	if tab.AlcoholicCount >= AlcoholAdvisoryCount && tab.AlcoholicCount < AlcoholRefusalCount {
		return "I'd recommend having some water with that."
	}
	return ""
}

// CheckSpendCap verifies the projected tax-inclusive total stays under the
// tab amount limit.
func CheckSpendCap(tab *Tab, projectedTotal decimal.Decimal) Verdict {
	if projectedTotal.LessThanOrEqual(MaxTabAmount) {
		return allow()
	}
	return Verdict{
		Reason:    RejectSpendCap,
		Narration: fmt.Sprintf("Adding this would put your tab over our %s limit. Your current total is %s. Ready to close out?", DollarsToWords(MaxTabAmount), DollarsToWords(tab.Total)),
	}
}
