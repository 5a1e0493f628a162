package bar

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/shopspring/decimal"

	"github.com/signalwire/max-outback/pkg"
)

// Deps carries the engine's collaborators. Publisher is optional; without
// one the engine still returns events in outcomes, it just doesn't forward
// them to the bus.
type Deps struct {
	Catalog   *Catalog
	Resolver  Resolver
	Publisher events.Publisher
}

// Engine owns the tab lifecycle. It is stateless: every operation receives
// the current tab, stages the mutation on a copy, and returns the next tab
// in the outcome. A rejected operation returns the caller's tab untouched,
// so checks and mutation are atomic by construction.
type Engine struct {
	catalog   *Catalog
	resolver  Resolver
	publisher events.Publisher
	logger    apt.Logger
}

func NewEngine(deps Deps, logger apt.Logger) *Engine {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	catalog := deps.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	resolver := deps.Resolver
	if resolver == nil {
		resolver = NewFuzzyResolver(catalog)
	}
	return &Engine{
		catalog:   catalog,
		resolver:  resolver,
		publisher: deps.Publisher,
		logger:    logger,
	}
}

// Catalog exposes the engine's drink inventory for menu display.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// AddDrink resolves a free-text drink request, runs the service policy,
// prices the item and merges it into the tab.
func (e *Engine) AddDrink(ctx context.Context, tab *Tab, drinkName string, quantity int, modifiers string, now time.Time) Outcome {
	if tab == nil {
		tab = NewTab()
	}
	quantity = clamp(quantity, 1, 4)

	entry, kind, ok := e.resolver.Resolve(drinkName)
	if !ok {
		return Outcome{
			Kind:      NotFound,
			Narration: fmt.Sprintf("Sorry, we don't have '%s' on our menu. We have cocktails, beer, wine, and non-alcoholic options. What type of drink would you prefer?", drinkName),
			Tab:       tab,
		}
	}
	e.logger.Debug("resolved drink", "input", drinkName, "sku", entry.SKU, "match", string(kind))

	if v := CheckQuantityCap(tab, quantity); !v.OK {
		return Outcome{Kind: LimitExceeded, Narration: v.Narration, Tab: tab}
	}
	if v := CheckResponsibleService(tab, entry); !v.OK {
		return Outcome{Kind: ServiceRefused, Narration: v.Narration, Tab: tab}
	}

	unit, happyHour, original := PriceItem(entry, modifiers, now.Hour())

	added := LineItem{
		SKU:               entry.SKU,
		Name:              entry.Name,
		UnitPriceCharged:  unit,
		Quantity:          quantity,
		Modifiers:         modifiers,
		Category:          entry.Category,
		ABVPercent:        entry.ABVPercent,
		OriginalUnitPrice: original,
	}
	added.recalcTotal()

	projectedSubtotal := round2(tab.Subtotal.Add(added.LineTotal))
	projectedTax := round2(projectedSubtotal.Mul(taxRate))
	projectedTotal := round2(projectedSubtotal.Add(projectedTax))
	if v := CheckSpendCap(tab, projectedTotal); !v.OK {
		return Outcome{Kind: LimitExceeded, Narration: v.Narration, Tab: tab}
	}

	advisory := ServiceAdvisory(tab, entry)
	preCount := tab.ItemCount

	next := tab.Clone()
	var narration string
	if line := next.findLine(entry.SKU, modifiers); line != nil {
		line.Quantity += quantity
		line.recalcTotal()
		narration = fmt.Sprintf("Added another %s. You now have %d.", entry.Name, line.Quantity)
	} else {
		next.Items = append(next.Items, added)
		narration = fmt.Sprintf("Added %s to your tab.", entry.Name)
	}
	next.recalc()
	if entry.Alcoholic() {
		ts := now
		next.LastAlcoholicAt = &ts
	}

	if happyHour {
		narration += " Happy hour pricing applied - 20% off!"
	}
	if entry.SKU == WaterSKU {
		narration = fmt.Sprintf("Added %s to your tab. Stay hydrated!", entry.Name)
	} else if next.Total.GreaterThan(decimal.Zero) {
		narration += fmt.Sprintf(" Your tab is now %s.", DollarsToWords(next.Total))
	} else {
		narration += " No charge!"
	}

	if advisory != "" {
		narration += " " + advisory
	}
	if entry.Alcoholic() && next.AlcoholicCount == AlcoholAdvisoryCount {
		narration += " Can I get you some water as well?"
	}

	if preCount+quantity >= ApproachingDrinkCount {
		narration += fmt.Sprintf(" Just so you know, we have a %d drink maximum.", MaxDrinksPerTab)
	} else if next.Total.GreaterThanOrEqual(ApproachingTabAmount) {
		narration += fmt.Sprintf(" Your tab is approaching our %s limit.", DollarsToWords(MaxTabAmount))
	}

	evt := pkg.DrinkAddedEvent{
		EventType:  pkg.EventDrinkAdded,
		Drink:      snapshotLine(added),
		Subtotal:   next.Subtotal,
		Tax:        next.Tax,
		Total:      next.Total,
		ItemCount:  next.ItemCount,
		OccurredAt: now,
	}
	e.publish(ctx, pkg.TabTopic, evt)

	return Outcome{Kind: Success, Narration: narration, Tab: next, Event: evt}
}

// RemoveDrink takes drinks back off the tab. Matching is a case-insensitive
// substring search over the tab's own lines, never the catalog.
func (e *Engine) RemoveDrink(ctx context.Context, tab *Tab, drinkName string, quantity int, now time.Time) Outcome {
	if tab == nil {
		tab = NewTab()
	}
	if quantity < 1 {
		quantity = 1
	}

	idx := tab.findLineByName(drinkName)
	if idx < 0 {
		return Outcome{
			Kind:      NotFound,
			Narration: fmt.Sprintf("I couldn't find %s on your tab.", drinkName),
			Tab:       tab,
		}
	}

	next := tab.Clone()
	line := &next.Items[idx]
	var narration string
	if line.Quantity <= quantity {
		narration = fmt.Sprintf("Removed %s from your tab.", line.Name)
		next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
	} else {
		line.Quantity -= quantity
		line.recalcTotal()
		narration = fmt.Sprintf("Removed %d %s. You still have %d.", quantity, line.Name, line.Quantity)
	}
	next.recalc()

	evt := pkg.DrinkRemovedEvent{
		EventType:  pkg.EventDrinkRemoved,
		DrinkName:  drinkName,
		Quantity:   quantity,
		Subtotal:   next.Subtotal,
		Tax:        next.Tax,
		Total:      next.Total,
		Items:      snapshotItems(next.Items),
		OccurredAt: now,
	}
	e.publish(ctx, pkg.TabTopic, evt)

	return Outcome{Kind: Success, Narration: narration, Tab: next, Event: evt}
}

// ReviewTab narrates the current tab. With closing set it also computes tip
// suggestions for the settle-up conversation.
func (e *Engine) ReviewTab(ctx context.Context, tab *Tab, closing bool, now time.Time) Outcome {
	if tab == nil || tab.IsEmpty() {
		return Outcome{
			Kind:      EmptyTab,
			Narration: "Your tab is empty. What can I get for you?",
			Tab:       tab,
		}
	}

	evt := pkg.TabReviewEvent{
		EventType:  pkg.EventTabReview,
		ItemCount:  tab.ItemCount,
		Subtotal:   tab.Subtotal,
		Tax:        tab.Tax,
		Total:      tab.Total,
		OccurredAt: now,
	}

	var narration string
	if closing {
		evt.Items = snapshotItems(tab.Items)
		opts := TipOptions(tab.Subtotal, tab.Total)
		evt.TipSuggestions = make(map[string]pkg.TipSuggestion, len(opts))
		for _, opt := range opts {
			evt.TipSuggestions[strconv.Itoa(opt.Percent)] = pkg.TipSuggestion{Amount: opt.Amount, Total: opt.Total}
		}
		narration = fmt.Sprintf(
			"Your subtotal is %s. With tax, that's %s. Adding %d%% tip would be %s, %d%% would be %s, or %d%% would be %s. Which would you prefer?",
			DollarsToWords(tab.Subtotal), DollarsToWords(tab.Total),
			opts[0].Percent, DollarsToWords(opts[0].Total),
			opts[1].Percent, DollarsToWords(opts[1].Total),
			opts[2].Percent, DollarsToWords(opts[2].Total),
		)
	} else {
		narration = fmt.Sprintf("Your tab has %d drinks. Total is %s including tax.", tab.ItemCount, DollarsToWords(tab.Total))
	}

	e.publish(ctx, pkg.TabTopic, evt)

	return Outcome{Kind: Success, Narration: narration, Tab: tab, Event: evt}
}

// CloseTab settles the tab with the customer's confirmed tip and resets it
// to empty for the next round.
func (e *Engine) CloseTab(ctx context.Context, tab *Tab, tipPercent int, now time.Time) Outcome {
	if tab == nil || tab.IsEmpty() {
		return Outcome{
			Kind:      EmptyTab,
			Narration: "Your tab is empty. Nothing to pay!",
			Tab:       tab,
		}
	}
	tipPercent = clamp(tipPercent, 0, 100)

	tip, finalTotal := CloseTip(tab.Subtotal, tab.Total, tipPercent)
	narration := fmt.Sprintf(
		"Perfect! Your total with a %d%% tip is %s. Thanks for coming to Outback Bar! Have a great night and get home safe!",
		tipPercent, DollarsToWords(finalTotal),
	)

	next := tab.Clone()
	next.reset()

	evt := pkg.TabClosedEvent{
		EventType:  pkg.EventTabClosed,
		FinalTotal: finalTotal,
		TipAmount:  tip,
		TipPercent: tipPercent,
		OccurredAt: now,
	}
	e.publish(ctx, pkg.TabTopic, evt)

	return Outcome{Kind: Success, Narration: narration, Tab: next, Event: evt}
}

// CheckHappyHour reports whether the cocktail discount window is open. Pure
// function of the wall clock; no tab state involved.
func (e *Engine) CheckHappyHour(ctx context.Context, now time.Time) Outcome {
	active, message := HappyHourStatus(now.Hour())
	evt := pkg.HappyHourStatusEvent{
		EventType:  pkg.EventHappyHourStatus,
		Active:     active,
		Message:    message,
		OccurredAt: now,
	}
	e.publish(ctx, pkg.HappyHourTopic, evt)
	return Outcome{Kind: Success, Narration: message, Event: evt}
}

// publish forwards an event to the bus. Failures are logged and dropped;
// the outcome already carries the payload for the caller.
func (e *Engine) publish(ctx context.Context, topic string, payload any) {
	if e.publisher == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		e.logger.Errorf("cannot marshal %s event: %v", topic, err)
		return
	}
	if err := e.publisher.Publish(ctx, topic, data); err != nil {
		e.logger.Errorf("cannot publish %s event: %v", topic, err)
	}
}

func snapshotLine(li LineItem) pkg.DrinkSnapshot {
	return pkg.DrinkSnapshot{
		SKU:           li.SKU,
		Name:          li.Name,
		UnitPrice:     li.UnitPriceCharged,
		Quantity:      li.Quantity,
		LineTotal:     li.LineTotal,
		Modifiers:     li.Modifiers,
		Category:      string(li.Category),
		ABVPercent:    li.ABVPercent,
		OriginalPrice: li.OriginalUnitPrice,
	}
}

func snapshotItems(items []LineItem) []pkg.DrinkSnapshot {
	out := make([]pkg.DrinkSnapshot, len(items))
	for i, li := range items {
		out[i] = snapshotLine(li)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
