package bar

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/signalwire/max-outback/pkg"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 14, hour, 30, 0, 0, time.UTC)
}

func newTestEngine() *Engine {
	return NewEngine(Deps{}, nil)
}

// mustAdd adds a drink and fails the test unless the pour succeeds.
func mustAdd(t *testing.T, e *Engine, tab *Tab, name string, quantity int, modifiers string, now time.Time) *Tab {
	t.Helper()
	outcome := e.AddDrink(context.Background(), tab, name, quantity, modifiers, now)
	if outcome.Kind != Success {
		t.Fatalf("AddDrink(%q, %d) = %q (%s), want success", name, quantity, outcome.Kind, outcome.Narration)
	}
	return outcome.Tab
}

func TestAddDrinkToEmptyTab(t *testing.T) {
	e := newTestEngine()
	tab := NewTab()

	outcome := e.AddDrink(context.Background(), tab, "margarita", 1, "", at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}

	want := "Added Margarita to your tab. Your tab is now ten dollars and eighty-eight cents."
	if outcome.Narration != want {
		t.Errorf("Narration = %q, want %q", outcome.Narration, want)
	}

	next := outcome.Tab
	if len(next.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(next.Items))
	}
	if !next.Subtotal.Equal(d("10.00")) || !next.Tax.Equal(d("0.88")) || !next.Total.Equal(d("10.88")) {
		t.Errorf("aggregates = (%s, %s, %s), want (10.00, 0.88, 10.88)", next.Subtotal, next.Tax, next.Total)
	}
	if next.AlcoholicCount != 1 {
		t.Errorf("AlcoholicCount = %d, want 1", next.AlcoholicCount)
	}
	if next.LastAlcoholicAt == nil || !next.LastAlcoholicAt.Equal(at(12)) {
		t.Errorf("LastAlcoholicAt = %v, want %v", next.LastAlcoholicAt, at(12))
	}

	// The caller's tab is untouched; the mutation lives only in the outcome.
	if !tab.IsEmpty() {
		t.Error("input tab was mutated")
	}
}

func TestAddDrinkMergesSameLine(t *testing.T) {
	e := newTestEngine()
	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))

	outcome := e.AddDrink(context.Background(), tab, "margarita", 1, "", at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if !strings.HasPrefix(outcome.Narration, "Added another Margarita. You now have 2.") {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	if len(outcome.Tab.Items) != 1 {
		t.Fatalf("items = %d, want 1 merged line", len(outcome.Tab.Items))
	}
	if outcome.Tab.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", outcome.Tab.Items[0].Quantity)
	}
	if !outcome.Tab.Items[0].LineTotal.Equal(d("20.00")) {
		t.Errorf("line total = %s, want 20.00", outcome.Tab.Items[0].LineTotal)
	}
}

func TestAddDrinkModifiersSplitLines(t *testing.T) {
	e := newTestEngine()
	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))
	tab = mustAdd(t, e, tab, "margarita", 1, "double", at(12))

	if len(tab.Items) != 2 {
		t.Fatalf("items = %d, want 2 separate lines", len(tab.Items))
	}
	if !tab.Items[1].UnitPriceCharged.Equal(d("13.00")) {
		t.Errorf("double unit price = %s, want 13.00", tab.Items[1].UnitPriceCharged)
	}
}

func TestAddDrinkNotFound(t *testing.T) {
	e := newTestEngine()
	tab := NewTab()

	outcome := e.AddDrink(context.Background(), tab, "asdfgh", 1, "", at(12))
	if outcome.Kind != NotFound {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, NotFound)
	}
	want := "Sorry, we don't have 'asdfgh' on our menu. We have cocktails, beer, wine, and non-alcoholic options. What type of drink would you prefer?"
	if outcome.Narration != want {
		t.Errorf("Narration = %q, want %q", outcome.Narration, want)
	}
	if !outcome.Tab.IsEmpty() {
		t.Error("tab changed on a failed resolution")
	}
}

func TestAddDrinkQuantityClamped(t *testing.T) {
	e := newTestEngine()

	tab := mustAdd(t, e, NewTab(), "soda", 10, "", at(12))
	if tab.Items[0].Quantity != 4 {
		t.Errorf("quantity = %d, want clamp to 4", tab.Items[0].Quantity)
	}

	tab = mustAdd(t, e, NewTab(), "soda", 0, "", at(12))
	if tab.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want clamp to 1", tab.Items[0].Quantity)
	}
}

func TestAddDrinkWater(t *testing.T) {
	e := newTestEngine()

	outcome := e.AddDrink(context.Background(), NewTab(), "water", 1, "", at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if outcome.Narration != "Added Water to your tab. Stay hydrated!" {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	if !outcome.Tab.Total.IsZero() {
		t.Errorf("total = %s, want zero", outcome.Tab.Total)
	}
}

func TestAddDrinkHappyHour(t *testing.T) {
	e := newTestEngine()

	outcome := e.AddDrink(context.Background(), NewTab(), "margarita", 1, "", at(17))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if !strings.Contains(outcome.Narration, "Happy hour pricing applied - 20% off!") {
		t.Errorf("Narration = %q, want happy hour note", outcome.Narration)
	}

	line := outcome.Tab.Items[0]
	if !line.UnitPriceCharged.Equal(d("8.00")) {
		t.Errorf("unit = %s, want 8.00", line.UnitPriceCharged)
	}
	if line.OriginalUnitPrice == nil || !line.OriginalUnitPrice.Equal(d("10.00")) {
		t.Errorf("original = %v, want 10.00", line.OriginalUnitPrice)
	}

	// Beer keeps full price in the same window.
	outcome = e.AddDrink(context.Background(), NewTab(), "lager", 1, "", at(17))
	if strings.Contains(outcome.Narration, "Happy hour") {
		t.Errorf("beer narration mentions happy hour: %q", outcome.Narration)
	}
	if !outcome.Tab.Items[0].UnitPriceCharged.Equal(d("6.00")) {
		t.Errorf("beer unit = %s, want 6.00", outcome.Tab.Items[0].UnitPriceCharged)
	}
}

func TestAddDrinkResponsibleService(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	tab := mustAdd(t, e, NewTab(), "margarita", 4, "", at(12))

	// Fifth drink still pours, now with the water advisory attached.
	outcome := e.AddDrink(ctx, tab, "mojito", 1, "", at(12))
	if outcome.Kind != Success {
		t.Fatalf("fifth drink refused: %q", outcome.Narration)
	}
	if !strings.Contains(outcome.Narration, "I'd recommend having some water with that.") {
		t.Errorf("Narration = %q, want water advisory", outcome.Narration)
	}
	tab = outcome.Tab
	if tab.AlcoholicCount != 5 {
		t.Fatalf("AlcoholicCount = %d, want 5", tab.AlcoholicCount)
	}

	// Sixth alcoholic drink is refused outright.
	outcome = e.AddDrink(ctx, tab, "lager", 1, "", at(12))
	if outcome.Kind != ServiceRefused {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, ServiceRefused)
	}
	if outcome.Narration != "I think that's enough for tonight. How about some water?" {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	if outcome.Tab.AlcoholicCount != 5 {
		t.Errorf("tab changed on refusal: AlcoholicCount = %d", outcome.Tab.AlcoholicCount)
	}

	// Non-alcoholic drinks still pour past the limit.
	outcome = e.AddDrink(ctx, tab, "soda", 1, "", at(12))
	if outcome.Kind != Success {
		t.Errorf("soda after refusal = %q (%s), want success", outcome.Kind, outcome.Narration)
	}
}

func TestAddDrinkWaterOfferAtThree(t *testing.T) {
	e := newTestEngine()

	outcome := e.AddDrink(context.Background(), NewTab(), "lager", 3, "", at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if !strings.Contains(outcome.Narration, "Can I get you some water as well?") {
		t.Errorf("Narration = %q, want water offer at the third drink", outcome.Narration)
	}
	if strings.Contains(outcome.Narration, "I'd recommend") {
		t.Errorf("Narration = %q, advisory should not fire before the third drink is on the tab", outcome.Narration)
	}
}

func TestAddDrinkQuantityCap(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	tab := NewTab()
	for i := 0; i < 5; i++ {
		tab = mustAdd(t, e, tab, "soda", 4, "", at(12))
	}
	if tab.ItemCount != 20 {
		t.Fatalf("ItemCount = %d, want 20", tab.ItemCount)
	}

	outcome := e.AddDrink(ctx, tab, "soda", 1, "", at(12))
	if outcome.Kind != LimitExceeded {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, LimitExceeded)
	}
	if !strings.Contains(outcome.Narration, "You've reached our 20 drink limit.") {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	if outcome.Tab.ItemCount != 20 {
		t.Errorf("tab changed on rejection: ItemCount = %d", outcome.Tab.ItemCount)
	}
}

func TestAddDrinkQuantityCapPartialRoom(t *testing.T) {
	e := newTestEngine()

	tab := NewTab()
	for i := 0; i < 4; i++ {
		tab = mustAdd(t, e, tab, "soda", 4, "", at(12))
	}
	tab = mustAdd(t, e, tab, "soda", 2, "", at(12))

	outcome := e.AddDrink(context.Background(), tab, "soda", 4, "", at(12))
	if outcome.Kind != LimitExceeded {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, LimitExceeded)
	}
	if !strings.Contains(outcome.Narration, "You can only add 2 more drinks.") {
		t.Errorf("Narration = %q", outcome.Narration)
	}
}

func TestAddDrinkSpendCap(t *testing.T) {
	e := newTestEngine()

	tab := NewTab()
	tab.Items = []LineItem{
		{SKU: "W003", Name: "Prosecco", UnitPriceCharged: d("10.00"), Quantity: 18, Category: CategoryWine, ABVPercent: 11},
	}
	tab.Items[0].recalcTotal()
	tab.recalc()

	outcome := e.AddDrink(context.Background(), tab, "soda", 2, "", at(12))
	if outcome.Kind != LimitExceeded {
		t.Fatalf("Kind = %q (%s), want %q", outcome.Kind, outcome.Narration, LimitExceeded)
	}
	if !strings.Contains(outcome.Narration, "over our two hundred dollars limit") {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	if outcome.Tab.ItemCount != 18 {
		t.Errorf("tab changed on rejection: ItemCount = %d", outcome.Tab.ItemCount)
	}
}

func TestAddDrinkApproachingDrinkCount(t *testing.T) {
	e := newTestEngine()

	tab := NewTab()
	tab.Items = []LineItem{
		{SKU: "N004", Name: "Soda", UnitPriceCharged: d("3.00"), Quantity: 14, Category: CategoryNonAlcoholic},
	}
	tab.Items[0].recalcTotal()
	tab.recalc()

	outcome := e.AddDrink(context.Background(), tab, "soda", 1, "", at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if !strings.Contains(outcome.Narration, "Just so you know, we have a 20 drink maximum.") {
		t.Errorf("Narration = %q", outcome.Narration)
	}
}

func TestAddDrinkApproachingSpendLimit(t *testing.T) {
	e := newTestEngine()

	tab := NewTab()
	tab.Items = []LineItem{
		{SKU: "W003", Name: "Prosecco", UnitPriceCharged: d("30.00"), Quantity: 5, Category: CategoryWine, ABVPercent: 11},
	}
	tab.Items[0].recalcTotal()
	tab.recalc()

	outcome := e.AddDrink(context.Background(), tab, "soda", 1, "", at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q (%s), want %q", outcome.Kind, outcome.Narration, Success)
	}
	if !strings.Contains(outcome.Narration, "Your tab is approaching our two hundred dollars limit.") {
		t.Errorf("Narration = %q", outcome.Narration)
	}
}

func TestRemoveDrink(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	tab := mustAdd(t, e, NewTab(), "margarita", 3, "", at(12))
	tab = mustAdd(t, e, tab, "lager", 1, "", at(12))

	// Partial removal keeps the line.
	outcome := e.RemoveDrink(ctx, tab, "margarita", 1, at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if outcome.Narration != "Removed 1 Margarita. You still have 2." {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	tab = outcome.Tab
	if tab.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", tab.Items[0].Quantity)
	}

	// Removing the rest drops the line entirely.
	outcome = e.RemoveDrink(ctx, tab, "marg", 2, at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if outcome.Narration != "Removed Margarita from your tab." {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	tab = outcome.Tab
	if len(tab.Items) != 1 || tab.Items[0].Name != "Lager" {
		t.Fatalf("items = %v, want only the Lager line", tab.Items)
	}
	if !tab.Subtotal.Equal(d("6.00")) {
		t.Errorf("subtotal = %s, want 6.00", tab.Subtotal)
	}
}

func TestRemoveDrinkNotOnTab(t *testing.T) {
	e := newTestEngine()
	tab := mustAdd(t, e, NewTab(), "lager", 1, "", at(12))

	outcome := e.RemoveDrink(context.Background(), tab, "gin", 1, at(12))
	if outcome.Kind != NotFound {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, NotFound)
	}
	if outcome.Narration != "I couldn't find gin on your tab." {
		t.Errorf("Narration = %q", outcome.Narration)
	}
	if outcome.Tab.ItemCount != 1 {
		t.Errorf("tab changed on a failed removal")
	}
}

func TestAddThenRemoveRestoresTab(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))
	outcome := e.RemoveDrink(ctx, tab, "margarita", 1, at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}

	restored := outcome.Tab
	if !restored.IsEmpty() {
		t.Error("tab not empty after add then remove")
	}
	if !restored.Subtotal.IsZero() || !restored.Tax.IsZero() || !restored.Total.IsZero() {
		t.Errorf("aggregates = (%s, %s, %s), want zeros", restored.Subtotal, restored.Tax, restored.Total)
	}
	if restored.ItemCount != 0 || restored.AlcoholicCount != 0 {
		t.Errorf("counts = (%d, %d), want zeros", restored.ItemCount, restored.AlcoholicCount)
	}
}

func TestReviewTabEmpty(t *testing.T) {
	e := newTestEngine()

	outcome := e.ReviewTab(context.Background(), NewTab(), false, at(12))
	if outcome.Kind != EmptyTab {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, EmptyTab)
	}
	if outcome.Narration != "Your tab is empty. What can I get for you?" {
		t.Errorf("Narration = %q", outcome.Narration)
	}
}

func TestReviewTab(t *testing.T) {
	e := newTestEngine()
	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))
	tab = mustAdd(t, e, tab, "lager", 1, "", at(12))

	outcome := e.ReviewTab(context.Background(), tab, false, at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	want := "Your tab has 2 drinks. Total is seventeen dollars and forty cents including tax."
	if outcome.Narration != want {
		t.Errorf("Narration = %q, want %q", outcome.Narration, want)
	}

	evt, ok := outcome.Event.(pkg.TabReviewEvent)
	if !ok {
		t.Fatalf("Event = %T, want TabReviewEvent", outcome.Event)
	}
	if evt.TipSuggestions != nil {
		t.Error("plain review carries tip suggestions")
	}
	if evt.Items != nil {
		t.Error("plain review carries the full item list")
	}
	if evt.ItemCount != 2 {
		t.Errorf("event item count = %d, want 2", evt.ItemCount)
	}
}

func TestReviewTabClosing(t *testing.T) {
	e := newTestEngine()
	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))
	tab = mustAdd(t, e, tab, "lager", 1, "", at(12))

	outcome := e.ReviewTab(context.Background(), tab, true, at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}

	want := "Your subtotal is sixteen dollars. With tax, that's seventeen dollars and forty cents. " +
		"Adding 18% tip would be twenty dollars and twenty-eight cents, " +
		"20% would be twenty dollars and sixty cents, " +
		"or 25% would be twenty-one dollars and forty cents. Which would you prefer?"
	if outcome.Narration != want {
		t.Errorf("Narration = %q, want %q", outcome.Narration, want)
	}

	evt, ok := outcome.Event.(pkg.TabReviewEvent)
	if !ok {
		t.Fatalf("Event = %T, want TabReviewEvent", outcome.Event)
	}
	if len(evt.Items) != 2 {
		t.Errorf("event items = %d, want 2", len(evt.Items))
	}
	suggestions := map[string]struct{ amount, total string }{
		"18": {"2.88", "20.28"},
		"20": {"3.20", "20.60"},
		"25": {"4.00", "21.40"},
	}
	for key, want := range suggestions {
		got, ok := evt.TipSuggestions[key]
		if !ok {
			t.Errorf("missing tip suggestion %q", key)
			continue
		}
		if !got.Amount.Equal(d(want.amount)) || !got.Total.Equal(d(want.total)) {
			t.Errorf("suggestion[%q] = (%s, %s), want (%s, %s)", key, got.Amount, got.Total, want.amount, want.total)
		}
	}
}

func TestCloseTab(t *testing.T) {
	e := newTestEngine()
	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))
	tab = mustAdd(t, e, tab, "lager", 1, "", at(12))

	outcome := e.CloseTab(context.Background(), tab, 20, at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}

	want := "Perfect! Your total with a 20% tip is twenty dollars and sixty cents. " +
		"Thanks for coming to Outback Bar! Have a great night and get home safe!"
	if outcome.Narration != want {
		t.Errorf("Narration = %q, want %q", outcome.Narration, want)
	}

	evt, ok := outcome.Event.(pkg.TabClosedEvent)
	if !ok {
		t.Fatalf("Event = %T, want TabClosedEvent", outcome.Event)
	}
	if !evt.TipAmount.Equal(d("3.20")) || !evt.FinalTotal.Equal(d("20.60")) || evt.TipPercent != 20 {
		t.Errorf("event = (%s, %s, %d), want (3.20, 20.60, 20)", evt.TipAmount, evt.FinalTotal, evt.TipPercent)
	}

	if !outcome.Tab.IsEmpty() {
		t.Error("tab not reset after close")
	}
	if tab.IsEmpty() {
		t.Error("caller's tab was reset in place")
	}
}

func TestCloseTabEmpty(t *testing.T) {
	e := newTestEngine()

	outcome := e.CloseTab(context.Background(), NewTab(), 20, at(12))
	if outcome.Kind != EmptyTab {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, EmptyTab)
	}
	if outcome.Narration != "Your tab is empty. Nothing to pay!" {
		t.Errorf("Narration = %q", outcome.Narration)
	}
}

func TestCloseTabClampsTip(t *testing.T) {
	e := newTestEngine()
	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))
	tab = mustAdd(t, e, tab, "lager", 1, "", at(12))

	outcome := e.CloseTab(context.Background(), tab, 150, at(12))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	evt := outcome.Event.(pkg.TabClosedEvent)
	if evt.TipPercent != 100 {
		t.Errorf("TipPercent = %d, want clamp to 100", evt.TipPercent)
	}
	if !evt.TipAmount.Equal(d("16.00")) || !evt.FinalTotal.Equal(d("33.40")) {
		t.Errorf("event = (%s, %s), want (16.00, 33.40)", evt.TipAmount, evt.FinalTotal)
	}
}

func TestCheckHappyHour(t *testing.T) {
	e := newTestEngine()

	outcome := e.CheckHappyHour(context.Background(), at(17))
	if outcome.Kind != Success {
		t.Fatalf("Kind = %q, want %q", outcome.Kind, Success)
	}
	if outcome.Tab != nil {
		t.Error("happy hour check returned a tab")
	}
	evt := outcome.Event.(pkg.HappyHourStatusEvent)
	if !evt.Active {
		t.Error("Active = false at 5 PM")
	}

	outcome = e.CheckHappyHour(context.Background(), at(10))
	evt = outcome.Event.(pkg.HappyHourStatusEvent)
	if evt.Active {
		t.Error("Active = true at 10 AM")
	}
	if outcome.Narration != "Happy hour starts at 4 PM. Just 6 more hours!" {
		t.Errorf("Narration = %q", outcome.Narration)
	}
}

func TestEventsPublished(t *testing.T) {
	pub := NewMockPublisher()
	e := NewEngine(Deps{Publisher: pub}, nil)
	ctx := context.Background()

	tab := mustAdd(t, e, NewTab(), "margarita", 1, "", at(12))
	tab = e.RemoveDrink(ctx, tab, "margarita", 1, at(12)).Tab
	tab = mustAdd(t, e, tab, "lager", 1, "", at(12))
	e.ReviewTab(ctx, tab, true, at(12))
	e.CloseTab(ctx, tab, 20, at(12))
	e.CheckHappyHour(ctx, at(12))

	published := pub.Published()
	if len(published) != 6 {
		t.Fatalf("published = %d events, want 6", len(published))
	}

	wantTopics := []string{pkg.TabTopic, pkg.TabTopic, pkg.TabTopic, pkg.TabTopic, pkg.TabTopic, pkg.HappyHourTopic}
	wantTypes := []string{
		pkg.EventDrinkAdded, pkg.EventDrinkRemoved, pkg.EventDrinkAdded,
		pkg.EventTabReview, pkg.EventTabClosed, pkg.EventHappyHourStatus,
	}
	for i, p := range published {
		if p.Topic != wantTopics[i] {
			t.Errorf("published[%d].Topic = %q, want %q", i, p.Topic, wantTopics[i])
		}
		var envelope struct {
			EventType string `json:"event_type"`
		}
		if err := json.Unmarshal(p.Data, &envelope); err != nil {
			t.Fatalf("published[%d] is not valid JSON: %v", i, err)
		}
		if envelope.EventType != wantTypes[i] {
			t.Errorf("published[%d].event_type = %q, want %q", i, envelope.EventType, wantTypes[i])
		}
	}
}

func TestRejectionsPublishNothing(t *testing.T) {
	pub := NewMockPublisher()
	e := NewEngine(Deps{Publisher: pub}, nil)

	e.AddDrink(context.Background(), NewTab(), "asdfgh", 1, "", at(12))
	e.ReviewTab(context.Background(), NewTab(), false, at(12))
	e.CloseTab(context.Background(), NewTab(), 20, at(12))

	if n := len(pub.Published()); n != 0 {
		t.Errorf("published = %d events for rejected operations, want 0", n)
	}
}
