package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/signalwire/max-outback/internal/bar"
)

func (c *Console) buildRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	r.Register(&CommandDefinition{
		Canonical:   "add",
		Variations:  []string{"order", "pour"},
		ShortForms:  []string{"a"},
		Usage:       "add [qty] <drink> [double|tall|rocks|neat|dirty|dry]",
		Description: "Add a drink to the tab",
		Handler:     c.handleAdd,
	})
	r.Register(&CommandDefinition{
		Canonical:   "remove",
		Variations:  []string{"drop"},
		ShortForms:  []string{"r"},
		Usage:       "remove [qty] <drink>",
		Description: "Take a drink back off the tab",
		Handler:     c.handleRemove,
	})
	r.Register(&CommandDefinition{
		Canonical:   "review",
		Variations:  []string{"tab"},
		ShortForms:  []string{"t"},
		Usage:       "review",
		Description: "Recap the current tab",
		Handler:     c.handleReview,
	})
	r.Register(&CommandDefinition{
		Canonical:   "checkout",
		Variations:  []string{"check", "bill"},
		Usage:       "checkout",
		Description: "See the total with tip suggestions",
		Handler:     c.handleCheckout,
	})
	r.Register(&CommandDefinition{
		Canonical:   "close",
		Variations:  []string{"pay", "settle"},
		Usage:       "close <tip percent>",
		Description: "Close the tab with the chosen tip",
		Handler:     c.handleClose,
	})
	r.Register(&CommandDefinition{
		Canonical:   "happy",
		Variations:  []string{"happyhour"},
		ShortForms:  []string{"hh"},
		Usage:       "happy",
		Description: "Check whether happy hour is on",
		Handler:     c.handleHappy,
	})
	r.Register(&CommandDefinition{
		Canonical:   "menu",
		Variations:  []string{"drinks"},
		ShortForms:  []string{"m"},
		Usage:       "menu",
		Description: "Show the drink menu",
		Handler:     c.handleMenu,
	})
	r.Register(&CommandDefinition{
		Canonical:   "stage",
		Usage:       "stage",
		Description: "Show the conversation stage and suggested operations",
		Handler:     c.handleStage,
	})
	r.Register(&CommandDefinition{
		Canonical:   "help",
		ShortForms:  []string{"h", "?"},
		Usage:       "help",
		Description: "Show this help",
		Handler:     c.handleHelp,
	})
	r.Register(&CommandDefinition{
		Canonical:   "exit",
		Variations:  []string{"quit"},
		ShortForms:  []string{"q"},
		Usage:       "exit",
		Description: "Leave the bar",
		Handler:     c.handleExit,
	})

	return r
}

// drinkModifiers are the preparation words the bar understands. Anything
// else in the input is treated as part of the drink name.
var drinkModifiers = map[string]bool{
	"double": true,
	"tall":   true,
	"rocks":  true,
	"neat":   true,
	"dirty":  true,
	"dry":    true,
}

// parseDrinkParams splits tokens into an optional leading quantity, the
// drink name, and any trailing or embedded modifier words.
func parseDrinkParams(params []string) (quantity int, name, modifiers string) {
	quantity = 1
	if len(params) > 0 {
		if n, err := strconv.Atoi(params[0]); err == nil {
			quantity = n
			params = params[1:]
		}
	}
	var nameParts, modParts []string
	for _, tok := range params {
		if drinkModifiers[tok] {
			modParts = append(modParts, tok)
			continue
		}
		nameParts = append(nameParts, tok)
	}
	return quantity, strings.Join(nameParts, " "), strings.Join(modParts, " ")
}

func (c *Console) handleAdd(ctx context.Context, params []string) (*Response, error) {
	quantity, name, modifiers := parseDrinkParams(params)
	if name == "" {
		return &Response{Text: "What can I get you? Try: add 2 margarita double"}, nil
	}

	sess := c.session()
	outcome := c.engine.AddDrink(ctx, sess.Tab, name, quantity, modifiers, c.now())
	c.countAdd(outcome, quantity)

	stage := bar.Stage("")
	if outcome.Kind == bar.Success && (sess.Stage == bar.StageGreeting || sess.Stage == bar.StageTabClosed) {
		stage = bar.StageTakingOrder
	}
	c.persist(outcome, stage)

	return &Response{Text: outcome.Narration, Success: outcome.Kind == bar.Success}, nil
}

func (c *Console) countAdd(outcome bar.Outcome, quantity int) {
	if c.metrics == nil {
		return
	}
	switch outcome.Kind {
	case bar.Success:
		c.metrics.DrinksAdded.Add(float64(quantity))
	case bar.NotFound, bar.LimitExceeded, bar.ServiceRefused:
		c.metrics.AddsRejected.WithLabelValues(string(outcome.Kind)).Inc()
	}
}

func (c *Console) handleRemove(ctx context.Context, params []string) (*Response, error) {
	quantity, name, _ := parseDrinkParams(params)
	if name == "" {
		return &Response{Text: "Which drink should I take off? Try: remove margarita"}, nil
	}

	sess := c.session()
	outcome := c.engine.RemoveDrink(ctx, sess.Tab, name, quantity, c.now())
	if outcome.Kind == bar.Success && c.metrics != nil {
		c.metrics.DrinksRemoved.Add(float64(quantity))
	}
	c.persist(outcome, bar.Stage(""))

	return &Response{Text: outcome.Narration, Success: outcome.Kind == bar.Success}, nil
}

func (c *Console) handleReview(ctx context.Context, _ []string) (*Response, error) {
	sess := c.session()
	outcome := c.engine.ReviewTab(ctx, sess.Tab, false, c.now())
	c.persist(outcome, bar.Stage(""))
	return &Response{Text: outcome.Narration, Success: outcome.Kind == bar.Success}, nil
}

func (c *Console) handleCheckout(ctx context.Context, _ []string) (*Response, error) {
	sess := c.session()
	outcome := c.engine.ReviewTab(ctx, sess.Tab, true, c.now())

	stage := bar.Stage("")
	if outcome.Kind == bar.Success {
		stage = bar.StageClosingTab
	}
	c.persist(outcome, stage)

	return &Response{Text: outcome.Narration, Success: outcome.Kind == bar.Success}, nil
}

func (c *Console) handleClose(ctx context.Context, params []string) (*Response, error) {
	if len(params) == 0 {
		return &Response{Text: "Tell me the tip percentage, like: close 20"}, nil
	}
	tipPercent, err := strconv.Atoi(strings.TrimSuffix(params[0], "%"))
	if err != nil || tipPercent < 0 || tipPercent > 100 {
		return &Response{Text: "Tips go from 0 to 100 percent. Try: close 20"}, nil
	}

	sess := c.session()
	outcome := c.engine.CloseTab(ctx, sess.Tab, tipPercent, c.now())

	stage := bar.Stage("")
	if outcome.Kind == bar.Success {
		stage = bar.StageTabClosed
		if c.metrics != nil {
			c.metrics.TabsClosed.Inc()
		}
	}
	c.persist(outcome, stage)

	return &Response{Text: outcome.Narration, Success: outcome.Kind == bar.Success}, nil
}

func (c *Console) handleHappy(ctx context.Context, _ []string) (*Response, error) {
	outcome := c.engine.CheckHappyHour(ctx, c.now())
	return &Response{Text: outcome.Narration, Success: true}, nil
}

func (c *Console) handleMenu(_ context.Context, _ []string) (*Response, error) {
	sections := []struct {
		title    string
		category bar.Category
	}{
		{"Cocktails", bar.CategoryCocktail},
		{"Beer", bar.CategoryBeer},
		{"Wine", bar.CategoryWine},
		{"Non-Alcoholic", bar.CategoryNonAlcoholic},
	}

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", section.title)
		for _, entry := range c.engine.Catalog().ByCategory(section.category) {
			fmt.Fprintf(&b, "  %-16s $%s  %s\n", entry.Name, entry.UnitPrice.StringFixed(2), entry.Description)
		}
	}
	return &Response{Text: strings.TrimRight(b.String(), "\n"), Success: true}, nil
}

func (c *Console) handleStage(_ context.Context, _ []string) (*Response, error) {
	sess := c.session()
	ops := sess.Stage.Operations()
	text := fmt.Sprintf("Stage: %s", sess.Stage)
	if len(ops) > 0 {
		text += fmt.Sprintf(" (suggested: %s)", strings.Join(ops, ", "))
	}
	return &Response{Text: text, Success: true}, nil
}

func (c *Console) handleHelp(_ context.Context, _ []string) (*Response, error) {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, cmd := range c.registry.All() {
		fmt.Fprintf(&b, "  %-48s %s\n", cmd.Usage, cmd.Description)
	}
	return &Response{Text: strings.TrimRight(b.String(), "\n"), Success: true}, nil
}

func (c *Console) handleExit(_ context.Context, _ []string) (*Response, error) {
	return &Response{Text: "Thanks for coming to Outback Bar! Get home safe!", Success: true}, ErrExit
}
