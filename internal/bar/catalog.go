package bar

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups catalog entries by the kind of drink.
type Category string

const (
	CategoryCocktail     Category = "cocktail"
	CategoryBeer         Category = "beer"
	CategoryWine         Category = "wine"
	CategoryNonAlcoholic Category = "non_alcoholic"
)

// CatalogEntry represents one drink the bar can pour.
type CatalogEntry struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ABVPercent  float64         `json:"abv_percent"`
	Category    Category        `json:"category"`
	Subcategory string          `json:"subcategory"`
}

// Alcoholic reports whether the drink counts against responsible service.
func (e CatalogEntry) Alcoholic() bool {
	return e.ABVPercent > 0
}

// Catalog is the bar's fixed drink inventory with an alias table for
// colloquial names. Built once at startup, never mutated, safe to share.
type Catalog struct {
	entries []CatalogEntry
	byName  map[string]int
	byAlias map[string]int
	aliases map[string][]string
}

func newCatalog(entries []CatalogEntry, aliases map[string][]string) *Catalog {
	c := &Catalog{
		entries: entries,
		byName:  make(map[string]int, len(entries)),
		byAlias: make(map[string]int),
		aliases: aliases,
	}
	for i, e := range entries {
		c.byName[strings.ToLower(e.Name)] = i
	}
	for sku, names := range aliases {
		idx, ok := c.indexOfSKU(sku)
		if !ok {
			continue
		}
		for _, alias := range names {
			c.byAlias[strings.ToLower(alias)] = idx
		}
	}
	return c
}

func (c *Catalog) indexOfSKU(sku string) (int, bool) {
	for i, e := range c.entries {
		if e.SKU == sku {
			return i, true
		}
	}
	return 0, false
}

// LookupExact finds an entry by its full display name, case-insensitively.
func (c *Catalog) LookupExact(name string) (CatalogEntry, bool) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[idx], true
}

// LookupAlias finds an entry whose alias table contains the given text.
func (c *Catalog) LookupAlias(name string) (CatalogEntry, bool) {
	idx, ok := c.byAlias[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[idx], true
}

// LookupSKU finds an entry by its SKU.
func (c *Catalog) LookupSKU(sku string) (CatalogEntry, bool) {
	idx, ok := c.indexOfSKU(sku)
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[idx], true
}

// All returns every entry in seeded order. Callers receive a copy.
func (c *Catalog) All() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByCategory returns the entries of one category in seeded order.
func (c *Catalog) ByCategory(cat Category) []CatalogEntry {
	var out []CatalogEntry
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Aliases returns the alias list for a SKU, or nil when it has none.
func (c *Catalog) Aliases(sku string) []string {
	names := c.aliases[sku]
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
