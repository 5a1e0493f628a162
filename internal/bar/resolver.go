package bar

import "strings"

// MatchKind reports how a free-text drink request was resolved.
type MatchKind string

const (
	MatchNone  MatchKind = "none"
	MatchExact MatchKind = "exact"
	MatchAlias MatchKind = "alias"
	MatchFuzzy MatchKind = "fuzzy"
)

// similarityThreshold is the minimum cosine score a fuzzy candidate needs
// before the resolver will trust it.
const similarityThreshold = 0.35

// Resolver maps what a customer said to a catalog entry. Fuzzy matching is
// a capability: without it the resolver still answers correctly for exact
// names and aliases, it just gives up sooner.
type Resolver interface {
	Resolve(input string) (CatalogEntry, MatchKind, bool)
	HasFuzzy() bool
}

type exactResolver struct {
	catalog *Catalog
}

// NewResolver builds a resolver using exact and alias lookup only.
func NewResolver(catalog *Catalog) Resolver {
	return &exactResolver{catalog: catalog}
}

func (r *exactResolver) Resolve(input string) (CatalogEntry, MatchKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return CatalogEntry{}, MatchNone, false
	}
	if entry, ok := r.catalog.LookupExact(normalized); ok {
		return entry, MatchExact, true
	}
	if entry, ok := r.catalog.LookupAlias(normalized); ok {
		return entry, MatchAlias, true
	}
	return CatalogEntry{}, MatchNone, false
}

func (r *exactResolver) HasFuzzy() bool {
	return false
}

type fuzzyResolver struct {
	exact   exactResolver
	vec     *vectorizer
	entries []CatalogEntry
}

// NewFuzzyResolver builds a resolver that falls back to tf-idf similarity
// over each entry's name, description, aliases and category when exact and
// alias lookup both miss.
func NewFuzzyResolver(catalog *Catalog) Resolver {
	entries := catalog.All()
	corpus := make([]string, len(entries))
	for i, e := range entries {
		parts := []string{e.Name, e.Description}
		parts = append(parts, catalog.Aliases(e.SKU)...)
		parts = append(parts, string(e.Category))
		corpus[i] = strings.ToLower(strings.Join(parts, " "))
	}
	return &fuzzyResolver{
		exact:   exactResolver{catalog: catalog},
		vec:     newVectorizer(corpus),
		entries: entries,
	}
}

func (r *fuzzyResolver) Resolve(input string) (CatalogEntry, MatchKind, bool) {
	if entry, kind, ok := r.exact.Resolve(input); ok {
		return entry, kind, true
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return CatalogEntry{}, MatchNone, false
	}
	idx, score := r.vec.bestMatch(normalized)
	if idx < 0 || score <= similarityThreshold {
		return CatalogEntry{}, MatchNone, false
	}
	return r.entries[idx], MatchFuzzy, true
}

func (r *fuzzyResolver) HasFuzzy() bool {
	return true
}
