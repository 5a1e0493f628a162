package bar

import (
	"math"
	"sort"
	"strings"
)

// The vectorizer scores free text against a small fixed corpus using
// tf-idf weighted unigrams and bigrams with cosine similarity. The corpus
// here is a couple dozen drink descriptions; this stays well under a
// millisecond per query.
const maxFeatures = 200

type vectorizer struct {
	vocab map[string]int
	idf   []float64
	docs  []map[int]float64
}

func tokenizeTerms(s string) []string {
	s = strings.ToLower(s)
	var words []string
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		words = append(words, b.String())
	}

	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

func newVectorizer(corpus []string) *vectorizer {
	docTerms := make([][]string, len(corpus))
	counts := make(map[string]int)
	df := make(map[string]int)
	for i, doc := range corpus {
		docTerms[i] = tokenizeTerms(doc)
		seen := make(map[string]bool)
		for _, t := range docTerms[i] {
			counts[t]++
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	// Keep the most frequent terms; ties break lexicographically so the
	// vocabulary is stable across runs.
	all := make([]string, 0, len(counts))
	for t := range counts {
		all = append(all, t)
	}
	sort.Slice(all, func(a, b int) bool {
		if counts[all[a]] != counts[all[b]] {
			return counts[all[a]] > counts[all[b]]
		}
		return all[a] < all[b]
	})
	if len(all) > maxFeatures {
		all = all[:maxFeatures]
	}

	v := &vectorizer{vocab: make(map[string]int, len(all))}
	for i, t := range all {
		v.vocab[t] = i
	}

	n := float64(len(corpus))
	v.idf = make([]float64, len(all))
	for t, i := range v.vocab {
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	v.docs = make([]map[int]float64, len(corpus))
	for i := range corpus {
		v.docs[i] = v.vectorize(docTerms[i])
	}
	return v
}

// vectorize builds an l2-normalized tf-idf vector using sublinear term
// frequency. Terms outside the vocabulary are dropped.
func (v *vectorizer) vectorize(terms []string) map[int]float64 {
	tf := make(map[int]float64)
	for _, t := range terms {
		if col, ok := v.vocab[t]; ok {
			tf[col]++
		}
	}
	var norm float64
	for col, count := range tf {
		w := (1 + math.Log(count)) * v.idf[col]
		tf[col] = w
		norm += w * w
	}
	if norm == 0 {
		return tf
	}
	norm = math.Sqrt(norm)
	for col := range tf {
		tf[col] /= norm
	}
	return tf
}

// bestMatch returns the corpus index with the highest cosine similarity to
// the query. The first document wins ties, keeping resolution deterministic
// for identical inputs.
func (v *vectorizer) bestMatch(query string) (int, float64) {
	qv := v.vectorize(tokenizeTerms(query))
	bestIdx, bestScore := -1, 0.0
	for i, dv := range v.docs {
		var dot float64
		for col, w := range qv {
			dot += w * dv[col]
		}
		if dot > bestScore {
			bestIdx, bestScore = i, dot
		}
	}
	return bestIdx, bestScore
}
