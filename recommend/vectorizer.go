// Package recommend implements the content-based recommendation engine:
// TF-IDF vectorization of wardrobe items against a request context, and
// cosine-similarity ranking.
package recommend

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"

	"github.com/07piyush/wardrobeai/domain"
)

// Context carries the request signals shared by every document in a batch.
type Context struct {
	Weather string
	Event   string
}

// warmWeather is the fixed set of conditions mapped to the "light" weight
// class; anything else is "heavy".
var warmWeather = map[string]bool{
	"sunny": true,
	"hot":   true,
	"warm":  true,
	"humid": true,
	"clear": true,
}

// FeatureVector is one item's position in a batch-local vocabulary space.
// All weights are non-negative, so cosine similarities stay in [0,1].
type FeatureVector []float64

// Vectorizer builds TF-IDF vectors over the vocabulary observed in a
// single batch. Construct one per request: the vocabulary, and with it the
// vector dimensionality, must never leak across requests or users.
type Vectorizer struct {
	lower cases.Caser
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{lower: cases.Lower(language.Und)}
}

// Vectorize converts the batch into L2-normalized TF-IDF vectors, one per
// item in batch order. The vocabulary is sorted, so dimensions are
// deterministic for a given batch. An empty batch yields no vectors.
func (v *Vectorizer) Vectorize(items []domain.WardrobeItem, rc Context) []FeatureVector {
	if len(items) == 0 {
		return nil
	}

	docs := make([][]string, len(items))
	df := make(map[string]int)
	for i, item := range items {
		docs[i] = v.documentTerms(item, rc)
		for _, t := range docs[i] {
			df[t]++
		}
	}

	vocab := make([]string, 0, len(df))
	for t := range df {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	n := float64(len(items))
	vectors := make([]FeatureVector, len(docs))
	for i, terms := range docs {
		vec := make(FeatureVector, len(vocab))
		vectors[i] = vec
		if len(terms) == 0 {
			continue
		}
		// Documents are deduplicated sets, so term frequency is uniform.
		tf := 1.0 / float64(len(terms))
		for _, t := range terms {
			idf := math.Log((1+n)/(1+float64(df[t]))) + 1
			vec[index[t]] = tf * idf
		}
		normalize(vec)
	}
	return vectors
}

// normalize scales the vector to unit L2 norm in place. Zero vectors are
// left untouched.
func normalize(vec FeatureVector) {
	norm := floats.Norm(vec, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, vec)
}

// documentTerms builds the deduplicated textual document for one item:
// category, derived weight-class tag, derived grouping tag, the event
// label, then the item's stored tags, in set union.
func (v *Vectorizer) documentTerms(item domain.WardrobeItem, rc Context) []string {
	seen := make(map[string]bool)
	terms := make([]string, 0, len(item.Tags)+4)
	add := func(raw string) {
		t := v.lower.String(strings.TrimSpace(raw))
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		terms = append(terms, t)
	}

	add(item.Category)
	if warmWeather[v.lower.String(strings.TrimSpace(rc.Weather))] {
		add("light")
	} else {
		add("heavy")
	}
	if item.Category == domain.CategoryFullBody {
		add("versatile")
	} else {
		add("separates")
	}
	add(rc.Event)
	for _, t := range item.Tags {
		add(t)
	}
	return terms
}
