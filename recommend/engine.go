package recommend

import (
	"strings"

	"github.com/07piyush/wardrobeai/domain"
)

// Engine ranks a wardrobe against weather and event context. It holds
// only configuration; every call builds its own vectorizer, so concurrent
// requests share no mutable state.
type Engine struct {
	Defaults RankerConfig
}

func NewEngine() *Engine {
	return &Engine{Defaults: DefaultRankerConfig()}
}

// Recommend validates the context, vectorizes the wardrobe and returns
// the ranked top items with scores attached. Every missing required field
// is reported in one MissingParameterError. An empty wardrobe is a valid
// request with an empty result, distinct from a request error. topN <= 0
// selects the configured default.
func (e *Engine) Recommend(wardrobe []domain.WardrobeItem, weather, event string, topN int) ([]domain.RankedRecommendation, error) {
	var missing []string
	if strings.TrimSpace(weather) == "" {
		missing = append(missing, "weather")
	}
	if strings.TrimSpace(event) == "" {
		missing = append(missing, "event")
	}
	if len(missing) > 0 {
		return nil, &domain.MissingParameterError{Fields: missing}
	}

	if len(wardrobe) == 0 {
		return []domain.RankedRecommendation{}, nil
	}

	if topN <= 0 {
		topN = e.Defaults.TopN
	}

	vectors := NewVectorizer().Vectorize(wardrobe, Context{Weather: weather, Event: event})
	ranked := Rank(vectors, RankerConfig{TopN: topN})

	out := make([]domain.RankedRecommendation, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, domain.RankedRecommendation{
			Item:            wardrobe[r.Index],
			SimilarityScore: r.Score,
		})
	}
	return out, nil
}
