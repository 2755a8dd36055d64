package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/07piyush/wardrobeai/domain"
)

func TestRecommendMissingParameters(t *testing.T) {
	engine := NewEngine()
	items := []domain.WardrobeItem{item(domain.CategoryShirt, "casual")}

	tests := []struct {
		name    string
		weather string
		event   string
		want    []string
	}{
		{"missing weather", "", "casual", []string{"weather"}},
		{"missing event", "sunny", "", []string{"event"}},
		{"missing both", "", "", []string{"weather", "event"}},
		{"blank counts as missing", "  ", "casual", []string{"weather"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Recommend(items, tt.weather, tt.event, 3)
			var missing *domain.MissingParameterError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.want, missing.Fields)
			for _, field := range tt.want {
				assert.Contains(t, err.Error(), field)
			}
		})
	}
}

func TestRecommendEmptyWardrobe(t *testing.T) {
	got, err := NewEngine().Recommend(nil, "sunny", "casual", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
	// A valid empty result, not an error and not nil.
	assert.NotNil(t, got)
}

func TestRecommendPrefersContextRelevantItems(t *testing.T) {
	// The casual pair shares identical documents while the formal pair
	// diverges, so casual items accumulate higher mean similarity when
	// the event is casual.
	wardrobe := []domain.WardrobeItem{
		item(domain.CategoryShirt, "casual"),
		item(domain.CategoryShirt, "casual"),
		item(domain.CategoryShirt, "formal", "silk"),
		item(domain.CategoryShirt, "formal", "wool"),
	}

	got, err := NewEngine().Recommend(wardrobe, "sunny", "casual", 4)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Contains(t, got[0].Item.Tags, "casual")

	var formalMean float64
	for _, rec := range got {
		if rec.Item.Tags[0] == "formal" {
			formalMean += rec.SimilarityScore
		}
	}
	formalMean /= 2
	assert.Greater(t, got[0].SimilarityScore, formalMean)
}

func TestRecommendDeterministic(t *testing.T) {
	wardrobe := []domain.WardrobeItem{
		item(domain.CategoryShirt, "red", "casual"),
		item(domain.CategoryPants, "blue", "formal"),
		item(domain.CategoryFullBody, "pastel"),
	}

	first, err := NewEngine().Recommend(wardrobe, "sunny", "casual", 3)
	require.NoError(t, err)
	second, err := NewEngine().Recommend(wardrobe, "sunny", "casual", 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRecommendDefaultTopN(t *testing.T) {
	wardrobe := []domain.WardrobeItem{
		item(domain.CategoryShirt, "casual"),
		item(domain.CategoryShirt, "casual"),
		item(domain.CategoryPants, "formal"),
		item(domain.CategoryPants, "formal"),
		item(domain.CategoryFullBody),
	}

	got, err := NewEngine().Recommend(wardrobe, "rain", "formal", 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRecommendScoresDescendingWithinUnitInterval(t *testing.T) {
	wardrobe := []domain.WardrobeItem{
		item(domain.CategoryShirt, "red", "casual"),
		item(domain.CategoryPants, "blue"),
		item(domain.CategoryFullBody, "pastel", "formal"),
		item(domain.CategoryShirt, "casual"),
	}

	got, err := NewEngine().Recommend(wardrobe, "hot", "casual", 4)
	require.NoError(t, err)

	for i, rec := range got {
		assert.GreaterOrEqual(t, rec.SimilarityScore, 0.0)
		assert.LessOrEqual(t, rec.SimilarityScore, 1.0+1e-9)
		if i > 0 {
			assert.LessOrEqual(t, rec.SimilarityScore, got[i-1].SimilarityScore)
		}
	}
}
