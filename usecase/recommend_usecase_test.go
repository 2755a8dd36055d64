package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/07piyush/wardrobeai/domain"
)

func wardrobeItem(category string, tags ...string) domain.WardrobeItem {
	return domain.WardrobeItem{
		FeatureRecord: domain.FeatureRecord{Category: category, Tags: tags},
	}
}

func TestRecommendReturnsRankedItems(t *testing.T) {
	repo := &fakeWardrobeRepository{items: []domain.WardrobeItem{
		wardrobeItem(domain.CategoryShirt, "red", "casual"),
		wardrobeItem(domain.CategoryPants, "blue", "formal"),
		wardrobeItem(domain.CategoryFullBody, "pastel"),
	}}
	u := NewRecommendUsecase(repo, 2*time.Second)

	got, err := u.Recommend(context.Background(), "user-1", "sunny", "casual", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.GreaterOrEqual(t, got[0].SimilarityScore, got[1].SimilarityScore)
}

func TestRecommendSurfacesMissingParameters(t *testing.T) {
	repo := &fakeWardrobeRepository{items: []domain.WardrobeItem{
		wardrobeItem(domain.CategoryShirt, "casual"),
	}}
	u := NewRecommendUsecase(repo, 2*time.Second)

	_, err := u.Recommend(context.Background(), "user-1", "", "casual", 3)
	var missing *domain.MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"weather"}, missing.Fields)
}

func TestRecommendEmptyWardrobe(t *testing.T) {
	u := NewRecommendUsecase(&fakeWardrobeRepository{}, 2*time.Second)

	got, err := u.Recommend(context.Background(), "user-1", "sunny", "casual", 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecommendWrapsRepositoryFailure(t *testing.T) {
	repo := &fakeWardrobeRepository{fail: errors.New("connection reset")}
	u := NewRecommendUsecase(repo, 2*time.Second)

	_, err := u.Recommend(context.Background(), "user-1", "sunny", "casual", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load wardrobe")
}
