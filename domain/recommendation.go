package domain

import (
	"context"
)

type RecommendUsecase interface {
	Recommend(ctx context.Context, userID string, weather, event string, topN int) ([]RankedRecommendation, error)
}

type WardrobeUsecase interface {
	Fetch(ctx context.Context, userID string) ([]WardrobeItem, error)
	Delete(ctx context.Context, userID string, itemID string) error
}
