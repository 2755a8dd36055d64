package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/recommend"
)

type recommendUsecase struct {
	wardrobeRepository domain.WardrobeRepository
	engine             *recommend.Engine
	contextTimeout     time.Duration
}

func NewRecommendUsecase(
	wardrobeRepository domain.WardrobeRepository,
	timeout time.Duration,
) domain.RecommendUsecase {
	return &recommendUsecase{
		wardrobeRepository: wardrobeRepository,
		engine:             recommend.NewEngine(),
		contextTimeout:     timeout,
	}
}

// Recommend fetches the caller's wardrobe and ranks it against the
// weather/event context. Validation errors surface; an unexpected ranking
// failure is logged and reported as an empty result, never as a partial
// list.
func (u *recommendUsecase) Recommend(ctx context.Context, userID string, weather, event string, topN int) ([]domain.RankedRecommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, u.contextTimeout)
	defer cancel()

	items, err := u.wardrobeRepository.FetchByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}

	recommendations, err := u.engine.Recommend(items, weather, event, topN)
	if err != nil {
		var missing *domain.MissingParameterError
		if errors.As(err, &missing) {
			return nil, err
		}
		log.Printf("recommendation ranking failed for user %s: %v", userID, err)
		return []domain.RankedRecommendation{}, nil
	}
	return recommendations, nil
}
