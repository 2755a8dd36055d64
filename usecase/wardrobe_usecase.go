package usecase

import (
	"context"
	"time"

	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/storage"
)

type wardrobeUsecase struct {
	wardrobeRepository domain.WardrobeRepository
	store              storage.ObjectStore
	contextTimeout     time.Duration
}

func NewWardrobeUsecase(
	wardrobeRepository domain.WardrobeRepository,
	store storage.ObjectStore,
	timeout time.Duration,
) domain.WardrobeUsecase {
	return &wardrobeUsecase{
		wardrobeRepository: wardrobeRepository,
		store:              store,
		contextTimeout:     timeout,
	}
}

func (u *wardrobeUsecase) Fetch(ctx context.Context, userID string) ([]domain.WardrobeItem, error) {
	ctx, cancel := context.WithTimeout(ctx, u.contextTimeout)
	defer cancel()

	return u.wardrobeRepository.FetchByUser(ctx, userID)
}

func (u *wardrobeUsecase) Delete(ctx context.Context, userID string, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, u.contextTimeout)
	defer cancel()

	item, err := u.wardrobeRepository.GetByID(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err = u.wardrobeRepository.Delete(ctx, userID, itemID); err != nil {
		return err
	}
	// Metadata is gone; a dangling object is harmless, so storage cleanup
	// failures don't roll anything back.
	return u.store.Delete(item.ObjectKey)
}
