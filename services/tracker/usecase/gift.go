package usecase

import (
	"context"
	"gifttracker/domain"
	"time"

	"github.com/google/uuid"
)

type giftUseCase struct {
	repo    domain.GiftRepo
	TimeOut time.Duration
}

func NewGiftUseCase(repo domain.GiftRepo, to time.Duration) domain.GiftUseCase {
	return &giftUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (gu *giftUseCase) CreateGift(ctx context.Context, req *domain.GiftCreate) (*domain.Gift, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	// kid_id is stored as given. The reference to a kid is deliberately
	// unenforced at this level.
	gift := &domain.Gift{
		ID:        uuid.New().String(),
		KidID:     req.KidID,
		Occasion:  req.Occasion,
		Year:      req.Year,
		GiftName:  req.GiftName,
		Photo:     req.Photo,
		DateGiven: req.DateGiven,
		CreatedAt: time.Now().UTC(),
	}

	if err := gu.repo.CreateGift(ctx, gift); err != nil {
		return nil, err
	}

	return gift, nil
}

func (gu *giftUseCase) GetAllGifts(ctx context.Context) (*[]domain.Gift, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.repo.GetAllGifts(ctx)
}

func (gu *giftUseCase) GetGiftsByKid(ctx context.Context, kidID string) (*[]domain.Gift, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.repo.GetGiftsByKid(ctx, kidID)
}

func (gu *giftUseCase) UpdateGift(ctx context.Context, id string, payload *domain.GiftUpdate) (*domain.Gift, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	if payload.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	matched, err := gu.repo.UpdateGift(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrGiftNotFound
	}

	return gu.repo.GetGiftByID(ctx, id)
}

func (gu *giftUseCase) DeleteGift(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	deleted, err := gu.repo.DeleteGift(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrGiftNotFound
	}

	return nil
}
