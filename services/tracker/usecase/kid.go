package usecase

import (
	"context"
	"gifttracker/domain"
	"time"

	"github.com/google/uuid"
)

type kidUseCase struct {
	kidRepo  domain.KidRepo
	giftRepo domain.GiftRepo
	TimeOut  time.Duration
}

func NewKidUseCase(kidRepo domain.KidRepo, giftRepo domain.GiftRepo, to time.Duration) domain.KidUseCase {
	return &kidUseCase{
		kidRepo:  kidRepo,
		giftRepo: giftRepo,
		TimeOut:  to,
	}
}

func (ku *kidUseCase) CreateKid(ctx context.Context, req *domain.KidCreate) (*domain.Kid, error) {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	kid := &domain.Kid{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Birthday:  req.Birthday,
		Photo:     req.Photo,
		Interests: req.Interests,
		CreatedAt: time.Now().UTC(),
	}

	if err := ku.kidRepo.CreateKid(ctx, kid); err != nil {
		return nil, err
	}

	return kid, nil
}

func (ku *kidUseCase) GetAllKids(ctx context.Context) (*[]domain.Kid, error) {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	return ku.kidRepo.GetAllKids(ctx)
}

func (ku *kidUseCase) GetKidByID(ctx context.Context, id string) (*domain.Kid, error) {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	return ku.kidRepo.GetKidByID(ctx, id)
}

func (ku *kidUseCase) UpdateKid(ctx context.Context, id string, payload *domain.KidUpdate) (*domain.Kid, error) {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	if payload.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	matched, err := ku.kidRepo.UpdateKid(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrKidNotFound
	}

	return ku.kidRepo.GetKidByID(ctx, id)
}

// DeleteKid removes the kid and then its gifts. The two deletes are
// sequential, not atomic: a failure in between leaves orphaned gift
// rows behind.
func (ku *kidUseCase) DeleteKid(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	deleted, err := ku.kidRepo.DeleteKid(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrKidNotFound
	}

	if _, err := ku.giftRepo.DeleteGiftsByKid(ctx, id); err != nil {
		return err
	}

	return nil
}
