package usecase

import (
	"context"
	"gifttracker/domain"
)

// In-memory repositories mirroring the gateway contract: lookups by id,
// matched/deleted counts, partial-field updates.

type fakeKidRepo struct {
	kids []domain.Kid
}

func (f *fakeKidRepo) CreateKid(_ context.Context, kid *domain.Kid) error {
	f.kids = append(f.kids, *kid)
	return nil
}

func (f *fakeKidRepo) GetAllKids(_ context.Context) (*[]domain.Kid, error) {
	kids := make([]domain.Kid, len(f.kids))
	copy(kids, f.kids)
	return &kids, nil
}

func (f *fakeKidRepo) GetKidByID(_ context.Context, id string) (*domain.Kid, error) {
	for i := range f.kids {
		if f.kids[i].ID == id {
			kid := f.kids[i]
			return &kid, nil
		}
	}
	return nil, domain.ErrKidNotFound
}

func (f *fakeKidRepo) UpdateKid(_ context.Context, id string, payload *domain.KidUpdate) (int64, error) {
	for i := range f.kids {
		if f.kids[i].ID != id {
			continue
		}
		if payload.Name != nil {
			f.kids[i].Name = *payload.Name
		}
		if payload.Birthday != nil {
			f.kids[i].Birthday = *payload.Birthday
		}
		if payload.Photo != nil {
			f.kids[i].Photo = payload.Photo
		}
		if payload.Interests != nil {
			f.kids[i].Interests = payload.Interests
		}
		return 1, nil
	}
	return 0, nil
}

func (f *fakeKidRepo) DeleteKid(_ context.Context, id string) (int64, error) {
	for i := range f.kids {
		if f.kids[i].ID == id {
			f.kids = append(f.kids[:i], f.kids[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeGiftRepo struct {
	gifts []domain.Gift
}

func (f *fakeGiftRepo) CreateGift(_ context.Context, gift *domain.Gift) error {
	f.gifts = append(f.gifts, *gift)
	return nil
}

func (f *fakeGiftRepo) GetAllGifts(_ context.Context) (*[]domain.Gift, error) {
	gifts := make([]domain.Gift, len(f.gifts))
	copy(gifts, f.gifts)
	return &gifts, nil
}

func (f *fakeGiftRepo) GetGiftsByKid(_ context.Context, kidID string) (*[]domain.Gift, error) {
	gifts := []domain.Gift{}
	for _, gift := range f.gifts {
		if gift.KidID == kidID {
			gifts = append(gifts, gift)
		}
	}
	return &gifts, nil
}

func (f *fakeGiftRepo) GetGiftByID(_ context.Context, id string) (*domain.Gift, error) {
	for i := range f.gifts {
		if f.gifts[i].ID == id {
			gift := f.gifts[i]
			return &gift, nil
		}
	}
	return nil, domain.ErrGiftNotFound
}

func (f *fakeGiftRepo) UpdateGift(_ context.Context, id string, payload *domain.GiftUpdate) (int64, error) {
	for i := range f.gifts {
		if f.gifts[i].ID != id {
			continue
		}
		if payload.Occasion != nil {
			f.gifts[i].Occasion = *payload.Occasion
		}
		if payload.Year != nil {
			f.gifts[i].Year = *payload.Year
		}
		if payload.GiftName != nil {
			f.gifts[i].GiftName = *payload.GiftName
		}
		if payload.Photo != nil {
			f.gifts[i].Photo = payload.Photo
		}
		if payload.DateGiven != nil {
			f.gifts[i].DateGiven = payload.DateGiven
		}
		return 1, nil
	}
	return 0, nil
}

func (f *fakeGiftRepo) DeleteGift(_ context.Context, id string) (int64, error) {
	for i := range f.gifts {
		if f.gifts[i].ID == id {
			f.gifts = append(f.gifts[:i], f.gifts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeGiftRepo) DeleteGiftsByKid(_ context.Context, kidID string) (int64, error) {
	var kept []domain.Gift
	var deleted int64
	for _, gift := range f.gifts {
		if gift.KidID == kidID {
			deleted++
			continue
		}
		kept = append(kept, gift)
	}
	f.gifts = kept
	return deleted, nil
}
