package domain

import (
	"context"
	"time"
)

type Gift struct {
	ID        string    `json:"id"`
	KidID     string    `json:"kid_id"`
	Occasion  string    `json:"occasion" valid:"required~Occasion is required"`
	Year      int       `json:"year" valid:"required~Year is required"`
	GiftName  string    `json:"gift_name" valid:"required~Gift name is required"`
	Photo     *string   `json:"photo"`
	DateGiven *string   `json:"date_given"`
	CreatedAt time.Time `json:"created_at"`
}

type GiftCreate struct {
	KidID     string  `json:"kid_id" valid:"required~Kid ID is required"`
	Occasion  string  `json:"occasion" valid:"required~Occasion is required"`
	Year      int     `json:"year" valid:"required~Year is required"`
	GiftName  string  `json:"gift_name" valid:"required~Gift name is required"`
	Photo     *string `json:"photo"`
	DateGiven *string `json:"date_given"`
}

// GiftUpdate carries a partial update with the same nil-means-skip
// semantics as KidUpdate. kid_id is immutable and not updatable.
type GiftUpdate struct {
	Occasion  *string `json:"occasion"`
	Year      *int    `json:"year"`
	GiftName  *string `json:"gift_name"`
	Photo     *string `json:"photo"`
	DateGiven *string `json:"date_given"`
}

func (u *GiftUpdate) IsEmpty() bool {
	return u.Occasion == nil && u.Year == nil && u.GiftName == nil && u.Photo == nil && u.DateGiven == nil
}

type GiftRepo interface {
	CreateGift(ctx context.Context, gift *Gift) error
	GetAllGifts(ctx context.Context) (*[]Gift, error)
	GetGiftsByKid(ctx context.Context, kidID string) (*[]Gift, error)
	GetGiftByID(ctx context.Context, id string) (*Gift, error)
	UpdateGift(ctx context.Context, id string, payload *GiftUpdate) (int64, error)
	DeleteGift(ctx context.Context, id string) (int64, error)
	DeleteGiftsByKid(ctx context.Context, kidID string) (int64, error)
}

type GiftUseCase interface {
	CreateGift(ctx context.Context, req *GiftCreate) (*Gift, error)
	GetAllGifts(ctx context.Context) (*[]Gift, error)
	GetGiftsByKid(ctx context.Context, kidID string) (*[]Gift, error)
	UpdateGift(ctx context.Context, id string, payload *GiftUpdate) (*Gift, error)
	DeleteGift(ctx context.Context, id string) error
}
