package domain

import (
	"context"
	"time"
)

type Kid struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" valid:"required~Name is required"`
	Birthday  string    `json:"birthday" valid:"required~Birthday is required"`
	Photo     *string   `json:"photo"`
	Interests *string   `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

type KidCreate struct {
	Name      string  `json:"name" valid:"required~Name is required"`
	Birthday  string  `json:"birthday" valid:"required~Birthday is required"`
	Photo     *string `json:"photo"`
	Interests *string `json:"interests"`
}

// KidUpdate carries a partial update. A nil field is left untouched;
// a non-nil field is written, even when it points at an empty string.
type KidUpdate struct {
	Name      *string `json:"name"`
	Birthday  *string `json:"birthday"`
	Photo     *string `json:"photo"`
	Interests *string `json:"interests"`
}

func (u *KidUpdate) IsEmpty() bool {
	return u.Name == nil && u.Birthday == nil && u.Photo == nil && u.Interests == nil
}

type KidRepo interface {
	CreateKid(ctx context.Context, kid *Kid) error
	GetAllKids(ctx context.Context) (*[]Kid, error)
	GetKidByID(ctx context.Context, id string) (*Kid, error)
	UpdateKid(ctx context.Context, id string, payload *KidUpdate) (int64, error)
	DeleteKid(ctx context.Context, id string) (int64, error)
}

type KidUseCase interface {
	CreateKid(ctx context.Context, req *KidCreate) (*Kid, error)
	GetAllKids(ctx context.Context) (*[]Kid, error)
	GetKidByID(ctx context.Context, id string) (*Kid, error)
	UpdateKid(ctx context.Context, id string, payload *KidUpdate) (*Kid, error)
	DeleteKid(ctx context.Context, id string) error
}
