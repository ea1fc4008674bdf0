package delivery

import (
	"context"
	"encoding/json"
	"gifttracker/domain"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

type stubGiftUseCase struct {
	gifts []domain.Gift
}

func (s *stubGiftUseCase) CreateGift(_ context.Context, req *domain.GiftCreate) (*domain.Gift, error) {
	gift := domain.Gift{
		ID:        "generated-gift-id",
		KidID:     req.KidID,
		Occasion:  req.Occasion,
		Year:      req.Year,
		GiftName:  req.GiftName,
		Photo:     req.Photo,
		DateGiven: req.DateGiven,
		CreatedAt: time.Now().UTC(),
	}
	s.gifts = append(s.gifts, gift)
	return &gift, nil
}

func (s *stubGiftUseCase) GetAllGifts(_ context.Context) (*[]domain.Gift, error) {
	gifts := make([]domain.Gift, len(s.gifts))
	copy(gifts, s.gifts)
	return &gifts, nil
}

func (s *stubGiftUseCase) GetGiftsByKid(_ context.Context, kidID string) (*[]domain.Gift, error) {
	gifts := []domain.Gift{}
	for _, gift := range s.gifts {
		if gift.KidID == kidID {
			gifts = append(gifts, gift)
		}
	}
	sort.SliceStable(gifts, func(i, j int) bool { return gifts[i].Year > gifts[j].Year })
	return &gifts, nil
}

func (s *stubGiftUseCase) UpdateGift(_ context.Context, id string, payload *domain.GiftUpdate) (*domain.Gift, error) {
	if payload.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}
	return nil, domain.ErrGiftNotFound
}

func (s *stubGiftUseCase) DeleteGift(_ context.Context, id string) error {
	return domain.ErrGiftNotFound
}

func newGiftTestApp(uc domain.GiftUseCase) *fiber.App {
	app := fiber.New()
	NewGiftHandler(app.Group("/api"), uc)
	return app
}

func TestCreateGiftMissingRequiredFieldsRejected(t *testing.T) {
	uc := &stubGiftUseCase{}
	app := newGiftTestApp(uc)

	// year and gift_name missing
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/gifts", map[string]any{
		"kid_id":   "kid-1",
		"occasion": "birthday",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if len(uc.gifts) != 0 {
		t.Fatal("invalid payload must not reach the use case")
	}
}

func TestGetGiftsByKidSortedByYearDescending(t *testing.T) {
	uc := &stubGiftUseCase{}
	app := newGiftTestApp(uc)

	for _, gift := range []domain.GiftCreate{
		{KidID: "kid-1", Occasion: "birthday", Year: 2022, GiftName: "Ball"},
		{KidID: "kid-1", Occasion: "christmas", Year: 2024, GiftName: "Plushie"},
		{KidID: "kid-2", Occasion: "birthday", Year: 2023, GiftName: "Kite"},
	} {
		uc.CreateGift(context.Background(), &gift)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/gifts/kid/kid-1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var gifts []domain.Gift
	if err := json.NewDecoder(resp.Body).Decode(&gifts); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(gifts) != 2 {
		t.Fatalf("expected 2 gifts, got %d", len(gifts))
	}
	if gifts[0].Year != 2024 || gifts[1].Year != 2022 {
		t.Fatalf("gifts not sorted by year descending: %+v", gifts)
	}
}

func TestUpdateGiftEmptyPayloadRejected(t *testing.T) {
	app := newGiftTestApp(&stubGiftUseCase{})

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/gifts/some-id", map[string]string{}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteGiftNotFound(t *testing.T) {
	app := newGiftTestApp(&stubGiftUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/gifts/does-not-exist", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
