package repository

import (
	"context"
	"errors"
	"fmt"
	"gifttracker/domain"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type giftRepository struct {
	db *pgxpool.Pool
}

func NewGiftRepository(database *pgxpool.Pool) domain.GiftRepo {
	return &giftRepository{
		db: database,
	}
}

func (gr *giftRepository) CreateGift(ctx context.Context, gift *domain.Gift) error {
	insertQuery := `
		INSERT INTO gifts (id, kid_id, occasion, year, gift_name, photo, date_given, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := gr.db.Exec(ctx, insertQuery,
		gift.ID, gift.KidID, gift.Occasion, gift.Year, gift.GiftName,
		gift.Photo, gift.DateGiven, gift.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("could not insert gift: %v", err)
	}

	return nil
}

func (gr *giftRepository) GetAllGifts(ctx context.Context) (*[]domain.Gift, error) {
	query := `
		SELECT id, kid_id, occasion, year, gift_name, photo, date_given, created_at
		FROM gifts
		LIMIT $1;
	`

	rows, err := gr.db.Query(ctx, query, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("could not get all gifts: %v", err)
	}
	defer rows.Close()

	return collectGifts(rows)
}

func (gr *giftRepository) GetGiftsByKid(ctx context.Context, kidID string) (*[]domain.Gift, error) {
	query := `
		SELECT id, kid_id, occasion, year, gift_name, photo, date_given, created_at
		FROM gifts
		WHERE kid_id = $1
		ORDER BY year DESC
		LIMIT $2;
	`

	rows, err := gr.db.Query(ctx, query, kidID, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("could not get gifts for kid: %v", err)
	}
	defer rows.Close()

	return collectGifts(rows)
}

func (gr *giftRepository) GetGiftByID(ctx context.Context, id string) (*domain.Gift, error) {
	query := `
		SELECT id, kid_id, occasion, year, gift_name, photo, date_given, created_at
		FROM gifts
		WHERE id = $1;
	`

	gift, err := scanGift(gr.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGiftNotFound
		}
		return nil, fmt.Errorf("could not get gift: %v", err)
	}

	return gift, nil
}

func (gr *giftRepository) UpdateGift(ctx context.Context, id string, payload *domain.GiftUpdate) (int64, error) {
	set := []string{}
	args := []interface{}{}

	addField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if payload.Occasion != nil {
		addField("occasion", *payload.Occasion)
	}
	if payload.Year != nil {
		addField("year", *payload.Year)
	}
	if payload.GiftName != nil {
		addField("gift_name", *payload.GiftName)
	}
	if payload.Photo != nil {
		addField("photo", *payload.Photo)
	}
	if payload.DateGiven != nil {
		addField("date_given", *payload.DateGiven)
	}

	if len(set) == 0 {
		return 0, domain.ErrEmptyUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE gifts SET %s WHERE id = $%d;", strings.Join(set, ", "), len(args))

	tag, err := gr.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("could not update gift: %v", err)
	}

	return tag.RowsAffected(), nil
}

func (gr *giftRepository) DeleteGift(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM gifts WHERE id = $1;`

	tag, err := gr.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("could not delete gift: %v", err)
	}

	return tag.RowsAffected(), nil
}

func (gr *giftRepository) DeleteGiftsByKid(ctx context.Context, kidID string) (int64, error) {
	query := `DELETE FROM gifts WHERE kid_id = $1;`

	tag, err := gr.db.Exec(ctx, query, kidID)
	if err != nil {
		return 0, fmt.Errorf("could not delete gifts for kid: %v", err)
	}

	return tag.RowsAffected(), nil
}

func collectGifts(rows pgx.Rows) (*[]domain.Gift, error) {
	gifts := []domain.Gift{}
	for rows.Next() {
		gift, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, *gift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &gifts, nil
}

func scanGift(row pgx.Row) (*domain.Gift, error) {
	var gift domain.Gift
	var createdAt string

	err := row.Scan(&gift.ID, &gift.KidID, &gift.Occasion, &gift.Year, &gift.GiftName,
		&gift.Photo, &gift.DateGiven, &createdAt)
	if err != nil {
		return nil, err
	}

	gift.CreatedAt, err = parseStoredTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("could not parse gift created_at: %v", err)
	}

	return &gift, nil
}
