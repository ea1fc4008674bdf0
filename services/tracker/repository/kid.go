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

// maxListResults caps every unbounded listing, matching the store-side
// result cap of the original service.
const maxListResults = 1000

type kidRepository struct {
	db *pgxpool.Pool
}

func NewKidRepository(database *pgxpool.Pool) domain.KidRepo {
	return &kidRepository{
		db: database,
	}
}

func (kr *kidRepository) CreateKid(ctx context.Context, kid *domain.Kid) error {
	insertQuery := `
		INSERT INTO kids (id, name, birthday, photo, interests, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := kr.db.Exec(ctx, insertQuery,
		kid.ID, kid.Name, kid.Birthday, kid.Photo, kid.Interests,
		kid.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("could not insert kid: %v", err)
	}

	return nil
}

func (kr *kidRepository) GetAllKids(ctx context.Context) (*[]domain.Kid, error) {
	query := `
		SELECT id, name, birthday, photo, interests, created_at
		FROM kids
		LIMIT $1;
	`

	rows, err := kr.db.Query(ctx, query, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("could not get all kids: %v", err)
	}
	defer rows.Close()

	kids := []domain.Kid{}
	for rows.Next() {
		kid, err := scanKid(rows)
		if err != nil {
			return nil, err
		}
		kids = append(kids, *kid)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &kids, nil
}

func (kr *kidRepository) GetKidByID(ctx context.Context, id string) (*domain.Kid, error) {
	query := `
		SELECT id, name, birthday, photo, interests, created_at
		FROM kids
		WHERE id = $1;
	`

	kid, err := scanKid(kr.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKidNotFound
		}
		return nil, fmt.Errorf("could not get kid: %v", err)
	}

	return kid, nil
}

func (kr *kidRepository) UpdateKid(ctx context.Context, id string, payload *domain.KidUpdate) (int64, error) {
	set := []string{}
	args := []interface{}{}

	addField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if payload.Name != nil {
		addField("name", *payload.Name)
	}
	if payload.Birthday != nil {
		addField("birthday", *payload.Birthday)
	}
	if payload.Photo != nil {
		addField("photo", *payload.Photo)
	}
	if payload.Interests != nil {
		addField("interests", *payload.Interests)
	}

	if len(set) == 0 {
		return 0, domain.ErrEmptyUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE kids SET %s WHERE id = $%d;", strings.Join(set, ", "), len(args))

	tag, err := kr.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("could not update kid: %v", err)
	}

	return tag.RowsAffected(), nil
}

func (kr *kidRepository) DeleteKid(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM kids WHERE id = $1;`

	tag, err := kr.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("could not delete kid: %v", err)
	}

	return tag.RowsAffected(), nil
}

func scanKid(row pgx.Row) (*domain.Kid, error) {
	var kid domain.Kid
	var createdAt string

	err := row.Scan(&kid.ID, &kid.Name, &kid.Birthday, &kid.Photo, &kid.Interests, &createdAt)
	if err != nil {
		return nil, err
	}

	kid.CreatedAt, err = parseStoredTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("could not parse kid created_at: %v", err)
	}

	return &kid, nil
}

// parseStoredTime reads the ISO-8601 text representation that both
// collections persist for created_at.
func parseStoredTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
