package config

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the connection pool and runs migrations. The pool is
// handed back for injection; closing it is the caller's job.
func BootDB(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := autoMigrate(ctx, pool); err != nil {
		return pool, err
	}

	return pool, nil
}

func autoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	// created_at is TEXT on purpose: timestamps are persisted as
	// ISO-8601 strings and parsed back on read.
	query := `
	CREATE TABLE IF NOT EXISTS kids (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	birthday TEXT NOT NULL,
	photo TEXT,
	interests TEXT,
	created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS gifts (
	id TEXT PRIMARY KEY,
	kid_id TEXT NOT NULL,
	occasion TEXT NOT NULL,
	year INTEGER NOT NULL,
	gift_name TEXT NOT NULL,
	photo TEXT,
	date_given TEXT,
	created_at TEXT NOT NULL
	);
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
