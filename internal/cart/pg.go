package cart

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStorage persists carts in Postgres for deployments without Redis.
//
// Schema:
//
//	CREATE TABLE carts (
//	  key        TEXT PRIMARY KEY,
//	  data       JSONB NOT NULL,
//	  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PGStorage struct{ db *pgxpool.Pool }

func NewPGStorage(db *pgxpool.Pool) *PGStorage { return &PGStorage{db: db} }

func (s *PGStorage) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var data []byte
	err := s.db.QueryRow(ctx, `
    SELECT data FROM carts WHERE key=$1
  `, key).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *PGStorage) Set(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `
    INSERT INTO carts (key, data, updated_at)
    VALUES ($1,$2,NOW())
    ON CONFLICT (key) DO UPDATE SET data=$2, updated_at=NOW()
  `, key, data)
	return err
}

func (s *PGStorage) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM carts WHERE key=$1`, key)
	return err
}
