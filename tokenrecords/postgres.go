package tokenrecords

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var _ Repo = (*PostgresRepo)(nil)

// PostgresRepo stores token records in a single table:
//
//	CREATE TABLE token_records (
//	    username      TEXT PRIMARY KEY,
//	    refresh_token TEXT NOT NULL,
//	    expires_at    TIMESTAMPTZ NOT NULL
//	);
//
// Each statement is its own transaction; Rotate relies on the row-level
// atomicity of a single conditional UPDATE.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

func (r *PostgresRepo) FindByUsername(ctx context.Context, username string) (*TokenRecord, error) {
	query := `SELECT username, refresh_token, expires_at FROM token_records WHERE username = $1`

	record := &TokenRecord{}
	err := r.pool.QueryRow(ctx, query, username).Scan(&record.Username, &record.RefreshToken, &record.ExpiresAt)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "[PostgresRepo.FindByUsername] QueryRow")
	}
	return record, nil
}

func (r *PostgresRepo) Upsert(ctx context.Context, record *TokenRecord) error {
	query := `INSERT INTO token_records (username, refresh_token, expires_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (username)
	          DO UPDATE SET refresh_token = EXCLUDED.refresh_token, expires_at = EXCLUDED.expires_at`

	if _, err := r.pool.Exec(ctx, query, record.Username, record.RefreshToken, record.ExpiresAt); err != nil {
		return errors.Wrap(err, "[PostgresRepo.Upsert] Exec")
	}
	return nil
}

func (r *PostgresRepo) Rotate(ctx context.Context, username, current, next string) error {
	query := `UPDATE token_records
	          SET refresh_token = $3
	          WHERE username = $1 AND refresh_token = $2 AND refresh_token <> ''`

	tag, err := r.pool.Exec(ctx, query, username, current, next)
	if err != nil {
		return errors.Wrap(err, "[PostgresRepo.Rotate] Exec")
	}
	if tag.RowsAffected() == 0 {
		return ErrTokenMismatch
	}
	return nil
}
