// Package award implements award persistence using PostgreSQL. The table
// carries a unique constraint on recipient_id, so a second grant for the
// same recipient surfaces as domain.ErrAlreadyExists.
package award

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/edgeskills/edge-backend/internal/adapter/postgres"
	"github.com/edgeskills/edge-backend/internal/domain"
)

// Repo provides award persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new award repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Exists reports whether the recipient already holds the award.
func (r *Repo) Exists(ctx context.Context, recipientID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM edge_awards WHERE recipient_id = $1)`,
		recipientID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check award: %w", err)
	}

	return exists, nil
}

// Create records an award grant. Returns domain.ErrAlreadyExists when the
// recipient has already been granted one.
func (r *Repo) Create(ctx context.Context, a domain.Award) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx,
		`INSERT INTO edge_awards (recipient_id, award_time) VALUES ($1, $2)`,
		a.RecipientID, a.AwardTime,
	)
	if err != nil {
		return postgres.MapError(err, "award", a.RecipientID)
	}

	return nil
}
