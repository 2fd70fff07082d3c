// Package authz implements capability grant reads using PostgreSQL.
package authz

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/edgeskills/edge-backend/internal/adapter/postgres"
)

// Repo provides capability grant reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new authz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// HasCapability reports whether the user holds the named capability.
func (r *Repo) HasCapability(ctx context.Context, userID int64, capability string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var granted bool
	err := querier.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM capability_grants WHERE user_id = $1 AND capability = $2)`,
		userID, capability,
	).Scan(&granted)
	if err != nil {
		return false, fmt.Errorf("check capability: %w", err)
	}

	return granted, nil
}
