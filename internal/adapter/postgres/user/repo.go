// Package user implements user account reads using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/edgeskills/edge-backend/internal/adapter/postgres"
	"github.com/edgeskills/edge-backend/internal/domain"
)

// Repo provides user account reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getUserSQL = `
SELECT id, username, first_name, last_name, email
FROM users
WHERE `

// GetByID returns the user with the given id.
// Returns domain.ErrNotFound when no such user exists.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	err := querier.QueryRow(ctx, getUserSQL+`id = $1`, id).Scan(
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// GetByUsername returns the user with the given username.
// Returns domain.ErrNotFound when no such user exists.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	err := querier.QueryRow(ctx, getUserSQL+`username = $1`, username).Scan(
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return &u, nil
}
