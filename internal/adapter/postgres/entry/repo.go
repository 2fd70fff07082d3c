// Package entry implements the journal entry repository using PostgreSQL.
// Every read and write is scoped to the owning author; an entry belonging
// to another user is indistinguishable from a missing one.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/edgeskills/edge-backend/internal/adapter/postgres"
	"github.com/edgeskills/edge-backend/internal/domain"
)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const getByIDSQL = `
SELECT id, author_id, activity_id, attribute_code, title,
       situation, task, action, result, link, submitted, update_time
FROM edge_entries
WHERE id = $1 AND author_id = $2`

const insertSQL = `
INSERT INTO edge_entries
    (author_id, activity_id, attribute_code, title,
     situation, task, action, result, link, submitted, update_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

const updateSQL = `
UPDATE edge_entries
SET activity_id = $1, attribute_code = $2, title = $3, situation = $4,
    task = $5, action = $6, result = $7, link = $8, update_time = $9
WHERE id = $10 AND author_id = $11`

// GetByID returns an entry by primary key, scoped to its author.
// Returns domain.ErrNotFound if the entry does not exist or is owned by
// another user.
func (r *Repo) GetByID(ctx context.Context, authorID, entryID int64) (*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var e domain.Entry
	err := querier.QueryRow(ctx, getByIDSQL, entryID, authorID).Scan(
		&e.ID, &e.AuthorID, &e.ActivityID, &e.AttributeCode, &e.Title,
		&e.Situation, &e.Task, &e.Action, &e.Result, &e.Link,
		&e.Submitted, &e.UpdateTime,
	)
	if err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}

	return &e, nil
}

// List returns the author's entries ordered by title, optionally filtered
// to one attribute code. Returns an empty slice (not nil) when there are
// no matches.
func (r *Repo) List(ctx context.Context, authorID int64, attributeCode string) ([]domain.EntryRef, error) {
	builder := psql.
		Select("id", "title", "submitted").
		From("edge_entries").
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("title")
	if attributeCode != "" {
		builder = builder.Where(sq.Eq{"attribute_code": attributeCode})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	refs := []domain.EntryRef{}
	for rows.Next() {
		var ref domain.EntryRef
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Submitted); err != nil {
			return nil, fmt.Errorf("list entries: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return refs, nil
}

// Create inserts a new entry and returns its assigned id.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, insertSQL,
		e.AuthorID, e.ActivityID, e.AttributeCode, e.Title,
		e.Situation, e.Task, e.Action, e.Result, e.Link,
		e.Submitted, e.UpdateTime,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "entry", 0)
	}

	return id, nil
}

// Update amends an existing entry's editable fields, scoped to its author.
// The submitted flag is deliberately not touched here; only SetSubmitted
// moves it. Returns domain.ErrNotFound if the entry does not exist or is
// owned by another user.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSQL,
		e.ActivityID, e.AttributeCode, e.Title, e.Situation,
		e.Task, e.Action, e.Result, e.Link, e.UpdateTime,
		e.ID, e.AuthorID,
	)
	if err != nil {
		return postgres.MapError(err, "entry", e.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %d: %w", e.ID, domain.ErrNotFound)
	}

	return nil
}

// SetSubmitted marks an entry submitted and stamps its update time, scoped
// to its author. There is no inverse operation. Returns domain.ErrNotFound
// if the entry does not exist or is owned by another user.
func (r *Repo) SetSubmitted(ctx context.Context, authorID, entryID int64, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`UPDATE edge_entries SET submitted = TRUE, update_time = $1 WHERE id = $2 AND author_id = $3`,
		at, entryID, authorID,
	)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %d: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an entry, scoped to its author. Returns domain.ErrNotFound
// if the entry does not exist or is owned by another user.
func (r *Repo) Delete(ctx context.Context, authorID, entryID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`DELETE FROM edge_entries WHERE id = $1 AND author_id = $2`,
		entryID, authorID,
	)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %d: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// CountByAttribute counts the author's entries for one attribute code,
// partitioned by the submitted flag.
func (r *Repo) CountByAttribute(ctx context.Context, authorID int64, attributeCode string, submitted bool) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx,
		`SELECT COUNT(*) FROM edge_entries WHERE author_id = $1 AND attribute_code = $2 AND submitted = $3`,
		authorID, attributeCode, submitted,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count entries by attribute: %w", err)
	}

	return count, nil
}

// SubmissionTotals returns the author's submitted entry count and the
// number of distinct attribute codes among those entries.
func (r *Repo) SubmissionTotals(ctx context.Context, authorID int64) (domain.SubmissionTotals, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var totals domain.SubmissionTotals
	err := querier.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT attribute_code) FROM edge_entries WHERE author_id = $1 AND submitted = TRUE`,
		authorID,
	).Scan(&totals.Entries, &totals.Attributes)
	if err != nil {
		return domain.SubmissionTotals{}, fmt.Errorf("submission totals: %w", err)
	}

	return totals, nil
}
