// Package catalog implements read access to the course and tag catalogue
// using PostgreSQL. It is the single boundary where the EDGE course code
// convention and the "name (code)" attribute label convention are parsed
// into structured domain fields.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/edgeskills/edge-backend/internal/adapter/postgres"
	"github.com/edgeskills/edge-backend/internal/domain"
)

// EdgeGroupTag is the well-known grouping tag the attribute catalogue
// hangs off. ListAttributes fails with not-found when it is missing.
const EdgeGroupTag = "EDGE"

// Repo provides catalogue reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listEdgeActivitiesSQL = `
SELECT id, full_name, short_name, summary, code, visible
FROM courses
WHERE code LIKE 'EDGE~%'
ORDER BY short_name`

const getActivitySQL = `
SELECT id, full_name, short_name, summary, code, visible
FROM courses
WHERE id = $1`

const listAttributeTagsSQL = `
SELECT t.raw_name, t.description
FROM tag_links tl
JOIN tags t ON t.id = tl.tag_id
WHERE tl.parent_id = $1
ORDER BY t.raw_name`

// ListEdgeActivities returns every course carrying a well-formed EDGE code,
// ordered by short name. Courses whose code does not parse are skipped
// rather than failing the listing.
func (r *Repo) ListEdgeActivities(ctx context.Context) ([]domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listEdgeActivitiesSQL)
	if err != nil {
		return nil, fmt.Errorf("list edge activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		activity, parsed, err := scanActivityRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list edge activities: %w", err)
		}
		if !parsed {
			continue
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list edge activities: %w", err)
	}

	return activities, nil
}

// GetActivity returns a single course by id. The structured EDGE fields are
// populated when the course code parses; a course outside the EDGE
// convention still resolves, with empty classification fields.
// Returns domain.ErrNotFound if no course with that id exists.
func (r *Repo) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getActivitySQL, id)
	activity, _, err := scanActivityRow(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}

	return &activity, nil
}

// AttributeTags returns the attribute catalogue: every tag linked under the
// EDGE grouping tag whose label matches the "name (code)" convention,
// ordered by label (and therefore by attribute name). Malformed labels are
// silently skipped. Returns domain.ErrNotFound when the grouping tag itself
// does not exist.
func (r *Repo) AttributeTags(ctx context.Context) ([]domain.Attribute, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var groupID int64
	err := querier.QueryRow(ctx, `SELECT id FROM tags WHERE raw_name = $1`, EdgeGroupTag).Scan(&groupID)
	if err != nil {
		return nil, postgres.MapError(err, "grouping tag", 0)
	}

	rows, err := querier.Query(ctx, listAttributeTagsSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("list attribute tags: %w", err)
	}
	defer rows.Close()

	attributes := []domain.Attribute{}
	for rows.Next() {
		var rawName, description string
		if err := rows.Scan(&rawName, &description); err != nil {
			return nil, fmt.Errorf("list attribute tags: %w", err)
		}
		name, code, ok := domain.ParseAttributeLabel(rawName)
		if !ok {
			continue
		}
		attributes = append(attributes, domain.Attribute{
			Code:        code,
			Name:        name,
			Description: description,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attribute tags: %w", err)
	}

	return attributes, nil
}

// AttributeByLabel returns the attribute whose tag label exactly matches
// the given "name (code)" label. Returns domain.ErrNotFound if no tag
// carries that label or the label itself is malformed.
func (r *Repo) AttributeByLabel(ctx context.Context, label string) (*domain.Attribute, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rawName, description string
	err := querier.QueryRow(ctx,
		`SELECT raw_name, description FROM tags WHERE raw_name = $1`, label,
	).Scan(&rawName, &description)
	if err != nil {
		return nil, postgres.MapError(err, "attribute tag", 0)
	}

	name, code, ok := domain.ParseAttributeLabel(rawName)
	if !ok {
		return nil, fmt.Errorf("attribute tag %q: %w", rawName, domain.ErrNotFound)
	}

	return &domain.Attribute{
		Code:        code,
		Name:        name,
		Description: description,
	}, nil
}

// scanActivityRow reads one course row and parses its structured code.
// parsed is false when the code does not follow the EDGE convention.
func scanActivityRow(row pgx.Row) (domain.Activity, bool, error) {
	var (
		activity domain.Activity
		code     string
	)
	err := row.Scan(&activity.ID, &activity.Name, &activity.ShortName,
		&activity.Description, &code, &activity.Visible)
	if err != nil {
		return domain.Activity{}, false, err
	}

	faculty, mnemonic, attributes, ok := domain.ParseActivityCode(code)
	if !ok {
		return activity, false, nil
	}
	activity.Faculty = faculty
	activity.Mnemonic = mnemonic
	activity.AttributeCodes = attributes

	return activity, true, nil
}
