// Package enrolment implements enrolment reads and writes using PostgreSQL.
// Join and leave only operate through self-service channels; faculty
// resolution reads the student's database-channel enrolments.
package enrolment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/edgeskills/edge-backend/internal/adapter/postgres"
	"github.com/edgeskills/edge-backend/internal/domain"
)

// Repo provides enrolment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new enrolment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selfChannelSQL = `
SELECT id, course_id, method, enabled, allow_self_unenrol
FROM enrolment_channels
WHERE course_id = $1 AND method = $2 AND enabled = TRUE
ORDER BY id
LIMIT 1`

const studentCategoriesSQL = `
SELECT DISTINCT cc.name
FROM enrolments e
JOIN enrolment_channels ch ON ch.id = e.channel_id
JOIN courses c ON c.id = ch.course_id
JOIN course_categories cc ON cc.id = c.category_id
WHERE e.user_id = $1
  AND e.role = $2
  AND ch.method = $3
  AND ch.enabled = TRUE
  AND c.code LIKE '%#%'`

// IsEnrolled reports whether the user holds any enrolment in the course,
// through any channel.
func (r *Repo) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var enrolled bool
	err := querier.QueryRow(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM enrolments e
		    JOIN enrolment_channels ch ON ch.id = e.channel_id
		    WHERE e.user_id = $1 AND ch.course_id = $2
		)`,
		userID, courseID,
	).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("check enrolment: %w", err)
	}

	return enrolled, nil
}

// SelfChannel returns the course's enabled self-service enrolment channel.
// Returns domain.ErrEnrolmentUnavailable when the course has none.
func (r *Repo) SelfChannel(ctx context.Context, courseID int64) (*domain.EnrolmentChannel, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var ch domain.EnrolmentChannel
	err := querier.QueryRow(ctx, selfChannelSQL, courseID, domain.EnrolMethodSelf).Scan(
		&ch.ID, &ch.CourseID, &ch.Method, &ch.Enabled, &ch.AllowSelfUnenrol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("course %d: %w", courseID, domain.ErrEnrolmentUnavailable)
		}
		return nil, fmt.Errorf("self enrolment channel: %w", err)
	}

	return &ch, nil
}

// Enrol adds the user to a course through the given channel with the
// student role. Returns domain.ErrAlreadyExists when the user is already
// enrolled through that channel.
func (r *Repo) Enrol(ctx context.Context, userID, channelID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx,
		`INSERT INTO enrolments (user_id, channel_id, role) VALUES ($1, $2, $3)`,
		userID, channelID, domain.RoleStudent,
	)
	if err != nil {
		return postgres.MapError(err, "enrolment", userID)
	}

	return nil
}

// Unenrol removes the user's enrolment through the given channel. Returns
// domain.ErrNotFound when no such enrolment exists.
func (r *Repo) Unenrol(ctx context.Context, userID, channelID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`DELETE FROM enrolments WHERE user_id = $1 AND channel_id = $2`,
		userID, channelID,
	)
	if err != nil {
		return fmt.Errorf("unenrol: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enrolment for user %d: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// StudentCategories returns the distinct category names of the courses the
// user is enrolled in as a student through a database channel, considering
// only courses whose code carries a '#' marker.
func (r *Repo) StudentCategories(ctx context.Context, userID int64) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, studentCategoriesSQL,
		userID, domain.RoleStudent, domain.EnrolMethodDatabase)
	if err != nil {
		return nil, fmt.Errorf("student categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("student categories: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("student categories: %w", err)
	}

	return categories, nil
}
