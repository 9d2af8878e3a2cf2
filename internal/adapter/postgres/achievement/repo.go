// Package achievement implements the AchievementGrant repository using
// PostgreSQL. Grants are write-once: the (user_id, achievement_code) primary
// key plus ON CONFLICT DO NOTHING collapses concurrent duplicate awards into
// a no-op instead of an error.
package achievement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/questlinehq/questline-backend/internal/adapter/postgres"
	"github.com/questlinehq/questline-backend/internal/domain"
)

// Repo provides achievement grant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new achievement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const grantSQL = `
INSERT INTO achievement_grants (user_id, achievement_code, granted_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, achievement_code) DO NOTHING`

const listByUserSQL = `
SELECT user_id, achievement_code, granted_at
FROM achievement_grants
WHERE user_id = $1
ORDER BY granted_at`

const existsSQL = `
SELECT EXISTS(
    SELECT 1 FROM achievement_grants
    WHERE user_id = $1 AND achievement_code = $2
)`

// Grant records the achievement for the user. Returns true if a new grant row
// was inserted, false if the pair already held one (ON CONFLICT DO NOTHING).
// The false case is how a losing concurrent awarder learns it lost.
func (r *Repo) Grant(ctx context.Context, userID uuid.UUID, code domain.AchievementCode) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, grantSQL, userID, string(code), now)
	if err != nil {
		return false, mapError(err, userID, code)
	}

	return tag.RowsAffected() > 0, nil
}

// Exists reports whether the user already holds the grant.
func (r *Repo) Exists(ctx context.Context, userID uuid.UUID, code domain.AchievementCode) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, userID, string(code)).Scan(&exists); err != nil {
		return false, mapError(err, userID, code)
	}

	return exists, nil
}

// ListByUser returns every grant the user holds, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AchievementGrant, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievement grants for %s: %w", userID, err)
	}
	defer rows.Close()

	var grants []domain.AchievementGrant
	for rows.Next() {
		var (
			g    domain.AchievementGrant
			code string
		)
		if err := rows.Scan(&g.UserID, &code, &g.GrantedAt); err != nil {
			return nil, fmt.Errorf("list achievement grants for %s: %w", userID, err)
		}
		g.Code = domain.AchievementCode(code)
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list achievement grants for %s: %w", userID, err)
	}

	if grants == nil {
		grants = []domain.AchievementGrant{}
	}

	return grants, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, userID uuid.UUID, code domain.AchievementCode) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("achievement_grant %s/%s: %w", userID, code, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("achievement_grant %s/%s: %w", userID, code, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("achievement_grant %s/%s: %w", userID, code, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("achievement_grant %s/%s: %w", userID, code, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("achievement_grant %s/%s: %w", userID, code, err)
}
