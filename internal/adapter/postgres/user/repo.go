// Package user implements the User repository using PostgreSQL.
//
// Users are provisioned by the identity platform; this service only reads
// them, mainly to resolve wallet addresses for reward payouts.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/questlinehq/questline-backend/internal/adapter/postgres"
	"github.com/questlinehq/questline-backend/internal/domain"
)

// Repo provides read access to users backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, wallet_address, created_at, updated_at`

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getUserByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return domain.User{}, mapError(err, id.String())
	}

	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByUsernameSQL, username))
	if err != nil {
		return domain.User{}, mapError(err, username)
	}

	return u, nil
}

// scanUser scans a single user from a pgx.Row.
func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.WalletAddress, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// mapError converts pgx errors into domain errors.
func mapError(err error, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("user %s: %w", key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("user %s: %w", key, domain.ErrNotFound)
	}

	return fmt.Errorf("user %s: %w", key, err)
}
