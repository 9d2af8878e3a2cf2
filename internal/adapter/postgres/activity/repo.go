// Package activity implements the ActivityRecord repository using PostgreSQL.
// The log is append-only: records are inserted and listed, never updated or
// deleted, and the lifecycle never reads them back for decisions.
package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/questlinehq/questline-backend/internal/adapter/postgres"
	"github.com/questlinehq/questline-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const appendActivitySQL = `
INSERT INTO activity_log (id, user_id, kind, metadata, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, kind, metadata, created_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, record domain.ActivityRecord) (domain.ActivityRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if record.Metadata == nil {
		record.Metadata = map[string]any{}
	}

	metadataJSON, err := json.Marshal(record.Metadata)
	if err != nil {
		return domain.ActivityRecord{}, fmt.Errorf("activity_record marshal metadata: %w", err)
	}

	row := querier.QueryRow(ctx, appendActivitySQL,
		record.ID, record.UserID, string(record.Kind), metadataJSON, record.CreatedAt,
	)

	created, err := scanActivityRecord(row)
	if err != nil {
		return domain.ActivityRecord{}, mapError(err, record.ID)
	}

	return created, nil
}

// Append creates an activity record without returning it. Satisfies the
// lifecycle's activityRepo interface inside transactions.
func (r *Repo) Append(ctx context.Context, record domain.ActivityRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns a user's activity records matching the filter, newest
// first. This read side exists for display only.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.ActivityRecord, error) {
	builder := sq.Select("id", "user_id", "kind", "metadata", "created_at").
		From("activity_log").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Kind != nil {
		builder = builder.Where(sq.Eq{"kind": string(*filter.Kind)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity for %s: %w", userID, err)
	}
	defer rows.Close()

	var records []domain.ActivityRecord
	for rows.Next() {
		rec, err := scanActivityRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list activity for %s: %w", userID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity for %s: %w", userID, err)
	}

	if records == nil {
		records = []domain.ActivityRecord{}
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanActivityRecord(row pgx.Row) (domain.ActivityRecord, error) {
	var (
		rec          domain.ActivityRecord
		kind         string
		metadataJSON []byte
	)

	if err := row.Scan(&rec.ID, &rec.UserID, &kind, &metadataJSON, &rec.CreatedAt); err != nil {
		return domain.ActivityRecord{}, err
	}

	rec.Kind = domain.ActivityKind(kind)

	if len(metadataJSON) > 0 {
		metadata := make(map[string]any)
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			return domain.ActivityRecord{}, fmt.Errorf("activity_record %s unmarshal metadata: %w", rec.ID, err)
		}
		rec.Metadata = metadata
	}

	return rec, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("activity_record %s: %w", id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("activity_record %s: %w", id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("activity_record %s: %w", id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("activity_record %s: %w", id, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("activity_record %s: %w", id, err)
}
