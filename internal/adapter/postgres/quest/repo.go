// Package quest implements the Quest repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; listings with dynamic filters
// are built with squirrel.
package quest

import (
	"context"
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

// Repo provides quest persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quest repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const questColumns = `id, creator_id, title, description, reward_amount, reward_currency,
       quest_type, status, expires_at, created_at, updated_at`

const createQuestSQL = `
INSERT INTO quests (id, creator_id, title, description, reward_amount, reward_currency,
                    quest_type, status, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + questColumns

const getQuestSQL = `
SELECT ` + questColumns + `
FROM quests
WHERE id = $1`

const getQuestForUpdateSQL = getQuestSQL + `
FOR UPDATE`

const updateQuestSQL = `
UPDATE quests
SET title         = COALESCE($2, title),
    description   = COALESCE($3, description),
    reward_amount = COALESCE($4, reward_amount),
    updated_at    = $5
WHERE id = $1
RETURNING ` + questColumns

const setQuestStatusSQL = `
UPDATE quests
SET status = $2, updated_at = $3
WHERE id = $1`

const expireDueSQL = `
UPDATE quests
SET status = $1, updated_at = $2
WHERE status = $3 AND expires_at <= $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a quest by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Quest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuest(querier.QueryRow(ctx, getQuestSQL, id))
	if err != nil {
		return domain.Quest{}, mapError(err, "quest", id)
	}

	return q, nil
}

// GetByIDForUpdate returns a quest by primary key with a row lock.
// Must be called inside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Quest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuest(querier.QueryRow(ctx, getQuestForUpdateSQL, id))
	if err != nil {
		return domain.Quest{}, mapError(err, "quest", id)
	}

	return q, nil
}

// List returns quests matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error) {
	builder := sq.Select(
		"id", "creator_id", "title", "description", "reward_amount", "reward_currency",
		"quest_type", "status", "expires_at", "created_at", "updated_at",
	).
		From("quests").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"quest_type": string(*filter.Type)})
	}
	if filter.CreatorID != nil {
		builder = builder.Where(sq.Eq{"creator_id": *filter.CreatorID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build quest list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	defer rows.Close()

	quests, err := scanQuests(rows)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}

	return quests, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new active quest and returns the persisted domain.Quest.
func (r *Repo) Create(ctx context.Context, params domain.QuestCreateParams) (domain.Quest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	q, err := scanQuest(querier.QueryRow(ctx, createQuestSQL,
		id, params.CreatorID, params.Title, params.Description,
		params.RewardAmount, params.RewardCurrency, string(params.Type),
		string(domain.QuestStatusActive), params.ExpiresAt, now, now,
	))
	if err != nil {
		return domain.Quest{}, mapError(err, "quest", id)
	}

	return q, nil
}

// Update changes the creator-mutable fields and returns the updated quest.
// Returns domain.ErrNotFound if the quest does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.QuestUpdateParams) (domain.Quest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	q, err := scanQuest(querier.QueryRow(ctx, updateQuestSQL,
		id, params.Title, params.Description, params.RewardAmount, now,
	))
	if err != nil {
		return domain.Quest{}, mapError(err, "quest", id)
	}

	return q, nil
}

// SetStatus transitions a quest to the given status.
// Returns domain.ErrNotFound if the quest does not exist.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.QuestStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, setQuestStatusSQL, id, string(status), now)
	if err != nil {
		return mapError(err, "quest", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quest %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ExpireDue flips every active quest whose deadline has passed to EXPIRED
// and returns the number of quests affected.
func (r *Repo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, expireDueSQL,
		string(domain.QuestStatusExpired), now.UTC().Truncate(time.Microsecond),
		string(domain.QuestStatusActive),
	)
	if err != nil {
		return 0, fmt.Errorf("expire due quests: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanQuest scans a single quest from a pgx.Row.
func scanQuest(row pgx.Row) (domain.Quest, error) {
	var (
		q      domain.Quest
		qType  string
		status string
	)

	if err := row.Scan(&q.ID, &q.CreatorID, &q.Title, &q.Description,
		&q.RewardAmount, &q.RewardCurrency, &qType, &status,
		&q.ExpiresAt, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return domain.Quest{}, err
	}

	q.Type = domain.QuestType(qType)
	q.Status = domain.QuestStatus(status)

	return q, nil
}

// scanQuests scans multiple rows into a domain.Quest slice.
func scanQuests(rows pgx.Rows) ([]domain.Quest, error) {
	var quests []domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if quests == nil {
		quests = []domain.Quest{}
	}

	return quests, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
