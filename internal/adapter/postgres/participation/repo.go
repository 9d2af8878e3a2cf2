// Package participation implements the Participation repository using
// PostgreSQL. The (quest_id, participant_id) primary key is the duplicate-join
// guard; GetForUpdate takes the row lock that serializes submit/verify for one
// pair.
package participation

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

// Repo provides participation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new participation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const participationColumns = `quest_id, participant_id, status, proof, joined_at, updated_at`

const createParticipationSQL = `
INSERT INTO participations (quest_id, participant_id, status, joined_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + participationColumns

const getParticipationSQL = `
SELECT ` + participationColumns + `
FROM participations
WHERE quest_id = $1 AND participant_id = $2`

const getParticipationForUpdateSQL = getParticipationSQL + `
FOR UPDATE`

const updateStatusSQL = `
UPDATE participations
SET status = $3, proof = COALESCE($4, proof), updated_at = $5
WHERE quest_id = $1 AND participant_id = $2
RETURNING ` + participationColumns

const listByQuestSQL = `
SELECT ` + participationColumns + `
FROM participations
WHERE quest_id = $1
ORDER BY joined_at`

const countVerifiedSQL = `
SELECT count(*)
FROM participations
WHERE participant_id = $1 AND status = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the participation row for one (quest, participant) pair.
// Returns domain.ErrNotFound if the participant never joined.
func (r *Repo) Get(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanParticipation(querier.QueryRow(ctx, getParticipationSQL, questID, participantID))
	if err != nil {
		return domain.Participation{}, mapError(err, questID, participantID)
	}

	return p, nil
}

// GetForUpdate returns the participation row with a row lock. A concurrent
// transaction locking the same pair blocks here until the first commits.
// Must be called inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanParticipation(querier.QueryRow(ctx, getParticipationForUpdateSQL, questID, participantID))
	if err != nil {
		return domain.Participation{}, mapError(err, questID, participantID)
	}

	return p, nil
}

// ListByQuest returns every participation for a quest, oldest join first.
func (r *Repo) ListByQuest(ctx context.Context, questID uuid.UUID) ([]domain.Participation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByQuestSQL, questID)
	if err != nil {
		return nil, fmt.Errorf("list participations for quest %s: %w", questID, err)
	}
	defer rows.Close()

	var participations []domain.Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("list participations for quest %s: %w", questID, err)
		}
		participations = append(participations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participations for quest %s: %w", questID, err)
	}

	if participations == nil {
		participations = []domain.Participation{}
	}

	return participations, nil
}

// CountVerifiedByParticipant returns how many of the participant's
// participations hold VERIFIED status, across all quests. Called inside the
// verify transaction so the count includes the row just written.
func (r *Repo) CountVerifiedByParticipant(ctx context.Context, participantID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx, countVerifiedSQL,
		participantID, string(domain.ParticipationStatusVerified),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count verified participations for %s: %w", participantID, err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a JOINED participation row. A duplicate (quest, participant)
// pair surfaces as domain.ErrAlreadyExists via the primary-key violation;
// that is the join concurrency guard, not a generic failure.
func (r *Repo) Create(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	p, err := scanParticipation(querier.QueryRow(ctx, createParticipationSQL,
		questID, participantID, string(domain.ParticipationStatusJoined), now,
	))
	if err != nil {
		return domain.Participation{}, mapError(err, questID, participantID)
	}

	return p, nil
}

// UpdateStatus transitions the row to the given status. A non-nil proof
// replaces the stored payload; nil keeps it. Returns the updated row or
// domain.ErrNotFound if no row exists for the pair.
func (r *Repo) UpdateStatus(ctx context.Context, questID, participantID uuid.UUID, status domain.ParticipationStatus, proof *string) (domain.Participation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	p, err := scanParticipation(querier.QueryRow(ctx, updateStatusSQL,
		questID, participantID, string(status), proof, now,
	))
	if err != nil {
		return domain.Participation{}, mapError(err, questID, participantID)
	}

	return p, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanParticipation(row pgx.Row) (domain.Participation, error) {
	var (
		p      domain.Participation
		status string
	)

	if err := row.Scan(&p.QuestID, &p.ParticipantID, &status, &p.Proof,
		&p.JoinedAt, &p.UpdatedAt); err != nil {
		return domain.Participation{}, err
	}

	p.Status = domain.ParticipationStatus(status)

	return p, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, questID, participantID uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("participation %s/%s: %w", questID, participantID, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("participation %s/%s: %w", questID, participantID, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("participation %s/%s: %w", questID, participantID, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("participation %s/%s: %w", questID, participantID, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("participation %s/%s: %w", questID, participantID, domain.ErrValidation)
		}
	}

	return fmt.Errorf("participation %s/%s: %w", questID, participantID, err)
}
