// Package quest implements the quest lifecycle: join, proof submission and
// creator verification, plus the supporting CRUD surface. Verification is the
// hard part: one local transaction moves the participation to its terminal
// state and books achievements, then a best-effort reward dispatch runs after
// commit and is never allowed to fail the operation.
package quest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Quest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Quest, error)
	List(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error)
	Create(ctx context.Context, params domain.QuestCreateParams) (domain.Quest, error)
	Update(ctx context.Context, id uuid.UUID, params domain.QuestUpdateParams) (domain.Quest, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type participationRepo interface {
	Create(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error)
	GetForUpdate(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error)
	ListByQuest(ctx context.Context, questID uuid.UUID) ([]domain.Participation, error)
	CountVerifiedByParticipant(ctx context.Context, participantID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, questID, participantID uuid.UUID, status domain.ParticipationStatus, proof *string) (domain.Participation, error)
}

type achievementRepo interface {
	Grant(ctx context.Context, userID uuid.UUID, code domain.AchievementCode) (bool, error)
}

type activityRepo interface {
	Append(ctx context.Context, record domain.ActivityRecord) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type rewardDispatcher interface {
	Distribute(ctx context.Context, address string, amount int64, currency string) (*domain.RewardReceipt, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the quest lifecycle business logic.
type Service struct {
	quests          questRepo
	participations  participationRepo
	achievements    achievementRepo
	activity        activityRepo
	users           userRepo
	rewards         rewardDispatcher
	tx              txManager
	log             *slog.Logger
	dispatchTimeout time.Duration
}

// NewService creates a new Quest service. dispatchTimeout bounds the
// post-commit reward dispatch; it is independent of the transaction timeout
// owned by the tx manager.
func NewService(
	log *slog.Logger,
	quests questRepo,
	participations participationRepo,
	achievements achievementRepo,
	activity activityRepo,
	users userRepo,
	rewards rewardDispatcher,
	tx txManager,
	dispatchTimeout time.Duration,
) *Service {
	return &Service{
		quests:          quests,
		participations:  participations,
		achievements:    achievements,
		activity:        activity,
		users:           users,
		rewards:         rewards,
		tx:              tx,
		log:             log.With("service", "quest"),
		dispatchTimeout: dispatchTimeout,
	}
}
