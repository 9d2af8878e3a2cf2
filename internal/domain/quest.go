package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quest represents a task posted by a creator for other users to complete.
// Reward amounts are integers in the smallest unit of the reward currency.
type Quest struct {
	ID             uuid.UUID
	CreatorID      uuid.UUID
	Title          string
	Description    *string
	RewardAmount   int64
	RewardCurrency string
	Type           QuestType
	Status         QuestStatus
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive returns true if the quest still accepts lifecycle transitions.
func (q *Quest) IsActive() bool {
	return q.Status == QuestStatusActive
}

// IsExpired returns true if the quest's deadline has passed at the given time,
// regardless of whether the status sweep has caught up yet.
func (q *Quest) IsExpired(now time.Time) bool {
	return !q.ExpiresAt.After(now)
}

// QuestCreateParams holds the fields a creator supplies for a new quest.
type QuestCreateParams struct {
	CreatorID      uuid.UUID
	Title          string
	Description    *string
	RewardAmount   int64
	RewardCurrency string
	Type           QuestType
	ExpiresAt      time.Time
}

// QuestUpdateParams holds the creator-mutable fields; nil keeps the stored value.
type QuestUpdateParams struct {
	Title        *string
	Description  *string
	RewardAmount *int64
}

// RewardReceipt is the treasury's acknowledgement of a dispatched reward.
type RewardReceipt struct {
	TransferID string
}
