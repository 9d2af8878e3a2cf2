package quest

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

const (
	maxTitleLen    = 200
	maxDescLen     = 2000
	maxCurrencyLen = 10
	maxProofLen    = 2048
	maxListLimit   = 100
)

// CreateQuestInput holds the parameters for creating a quest.
type CreateQuestInput struct {
	Title          string
	Description    *string
	RewardAmount   int64
	RewardCurrency string
	Type           domain.QuestType
	ExpiresAt      time.Time
}

// Validate checks all fields and collects all errors.
func (i *CreateQuestInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}
	if i.Description != nil && len(*i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}
	if i.RewardAmount <= 0 {
		errs = append(errs, domain.FieldError{Field: "reward_amount", Message: "must be positive"})
	}
	if strings.TrimSpace(i.RewardCurrency) == "" {
		errs = append(errs, domain.FieldError{Field: "reward_currency", Message: "required"})
	} else if len(i.RewardCurrency) > maxCurrencyLen {
		errs = append(errs, domain.FieldError{Field: "reward_currency", Message: "too long (max 10)"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "quest_type", Message: "must be SOCIAL or LOCATION_BASED"})
	}
	if i.ExpiresAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "expires_at", Message: "required"})
	} else if !i.ExpiresAt.After(time.Now()) {
		errs = append(errs, domain.FieldError{Field: "expires_at", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateQuestInput holds the parameters for updating a quest.
// Nil fields keep their stored values.
type UpdateQuestInput struct {
	QuestID      uuid.UUID
	Title        *string
	Description  *string
	RewardAmount *int64
}

// Validate checks all fields and collects all errors.
func (i *UpdateQuestInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quest_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.RewardAmount == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "at least one field required"})
	}
	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}
	if i.RewardAmount != nil && *i.RewardAmount <= 0 {
		errs = append(errs, domain.FieldError{Field: "reward_amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListQuestsInput holds the filter parameters for listing quests.
type ListQuestsInput struct {
	Status    *domain.QuestStatus
	Type      *domain.QuestType
	CreatorID *uuid.UUID
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i *ListQuestsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACTIVE, COMPLETED, or EXPIRED"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "quest_type", Message: "must be SOCIAL or LOCATION_BASED"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// JoinQuestInput holds the parameters for joining a quest.
type JoinQuestInput struct {
	QuestID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *JoinQuestInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quest_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitProofInput holds the parameters for submitting completion proof.
type SubmitProofInput struct {
	QuestID uuid.UUID
	Proof   string
}

// Validate checks all fields and collects all errors. An empty proof payload
// is rejected here, before any transaction begins.
func (i *SubmitProofInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quest_id", Message: "required"})
	}
	if strings.TrimSpace(i.Proof) == "" {
		errs = append(errs, domain.FieldError{Field: "proof", Message: "required"})
	} else if len(i.Proof) > maxProofLen {
		errs = append(errs, domain.FieldError{Field: "proof", Message: "too long (max 2048)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// VerifyQuestInput holds the parameters for verifying a submission.
type VerifyQuestInput struct {
	QuestID       uuid.UUID
	ParticipantID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *VerifyQuestInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quest_id", Message: "required"})
	}
	if i.ParticipantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "participant_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListParticipantsInput holds the parameters for listing a quest's participants.
type ListParticipantsInput struct {
	QuestID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ListParticipantsInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quest_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
