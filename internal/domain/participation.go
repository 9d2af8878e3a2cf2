package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participation tracks one participant's progress on one quest. A row exists
// if and only if the participant has joined; the (QuestID, ParticipantID)
// pair is unique. Only the lifecycle operations may change Status.
type Participation struct {
	QuestID       uuid.UUID
	ParticipantID uuid.UUID
	Status        ParticipationStatus
	Proof         *string
	JoinedAt      time.Time
	UpdatedAt     time.Time
}

// CanSubmit returns true if proof submission is allowed from the current status.
func (p *Participation) CanSubmit() bool {
	return p.Status == ParticipationStatusJoined
}

// CanVerify returns true if creator verification is allowed from the current status.
func (p *Participation) CanVerify() bool {
	return p.Status == ParticipationStatusSubmitted
}
