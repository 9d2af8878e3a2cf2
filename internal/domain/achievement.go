package domain

import (
	"time"

	"github.com/google/uuid"
)

// AchievementCode identifies an achievement milestone.
type AchievementCode string

const (
	AchievementFirstQuestVerified AchievementCode = "FIRST_QUEST_VERIFIED"
)

func (c AchievementCode) String() string { return string(c) }

// AchievementGrant records that a user earned an achievement. At most one
// grant exists per (user, code) pair and it is immutable once created.
type AchievementGrant struct {
	UserID    uuid.UUID
	Code      AchievementCode
	GrantedAt time.Time
}

// Milestone declares when an achievement is earned: the grant fires in the
// verification transaction whose commit brings the participant's verified
// count to exactly VerifiedCount.
type Milestone struct {
	Code          AchievementCode
	Title         string
	VerifiedCount int
}

// Milestones lists every achievement the verify path evaluates.
var Milestones = []Milestone{
	{Code: AchievementFirstQuestVerified, Title: "First quest completed", VerifiedCount: 1},
}
