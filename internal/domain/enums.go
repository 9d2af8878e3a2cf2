package domain

// QuestType categorizes how a quest is completed.
type QuestType string

const (
	QuestTypeSocial        QuestType = "SOCIAL"
	QuestTypeLocationBased QuestType = "LOCATION_BASED"
)

func (t QuestType) String() string { return string(t) }

func (t QuestType) IsValid() bool {
	switch t {
	case QuestTypeSocial, QuestTypeLocationBased:
		return true
	}
	return false
}

// QuestStatus represents the lifecycle state of a quest itself.
type QuestStatus string

const (
	QuestStatusActive    QuestStatus = "ACTIVE"
	QuestStatusCompleted QuestStatus = "COMPLETED"
	QuestStatusExpired   QuestStatus = "EXPIRED"
)

func (s QuestStatus) String() string { return string(s) }

func (s QuestStatus) IsValid() bool {
	switch s {
	case QuestStatusActive, QuestStatusCompleted, QuestStatusExpired:
		return true
	}
	return false
}

// ParticipationStatus represents a participant's progress on one quest.
// The only forward path is JOINED -> SUBMITTED -> VERIFIED; VERIFIED is
// terminal. "Not joined" is the absence of a participation row, not a status.
type ParticipationStatus string

const (
	ParticipationStatusJoined    ParticipationStatus = "JOINED"
	ParticipationStatusSubmitted ParticipationStatus = "SUBMITTED"
	ParticipationStatusVerified  ParticipationStatus = "VERIFIED"
)

func (s ParticipationStatus) String() string { return string(s) }

func (s ParticipationStatus) IsValid() bool {
	switch s {
	case ParticipationStatusJoined, ParticipationStatusSubmitted, ParticipationStatusVerified:
		return true
	}
	return false
}

// ActivityKind identifies the kind of event recorded in the activity log.
type ActivityKind string

const (
	ActivityKindQuestCreated      ActivityKind = "QUEST_CREATED"
	ActivityKindProofSubmitted    ActivityKind = "PROOF_SUBMITTED"
	ActivityKindQuestVerified     ActivityKind = "QUEST_VERIFIED"
	ActivityKindAchievementEarned ActivityKind = "ACHIEVEMENT_EARNED"
)

func (k ActivityKind) String() string { return string(k) }

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityKindQuestCreated, ActivityKindProofSubmitted,
		ActivityKindQuestVerified, ActivityKindAchievementEarned:
		return true
	}
	return false
}
