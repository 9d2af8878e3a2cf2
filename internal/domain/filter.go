package domain

import "github.com/google/uuid"

// QuestFilter contains filtering parameters for quest listings.
type QuestFilter struct {
	Status    *QuestStatus
	Type      *QuestType
	CreatorID *uuid.UUID
	Limit     int
}

// ActivityFilter contains filtering parameters for a user's activity feed.
type ActivityFilter struct {
	Kind  *ActivityKind
	Limit int
}
