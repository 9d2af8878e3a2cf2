package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is one append-only activity log entry. Records exist for
// display and audit; lifecycle decisions are made from Quest/Participation
// rows, never from the log.
type ActivityRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      ActivityKind
	Metadata  map[string]any
	CreatedAt time.Time
}
