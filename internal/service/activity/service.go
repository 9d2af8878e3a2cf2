// Package activity exposes the read side of the activity log: a user's own
// feed, newest first. Writes happen inside the quest lifecycle transactions;
// this service never writes.
package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

type activityRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.ActivityRecord, error)
}

// Service implements the activity feed business logic.
type Service struct {
	activity activityRepo
	log      *slog.Logger
}

// NewService creates a new Activity service.
func NewService(log *slog.Logger, activity activityRepo) *Service {
	return &Service{
		activity: activity,
		log:      log.With("service", "activity"),
	}
}
