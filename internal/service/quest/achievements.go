package quest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

// evaluateAchievements books milestone grants for a participant. It must run
// inside the verify transaction, after the status write, so the verified
// count already includes the row being verified.
//
// Concurrent verifications for the same user either serialize on the
// participation row lock upstream or collapse at the grant insert, whose
// ON CONFLICT DO NOTHING makes the second attempt observe "already present".
// Either way at most one grant row per (user, code) can exist.
func (s *Service) evaluateAchievements(ctx context.Context, participantID uuid.UUID) ([]domain.AchievementCode, error) {
	count, err := s.participations.CountVerifiedByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("count verified participations: %w", err)
	}

	var granted []domain.AchievementCode
	for _, m := range domain.Milestones {
		if count != m.VerifiedCount {
			continue
		}

		fresh, err := s.achievements.Grant(ctx, participantID, m.Code)
		if err != nil {
			return nil, fmt.Errorf("grant achievement %s: %w", m.Code, err)
		}
		if !fresh {
			continue
		}

		if err := s.activity.Append(ctx, domain.ActivityRecord{
			UserID: participantID,
			Kind:   domain.ActivityKindAchievementEarned,
			Metadata: map[string]any{
				"code":  string(m.Code),
				"title": m.Title,
			},
		}); err != nil {
			return nil, fmt.Errorf("append achievement activity: %w", err)
		}

		granted = append(granted, m.Code)
	}

	return granted, nil
}
