package quest

import (
	"context"
	"fmt"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// ListParticipants returns every participation of a quest, submitted proofs
// included. Only the quest creator may see them.
func (s *Service) ListParticipants(ctx context.Context, input ListParticipantsInput) ([]domain.Participation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	q, err := s.quests.GetByID(ctx, input.QuestID)
	if err != nil {
		return nil, fmt.Errorf("get quest: %w", err)
	}
	if q.CreatorID != userID {
		return nil, fmt.Errorf("only the quest creator may list participants: %w", domain.ErrForbidden)
	}

	participants, err := s.participations.ListByQuest(ctx, input.QuestID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	return participants, nil
}
