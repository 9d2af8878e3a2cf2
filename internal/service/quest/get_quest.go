package quest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

// GetQuest returns a single quest. Quests are public; no authentication.
func (s *Service) GetQuest(ctx context.Context, questID uuid.UUID) (domain.Quest, error) {
	if questID == uuid.Nil {
		return domain.Quest{}, domain.NewValidationError("quest_id", "required")
	}

	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return domain.Quest{}, fmt.Errorf("get quest: %w", err)
	}

	return q, nil
}
