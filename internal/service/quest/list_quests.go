package quest

import (
	"context"
	"fmt"

	"github.com/questlinehq/questline-backend/internal/domain"
)

const defaultListLimit = 50

// ListQuests returns quests matching the filter, newest first. The listing is
// public; no authentication.
func (s *Service) ListQuests(ctx context.Context, input ListQuestsInput) ([]domain.Quest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.QuestFilter{
		Status:    input.Status,
		Type:      input.Type,
		CreatorID: input.CreatorID,
		Limit:     input.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}

	quests, err := s.quests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}

	return quests, nil
}
