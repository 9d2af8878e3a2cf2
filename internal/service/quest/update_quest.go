package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// UpdateQuest changes a quest's creator-mutable fields. Only the creator may
// update, and only while the quest is still active; the ownership and status
// guards share the transaction with the write.
func (s *Service) UpdateQuest(ctx context.Context, input UpdateQuestInput) (domain.Quest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Quest{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Quest{}, err
	}

	params := domain.QuestUpdateParams{
		Description:  input.Description,
		RewardAmount: input.RewardAmount,
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}

	var updated domain.Quest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.quests.GetByIDForUpdate(txCtx, input.QuestID)
		if err != nil {
			return fmt.Errorf("get quest: %w", err)
		}

		if q.CreatorID != userID {
			return fmt.Errorf("only the quest creator may update: %w", domain.ErrForbidden)
		}

		if !q.IsActive() {
			return domain.NewStateError(q.Status)
		}

		updated, err = s.quests.Update(txCtx, input.QuestID, params)
		if err != nil {
			return fmt.Errorf("update quest: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Quest{}, err
	}

	s.log.InfoContext(ctx, "quest updated",
		slog.String("quest_id", input.QuestID.String()),
		slog.String("creator_id", userID.String()),
	)

	return updated, nil
}
