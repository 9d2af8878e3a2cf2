package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// CreateQuest posts a new quest on behalf of the authenticated creator.
// The quest row and its QUEST_CREATED activity record commit together.
func (s *Service) CreateQuest(ctx context.Context, input CreateQuestInput) (domain.Quest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Quest{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Quest{}, err
	}

	params := domain.QuestCreateParams{
		CreatorID:      userID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		RewardAmount:   input.RewardAmount,
		RewardCurrency: strings.ToUpper(strings.TrimSpace(input.RewardCurrency)),
		Type:           input.Type,
		ExpiresAt:      input.ExpiresAt.UTC(),
	}

	var created domain.Quest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.quests.Create(txCtx, params)
		if createErr != nil {
			return fmt.Errorf("create quest: %w", createErr)
		}

		if err := s.activity.Append(txCtx, domain.ActivityRecord{
			UserID: userID,
			Kind:   domain.ActivityKindQuestCreated,
			Metadata: map[string]any{
				"quest_id": created.ID.String(),
				"title":    created.Title,
			},
		}); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Quest{}, err
	}

	s.log.InfoContext(ctx, "quest created",
		slog.String("quest_id", created.ID.String()),
		slog.String("creator_id", userID.String()),
		slog.Int64("reward_amount", created.RewardAmount),
		slog.String("reward_currency", created.RewardCurrency),
	)

	return created, nil
}
