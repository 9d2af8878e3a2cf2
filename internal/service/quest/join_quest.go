package quest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// JoinQuest enrolls the authenticated user as a participant of a quest.
//
// There is no transaction here: the participations primary key is the
// duplicate-join guard, and a unique violation surfaces as ErrConflict so
// callers can answer "already joined" distinctly from other failures.
func (s *Service) JoinQuest(ctx context.Context, input JoinQuestInput) (domain.Participation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Participation{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Participation{}, err
	}

	q, err := s.quests.GetByID(ctx, input.QuestID)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("get quest: %w", err)
	}

	if !q.IsActive() {
		return domain.Participation{}, domain.NewStateError(q.Status)
	}
	if q.IsExpired(time.Now()) {
		// The expiry sweep may not have flipped the row yet; the deadline
		// is authoritative either way.
		return domain.Participation{}, domain.NewStateError(domain.QuestStatusExpired)
	}

	if q.CreatorID == userID {
		return domain.Participation{}, fmt.Errorf("creator cannot join own quest: %w", domain.ErrInvalidOperation)
	}

	p, err := s.participations.Create(ctx, input.QuestID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Participation{}, fmt.Errorf("already joined quest %s: %w", input.QuestID, domain.ErrConflict)
		}
		return domain.Participation{}, fmt.Errorf("create participation: %w", err)
	}

	s.log.InfoContext(ctx, "quest joined",
		slog.String("quest_id", input.QuestID.String()),
		slog.String("participant_id", userID.String()),
	)

	return p, nil
}
