package quest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// verification carries everything phase one commits that phase two needs.
type verification struct {
	quest         domain.Quest
	participation domain.Participation
	newGrants     []domain.AchievementCode
}

// VerifyQuest lets a quest's creator confirm a participant's submission.
//
// The operation runs in two explicit phases. commitVerification performs the
// transactional part: status write, activity record and achievement grants
// commit or roll back together. dispatchReward then runs unconditionally
// after commit with its own error channel; its outcome never changes the
// result of this call. A verification is reported successful the moment
// phase one commits.
func (s *Service) VerifyQuest(ctx context.Context, input VerifyQuestInput) (domain.Participation, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Participation{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Participation{}, err
	}

	v, err := s.commitVerification(ctx, callerID, input)
	if err != nil {
		return domain.Participation{}, err
	}

	s.log.InfoContext(ctx, "quest verified",
		slog.String("quest_id", input.QuestID.String()),
		slog.String("participant_id", input.ParticipantID.String()),
		slog.String("verifier_id", callerID.String()),
		slog.Int("new_achievements", len(v.newGrants)),
	)

	s.dispatchReward(ctx, v.quest, v.participation)

	return v.participation, nil
}

// commitVerification is phase one: every read guard and every write under a
// single transaction. The FOR UPDATE lock on the participation row serializes
// concurrent verify attempts; the loser re-reads the advanced status and
// fails the CanVerify guard.
func (s *Service) commitVerification(ctx context.Context, callerID uuid.UUID, input VerifyQuestInput) (verification, error) {
	var v verification

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.quests.GetByID(txCtx, input.QuestID)
		if err != nil {
			return fmt.Errorf("get quest: %w", err)
		}

		if q.CreatorID != callerID {
			return fmt.Errorf("only the quest creator may verify: %w", domain.ErrForbidden)
		}

		p, err := s.participations.GetForUpdate(txCtx, input.QuestID, input.ParticipantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("user %s is not a participant: %w", input.ParticipantID, domain.ErrForbidden)
			}
			return fmt.Errorf("get participation: %w", err)
		}

		if !p.CanVerify() {
			return domain.NewStateError(p.Status)
		}

		v.participation, err = s.participations.UpdateStatus(txCtx, input.QuestID, input.ParticipantID,
			domain.ParticipationStatusVerified, nil)
		if err != nil {
			return fmt.Errorf("update participation: %w", err)
		}

		if err := s.activity.Append(txCtx, domain.ActivityRecord{
			UserID: input.ParticipantID,
			Kind:   domain.ActivityKindQuestVerified,
			Metadata: map[string]any{
				"quest_id":    input.QuestID.String(),
				"verifier_id": callerID.String(),
			},
		}); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}

		v.newGrants, err = s.evaluateAchievements(txCtx, input.ParticipantID)
		if err != nil {
			return err
		}

		v.quest = q
		return nil
	})
	if err != nil {
		return verification{}, err
	}

	return v, nil
}

// dispatchReward is phase two: pay out the quest reward for a committed
// verification. Best-effort and at-most-once; every failure path logs with
// enough context to retry by hand and returns without error.
func (s *Service) dispatchReward(ctx context.Context, q domain.Quest, p domain.Participation) {
	// The caller may disconnect right after commit; the payout must not be
	// cut short by that, so detach from cancellation and apply the dispatch
	// timeout alone.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.dispatchTimeout)
	defer cancel()

	participant, err := s.users.GetByID(ctx, p.ParticipantID)
	if err != nil {
		s.log.ErrorContext(ctx, "reward dispatch: load participant failed",
			slog.String("quest_id", q.ID.String()),
			slog.String("participant_id", p.ParticipantID.String()),
			slog.Int64("amount", q.RewardAmount),
			slog.String("error", err.Error()),
		)
		return
	}

	if !participant.HasWalletAddress() {
		s.log.InfoContext(ctx, "reward dispatch skipped: no wallet address",
			slog.String("quest_id", q.ID.String()),
			slog.String("participant_id", p.ParticipantID.String()),
			slog.Int64("amount", q.RewardAmount),
		)
		return
	}

	receipt, err := s.rewards.Distribute(ctx, *participant.WalletAddress, q.RewardAmount, q.RewardCurrency)
	if err != nil {
		s.log.ErrorContext(ctx, "reward dispatch failed",
			slog.String("quest_id", q.ID.String()),
			slog.String("participant_id", p.ParticipantID.String()),
			slog.String("address", *participant.WalletAddress),
			slog.Int64("amount", q.RewardAmount),
			slog.String("currency", q.RewardCurrency),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.InfoContext(ctx, "reward dispatched",
		slog.String("quest_id", q.ID.String()),
		slog.String("participant_id", p.ParticipantID.String()),
		slog.Int64("amount", q.RewardAmount),
		slog.String("currency", q.RewardCurrency),
		slog.String("transfer_id", receipt.TransferID),
	)
}
