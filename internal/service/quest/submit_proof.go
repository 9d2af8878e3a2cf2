package quest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// SubmitProof attaches completion proof to the caller's participation and
// advances it to SUBMITTED. The row lock, the status guard, the write and the
// activity record share one transaction so a concurrent duplicate submission
// cannot race past a stale status read.
func (s *Service) SubmitProof(ctx context.Context, input SubmitProofInput) (domain.Participation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Participation{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Participation{}, err
	}

	var updated domain.Participation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.participations.GetForUpdate(txCtx, input.QuestID, userID)
		if err != nil {
			// No participation row means the caller never joined; that is an
			// access failure, not a lookup failure.
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("not a participant of quest %s: %w", input.QuestID, domain.ErrForbidden)
			}
			return fmt.Errorf("get participation: %w", err)
		}

		if !p.CanSubmit() {
			return domain.NewStateError(p.Status)
		}

		updated, err = s.participations.UpdateStatus(txCtx, input.QuestID, userID,
			domain.ParticipationStatusSubmitted, &input.Proof)
		if err != nil {
			return fmt.Errorf("update participation: %w", err)
		}

		if err := s.activity.Append(txCtx, domain.ActivityRecord{
			UserID: userID,
			Kind:   domain.ActivityKindProofSubmitted,
			Metadata: map[string]any{
				"quest_id": input.QuestID.String(),
			},
		}); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Participation{}, err
	}

	s.log.InfoContext(ctx, "proof submitted",
		slog.String("quest_id", input.QuestID.String()),
		slog.String("participant_id", userID.String()),
	)

	return updated, nil
}
