package activity

import (
	"context"
	"fmt"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

const defaultFeedLimit = 50

// GetFeed returns the authenticated user's activity records, newest first.
// Users only ever see their own feed; there is no cross-user read.
func (s *Service) GetFeed(ctx context.Context, input FeedInput) ([]domain.ActivityRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ActivityFilter{
		Kind:  input.Kind,
		Limit: input.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = defaultFeedLimit
	}

	records, err := s.activity.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	return records, nil
}
