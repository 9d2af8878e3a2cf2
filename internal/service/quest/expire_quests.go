package quest

import (
	"context"
	"fmt"
	"time"
)

// ExpireQuests marks every ACTIVE quest whose deadline has passed as EXPIRED
// and returns how many rows changed. The in-process worker calls this on an
// interval; the standalone sweeper binary runs the same update via the repo.
func (s *Service) ExpireQuests(ctx context.Context) (int64, error) {
	affected, err := s.quests.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expire due quests: %w", err)
	}

	return affected, nil
}
