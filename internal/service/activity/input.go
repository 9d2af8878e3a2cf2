package activity

import (
	"github.com/questlinehq/questline-backend/internal/domain"
)

const maxFeedLimit = 100

// FeedInput holds the filter parameters for reading the caller's feed.
type FeedInput struct {
	Kind  *domain.ActivityKind
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *FeedInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown activity kind"})
	}
	if i.Limit < 0 || i.Limit > maxFeedLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
