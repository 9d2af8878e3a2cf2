package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/internal/service/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	GetFeed(ctx context.Context, input activity.FeedInput) ([]domain.ActivityRecord, error)
}

// ActivityHandler serves the caller's activity feed.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type activityResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Kind      string         `json:"kind"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type feedResponse struct {
	Activity []activityResponse `json:"activity"`
}

// Feed handles GET /api/v1/activity.
func (h *ActivityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	var input activity.FeedInput
	params := r.URL.Query()

	if s := params.Get("kind"); s != "" {
		kind := domain.ActivityKind(s)
		input.Kind = &kind
	}
	if s := params.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		input.Limit = n
	}

	records, err := h.svc.GetFeed(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := feedResponse{Activity: make([]activityResponse, 0, len(records))}
	for _, rec := range records {
		resp.Activity = append(resp.Activity, activityResponse{
			ID:        rec.ID.String(),
			UserID:    rec.UserID.String(),
			Kind:      rec.Kind.String(),
			Metadata:  rec.Metadata,
			CreatedAt: rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
