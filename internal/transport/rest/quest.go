package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/internal/service/quest"
)

// questService defines the minimal interface needed by QuestHandler.
type questService interface {
	CreateQuest(ctx context.Context, input quest.CreateQuestInput) (domain.Quest, error)
	UpdateQuest(ctx context.Context, input quest.UpdateQuestInput) (domain.Quest, error)
	GetQuest(ctx context.Context, questID uuid.UUID) (domain.Quest, error)
	ListQuests(ctx context.Context, input quest.ListQuestsInput) ([]domain.Quest, error)
	JoinQuest(ctx context.Context, input quest.JoinQuestInput) (domain.Participation, error)
	SubmitProof(ctx context.Context, input quest.SubmitProofInput) (domain.Participation, error)
	VerifyQuest(ctx context.Context, input quest.VerifyQuestInput) (domain.Participation, error)
	ListParticipants(ctx context.Context, input quest.ListParticipantsInput) ([]domain.Participation, error)
}

// QuestHandler serves the quest lifecycle REST endpoints.
type QuestHandler struct {
	svc questService
	log *slog.Logger
}

// NewQuestHandler creates a QuestHandler.
func NewQuestHandler(svc questService, logger *slog.Logger) *QuestHandler {
	return &QuestHandler{svc: svc, log: logger.With("handler", "quest")}
}

type createQuestRequest struct {
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	RewardAmount   int64     `json:"reward_amount"`
	RewardCurrency string    `json:"reward_currency"`
	Type           string    `json:"type"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type updateQuestRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	RewardAmount *int64  `json:"reward_amount"`
}

type submitProofRequest struct {
	Proof string `json:"proof"`
}

type questResponse struct {
	ID             string    `json:"id"`
	CreatorID      string    `json:"creator_id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	RewardAmount   int64     `json:"reward_amount"`
	RewardCurrency string    `json:"reward_currency"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type participationResponse struct {
	QuestID       string    `json:"quest_id"`
	ParticipantID string    `json:"participant_id"`
	Status        string    `json:"status"`
	Proof         *string   `json:"proof,omitempty"`
	JoinedAt      time.Time `json:"joined_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listQuestsResponse struct {
	Quests []questResponse `json:"quests"`
}

type listParticipantsResponse struct {
	Participants []participationResponse `json:"participants"`
}

// Create handles POST /api/v1/quests.
func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorDetail{Code: "VALIDATION", Message: "invalid request body"})
		return
	}

	q, err := h.svc.CreateQuest(r.Context(), quest.CreateQuestInput{
		Title:          req.Title,
		Description:    req.Description,
		RewardAmount:   req.RewardAmount,
		RewardCurrency: req.RewardCurrency,
		Type:           domain.QuestType(req.Type),
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestResponse(q))
}

// List handles GET /api/v1/quests.
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuestsQuery(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	quests, err := h.svc.ListQuests(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := listQuestsResponse{Quests: make([]questResponse, 0, len(quests))}
	for _, q := range quests {
		resp.Quests = append(resp.Quests, toQuestResponse(q))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/quests/{id}.
func (h *QuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	questID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	q, err := h.svc.GetQuest(r.Context(), questID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestResponse(q))
}

// Update handles PATCH /api/v1/quests/{id}.
func (h *QuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	questID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorDetail{Code: "VALIDATION", Message: "invalid request body"})
		return
	}

	q, err := h.svc.UpdateQuest(r.Context(), quest.UpdateQuestInput{
		QuestID:      questID,
		Title:        req.Title,
		Description:  req.Description,
		RewardAmount: req.RewardAmount,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestResponse(q))
}

// Join handles POST /api/v1/quests/{id}/join.
func (h *QuestHandler) Join(w http.ResponseWriter, r *http.Request) {
	questID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.svc.JoinQuest(r.Context(), quest.JoinQuestInput{QuestID: questID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toParticipationResponse(p))
}

// Submit handles POST /api/v1/quests/{id}/submit.
func (h *QuestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	questID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req submitProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorDetail{Code: "VALIDATION", Message: "invalid request body"})
		return
	}

	p, err := h.svc.SubmitProof(r.Context(), quest.SubmitProofInput{
		QuestID: questID,
		Proof:   req.Proof,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toParticipationResponse(p))
}

// Verify handles POST /api/v1/quests/{id}/participants/{userID}/verify.
func (h *QuestHandler) Verify(w http.ResponseWriter, r *http.Request) {
	questID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	participantID, err := pathUUID(r, "userID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.svc.VerifyQuest(r.Context(), quest.VerifyQuestInput{
		QuestID:       questID,
		ParticipantID: participantID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toParticipationResponse(p))
}

// ListParticipants handles GET /api/v1/quests/{id}/participants.
func (h *QuestHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	questID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	participants, err := h.svc.ListParticipants(r.Context(), quest.ListParticipantsInput{QuestID: questID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := listParticipantsResponse{Participants: make([]participationResponse, 0, len(participants))}
	for _, p := range participants {
		resp.Participants = append(resp.Participants, toParticipationResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseListQuestsQuery(r *http.Request) (quest.ListQuestsInput, error) {
	var input quest.ListQuestsInput
	params := r.URL.Query()

	if s := params.Get("status"); s != "" {
		status := domain.QuestStatus(s)
		input.Status = &status
	}
	if s := params.Get("type"); s != "" {
		questType := domain.QuestType(s)
		input.Type = &questType
	}
	if s := params.Get("creator_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return input, domain.NewValidationError("creator_id", "must be a UUID")
		}
		input.CreatorID = &id
	}
	if s := params.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return input, domain.NewValidationError("limit", "must be an integer")
		}
		input.Limit = n
	}

	return input, nil
}

// pathUUID parses a UUID path segment registered under name.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func toQuestResponse(q domain.Quest) questResponse {
	return questResponse{
		ID:             q.ID.String(),
		CreatorID:      q.CreatorID.String(),
		Title:          q.Title,
		Description:    q.Description,
		RewardAmount:   q.RewardAmount,
		RewardCurrency: q.RewardCurrency,
		Type:           q.Type.String(),
		Status:         q.Status.String(),
		ExpiresAt:      q.ExpiresAt,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func toParticipationResponse(p domain.Participation) participationResponse {
	return participationResponse{
		QuestID:       p.QuestID.String(),
		ParticipantID: p.ParticipantID.String(),
		Status:        p.Status.String(),
		Proof:         p.Proof,
		JoinedAt:      p.JoinedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
