// Package treasury implements the HTTP client for the reward-distribution
// service. The lifecycle calls it at most once per verification and assumes
// no idempotency on the treasury side, so the client never retries.
package treasury

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

const serviceTokenHeader = "X-Service-Token"

// distributeRequest is the wire payload for POST /v1/transfers.
type distributeRequest struct {
	Address   string `json:"address"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

// distributeResponse is the treasury's wire acknowledgement.
type distributeResponse struct {
	TransferID string `json:"transfer_id"`
}

// Client talks to the treasury service over HTTP.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewClient creates a treasury client. The timeout bounds each Distribute
// call independently of the caller's context and must stay shorter than the
// database transaction timeout.
func NewClient(baseURL, serviceToken string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient:   &http.Client{Timeout: timeout},
		log:          logger.With("adapter", "treasury"),
	}
}

// Distribute transfers amount (in the smallest currency unit) to address.
// It performs exactly one HTTP call; any failure wraps domain.ErrRewardDispatch.
func (c *Client) Distribute(ctx context.Context, address string, amount int64, currency string) (*domain.RewardReceipt, error) {
	reference := uuid.New().String()

	body, err := json.Marshal(distributeRequest{
		Address:   address,
		Amount:    amount,
		Currency:  currency,
		Reference: reference,
	})
	if err != nil {
		return nil, fmt.Errorf("treasury: encode request: %w", domain.ErrRewardDispatch)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("treasury: create request: %w", domain.ErrRewardDispatch)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(serviceTokenHeader, c.serviceToken)

	c.log.DebugContext(ctx, "treasury transfer request",
		slog.String("reference", reference),
		slog.Int64("amount", amount),
		slog.String("currency", currency),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("treasury: transfer %s: %v: %w", reference, err, domain.ErrRewardDispatch)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("treasury: transfer %s: unexpected status %d: %w",
			reference, resp.StatusCode, domain.ErrRewardDispatch)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("treasury: transfer %s: read body: %w", reference, domain.ErrRewardDispatch)
	}

	var acked distributeResponse
	if err := json.Unmarshal(respBody, &acked); err != nil {
		return nil, fmt.Errorf("treasury: transfer %s: decode response: %w", reference, domain.ErrRewardDispatch)
	}

	c.log.DebugContext(ctx, "treasury transfer accepted",
		slog.String("reference", reference),
		slog.String("transfer_id", acked.TransferID),
	)

	return &domain.RewardReceipt{TransferID: acked.TransferID}, nil
}
