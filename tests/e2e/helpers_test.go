//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/questlinehq/questline-backend/internal/adapter/postgres"
	"github.com/questlinehq/questline-backend/internal/adapter/postgres/achievement"
	activityrepo "github.com/questlinehq/questline-backend/internal/adapter/postgres/activity"
	"github.com/questlinehq/questline-backend/internal/adapter/postgres/participation"
	questrepo "github.com/questlinehq/questline-backend/internal/adapter/postgres/quest"
	"github.com/questlinehq/questline-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/questlinehq/questline-backend/internal/adapter/postgres/user"
	"github.com/questlinehq/questline-backend/internal/adapter/treasury"
	"github.com/questlinehq/questline-backend/internal/auth"
	"github.com/questlinehq/questline-backend/internal/config"
	activitysvc "github.com/questlinehq/questline-backend/internal/service/activity"
	questsvc "github.com/questlinehq/questline-backend/internal/service/quest"
	"github.com/questlinehq/questline-backend/internal/transport/middleware"
	"github.com/questlinehq/questline-backend/internal/transport/rest"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "questline-test"
)

// ---------------------------------------------------------------------------
// Stub treasury: records every transfer the backend dispatches.
// ---------------------------------------------------------------------------

type transfer struct {
	Address   string `json:"address"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

type stubTreasury struct {
	mu        sync.Mutex
	transfers []transfer
	failing   bool
}

func (s *stubTreasury) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/v1/transfers" {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	failing := s.failing
	s.mu.Unlock()
	if failing {
		http.Error(w, "treasury unavailable", http.StatusBadGateway)
		return
	}

	var req transfer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.transfers = append(s.transfers, req)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"transfer_id": %q}`, uuid.New())
}

// Transfers returns a copy of everything dispatched so far.
func (s *stubTreasury) Transfers() []transfer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]transfer(nil), s.transfers...)
}

// SetFailing makes subsequent transfer calls return 502.
func (s *stubTreasury) SetFailing(failing bool) {
	s.mu.Lock()
	s.failing = failing
	s.mu.Unlock()
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	Treasury *stubTreasury
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a stub treasury.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool, 10*time.Second)

	// 3. Repositories.
	questRepo := questrepo.New(pool)
	participationRepo := participation.New(pool)
	achievementRepo := achievement.New(pool)
	activityRepo := activityrepo.New(pool)
	userRepo := userrepo.New(pool)

	// 4. Stub treasury behind a real HTTP server, so the flow exercises the
	// production client including its wire format.
	stub := &stubTreasury{}
	treasurySrv := httptest.NewServer(stub)
	t.Cleanup(treasurySrv.Close)
	treasuryClient := treasury.NewClient(treasurySrv.URL, "test-service-token", 5*time.Second, logger)

	// 5. Services.
	questService := questsvc.NewService(
		logger, questRepo, participationRepo, achievementRepo, activityRepo,
		userRepo, treasuryClient, txm, 5*time.Second,
	)
	activityService := activitysvc.NewService(logger, activityRepo)

	// 6. Token verifier with a test secret (>= 32 chars).
	verifier := auth.NewTokenVerifier(testJWTSecret, testJWTIssuer)

	// 7. Router with the production middleware chain.
	router := rest.NewRouter(rest.RouterDeps{
		Health:   rest.NewHealthHandler(pool, "test-version"),
		Quests:   rest.NewQuestHandler(questService, logger),
		Activity: rest.NewActivityHandler(activityService, logger),
		APIChain: middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins:   "*",
				AllowedMethods:   "GET,POST,PATCH,OPTIONS",
				AllowedHeaders:   "Authorization,Content-Type",
				AllowCredentials: true,
				MaxAge:           86400,
			}),
			middleware.Auth(verifier),
		),
	})

	// 8. httptest server.
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		Treasury: stub,
	}
}

// ---------------------------------------------------------------------------
// Request helper.
// ---------------------------------------------------------------------------

// do sends a JSON request and returns status + decoded body. body may be nil;
// token "" sends no Authorization header.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		rdr = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err, "create request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read response body")

	// Middleware rejections (bad token, rate limit) come back as plain text;
	// only decode what the handlers actually serialized.
	var result map[string]any
	if len(raw) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &result), "decode response: %s", raw)
	}
	return resp.StatusCode, result
}

// errorCode digs the error code out of the standard error envelope.
func errorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errObj, ok := result["error"].(map[string]any)
	require.True(t, ok, "expected error object, got %v", result)
	code, ok := errObj["code"].(string)
	require.True(t, ok, "expected code string in error")
	return code
}

// errorCurrentStatus extracts current_status from an INVALID_STATE envelope.
func errorCurrentStatus(t *testing.T, result map[string]any) string {
	t.Helper()
	errObj, ok := result["error"].(map[string]any)
	require.True(t, ok, "expected error object, got %v", result)
	status, _ := errObj["current_status"].(string)
	return status
}

// ---------------------------------------------------------------------------
// Seed helpers. Users are owned by the identity platform, so tests insert
// them directly; quests go through the API like any client would.
// ---------------------------------------------------------------------------

// mintToken signs an HS256 access token the way the identity platform does.
func mintToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    testJWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err, "sign token")
	return token
}

// createTestUser inserts a user row and returns its ID plus a valid token.
// walletAddress may be nil for users without a payout address.
func createTestUser(t *testing.T, ts *testServer, walletAddress *string) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	username := "user-" + userID.String()[:8]

	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, username, wallet_address) VALUES ($1, $2, $3)`,
		userID, username, walletAddress,
	)
	require.NoError(t, err, "insert test user")

	return userID, mintToken(t, userID)
}

func strptr(s string) *string { return &s }

// createQuest posts a quest through the API and returns its ID.
func createQuest(t *testing.T, ts *testServer, token string, amount int64, currency string) uuid.UUID {
	t.Helper()

	status, result := ts.do(t, http.MethodPost, "/api/v1/quests", map[string]any{
		"title":           "Photograph the harbor mural",
		"description":     "Snap the mural at pier 7 and upload the shot.",
		"reward_amount":   amount,
		"reward_currency": currency,
		"type":            "SOCIAL",
		"expires_at":      time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
	}, token)
	require.Equal(t, http.StatusCreated, status, "create quest: %v", result)

	id, err := uuid.Parse(result["id"].(string))
	require.NoError(t, err, "parse quest id")
	return id
}

// markQuestExpired flips a quest's stored status directly, standing in for
// the expiry sweep.
func markQuestExpired(t *testing.T, ts *testServer, questID uuid.UUID) {
	t.Helper()

	_, err := ts.Pool.Exec(context.Background(),
		`UPDATE quests SET status = 'EXPIRED', updated_at = now() WHERE id = $1`, questID)
	require.NoError(t, err, "mark quest expired")
}
