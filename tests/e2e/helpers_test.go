//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	adminlogrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/adminlog"
	analysisrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/analysis"
	taskrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/testhelper"
	usagerepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/usage"
	userrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/lexilens-backend/internal/app"
	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const (
	testJWTSecret    = "test-secret-at-least-32-chars-long!!"
	testWorkerSecret = "worker-secret"
	testDailyLimit   = 3
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// Object storage, the worker queue, and speech synthesis are not configured.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:    testJWTSecret,
			Audience:     "authenticated",
			WorkerSecret: testWorkerSecret,
		},
		Storage: config.StorageConfig{
			UploadURLTTL:   5 * time.Minute,
			DownloadURLTTL: time.Minute,
		},
		Usage: config.UsageConfig{DefaultDailyLimit: testDailyLimit, RetentionDays: 90},
		Audio: config.AudioConfig{
			Concurrency:      2,
			MaxItems:         20,
			URLCacheTTL:      45 * time.Second,
			URLCacheSize:     100,
			MaxBytesPerClip:  1 << 20,
			FetchTimeout:     5 * time.Second,
			MemoryStoreBytes: 8 << 20,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		RateLimit: config.RateLimitConfig{Disabled: true},
	}
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	infra := &app.Infra{
		Pool:      pool,
		Tx:        postgres.NewTxManager(pool),
		Users:     userrepo.New(pool),
		Usage:     usagerepo.New(pool),
		Tasks:     taskrepo.New(pool),
		Analyses:  analysisrepo.New(pool),
		AdminLogs: adminlogrepo.New(pool),
	}

	svc, err := app.NewServices(cfg, infra, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	handler, closeHandler := app.NewHandler(ctx, cfg, infra, svc, logger)
	srv := httptest.NewServer(handler)

	t.Cleanup(func() {
		srv.Close()
		cancel()
		closeHandler()
		svc.Close()
	})

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Identities
// ---------------------------------------------------------------------------

// signToken mints a Supabase-style access token for the user.
func signToken(t *testing.T, id uuid.UUID, email string) string {
	t.Helper()

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   id.String(),
		"email": email,
		"aud":   "authenticated",
		"role":  "authenticated",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// newUser seeds a regular user and returns it with a valid token.
func newUser(t *testing.T, ts *testServer) (domain.User, string) {
	t.Helper()
	u := testhelper.SeedUser(t, ts.Pool)
	return u, signToken(t, u.ID, u.Email)
}

// newAdmin seeds an admin and returns it with a valid token.
func newAdmin(t *testing.T, ts *testServer) (domain.User, string) {
	t.Helper()
	u := testhelper.SeedAdmin(t, ts.Pool)
	return u, signToken(t, u.ID, u.Email)
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// apiRequest sends a JSON request. An empty token sends no Authorization header.
func apiRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// workerRequest posts a status update as the analysis worker.
func workerRequest(t *testing.T, ts *testServer, taskID string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/internal/tasks/"+taskID+"/status", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Worker-Secret", testWorkerSecret)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// expect checks the status code and decodes the body into a map.
func expect(t *testing.T, resp *http.Response, status int) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	require.Equal(t, status, resp.StatusCode)
	if status == http.StatusNoContent {
		return nil
	}

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), "response body should be valid JSON")
	return body
}

// submitTask submits a task for the user's upload key and returns its id.
func submitTask(t *testing.T, ts *testServer, user domain.User, token string) string {
	t.Helper()

	body := expect(t, apiRequest(t, ts, http.MethodPost, "/api/tasks", token, map[string]any{
		"imageKey": domain.ImageKeyPrefix(user.ID) + uuid.NewString() + ".jpg",
		"language": "es",
	}), http.StatusCreated)

	id, ok := body["id"].(string)
	require.True(t, ok, "expected task id")
	return id
}

// completeTask drives a task through analyzing to completed.
func completeTask(t *testing.T, ts *testServer, taskID string) {
	t.Helper()

	expect(t, workerRequest(t, ts, taskID, map[string]any{"status": "analyzing"}), http.StatusOK)
	expect(t, workerRequest(t, ts, taskID, map[string]any{
		"status":      "completed",
		"description": "A cafe menu",
		"vocabulary": []map[string]any{
			{"word": "café", "translation": "coffee"},
			{"word": "leche", "translation": "milk"},
			{"word": "pan", "translation": "bread"},
		},
	}), http.StatusOK)
}
