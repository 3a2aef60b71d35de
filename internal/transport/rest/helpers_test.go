package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/transport/middleware"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_mock_test.go -pkg rest . sessionService usageService uploadService taskService analysisService audioCache adminService

const (
	testUserHeader = "X-Test-User"
	testRoleHeader = "X-Test-Role"
	testWorkerKey  = "worker-key"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuth trusts test headers instead of verifying tokens.
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(testUserHeader))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		ctx := ctxutil.WithUserID(r.Context(), id)
		ctx = ctxutil.WithRole(ctx, r.Header.Get(testRoleHeader))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type testDeps struct {
	session  *sessionServiceMock
	usage    *usageServiceMock
	upload   *uploadServiceMock
	task     *taskServiceMock
	analysis *analysisServiceMock
	audio    *audioCacheMock
	admin    *adminServiceMock
}

func newDeps() *testDeps {
	return &testDeps{
		session:  &sessionServiceMock{},
		usage:    &usageServiceMock{},
		upload:   &uploadServiceMock{},
		task:     &taskServiceMock{},
		analysis: &analysisServiceMock{},
		audio:    &audioCacheMock{},
		admin:    &adminServiceMock{},
	}
}

func (d *testDeps) router(t *testing.T) (http.Handler, *AudioHandler) {
	t.Helper()
	log := discardLogger()
	audio := NewAudioHandler(d.audio, context.Background(), log)
	h := NewRouter(Handlers{
		Health:   NewHealthHandler(ping(nil), "test"),
		Account:  NewAccountHandler(d.session, d.usage, log),
		Upload:   NewUploadHandler(d.upload, log),
		Task:     NewTaskHandler(d.task, log),
		Analysis: NewAnalysisHandler(d.analysis, log),
		Audio:    audio,
		Admin:    NewAdminHandler(d.admin, log),
	}, RouterConfig{
		Auth:         fakeAuth,
		WorkerSecret: middleware.WorkerSecret(testWorkerKey),
		CORS:         middleware.CORS(config.CORSConfig{AllowedOrigins: "*"}),
		Logger:       log,
	})
	return h, audio
}

type call struct {
	method string
	path   string
	body   any
	user   uuid.UUID
	role   string
	header map[string]string
}

func do(t *testing.T, h http.Handler, c call) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := c.body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(c.method, c.path, body)
	if c.user != uuid.Nil {
		req.Header.Set(testUserHeader, c.user.String())
		req.Header.Set(testRoleHeader, c.role)
	}
	for k, v := range c.header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}
