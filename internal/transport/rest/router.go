package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/lexilens-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Account  *AccountHandler
	Upload   *UploadHandler
	Task     *TaskHandler
	Analysis *AnalysisHandler
	Audio    *AudioHandler
	Admin    *AdminHandler
}

// RouterConfig carries the cross-cutting middleware.
type RouterConfig struct {
	Auth         middleware.Middleware // user authentication for /api
	WorkerSecret middleware.Middleware // shared secret for /internal
	CORS         middleware.Middleware
	RateLimit    middleware.Middleware // optional
	Logger       *slog.Logger
}

// NewRouter builds the HTTP handler tree.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	user := func(fn http.HandlerFunc) http.Handler { return cfg.Auth(fn) }
	admin := func(fn http.HandlerFunc) http.Handler { return cfg.Auth(middleware.RequireAdmin(fn)) }

	mux.Handle("GET /api/me", user(h.Account.Me))
	mux.Handle("GET /api/usage", user(h.Account.Usage))
	mux.Handle("GET /api/stats", user(h.Account.Stats))

	mux.Handle("POST /api/uploads", user(h.Upload.Create))

	mux.Handle("POST /api/tasks", user(h.Task.Submit))
	mux.Handle("GET /api/tasks/pending", user(h.Task.Pending))
	mux.Handle("GET /api/tasks/{id}", user(h.Task.Get))
	mux.Handle("POST /internal/tasks/{id}/status", cfg.WorkerSecret(http.HandlerFunc(h.Task.UpdateStatus)))

	mux.Handle("POST /api/analyses", user(h.Analysis.Save))
	mux.Handle("GET /api/analyses", user(h.Analysis.List))
	mux.Handle("GET /api/analyses/{id}", user(h.Analysis.Get))
	mux.Handle("PATCH /api/analyses/{id}", user(h.Analysis.Rename))
	mux.Handle("DELETE /api/analyses/{id}", user(h.Analysis.Delete))

	mux.Handle("GET /api/audio", user(h.Audio.URL))
	mux.Handle("GET /api/audio/play", user(h.Audio.Play))
	mux.Handle("POST /api/audio/prefetch", user(h.Audio.Prefetch))

	mux.Handle("GET /api/admin/users", admin(h.Admin.ListUsers))
	mux.Handle("GET /api/admin/logs", admin(h.Admin.ListLogs))
	mux.Handle("GET /api/admin/flagged", admin(h.Admin.ListFlagged))
	mux.Handle("POST /api/admin/users/{id}/suspend", admin(h.Admin.SuspendUser))
	mux.Handle("POST /api/admin/users/{id}/reactivate", admin(h.Admin.ReactivateUser))
	mux.Handle("POST /api/admin/users/{id}/limit", admin(h.Admin.SetDailyLimit))
	mux.Handle("POST /api/admin/analyses/{id}/flag", admin(h.Admin.FlagAnalysis))
	mux.Handle("POST /api/admin/analyses/{id}/unflag", admin(h.Admin.UnflagAnalysis))
	mux.Handle("DELETE /api/admin/analyses/{id}", admin(h.Admin.DeleteAnalysis))

	// Metrics must sit directly on the mux to see the matched pattern.
	return middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		cfg.CORS,
		cfg.RateLimit,
		middleware.Metrics,
	)(mux)
}
