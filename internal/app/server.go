package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/transport/middleware"
	"github.com/heartmarshall/lexilens-backend/internal/transport/rest"
)

// NewHandler assembles the HTTP handler. Background audio prefetches run on
// base. The returned func stops the rate limiter and waits for prefetches
// still in flight; call it after the server has stopped accepting requests.
func NewHandler(base context.Context, cfg *config.Config, infra *Infra, svc *Services, logger *slog.Logger) (http.Handler, func()) {
	var (
		rateLimit middleware.Middleware
		limiter   *middleware.RateLimiter
	)
	if !cfg.RateLimit.Disabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, time.Minute)
		rateLimit = limiter.Limit
	}

	audio := rest.NewAudioHandler(svc.AudioCache, base, logger)

	health := rest.NewHealthHandler(infra.Pool, BuildVersion())
	if infra.Redis != nil {
		health.WithCheck("redis", rest.PingFunc(func(ctx context.Context) error {
			return infra.Redis.Ping(ctx).Err()
		}))
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:   health,
		Account:  rest.NewAccountHandler(svc.Session, svc.Usage, logger),
		Upload:   rest.NewUploadHandler(svc.Upload, logger),
		Task:     rest.NewTaskHandler(svc.Task, logger),
		Analysis: rest.NewAnalysisHandler(svc.Analysis, logger),
		Audio:    audio,
		Admin:    rest.NewAdminHandler(svc.Admin, logger),
	}, rest.RouterConfig{
		Auth:         middleware.Auth(svc.Verifier, svc.Session, logger),
		WorkerSecret: middleware.WorkerSecret(cfg.Auth.WorkerSecret),
		CORS:         middleware.CORS(cfg.CORS),
		RateLimit:    rateLimit,
		Logger:       logger,
	})

	return handler, func() {
		if limiter != nil {
			limiter.Stop()
		}
		audio.Wait()
	}
}
