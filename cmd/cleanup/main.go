// Command cleanup purges daily usage rows older than the configured
// retention period and fails analysis tasks that never reached a terminal
// state. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	taskrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/task"
	usagerepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/usage"
	"github.com/heartmarshall/lexilens-backend/internal/app"
	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/service/task"
	"github.com/heartmarshall/lexilens-backend/internal/service/usage"
)

func main() {
	staleAfter := flag.Duration("stale-after", 30*time.Minute, "fail pending tasks older than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	usageRepo := usagerepo.New(pool)

	usageSvc := usage.NewService(logger, usageRepo, usageRepo, tx, cfg.Usage.DefaultDailyLimit)
	purged, err := usageSvc.PurgeBefore(ctx, cfg.Usage.RetentionDays)
	if err != nil {
		logger.Error("usage purge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	taskSvc := task.NewService(logger, taskrepo.New(pool), usageSvc, nil, nil, tx, 0)
	failed, err := taskSvc.FailStale(ctx, time.Now(), *staleAfter)
	if err != nil {
		logger.Error("stale task sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int64("usage_rows_purged", purged),
		slog.Int64("tasks_failed", failed),
		slog.Int("retention_days", cfg.Usage.RetentionDays),
	)
}
