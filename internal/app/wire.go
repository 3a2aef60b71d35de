package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/lexilens-backend/internal/adapter/cache/redis"
	"github.com/heartmarshall/lexilens-backend/internal/adapter/postgres"
	adminlogrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/adminlog"
	analysisrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/analysis"
	taskrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/task"
	usagerepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/usage"
	userrepo "github.com/heartmarshall/lexilens-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/lexilens-backend/internal/adapter/queue/sqs"
	"github.com/heartmarshall/lexilens-backend/internal/adapter/speech/azure"
	"github.com/heartmarshall/lexilens-backend/internal/adapter/storage/r2"
	"github.com/heartmarshall/lexilens-backend/internal/audiocache"
	"github.com/heartmarshall/lexilens-backend/internal/auth"
	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/service/admin"
	"github.com/heartmarshall/lexilens-backend/internal/service/analysis"
	"github.com/heartmarshall/lexilens-backend/internal/service/session"
	"github.com/heartmarshall/lexilens-backend/internal/service/speech"
	"github.com/heartmarshall/lexilens-backend/internal/service/task"
	"github.com/heartmarshall/lexilens-backend/internal/service/upload"
	"github.com/heartmarshall/lexilens-backend/internal/service/usage"
	"github.com/heartmarshall/lexilens-backend/migrations"
)

// objectStorage is the full surface of the object store. A nil value means
// storage is not configured; services report that per operation.
type objectStorage interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Put(ctx context.Context, key, contentType string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

type jobQueue interface {
	Dispatch(ctx context.Context, job domain.AnalysisJob) error
}

type synthesizer interface {
	Synthesize(ctx context.Context, language, text string) ([]byte, error)
}

// Infra holds connections and repositories shared by the server and the
// maintenance commands.
type Infra struct {
	Pool  *pgxpool.Pool
	Tx    *postgres.TxManager
	Redis *goredis.Client

	Users     *userrepo.Repo
	Usage     *usagerepo.Repo
	Tasks     *taskrepo.Repo
	Analyses  *analysisrepo.Repo
	AdminLogs *adminlogrepo.Repo

	Storage objectStorage
	Queue   jobQueue
	Synth   synthesizer

	log *slog.Logger
}

// OpenInfra connects to PostgreSQL and every configured external service.
// Optional services that are not configured stay nil.
func OpenInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
		slog.Int("min_conns", int(cfg.Database.MinConns)),
	)

	infra := &Infra{
		Pool:      pool,
		Tx:        postgres.NewTxManager(pool),
		Users:     userrepo.New(pool),
		Usage:     usagerepo.New(pool),
		Tasks:     taskrepo.New(pool),
		Analyses:  analysisrepo.New(pool),
		AdminLogs: adminlogrepo.New(pool),
		log:       logger,
	}

	if cfg.Storage.Enabled() {
		store, err := r2.New(ctx, cfg.Storage, logger)
		if err != nil {
			infra.Close()
			return nil, fmt.Errorf("storage: %w", err)
		}
		infra.Storage = store
	} else {
		logger.Warn("object storage not configured; uploads and audio are disabled")
	}

	if cfg.Queue.QueueURL != "" {
		queue, err := sqs.New(ctx, cfg.Queue, logger)
		if err != nil {
			infra.Close()
			return nil, fmt.Errorf("queue: %w", err)
		}
		infra.Queue = queue
	} else {
		logger.Warn("queue not configured; tasks wait for an external worker to poll")
	}

	if cfg.Speech.Enabled() {
		infra.Synth = azure.New(cfg.Speech, logger)
	} else {
		logger.Warn("speech synthesis not configured; audio is disabled")
	}

	if cfg.Redis.Addr != "" {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = client
	}

	return infra, nil
}

// Migrate applies the embedded schema migrations.
func (i *Infra) Migrate(ctx context.Context) error {
	if err := postgres.Migrate(ctx, i.Pool, migrations.FS, i.log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases every connection.
func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	i.Pool.Close()
}

// Services is the application service graph.
type Services struct {
	Verifier   *auth.Verifier
	Session    *session.Service
	Usage      *usage.Service
	Upload     *upload.Service
	Task       *task.Service
	Analysis   *analysis.Service
	Admin      *admin.Service
	Speech     *speech.Service
	AudioCache *audiocache.Cache

	closers []func()
}

// NewServices builds the services on top of infra.
func NewServices(cfg *config.Config, infra *Infra, logger *slog.Logger) (*Services, error) {
	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	usageSvc := usage.NewService(logger, infra.Usage, infra.Usage, infra.Tx, cfg.Usage.DefaultDailyLimit)
	analysisSvc := analysis.NewService(logger, infra.Analyses, infra.Tasks, usageSvc, infra.Storage, infra.Tx, cfg.Storage.DownloadURLTTL)
	speechSvc := speech.NewService(logger, infra.Synth, infra.Storage, cfg.Storage.DownloadURLTTL)

	s := &Services{
		Verifier: verifier,
		Session:  session.NewService(logger, infra.Users),
		Usage:    usageSvc,
		Upload:   upload.NewService(logger, infra.Storage, cfg.Storage.UploadURLTTL),
		Task:     task.NewService(logger, infra.Tasks, usageSvc, infra.Queue, infra.Storage, infra.Tx, cfg.Storage.DownloadURLTTL),
		Analysis: analysisSvc,
		Admin:    admin.NewService(logger, infra.Users, infra.Analyses, infra.Usage, infra.AdminLogs, analysisSvc, infra.Tx),
		Speech:   speechSvc,
	}

	var store audiocache.ByteStore
	if infra.Redis != nil {
		store = redis.New(infra.Redis, cfg.Audio.BytesTTL)
		logger.Info("audio byte tier on redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		mem, err := audiocache.NewMemoryStore(cfg.Audio.MemoryStoreBytes)
		if err != nil {
			return nil, fmt.Errorf("audio store: %w", err)
		}
		s.closers = append(s.closers, mem.Close)
		store = mem
		logger.Info("audio byte tier in memory", slog.Int64("max_bytes", cfg.Audio.MemoryStoreBytes))
	}

	cache, err := audiocache.New(
		speechSvc,
		audiocache.NewHTTPFetcher(cfg.Audio.FetchTimeout, cfg.Audio.MaxBytesPerClip),
		store,
		audiocache.Options{
			URLTTL:       cfg.Audio.URLCacheTTL,
			URLCacheSize: cfg.Audio.URLCacheSize,
			Concurrency:  cfg.Audio.Concurrency,
			MaxItems:     cfg.Audio.MaxItems,
		},
		logger,
	)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.AudioCache = cache
	s.closers = append(s.closers, cache.Close)

	return s, nil
}

// Close releases in-process caches.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}
