package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Speech    SpeechConfig    `yaml:"speech"`
	Usage     UsageConfig     `yaml:"usage"`
	Audio     AudioConfig     `yaml:"audio"`
	Redis     RedisConfig     `yaml:"redis"`
	Queue     QueueConfig     `yaml:"queue"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`

	// Migrations run at startup unless skipped.
	SkipMigrations bool `yaml:"skip_migrations" env:"DATABASE_SKIP_MIGRATIONS"`
}

// AuthConfig holds Supabase token verification settings.
// Either JWTSecret (HS256) or SupabaseURL/JWKSURL (asymmetric keys) must be set.
type AuthConfig struct {
	SupabaseURL  string `yaml:"supabase_url"  env:"AUTH_SUPABASE_URL"`
	JWTSecret    string `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"`
	JWKSURL      string `yaml:"jwks_url"      env:"AUTH_JWKS_URL"`
	Audience     string `yaml:"audience"      env:"AUTH_AUDIENCE"      env-default:"authenticated"`
	WorkerSecret string `yaml:"worker_secret" env:"AUTH_WORKER_SECRET"`
}

// Issuer returns the expected token issuer derived from the Supabase project URL.
func (c AuthConfig) Issuer() string {
	if c.SupabaseURL == "" {
		return ""
	}
	return strings.TrimRight(c.SupabaseURL, "/") + "/auth/v1"
}

// ResolvedJWKSURL returns the configured JWKS URL or the project default.
func (c AuthConfig) ResolvedJWKSURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	if c.SupabaseURL == "" {
		return ""
	}
	return c.Issuer() + "/.well-known/jwks.json"
}

// StorageConfig holds Cloudflare R2 settings.
type StorageConfig struct {
	AccountID       string        `yaml:"account_id"        env:"R2_ACCOUNT_ID"`
	AccessKeyID     string        `yaml:"access_key_id"     env:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string        `yaml:"secret_access_key" env:"R2_SECRET_ACCESS_KEY"`
	Bucket          string        `yaml:"bucket"            env:"R2_BUCKET"`
	Endpoint        string        `yaml:"endpoint"          env:"R2_ENDPOINT"`
	UploadURLTTL    time.Duration `yaml:"upload_url_ttl"    env:"R2_UPLOAD_URL_TTL"    env-default:"5m"`
	DownloadURLTTL  time.Duration `yaml:"download_url_ttl"  env:"R2_DOWNLOAD_URL_TTL"  env-default:"60s"`
}

// Enabled reports whether all credentials required to reach R2 are present.
func (c StorageConfig) Enabled() bool {
	return (c.AccountID != "" || c.Endpoint != "") && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Bucket != ""
}

// ResolvedEndpoint returns the explicit endpoint or the account's R2 endpoint.
func (c StorageConfig) ResolvedEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return "https://" + c.AccountID + ".r2.cloudflarestorage.com"
}

// SpeechConfig holds Azure Speech settings.
type SpeechConfig struct {
	Key      string        `yaml:"key"       env:"AZURE_SPEECH_KEY"`
	Region   string        `yaml:"region"    env:"AZURE_SPEECH_REGION"`
	Voices   string        `yaml:"voices"    env:"AZURE_SPEECH_VOICES"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"AZURE_SPEECH_TOKEN_TTL" env-default:"9m"`
	Timeout  time.Duration `yaml:"timeout"   env:"AZURE_SPEECH_TIMEOUT"   env-default:"10s"`
}

// Enabled reports whether speech synthesis can be used.
func (c SpeechConfig) Enabled() bool {
	return c.Key != "" && c.Region != ""
}

// VoiceOverrides parses Voices ("es=es-ES-ElviraNeural,fr=fr-FR-DeniseNeural")
// into a language -> voice map. Malformed pairs are skipped.
func (c SpeechConfig) VoiceOverrides() map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(c.Voices, ",") {
		lang, voice, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || lang == "" || voice == "" {
			continue
		}
		out[strings.TrimSpace(lang)] = strings.TrimSpace(voice)
	}
	return out
}

// UsageConfig holds daily quota settings.
type UsageConfig struct {
	DefaultDailyLimit int `yaml:"default_daily_limit" env:"USAGE_DEFAULT_DAILY_LIMIT" env-default:"10"`
	RetentionDays     int `yaml:"retention_days"      env:"USAGE_RETENTION_DAYS"      env-default:"90"`
}

// AudioConfig holds audio cache and prefetch settings.
type AudioConfig struct {
	Concurrency      int           `yaml:"concurrency"        env:"AUDIO_PREFETCH_CONCURRENCY" env-default:"4"`
	MaxItems         int           `yaml:"max_items"          env:"AUDIO_PREFETCH_MAX_ITEMS"   env-default:"20"`
	URLCacheTTL      time.Duration `yaml:"url_cache_ttl"      env:"AUDIO_URL_CACHE_TTL"        env-default:"45s"`
	URLCacheSize     int64         `yaml:"url_cache_size"     env:"AUDIO_URL_CACHE_SIZE"       env-default:"10000"`
	BytesTTL         time.Duration `yaml:"bytes_ttl"          env:"AUDIO_BYTES_TTL"            env-default:"24h"`
	MaxBytesPerClip  int64         `yaml:"max_bytes_per_clip" env:"AUDIO_MAX_BYTES_PER_CLIP"   env-default:"1048576"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout"      env:"AUDIO_FETCH_TIMEOUT"        env-default:"10s"`
	MemoryStoreBytes int64         `yaml:"memory_store_bytes" env:"AUDIO_MEMORY_STORE_BYTES"   env-default:"67108864"`
}

// RedisConfig holds the persistent audio tier connection. Empty Addr
// falls back to an in-process store.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// QueueConfig holds the analysis worker queue settings. Empty QueueURL
// disables dispatch; tasks then wait for an external poller.
type QueueConfig struct {
	QueueURL string `yaml:"queue_url" env:"SQS_QUEUE_URL"`
	Region   string `yaml:"region"    env:"SQS_REGION"    env-default:"us-east-1"`
	Endpoint string `yaml:"endpoint"  env:"SQS_ENDPOINT"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request rate settings.
type RateLimitConfig struct {
	Disabled bool    `yaml:"disabled" env:"RATE_LIMIT_DISABLED"`
	RPS      float64 `yaml:"rps"      env:"RATE_LIMIT_RPS"      env-default:"10"`
	Burst    int     `yaml:"burst"    env:"RATE_LIMIT_BURST"    env-default:"20"`
}
