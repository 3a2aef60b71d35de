package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" && c.Auth.ResolvedJWKSURL() == "" {
		return fmt.Errorf("auth: jwt_secret or supabase_url must be set")
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Usage.DefaultDailyLimit <= 0 {
		return fmt.Errorf("usage.default_daily_limit must be > 0 (got %d)", c.Usage.DefaultDailyLimit)
	}
	if c.Usage.RetentionDays <= 0 {
		return fmt.Errorf("usage.retention_days must be > 0 (got %d)", c.Usage.RetentionDays)
	}

	if err := c.Audio.validate(c.Storage); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	if !c.RateLimit.Disabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rps and burst must be > 0")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AudioConfig) validate(storage StorageConfig) error {
	if a.Concurrency < 1 || a.Concurrency > 32 {
		return fmt.Errorf("concurrency must be in 1..32 (got %d)", a.Concurrency)
	}
	if a.MaxItems < 1 {
		return fmt.Errorf("max_items must be > 0 (got %d)", a.MaxItems)
	}
	if a.URLCacheSize < 1 {
		return fmt.Errorf("url_cache_size must be > 0 (got %d)", a.URLCacheSize)
	}
	if a.MaxBytesPerClip <= 0 || a.MemoryStoreBytes < a.MaxBytesPerClip {
		return fmt.Errorf("memory_store_bytes must hold at least one clip of max_bytes_per_clip (%d)", a.MaxBytesPerClip)
	}
	// Memoized URLs must expire before the presigned URL they point to.
	if a.URLCacheTTL <= 0 || a.URLCacheTTL >= storage.DownloadURLTTL {
		return fmt.Errorf("url_cache_ttl must be > 0 and below storage.download_url_ttl (%s)", storage.DownloadURLTTL)
	}
	return nil
}
