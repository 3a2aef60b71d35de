// Package audiocache resolves and caches pronunciation audio.
//
// Lookups go through two tiers: an in-memory memo of "language:word" to the
// resolved audio URL, and a byte store keyed by that URL without its query
// string, so re-signed URLs for the same object share one entry. Concurrent
// callers for the same key share one upstream request.
package audiocache

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/metrics"
)

// Resolver turns a word into a downloadable audio URL.
type Resolver interface {
	AudioURL(ctx context.Context, language, word string) (string, error)
}

// Fetcher downloads audio bytes from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// ByteStore is the persistent audio tier.
type ByteStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Options tunes a Cache.
type Options struct {
	// URLTTL bounds how long a resolved URL is reused. Keep it below the
	// lifetime of the URLs the resolver returns.
	URLTTL time.Duration
	// URLCacheSize is the maximum number of memoized URLs.
	URLCacheSize int64
	// Concurrency and MaxItems are the Prefetch defaults.
	Concurrency int
	MaxItems    int
}

const (
	defaultConcurrency = 4
	defaultMaxItems    = 20
)

// Cache is the two-tier audio cache. Create it with New; it holds no
// package-level state.
type Cache struct {
	resolver Resolver
	fetcher  Fetcher
	store    ByteStore
	memo     *urlMemo
	opts     Options
	log      *slog.Logger

	urls     singleflight.Group
	bytes    singleflight.Group
	inflight sync.Map // prefetch keys currently being warmed
}

// New creates a Cache.
func New(resolver Resolver, fetcher Fetcher, store ByteStore, opts Options, logger *slog.Logger) (*Cache, error) {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = defaultMaxItems
	}
	memo, err := newURLMemo(opts.URLCacheSize, opts.URLTTL)
	if err != nil {
		return nil, fmt.Errorf("audiocache: %w", err)
	}
	return &Cache{
		resolver: resolver,
		fetcher:  fetcher,
		store:    store,
		memo:     memo,
		opts:     opts,
		log:      logger.With("component", "audiocache"),
	}, nil
}

// Close releases the in-memory tier.
func (c *Cache) Close() {
	c.memo.close()
}

// Key returns the memo key for a word in a language.
func Key(language, word string) string {
	return domain.NormalizeLanguage(language) + ":" + domain.NormalizeWord(word)
}

// ResolveURL returns the audio URL for a word, from the memo when possible.
func (c *Cache) ResolveURL(ctx context.Context, language, word string) (string, error) {
	language = domain.NormalizeLanguage(language)
	word = domain.NormalizeWord(word)
	if language == "" || word == "" {
		return "", domain.NewValidationError("word", "language and word are required")
	}

	key := language + ":" + word
	if u, ok := c.memo.get(key); ok {
		metrics.AudioCacheLookups.WithLabelValues("url", "hit").Inc()
		return u, nil
	}
	metrics.AudioCacheLookups.WithLabelValues("url", "miss").Inc()

	return c.resolve(ctx, key, language, word)
}

// resolve runs one resolver call per key. The memo is checked again inside
// the flight: a caller that missed it may arrive after the previous flight
// for the same key has already stored the URL.
func (c *Cache) resolve(ctx context.Context, key, language, word string) (string, error) {
	v, err, _ := c.urls.Do(key, func() (any, error) {
		if u, ok := c.memo.get(key); ok {
			return u, nil
		}
		// Shared by every waiting caller; must not die with the first one.
		u, err := c.resolver.AudioURL(context.WithoutCancel(ctx), language, word)
		if err != nil {
			metrics.AudioFetches.WithLabelValues("resolve", "error").Inc()
			return "", err
		}
		metrics.AudioFetches.WithLabelValues("resolve", "ok").Inc()
		c.memo.set(key, u)
		return u, nil
	})
	if err != nil {
		return "", fmt.Errorf("resolve audio %s: %w", key, err)
	}
	return v.(string), nil
}

// Audio returns the audio bytes for a word, downloading them at most once
// per stored object.
func (c *Cache) Audio(ctx context.Context, language, word string) ([]byte, error) {
	u, err := c.ResolveURL(ctx, language, word)
	if err != nil {
		return nil, err
	}
	return c.bytesFor(ctx, u)
}

func (c *Cache) bytesFor(ctx context.Context, rawURL string) ([]byte, error) {
	key := StoreKey(rawURL)

	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		// A broken persistent tier degrades to direct downloads.
		c.log.WarnContext(ctx, "audio store get failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if ok {
		metrics.AudioCacheLookups.WithLabelValues("bytes", "hit").Inc()
		return data, nil
	}
	metrics.AudioCacheLookups.WithLabelValues("bytes", "miss").Inc()

	return c.download(ctx, key, rawURL)
}

// download fetches rawURL once per store key and writes the bytes through
// to the store, which is consulted again inside the flight.
func (c *Cache) download(ctx context.Context, key, rawURL string) ([]byte, error) {
	v, err, _ := c.bytes.Do(key, func() (any, error) {
		shared := context.WithoutCancel(ctx)
		if data, ok, err := c.store.Get(shared, key); err == nil && ok {
			return data, nil
		}
		data, err := c.fetcher.Fetch(shared, rawURL)
		if err != nil {
			metrics.AudioFetches.WithLabelValues("download", "error").Inc()
			return nil, err
		}
		metrics.AudioFetches.WithLabelValues("download", "ok").Inc()
		if err := c.store.Set(shared, key, data); err != nil {
			c.log.WarnContext(ctx, "audio store set failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return data, nil
	})
	if err != nil {
		return nil, fmt.Errorf("download audio: %w", err)
	}
	return v.([]byte), nil
}

// StoreKey is the byte-store key for an audio URL: the URL without query or fragment.
func StoreKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
