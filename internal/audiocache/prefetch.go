package audiocache

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/metrics"
)

// PrefetchOptions overrides the cache defaults for one Prefetch call.
type PrefetchOptions struct {
	MaxItems    int
	Concurrency int
}

// PrefetchResult summarizes a Prefetch call.
type PrefetchResult struct {
	Requested int // distinct words accepted after the MaxItems cut
	Fetched   int
	Skipped   int // already warm or being prefetched by another call
	Failed    int
}

// Prefetch warms both tiers for up to MaxItems distinct words. Words are
// handed to a fixed number of workers through a bounded queue. Failures are
// logged and counted, never returned. Once ctx is done no new words are
// started; words already being fetched run to completion.
func (c *Cache) Prefetch(ctx context.Context, language string, words []string, opts PrefetchOptions) PrefetchResult {
	if opts.MaxItems <= 0 {
		opts.MaxItems = c.opts.MaxItems
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = c.opts.Concurrency
	}

	language = domain.NormalizeLanguage(language)
	words = distinctWords(words, opts.MaxItems)
	res := PrefetchResult{Requested: len(words)}
	if language == "" || len(words) == 0 {
		return res
	}

	workers := min(opts.Concurrency, len(words))
	jobs := make(chan string, workers)

	var fetched, skipped, failed atomic.Int64
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for word := range jobs {
				switch c.prefetchOne(ctx, language, word) {
				case prefetchFetched:
					fetched.Add(1)
				case prefetchSkipped:
					skipped.Add(1)
				default:
					failed.Add(1)
				}
			}
		}()
	}

produce:
	for _, w := range words {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- w:
		case <-ctx.Done():
			break produce
		}
	}
	close(jobs)
	wg.Wait()

	res.Fetched = int(fetched.Load())
	res.Skipped = int(skipped.Load())
	res.Failed = int(failed.Load())
	return res
}

type prefetchOutcome int

const (
	prefetchFetched prefetchOutcome = iota
	prefetchSkipped
	prefetchFailed
)

func (c *Cache) prefetchOne(ctx context.Context, language, word string) prefetchOutcome {
	// A cancelled batch drains its queue without starting new work.
	if ctx.Err() != nil {
		return prefetchSkipped
	}

	key := language + ":" + word
	if _, loaded := c.inflight.LoadOrStore(key, struct{}{}); loaded {
		return prefetchSkipped
	}
	defer c.inflight.Delete(key)

	if _, ok := c.memo.get(key); ok {
		return prefetchSkipped
	}

	if _, err := c.Audio(context.WithoutCancel(ctx), language, word); err != nil {
		c.log.DebugContext(ctx, "prefetch failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return prefetchFailed
	}
	metrics.AudioPrefetchItems.Inc()
	return prefetchFetched
}

func distinctWords(words []string, limit int) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, min(len(words), limit))
	for _, w := range words {
		w = domain.NormalizeWord(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}
