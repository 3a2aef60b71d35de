package audiocache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// urlMemo is the in-memory "language:word" -> URL tier.
type urlMemo struct {
	client *ristretto.Cache
	ttl    time.Duration
}

func newURLMemo(size int64, ttl time.Duration) (*urlMemo, error) {
	if size <= 0 {
		size = 10_000
	}
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create url memo: %w", err)
	}
	return &urlMemo{client: client, ttl: ttl}, nil
}

func (m *urlMemo) get(key string) (string, bool) {
	if m.ttl <= 0 {
		return "", false
	}
	v, ok := m.client.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// set stores the URL and waits for the write to become visible.
func (m *urlMemo) set(key, u string) {
	if m.ttl <= 0 {
		return
	}
	if m.client.SetWithTTL(key, u, 1, m.ttl) {
		m.client.Wait()
	}
}

func (m *urlMemo) close() {
	m.client.Close()
}
