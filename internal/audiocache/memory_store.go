package audiocache

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// MemoryStore is an in-process ByteStore bounded by total bytes. It is used
// when no Redis address is configured.
type MemoryStore struct {
	client *ristretto.Cache
}

// NewMemoryStore creates a MemoryStore holding up to maxBytes of audio.
func NewMemoryStore(maxBytes int64) (*MemoryStore, error) {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100_000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create memory store: %w", err)
	}
	return &MemoryStore{client: client}, nil
}

// Get returns the stored bytes.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.client.Get(key)
	if !ok {
		return nil, false, nil
	}
	data, ok := v.([]byte)
	return data, ok, nil
}

// Set stores data. Items larger than the budget are silently dropped.
func (s *MemoryStore) Set(_ context.Context, key string, data []byte) error {
	if s.client.Set(key, data, int64(len(data))) {
		s.client.Wait()
	}
	return nil
}

// Close releases the store.
func (s *MemoryStore) Close() {
	s.client.Close()
}
