// Package speech produces downloadable pronunciation audio, synthesizing and
// storing each clip once.
package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const contentType = "audio/mpeg"

type synthesizer interface {
	Synthesize(ctx context.Context, language, text string) ([]byte, error)
}

type objectStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key, contentType string, data []byte) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Service resolves audio URLs for words.
type Service struct {
	log     *slog.Logger
	synth   synthesizer
	storage objectStore
	urlTTL  time.Duration
}

// NewService creates a speech service. When synth or storage is nil every
// call returns a domain.NotConfiguredError.
func NewService(logger *slog.Logger, synth synthesizer, storage objectStore, urlTTL time.Duration) *Service {
	return &Service{
		log:     logger.With("service", "speech"),
		synth:   synth,
		storage: storage,
		urlTTL:  urlTTL,
	}
}

// ObjectKey is the storage key of a word's audio clip.
func ObjectKey(language, word string) string {
	sum := sha256.Sum256([]byte(domain.NormalizeWord(word)))
	return "audio/" + domain.NormalizeLanguage(language) + "/" + hex.EncodeToString(sum[:]) + ".mp3"
}

// AudioURL returns a presigned URL for the word's audio, synthesizing and
// storing the clip first if it does not exist yet.
func (s *Service) AudioURL(ctx context.Context, language, word string) (string, error) {
	if s.synth == nil || s.storage == nil {
		return "", &domain.NotConfiguredError{Service: "speech"}
	}

	language = domain.NormalizeLanguage(language)
	word = domain.NormalizeWord(word)
	if language == "" || word == "" {
		return "", domain.NewValidationError("word", "language and word are required")
	}

	key := ObjectKey(language, word)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("check audio object: %w", err)
	}

	if !exists {
		audio, err := s.synth.Synthesize(ctx, language, word)
		if err != nil {
			return "", fmt.Errorf("synthesize: %w", err)
		}
		if err := s.storage.Put(ctx, key, contentType, audio); err != nil {
			return "", fmt.Errorf("store audio: %w", err)
		}
		s.log.DebugContext(ctx, "audio synthesized",
			slog.String("key", key),
			slog.Int("bytes", len(audio)),
		)
	}

	u, err := s.storage.PresignGet(ctx, key, s.urlTTL)
	if err != nil {
		return "", fmt.Errorf("presign audio: %w", err)
	}
	return u, nil
}
