package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/heartmarshall/lexilens-backend/internal/audiocache"
	"github.com/heartmarshall/lexilens-backend/internal/validate"
)

type audioCache interface {
	ResolveURL(ctx context.Context, language, word string) (string, error)
	Audio(ctx context.Context, language, word string) ([]byte, error)
	Prefetch(ctx context.Context, language string, words []string, opts audiocache.PrefetchOptions) audiocache.PrefetchResult
}

// AudioHandler serves pronunciation audio. Prefetches run in the background
// on base, which lives as long as the server.
type AudioHandler struct {
	cache audioCache
	base  context.Context
	log   *slog.Logger
	wg    sync.WaitGroup
}

// NewAudioHandler creates an AudioHandler. Cancelling base stops scheduling
// of background prefetch work.
func NewAudioHandler(cache audioCache, base context.Context, logger *slog.Logger) *AudioHandler {
	return &AudioHandler{cache: cache, base: base, log: logger.With("handler", "audio")}
}

type audioURLResponse struct {
	URL string `json:"url"`
}

type prefetchRequest struct {
	Language string   `json:"language" validate:"required,language"`
	Words    []string `json:"words" validate:"required,min=1,max=100,dive,notblank,max=100"`
}

type prefetchResponse struct {
	Scheduled int `json:"scheduled"`
}

// URL handles GET /api/audio?lang=&word=.
func (h *AudioHandler) URL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	u, err := h.cache.ResolveURL(r.Context(), q.Get("lang"), q.Get("word"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, audioURLResponse{URL: u})
}

// Play handles GET /api/audio/play?lang=&word= and returns MP3 bytes.
func (h *AudioHandler) Play(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data, err := h.cache.Audio(r.Context(), q.Get("lang"), q.Get("word"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// Prefetch handles POST /api/audio/prefetch. It returns immediately.
func (h *AudioHandler) Prefetch(w http.ResponseWriter, r *http.Request) {
	var req prefetchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		res := h.cache.Prefetch(h.base, req.Language, req.Words, audiocache.PrefetchOptions{})
		h.log.Debug("prefetch finished",
			slog.String("language", req.Language),
			slog.Int("requested", res.Requested),
			slog.Int("fetched", res.Fetched),
			slog.Int("skipped", res.Skipped),
			slog.Int("failed", res.Failed),
		)
	}()

	writeJSON(w, http.StatusAccepted, prefetchResponse{Scheduled: len(req.Words)})
}

// Wait blocks until background prefetches have returned.
func (h *AudioHandler) Wait() {
	h.wg.Wait()
}
