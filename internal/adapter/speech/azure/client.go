// Package azure synthesizes speech through the Azure Cognitive Services TTS REST API.
package azure

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/lexilens-backend/internal/config"
)

const (
	outputFormat = "audio-24khz-48kbitrate-mono-mp3"
	userAgent    = "lexilens-backend"
	maxAudioSize = 4 << 20
	retryDelay   = 500 * time.Millisecond
)

// Client issues bearer tokens and synthesizes MP3 audio.
type Client struct {
	key        string
	tokenURL   string
	ttsURL     string
	tokenTTL   time.Duration
	voices     map[string]string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// New creates a Client for the configured Azure region.
func New(cfg config.SpeechConfig, logger *slog.Logger) *Client {
	return NewWithURLs(
		fmt.Sprintf("https://%s.api.cognitive.microsoft.com/sts/v1.0/issueToken", cfg.Region),
		fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", cfg.Region),
		cfg, logger,
	)
}

// NewWithURLs creates a Client with custom endpoints (for testing).
func NewWithURLs(tokenURL, ttsURL string, cfg config.SpeechConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 9 * time.Minute
	}
	return &Client{
		key:        cfg.Key,
		tokenURL:   tokenURL,
		ttsURL:     ttsURL,
		tokenTTL:   ttl,
		voices:     cfg.VoiceOverrides(),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "azure_speech"),
		now:        time.Now,
	}
}

// Synthesize returns MP3 bytes of text spoken in the given language.
func (c *Client) Synthesize(ctx context.Context, language, text string) ([]byte, error) {
	voice := VoiceFor(language, c.voices)
	ssml, err := buildSSML(voice, text)
	if err != nil {
		return nil, fmt.Errorf("azure: build ssml: %w", err)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "azure synthesize request",
		slog.String("language", language),
		slog.String("voice", voice.Name),
	)

	resp, err := c.doWithRetry(ctx, "synthesize", func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ttsURL, bytes.NewReader(ssml))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/ssml+xml")
		req.Header.Set("X-Microsoft-OutputFormat", outputFormat)
		req.Header.Set("User-Agent", userAgent)
		return req, nil
	})
	if err != nil {
		c.log.ErrorContext(ctx, "azure synthesize failed", slog.String("language", language), slog.String("error", err.Error()))
		return nil, fmt.Errorf("azure: synthesize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateToken()
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("azure: synthesize: unexpected status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioSize))
	if err != nil {
		return nil, fmt.Errorf("azure: read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("azure: synthesize: empty audio")
	}

	c.log.DebugContext(ctx, "azure synthesize response",
		slog.String("language", language),
		slog.Int("bytes", len(audio)),
	)

	return audio, nil
}

// accessToken returns a cached bearer token, issuing a new one when expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	resp, err := c.doWithRetry(ctx, "issue token", func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
		req.Header.Set("Content-Length", "0")
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("azure: issue token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("azure: issue token: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("azure: read token: %w", err)
	}

	c.token = strings.TrimSpace(string(body))
	c.tokenExpiry = c.now().Add(c.tokenTTL)
	c.log.DebugContext(ctx, "azure token issued", slog.Time("expires_at", c.tokenExpiry))

	return c.token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, op string, newReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "azure retry", slog.String("op", op), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	req, err = newReq()
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.httpClient.Do(req)
}

type ssmlSpeak struct {
	XMLName xml.Name  `xml:"speak"`
	Version string    `xml:"version,attr"`
	Lang    string    `xml:"xml:lang,attr"`
	Voice   ssmlVoice `xml:"voice"`
}

type ssmlVoice struct {
	Lang string `xml:"xml:lang,attr"`
	Name string `xml:"name,attr"`
	Text string `xml:",chardata"`
}

func buildSSML(v Voice, text string) ([]byte, error) {
	return xml.Marshal(ssmlSpeak{
		Version: "1.0",
		Lang:    v.Locale,
		Voice:   ssmlVoice{Lang: v.Locale, Name: v.Name, Text: text},
	})
}
