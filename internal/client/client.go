// Package client is a small Go client for the LexiLens HTTP API, used by the
// command-line tool and by integration checks.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// Client calls the API on behalf of one user.
type Client struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	log          *slog.Logger
	pollInterval time.Duration
}

// New creates a Client. token is a Supabase access token.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		token:        token,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		log:          logger.With("component", "client"),
		pollInterval: DefaultPollInterval,
	}
}

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Fields  []domain.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	return e.Status >= 500 || e.Status == http.StatusTooManyRequests
}

// Task mirrors the API task representation.
type Task struct {
	ID              uuid.UUID               `json:"id"`
	Status          domain.TaskStatus       `json:"status"`
	ImageKey        string                  `json:"imageKey"`
	ImageURL        *string                 `json:"imageUrl"`
	Language        string                  `json:"language"`
	Description     *string                 `json:"description"`
	Vocabulary      []domain.VocabularyItem `json:"vocabulary"`
	SavedAnalysisID *uuid.UUID              `json:"savedAnalysisId"`
	ErrorMessage    *string                 `json:"errorMessage"`
}

// UploadTicket is a presigned image upload target.
type UploadTicket struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Analysis mirrors the API saved analysis representation.
type Analysis struct {
	ID         uuid.UUID               `json:"id"`
	Title      string                  `json:"title"`
	Language   string                  `json:"language"`
	Vocabulary []domain.VocabularyItem `json:"vocabulary"`
}

// CreateUpload requests a presigned URL for an image of contentType.
func (c *Client) CreateUpload(ctx context.Context, contentType string) (*UploadTicket, error) {
	var out UploadTicket
	if err := c.do(ctx, http.MethodPost, "/api/uploads", map[string]string{"contentType": contentType}, &out); err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}
	return &out, nil
}

// PutObject uploads body to a presigned URL.
func (c *Client) PutObject(ctx context.Context, uploadURL, contentType string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("put object: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("put object: %w", &APIError{Status: resp.StatusCode, Message: resp.Status})
	}
	return nil
}

// SubmitTask starts an analysis of an uploaded image.
func (c *Client) SubmitTask(ctx context.Context, imageKey, language string, description *string) (*Task, error) {
	body := map[string]any{"imageKey": imageKey, "language": language}
	if description != nil {
		body["description"] = *description
	}

	var out Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &out); err != nil {
		return nil, fmt.Errorf("submit task: %w", err)
	}
	return &out, nil
}

// GetTask fetches one task.
func (c *Client) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id.String(), nil, &out); err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return &out, nil
}

// SaveAnalysis keeps a completed task's lesson.
func (c *Client) SaveAnalysis(ctx context.Context, taskID uuid.UUID, title *string) (*Analysis, error) {
	body := map[string]any{"taskId": taskID}
	if title != nil {
		body["title"] = *title
	}

	var out Analysis
	if err := c.do(ctx, http.MethodPost, "/api/analyses", body, &out); err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
		var payload struct {
			Error  string              `json:"error"`
			Fields []domain.FieldError `json:"fields"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
			apiErr.Fields = payload.Fields
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// isTemporary reports whether a polling error should be retried.
func isTemporary(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
