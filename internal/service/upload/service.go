// Package upload hands out presigned URLs for direct image uploads.
package upload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/internal/validate"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
}

type presigner interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
}

// Input is an upload request.
type Input struct {
	ContentType string `json:"contentType" validate:"required,oneof=image/jpeg image/png image/webp image/heic"`
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	return validate.Struct(i)
}

// Ticket is a presigned upload target.
type Ticket struct {
	UploadURL string
	Key       string
	ExpiresAt time.Time
}

// Service issues upload tickets.
type Service struct {
	log     *slog.Logger
	storage presigner
	ttl     time.Duration
}

// NewService creates an upload service. storage may be nil.
func NewService(logger *slog.Logger, storage presigner, ttl time.Duration) *Service {
	return &Service{
		log:     logger.With("service", "upload"),
		storage: storage,
		ttl:     ttl,
	}
}

// CreateTicket returns a presigned PUT URL for a new image under the
// caller's prefix.
func (s *Service) CreateTicket(ctx context.Context, input Input) (*Ticket, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if s.storage == nil {
		return nil, &domain.NotConfiguredError{Service: "storage"}
	}

	input.ContentType = strings.ToLower(strings.TrimSpace(input.ContentType))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := domain.ImageKeyPrefix(userID) + uuid.NewString() + "." + extensions[input.ContentType]
	u, err := s.storage.PresignPut(ctx, key, input.ContentType, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &Ticket{
		UploadURL: u,
		Key:       key,
		ExpiresAt: time.Now().Add(s.ttl).UTC(),
	}, nil
}
