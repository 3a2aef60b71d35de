package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// errorMapping is checked top to bottom; the first matching sentinel wins.
var errorMapping = []struct {
	target  error
	status  int
	message string
}{
	{domain.ErrValidation, http.StatusBadRequest, "validation failed"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrSuspended, http.StatusForbidden, "account suspended"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrNotFound, http.StatusNotFound, "not found"},
	{domain.ErrAlreadyExists, http.StatusConflict, "already exists"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrDailyLimitReached, http.StatusTooManyRequests, "daily analysis limit reached"},
	{domain.ErrNotConfigured, http.StatusNotImplemented, "not configured"},
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// statusFor returns the HTTP status and public message for err.
// ok is false for errors outside the domain set.
func statusFor(err error) (status int, message string, ok bool) {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return m.status, m.message, true
		}
	}
	return http.StatusInternalServerError, "internal server error", false
}

// respondError writes the mapped error. Unmapped errors are logged and
// hidden behind a generic body.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, message, ok := statusFor(err)
	if !ok {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, status, message)
		return
	}

	resp := errorResponse{Error: message}

	var ve *domain.ValidationError
	var nc *domain.NotConfiguredError
	switch {
	case errors.As(err, &ve):
		resp.Fields = ve.Errors
	case errors.As(err, &nc):
		resp.Error = nc.Error()
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a size-limited JSON body into dst. Unknown fields are
// rejected. Malformed bodies come back as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit))
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

func queryString(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

// page reads limit and offset query parameters.
func page(r *http.Request) (limit, offset int, err error) {
	if limit, err = queryInt(r, "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(r, "offset"); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
