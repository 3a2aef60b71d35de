package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
	"github.com/heartmarshall/lexilens-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

type userResolver interface {
	Resolve(ctx context.Context, id domain.Identity) (*domain.User, error)
}

// Auth requires a valid Supabase bearer token. The verified identity is
// resolved to a local user whose id and role are stored in the context.
func Auth(verifier tokenVerifier, users userResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user, err := users.Resolve(r.Context(), identity)
			switch {
			case errors.Is(err, domain.ErrSuspended):
				writeError(w, http.StatusForbidden, "account suspended")
				return
			case err != nil:
				logger.ErrorContext(r.Context(), "resolve user", slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			noteUser(r.Context(), user.ID)
			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			ctx = ctxutil.WithRole(ctx, user.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers whose resolved role is not admin.
// It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
