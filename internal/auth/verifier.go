// Package auth verifies Supabase-issued access tokens.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

const defaultLeeway = 30 * time.Second

// supabaseClaims is the subset of the Supabase access token we read.
type supabaseClaims struct {
	jwt.RegisteredClaims
	Email        string `json:"email"`
	Role         string `json:"role"`
	UserMetadata struct {
		FullName string `json:"full_name"`
		Name     string `json:"name"`
	} `json:"user_metadata"`
}

// Verifier validates access tokens signed either with the project's shared
// HS256 secret or with a key published in the project's JWKS.
type Verifier struct {
	secret []byte
	jwks   keyfunc.Keyfunc
	parser *jwt.Parser
}

// NewVerifier builds a verifier from config. A JWKS client is started only
// when a JWKS URL is configured or derivable from the Supabase URL.
func NewVerifier(cfg config.AuthConfig) (*Verifier, error) {
	var jwks keyfunc.Keyfunc
	if u := cfg.ResolvedJWKSURL(); u != "" {
		k, err := keyfunc.NewDefault([]string{u})
		if err != nil {
			return nil, fmt.Errorf("init JWKS keyfunc: %w", err)
		}
		jwks = k
	}
	if cfg.JWTSecret == "" && jwks == nil {
		return nil, errors.New("auth: jwt secret or supabase url must be set")
	}
	return newVerifier(cfg.JWTSecret, cfg.Issuer(), cfg.Audience, jwks), nil
}

func newVerifier(secret, issuer, audience string, jwks keyfunc.Keyfunc) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithLeeway(defaultLeeway),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Name,
			jwt.SigningMethodRS256.Name,
			jwt.SigningMethodES256.Name,
		}),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &Verifier{
		secret: []byte(secret),
		jwks:   jwks,
		parser: jwt.NewParser(opts...),
	}
}

// Verify parses and validates a token and returns the identity it carries.
// All failures wrap domain.ErrUnauthorized.
func (v *Verifier) Verify(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	var claims supabaseClaims
	token, err := v.parser.ParseWithClaims(tokenString, &claims, v.key)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return domain.Identity{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: invalid subject", domain.ErrUnauthorized)
	}

	name := claims.UserMetadata.FullName
	if name == "" {
		name = claims.UserMetadata.Name
	}

	return domain.Identity{
		UserID: userID,
		Email:  strings.ToLower(strings.TrimSpace(claims.Email)),
		Name:   strings.TrimSpace(name),
	}, nil
}

func (v *Verifier) key(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
		if len(v.secret) == 0 {
			return nil, errors.New("symmetric tokens are not accepted")
		}
		return v.secret, nil
	}
	if v.jwks == nil {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return v.jwks.Keyfunc(token)
}
