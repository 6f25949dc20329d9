package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

type contextKey string

const (
	tokenKey    contextKey = "bearer_token"
	identityKey contextKey = "identity"
)

// TokenFrom returns the bearer token stashed by the auth middleware.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// IdentityFrom returns the resolved caller identity, or nil on
// unauthenticated routes.
func IdentityFrom(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey).(*models.Identity)
	return identity
}

// Validator resolves a bearer token to the identity that owns it.
type Validator interface {
	Validate(ctx context.Context, token string) (*models.Identity, error)
}

// RequestLogger logs one line per request with a generated request id,
// method, path, and duration.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := shared.GenerateID()

			next.ServeHTTP(w, r)

			logger.Info("request",
				"id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}

// Auth extracts the caller's bearer token, validates it upstream, and stashes
// both token and identity in the request context.
//
// The gateway holds no credentials of its own; a request without a valid
// token of the caller's goes no further than this middleware.
func Auth(validator Validator, logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				writeError(w, err)
				return
			}

			identity, err := validator.Validate(r.Context(), token)
			if err != nil {
				logger.Warn("authentication failed", "path", r.URL.Path, "error", err)
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), tokenKey, token)
			ctx = context.WithValue(ctx, identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("%w: missing Authorization header", shared.ErrAuthFailed)
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: expected Bearer token", shared.ErrAuthFailed)
	}

	return strings.TrimSpace(token), nil
}
