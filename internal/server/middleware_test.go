package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

// stubValidator accepts one known token and rejects everything else.
type stubValidator struct {
	token    string
	identity *models.Identity
}

func (v *stubValidator) Validate(ctx context.Context, token string) (*models.Identity, error) {
	if token == v.token {
		return v.identity, nil
	}
	return nil, fmt.Errorf("%w: unknown token", shared.ErrAuthFailed)
}

func authStack(next http.Handler) http.Handler {
	validator := &stubValidator{
		token:    "valid-token",
		identity: &models.Identity{UserID: "user1", DisplayName: "User One"},
	}
	return Auth(validator, log.New(io.Discard))(next)
}

func TestAuthMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFrom(r.Context())
		if identity == nil {
			t.Error("expected identity in context")
			return
		}
		w.Write([]byte(TokenFrom(r.Context())))
	})

	t.Run("valid token passes through with context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)
		req.Header.Set("Authorization", "Bearer valid-token")

		authStack(inner).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != "valid-token" {
			t.Error("expected token stashed in context")
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)

		authStack(inner).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}

		var resp models.ToolResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("expected envelope, got %v", err)
		}
		if resp.Success {
			t.Error("expected failure envelope")
		}
	})

	t.Run("wrong scheme rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		authStack(inner).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("bad token rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)
		req.Header.Set("Authorization", "Bearer stale")

		authStack(inner).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}

func TestRequestLogger(t *testing.T) {
	var buf testWriter
	logger := log.New(&buf)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	RequestLogger(logger)(inner).ServeHTTP(rec, req)

	if len(buf.data) == 0 {
		t.Error("expected a log line per request")
	}
}

type testWriter struct {
	data []byte
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}
