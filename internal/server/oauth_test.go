package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/shared"
	"golang.org/x/oauth2"
)

// fakeExchange stands in for the provider's token endpoint.
func fakeExchange(t *testing.T) *oauth2.Config {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "minted", "token_type": "Bearer"}`))
	}))
	t.Cleanup(srv.Close)

	return &oauth2.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: srv.URL},
	}
}

func TestOAuthHandler(t *testing.T) {
	logger := log.New(io.Discard)

	t.Run("exchanges code and delivers token", func(t *testing.T) {
		h := NewOAuthHandler(fakeExchange(t), "s1", logger)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=s1&code=c1", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Login complete") {
			t.Error("expected completion page")
		}

		result := <-h.Result()
		if result.Err != nil {
			t.Fatalf("expected no error, got %v", result.Err)
		}
		if result.Token == nil || result.Token.AccessToken != "minted" {
			t.Errorf("unexpected token: %+v", result.Token)
		}
	})

	t.Run("state mismatch answers 401 with auth error", func(t *testing.T) {
		h := NewOAuthHandler(fakeExchange(t), "s1", logger)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=wrong&code=c1", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		result := <-h.Result()
		if !errors.Is(result.Err, shared.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", result.Err)
		}
	})

	t.Run("refused authorization carries provider error", func(t *testing.T) {
		h := NewOAuthHandler(fakeExchange(t), "s1", logger)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=s1&error=access_denied", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		result := <-h.Result()
		if !errors.Is(result.Err, shared.ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed, got %v", result.Err)
		}
		if !strings.Contains(result.Err.Error(), "access_denied") {
			t.Errorf("expected provider error in chain, got %v", result.Err)
		}
	})

	t.Run("second callback is refused", func(t *testing.T) {
		h := NewOAuthHandler(fakeExchange(t), "s1", logger)

		first := httptest.NewRecorder()
		h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/callback?state=s1&code=c1", nil))
		if first.Code != http.StatusOK {
			t.Fatalf("expected first callback to succeed, got %d", first.Code)
		}
		<-h.Result()

		second := httptest.NewRecorder()
		h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/callback?state=s1&code=c2", nil))
		if second.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for replayed callback, got %d", second.Code)
		}
	})
}
