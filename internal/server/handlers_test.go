package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

func testToolsRouter(t *testing.T, reg *Registry) http.Handler {
	t.Helper()
	router := NewBasicRouter()
	router.Handler(NewToolsHandler(reg, log.New(io.Discard)))
	return router
}

func TestToolsHandler(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{
		Name:  "echo",
		Usage: "echo a message back",
		Handler: func(ctx context.Context, req Request) (any, error) {
			msg, err := req.Params.RequiredString("msg")
			if err != nil {
				return nil, err
			}
			return map[string]any{"echo": msg}, nil
		},
	})
	reg.Register(Tool{
		Name:  "fail_upstream",
		Usage: "always fails like a remote error",
		Handler: func(ctx context.Context, req Request) (any, error) {
			return nil, fmt.Errorf("%w: status 500 on GET /x", shared.ErrAPIRequest)
		},
	})
	router := testToolsRouter(t, reg)

	t.Run("lists registered tools", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tools", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp struct {
			Success bool `json:"success"`
			Data    []struct {
				Name  string `json:"name"`
				Usage string `json:"usage"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if !resp.Success || len(resp.Data) != 2 {
			t.Errorf("expected 2 tools, got %+v", resp)
		}
		if resp.Data[0].Name != "echo" {
			t.Errorf("expected sorted listing, got %q first", resp.Data[0].Name)
		}
	})

	t.Run("invokes a tool with params", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tools/echo", strings.NewReader(`{"msg": "hello"}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp models.ToolResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		data, _ := resp.Data.(map[string]any)
		if data["echo"] != "hello" {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
	})

	t.Run("missing parameter maps to 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tools/echo", strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("empty body means empty params", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tools/echo", nil)
		router.ServeHTTP(rec, req)

		// echo requires msg, so this still fails validation, not decoding
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("malformed JSON body maps to 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tools/echo", strings.NewReader(`{not json`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown tool maps to 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tools/nope", strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tools/fail_upstream", strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", rec.Code)
		}

		var resp models.ToolResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if resp.Success || len(resp.Errors) == 0 {
			t.Errorf("expected failure envelope, got %+v", resp)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	router := NewBasicRouter()
	router.Handler(NewHealthHandler("1.2.3"))

	for _, path := range []string{"/health", "/"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if body["status"] != "ok" || body["version"] != "1.2.3" {
				t.Errorf("unexpected body: %v", body)
			}
		})
	}
}

func TestIdentityHandler(t *testing.T) {
	router := NewBasicRouter()
	router.Use(authStack)
	router.Handler(&IdentityHandler{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.ToolResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	data, _ := resp.Data.(map[string]any)
	if data["user_id"] != "user1" {
		t.Errorf("unexpected identity payload: %+v", resp.Data)
	}
}
