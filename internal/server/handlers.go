package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/shared"
)

// ToolsHandler dispatches tool invocations and lists the registered tool set.
type ToolsHandler struct {
	registry *Registry
	logger   *log.Logger
}

// NewToolsHandler creates the dispatch handler over a populated registry.
func NewToolsHandler(registry *Registry, logger *log.Logger) *ToolsHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &ToolsHandler{registry: registry, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *ToolsHandler) Routes() []string {
	return []string{"GET /tools", "POST /tools/{name}"}
}

func (h *ToolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.list(w)
		return
	}
	h.invoke(w, r)
}

type toolInfo struct {
	Name  string `json:"name"`
	Usage string `json:"usage"`
}

func (h *ToolsHandler) list(w http.ResponseWriter) {
	tools := h.registry.List()
	infos := make([]toolInfo, 0, len(tools))
	for _, tool := range tools {
		infos = append(infos, toolInfo{Name: tool.Name, Usage: tool.Usage})
	}
	writeData(w, infos)
}

func (h *ToolsHandler) invoke(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	tool, ok := h.registry.Get(name)
	if !ok {
		writeError(w, fmt.Errorf("%w: unknown tool %q", shared.ErrNotFound, name))
		return
	}

	params := Params{}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, fmt.Errorf("%w: unreadable request body", shared.ErrInvalidInput))
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &params); err != nil {
			writeError(w, fmt.Errorf("%w: request body must be a JSON object", shared.ErrInvalidInput))
			return
		}
	}

	req := Request{
		Token:    TokenFrom(r.Context()),
		Identity: IdentityFrom(r.Context()),
		Params:   params,
	}

	data, err := tool.Handler(r.Context(), req)
	if err != nil {
		h.logger.Warn("tool failed", "tool", name, "error", err)
		writeError(w, err)
		return
	}

	writeData(w, data)
}

// HealthHandler answers liveness checks without authentication.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates the health endpoint handler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"GET /health", "GET /{$}"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "spotgate",
		"version": h.version,
	})
}

// IdentityHandler returns the identity resolved from the caller's token.
// Useful for verifying a token before driving the tool surface.
type IdentityHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (h *IdentityHandler) Routes() []string {
	return []string{"GET /me"}
}

func (h *IdentityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())
	if identity == nil {
		writeError(w, errors.New("no identity in request context"))
		return
	}
	writeData(w, identity)
}
