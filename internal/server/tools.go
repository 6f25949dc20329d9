package server

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

// Request carries one tool invocation: the caller's credentials plus the
// decoded parameter object.
type Request struct {
	Token    string
	Identity *models.Identity
	Params   Params
}

// ToolFunc executes one tool invocation and returns the payload to wrap in
// the response envelope.
type ToolFunc func(ctx context.Context, req Request) (any, error)

// Tool is one named operation exposed by the gateway.
type Tool struct {
	Name    string
	Usage   string
	Handler ToolFunc
}

// Registry holds the gateway's tool set. Registration happens once during
// startup; lookups are concurrent.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Registering a duplicate name panics; tool names are
// wired at startup and a collision is a programming error.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		panic(fmt.Sprintf("duplicate tool registration: %s", tool.Name))
	}
	r.tools[tool.Name] = tool
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Params is the decoded JSON parameter object of a tool invocation.
type Params map[string]any

// String returns a string parameter, or empty when absent.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// RequiredString returns a string parameter or fails when absent or blank.
func (p Params) RequiredString(key string) (string, error) {
	s, ok := p[key].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s", shared.ErrMissingArgument, key)
	}
	return s, nil
}

// Int returns an integer parameter, falling back to def when absent. JSON
// numbers decode as float64 and are converted here.
func (p Params) Int(key string, def int) int {
	if f, ok := p[key].(float64); ok {
		return int(f)
	}
	return def
}

// RequiredInt returns an integer parameter or fails when absent.
func (p Params) RequiredInt(key string) (int, error) {
	f, ok := p[key].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s", shared.ErrMissingArgument, key)
	}
	return int(f), nil
}

// OptionalInt returns a pointer to an integer parameter, nil when absent.
func (p Params) OptionalInt(key string) *int {
	if f, ok := p[key].(float64); ok {
		n := int(f)
		return &n
	}
	return nil
}

// Bool returns a boolean parameter, falling back to def when absent.
func (p Params) Bool(key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}

// OptionalBool returns a pointer to a boolean parameter, nil when absent.
func (p Params) OptionalBool(key string) *bool {
	if b, ok := p[key].(bool); ok {
		return &b
	}
	return nil
}

// OptionalString returns a pointer to a string parameter, nil when absent.
func (p Params) OptionalString(key string) *string {
	if s, ok := p[key].(string); ok {
		return &s
	}
	return nil
}

// IDList reads an identifier list given either as a JSON array of strings or
// as one comma-delimited string. Entries are trimmed; empties dropped.
func (p Params) IDList(key string) ([]string, error) {
	switch v := p[key].(type) {
	case nil:
		return nil, nil
	case string:
		return shared.SplitIDs(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must contain only strings", shared.ErrInvalidArgument, key)
			}
			out = append(out, shared.SplitIDs(s)...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a string or list of strings", shared.ErrInvalidArgument, key)
	}
}

// Format reads the format selector, defaulting to compact when absent.
func (p Params) Format() (models.Format, error) {
	s, ok := p["format"].(string)
	if !ok || s == "" {
		return models.FormatCompact, nil
	}
	return models.ParseFormat(s)
}
