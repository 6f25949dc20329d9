package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/spotgate/internal/server"
	"github.com/desertthunder/spotgate/internal/shared"
	"github.com/urfave/cli/v3"
)

// Call invokes one tool in-process, bypassing the HTTP surface. Useful for
// scripting and for trying tools before wiring a client.
func (r *Runner) Call(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("tool")
	if name == "" {
		return fmt.Errorf("%w: tool name", shared.ErrMissingArgument)
	}

	token := cmd.String("token")
	if token == "" {
		return fmt.Errorf("%w: provide --token or set SPOTGATE_TOKEN", shared.ErrMissingArgument)
	}

	params := server.Params{}
	if raw := cmd.String("params"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params); err != nil {
			return fmt.Errorf("%w: --params must be a JSON object: %v", shared.ErrInvalidInput, err)
		}
	}

	registry := server.NewRegistry()
	server.RegisterTools(registry, r.api)

	tool, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: unknown tool %q (run 'spotgate tools' to list)", shared.ErrNotFound, name)
	}

	identity, err := r.validator.Validate(ctx, token)
	if err != nil {
		return fmt.Errorf("token check failed: %w", err)
	}
	r.logger.Info("invoking tool", "tool", name, "user", identity.UserID)

	data, err := tool.Handler(ctx, server.Request{Token: token, Identity: identity, Params: params})
	if err != nil {
		return fmt.Errorf("tool failed: %w", err)
	}

	return r.writeJSON(data, cmd.Bool("pretty"))
}

// Tools lists the registered tool surface.
func (r *Runner) Tools(ctx context.Context, cmd *cli.Command) error {
	registry := server.NewRegistry()
	server.RegisterTools(registry, r.api)

	tools := registry.List()

	if cmd.Bool("json") {
		type info struct {
			Name  string `json:"name"`
			Usage string `json:"usage"`
		}
		infos := make([]info, 0, len(tools))
		for _, tool := range tools {
			infos = append(infos, info{Name: tool.Name, Usage: tool.Usage})
		}
		return r.writeJSON(infos, true)
	}

	r.writePlain("Available tools (%d):\n\n", len(tools))
	for _, tool := range tools {
		r.writePlain("  %-24s %s\n", tool.Name, tool.Usage)
	}
	return nil
}
