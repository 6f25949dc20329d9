package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotgate/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter configuration file from the embedded template.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	r.logger.Info("config file created", "path", configPath)
	r.writePlain("✓ Created %s\n\n", configPath)
	r.writePlain("Next steps:\n")
	r.writePlain("1. Set spotify.client_id and spotify.client_secret\n")
	r.writePlain("2. Run 'spotgate auth login' to mint an access token\n")
	r.writePlain("3. Run 'spotgate serve' to start the gateway\n")

	return nil
}
