// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, authCommand, callCommand, toolsCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// serveCommand runs the gateway HTTP service.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the gateway HTTP service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address, overrides config host:port",
			},
		},
		Action: r.Serve,
	}
}

// authCommand handles token acquisition and inspection.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Spotify access tokens",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Run the OAuth2 flow in the browser and print an access token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "status",
				Usage: "Validate a token and print the identity it resolves to",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "token",
						Usage:   "Bearer token (defaults to SPOTGATE_TOKEN)",
						Sources: cli.EnvVars("SPOTGATE_TOKEN"),
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AuthStatus,
			},
		},
	}
}

// callCommand invokes one gateway tool in-process.
func callCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "call",
		Usage: "Invoke a tool directly without running the HTTP service",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "tool",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Bearer token (defaults to SPOTGATE_TOKEN)",
				Sources: cli.EnvVars("SPOTGATE_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "params",
				Aliases: []string{"p"},
				Usage:   "Tool parameters as a JSON object",
				Value:   "{}",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Call,
	}
}

// toolsCommand lists the registered tool surface.
func toolsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List available tools",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
		Action: r.Tools,
	}
}

// setupCommand writes a starter configuration file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a starter config.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
