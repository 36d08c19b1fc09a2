// Package cli defines the sales-agent command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonesrussell/north-cloud/sales-agent/internal/api"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/bootstrap"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/docs"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.yml"

// Run parses args and executes the selected command.
func Run(ctx context.Context, args []string) error {
	return NewCommand().Run(ctx, args)
}

// NewCommand builds the root command. Without a subcommand it serves HTTP.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "sales-agent",
		Usage: "AI Life Insurance Sales Agent API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file; a missing file is ignored",
				Value:   defaultConfigPath,
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to bind, overrides server.host",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on, overrides server.port",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug mode and development logging, overrides app.debug",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return bootstrap.Start(ctx, overridesFrom(cmd))
		},
		Commands: []*cli.Command{
			cmdVersion(),
			cmdOpenAPI(),
		},
	}
}

func overridesFrom(cmd *cli.Command) bootstrap.Overrides {
	o := bootstrap.Overrides{ConfigPath: cmd.String("config")}
	if cmd.IsSet("host") {
		o.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		o.Port = cmd.Int("port")
	}
	if cmd.IsSet("debug") {
		debug := cmd.Bool("debug")
		o.Debug = &debug
	}
	return o
}

func cmdVersion() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the configured application name and version",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := bootstrap.LoadConfig(overridesFrom(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.Root().Writer, "%s %s\n", cfg.App.Name, cfg.App.Version)
			return err
		},
	}
}

func cmdOpenAPI() *cli.Command {
	return &cli.Command{
		Name:  "openapi",
		Usage: "Print the OpenAPI document as JSON",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := bootstrap.LoadConfig(overridesFrom(cmd))
			if err != nil {
				return err
			}
			doc, err := docs.NewDocument(ctx, api.DocsInfo(cfg))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.Root().Writer)
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(doc); encErr != nil {
				return fmt.Errorf("encode openapi document: %w", encErr)
			}
			return nil
		},
	}
}
