package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikills/tinkerings/chart-mcp/charts"
	"github.com/mikills/tinkerings/chart-mcp/config"
	"github.com/mikills/tinkerings/chart-mcp/dispatch"
	"github.com/mikills/tinkerings/chart-mcp/render"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

// app holds what every subcommand shares once flags are parsed.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "chart-mcp",
		Short:         "MCP server that renders charts through QuickChart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Bind(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.NewLogger(os.Stderr)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCommand(a),
		newToolsCommand(a),
		newRenderCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) renderer() *render.Client {
	return render.NewClient(a.cfg.BackendURL,
		render.WithTimeout(a.cfg.BackendTimeout),
		render.WithMaxBytes(a.cfg.MaxImageBytes),
		render.WithUserAgent("chart-mcp/"+version),
		render.WithLogger(a.logger),
	)
}

func (a *app) dispatcher(reg *charts.Registry, promReg prometheus.Registerer) *dispatch.Dispatcher {
	opts := []dispatch.Option{dispatch.WithLogger(a.logger)}
	if promReg != nil {
		opts = append(opts, dispatch.WithMetrics(dispatch.NewMetrics(promReg)))
	}
	return dispatch.New(reg, a.renderer(), opts...)
}
