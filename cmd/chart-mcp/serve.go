package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/mikills/tinkerings/chart-mcp/charts"
	"github.com/mikills/tinkerings/chart-mcp/config"
	"github.com/mikills/tinkerings/chart-mcp/httpapi"
	"github.com/mikills/tinkerings/chart-mcp/mcpserver"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over the configured transport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// serve blocks until ctx is cancelled or, on stdio, until in reaches EOF.
func (a *app) serve(ctx context.Context, in io.Reader, out io.Writer) error {
	reg := charts.Default()

	var promReg *prometheus.Registry
	if a.cfg.Transport == config.TransportHTTP {
		promReg = prometheus.NewRegistry()
		promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	d := a.dispatcher(reg, registerer(promReg))
	mcpSrv, err := mcpserver.New(reg, d, mcpserver.WithVersion(version), mcpserver.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("build mcp server: %w", err)
	}

	a.logger.Info("starting chart-mcp",
		"version", version,
		"transport", a.cfg.Transport,
		"backend", a.cfg.BackendURL,
		"tools", reg.Len(),
	)

	switch a.cfg.Transport {
	case config.TransportHTTP:
		h := httpapi.New(mcpserver.Name, mcpSrv,
			httpapi.WithVersion(version),
			httpapi.WithLogger(a.logger),
			httpapi.WithGatherer(promReg),
		)
		return h.Serve(ctx, a.cfg.Listen)
	default:
		stdio := server.NewStdioServer(mcpSrv)
		stdio.SetErrorLogger(slog.NewLogLogger(a.logger.Handler(), slog.LevelError))
		err := stdio.Listen(ctx, in, out)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio transport: %w", err)
		}
		return nil
	}
}

// registerer avoids handing a typed nil *prometheus.Registry to the
// dispatcher as a non-nil interface.
func registerer(r *prometheus.Registry) prometheus.Registerer {
	if r == nil {
		return nil
	}
	return r
}
