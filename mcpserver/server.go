// Package mcpserver exposes the chart registry as MCP tools.
package mcpserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mikills/tinkerings/chart-mcp/charts"
	"github.com/mikills/tinkerings/chart-mcp/dispatch"
)

const Name = "mcp-server-chart"

// Dispatcher is the part of *dispatch.Dispatcher the tool handlers use.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, raw map[string]any) dispatch.Envelope
}

type options struct {
	version string
	logger  *slog.Logger
}

type Option func(*options)

func WithVersion(v string) Option {
	return func(o *options) { o.version = v }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds an MCP server with one tool per descriptor in reg, advertised
// with the descriptor's exported input schema.
func New(reg *charts.Registry, d Dispatcher, opts ...Option) (*server.MCPServer, error) {
	o := options{version: "dev", logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	srv := server.NewMCPServer(Name, o.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for desc := range reg.All() {
		schema, err := desc.InputSchema()
		if err != nil {
			return nil, err
		}
		tool := mcp.NewToolWithRawSchema(desc.Name, desc.Description, schema)
		srv.AddTool(tool, toolHandler(desc.Name, d))
	}
	o.logger.Debug("registered chart tools", "count", reg.Len())
	return srv, nil
}

func toolHandler(name string, d Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return Result(d.Dispatch(ctx, name, req.GetArguments())), nil
	}
}

// Result converts a dispatch envelope into a tool result. Failures become
// error results, never protocol errors.
func Result(env dispatch.Envelope) *mcp.CallToolResult {
	switch e := env.(type) {
	case *dispatch.ImageResult:
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewImageContent(base64.StdEncoding.EncodeToString(e.Bytes), e.MIMEType),
			},
		}
	case *dispatch.ErrorResult:
		return mcp.NewToolResultError(e.Message)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unexpected dispatch result %T", env))
	}
}
