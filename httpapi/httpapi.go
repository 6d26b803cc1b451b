// Package httpapi serves the MCP server over HTTP: streamable HTTP on /mcp,
// SSE on /sse, plus health, discovery and metrics endpoints.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const (
	PathMCP        = "/mcp"
	PathSSE        = "/sse"
	PathSSEMessage = "/sse/message"
	PathHealth     = "/health"
	PathMetrics    = "/metrics"

	shutdownTimeout = 10 * time.Second
)

type Server struct {
	echo       *echo.Echo
	sse        *server.SSEServer
	streamable *server.StreamableHTTPServer
	name       string
	version    string
	logger     *slog.Logger
	gatherer   prometheus.Gatherer
	now        func() time.Time
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithGatherer exposes the given metrics on /metrics. Without it the route
// is not mounted.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

func New(name string, mcpSrv *server.MCPServer, opts ...Option) *Server {
	s := &Server{
		name:    name,
		version: "dev",
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.streamable = server.NewStreamableHTTPServer(mcpSrv,
		server.WithEndpointPath(PathMCP),
		server.WithStateLess(true),
	)
	s.sse = server.NewSSEServer(mcpSrv,
		server.WithSSEEndpoint(PathSSE),
		server.WithMessageEndpoint(PathSSEMessage),
		server.WithUseFullURLForMessageEndpoint(false),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = 10 * time.Second
	e.Server.ReadTimeout = 60 * time.Second
	e.Server.WriteTimeout = 0 // sse streams stay open
	e.Server.IdleTimeout = 60 * time.Second
	e.Server.MaxHeaderBytes = 1 << 20
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "path", v.URIPath, "status", v.Status, "duration", v.Latency}
			if v.Error != nil {
				s.logger.Warn("request", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))

	e.Any(PathMCP, echo.WrapHandler(s.streamable))
	e.Any(PathSSE, echo.WrapHandler(s.sse.SSEHandler()))
	e.Any(PathSSEMessage, echo.WrapHandler(s.sse.MessageHandler()))

	e.GET("/", s.handleInfo)
	e.GET(PathHealth, s.handleHealth)
	e.GET("/.well-known/oauth-authorization-server", s.handleAuthorizationServer)
	e.GET("/.well-known/oauth-protected-resource", s.handleProtectedResource)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/oauth/authorize", s.handleAuthorize)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/oauth/token", s.handleToken)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/oauth/register", s.handleRegister)
	if s.gatherer != nil {
		e.GET(PathMetrics, echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	s.echo = e
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.echo }

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http transport listening", "addr", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down http transport")
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return errors.Join(
		s.sse.Shutdown(ctx),
		s.streamable.Shutdown(ctx),
		s.echo.Shutdown(ctx),
	)
}
