// Package config loads chart-mcp settings from flags, CHART_MCP_*
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mikills/tinkerings/chart-mcp/render"
)

const EnvPrefix = "CHART_MCP"

const (
	KeyConfig         = "config"
	KeyBackendURL     = "backend-url"
	KeyBackendTimeout = "backend-timeout"
	KeyMaxImageBytes  = "max-image-bytes"
	KeyTransport      = "transport"
	KeyListen         = "listen"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	BackendURL     string        `validate:"required,url"`
	BackendTimeout time.Duration `validate:"min=0"`
	MaxImageBytes  int64         `validate:"min=1"`
	Transport      string        `validate:"oneof=stdio http"`
	Listen         string        `validate:"required_if=Transport http"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	LogFormat      string        `validate:"oneof=text json"`
}

var validate = validator.New()

// RegisterFlags declares every setting on fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "path to a config file (yaml, json or toml)")
	fs.String(KeyBackendURL, render.DefaultBaseURL, "base URL of the QuickChart rendering backend")
	fs.Duration(KeyBackendTimeout, 30*time.Second, "timeout for one backend request (0 disables)")
	fs.Int64(KeyMaxImageBytes, render.DefaultMaxBytes, "largest image accepted from the backend")
	fs.String(KeyTransport, TransportStdio, "MCP transport: stdio or http")
	fs.String(KeyListen, ":8080", "listen address for the http transport")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(KeyLogFormat, "text", "log format: text or json")
}

// Bind connects v to the flags in fs and to CHART_MCP_* variables.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %q: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Load reads the optional config file named by the "config" key, then
// builds and validates the Config.
func Load(v *viper.Viper) (Config, error) {
	if path := strings.TrimSpace(v.GetString(KeyConfig)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	cfg := Config{
		BackendURL:     strings.TrimSpace(v.GetString(KeyBackendURL)),
		BackendTimeout: v.GetDuration(KeyBackendTimeout),
		MaxImageBytes:  v.GetInt64(KeyMaxImageBytes),
		Transport:      strings.ToLower(strings.TrimSpace(v.GetString(KeyTransport))),
		Listen:         strings.TrimSpace(v.GetString(KeyListen)),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFormat:      strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the process logger. Output goes to w, which must be
// stderr when MCP speaks over stdout.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
