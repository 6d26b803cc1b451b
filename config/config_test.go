package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	v := viper.New()
	require.NoError(t, Bind(v, fs))
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, Config{
		BackendURL:     "https://quickchart.io",
		BackendTimeout: 30 * time.Second,
		MaxImageBytes:  10 << 20,
		Transport:      "stdio",
		Listen:         ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
	}, cfg)
}

func TestLoad_FlagsAndEnv(t *testing.T) {
	t.Setenv("CHART_MCP_BACKEND_URL", "http://localhost:3400")
	t.Setenv("CHART_MCP_LOG_LEVEL", "DEBUG")

	cfg, err := Load(newViper(t, "--transport=http", "--listen=127.0.0.1:9000", "--backend-timeout=0"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3400", cfg.BackendURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Zero(t, cfg.BackendTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart-mcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend-url: http://charts.internal\nlog-format: json\n"), 0o600))

	cfg, err := Load(newViper(t, "--config="+path))
	require.NoError(t, err)
	assert.Equal(t, "http://charts.internal", cfg.BackendURL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"transport", []string{"--transport=websocket"}, "Transport"},
		{"backend url", []string{"--backend-url=not a url"}, "BackendURL"},
		{"log level", []string{"--log-level=verbose"}, "LogLevel"},
		{"image limit", []string{"--max-image-bytes=0"}, "MaxImageBytes"},
		{"negative timeout", []string{"--backend-timeout=-1s"}, "BackendTimeout"},
		{"missing file", []string{"--config=/does/not/exist.yaml"}, "read config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: "warn", LogFormat: "json"}
	log := cfg.NewLogger(&buf)

	log.Info("hidden")
	log.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
