package app_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/app"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func clearDeskEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DESK_CONFIG", "DESK_API_URL", "DESK_HTTP_TIMEOUT", "DESK_NO_WAIT", "ENV", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearDeskEnv(t)

	cfg, err := app.LoadConfig(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, app.DefaultConfig(), cfg)
	require.Zero(t, cfg.HTTPTimeout, "no timeout unless configured")
}

func TestLoadConfigLayers(t *testing.T) {
	clearDeskEnv(t)

	path := filepath.Join(t.TempDir(), "desk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url: http://file:9000
http_timeout: 5s
log_level: debug
no_wait: true
`), 0o600))

	t.Setenv("DESK_CONFIG", path)
	t.Setenv("DESK_API_URL", "http://env:9001")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := app.LoadConfig([]string{"--log-level", "warn"}, io.Discard)
	require.NoError(t, err)

	require.Equal(t, "http://env:9001", cfg.APIURL, "env beats file")
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout, "file beats default")
	require.Equal(t, "warn", cfg.LogLevel, "flag beats file")
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.NoWait)
}

func TestLoadConfigErrors(t *testing.T) {
	clearDeskEnv(t)

	_, err := app.LoadConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	require.Error(t, err)

	_, err = app.LoadConfig([]string{"--timeout", "-1s"}, io.Discard)
	require.Error(t, err)

	_, err = app.LoadConfig([]string{"extra"}, io.Discard)
	require.Error(t, err)

	_, err = app.LoadConfig([]string{"--help"}, io.Discard)
	require.ErrorIs(t, err, pflag.ErrHelp)
}

func TestTimeoutFromEnvSeconds(t *testing.T) {
	clearDeskEnv(t)
	t.Setenv("DESK_HTTP_TIMEOUT", "30")

	cfg, err := app.LoadConfig(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
