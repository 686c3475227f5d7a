package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("nonsense"))
}

func TestNewWritesJSONToOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := slogx.New(slogx.Config{
		Service: "clientdesk",
		Version: "test",
		Env:     "test",
		Level:   "info",
		Format:  "json",
		Output:  &buf,
	})
	logger.Debug("hidden")
	logger.Info("shown", "shared_key", "k1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "shown", record["msg"])
	require.Equal(t, "clientdesk", record["service"])
	require.Equal(t, "k1", record["shared_key"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))

	l := slogx.Discard()
	ctx := slogx.WithContext(context.Background(), l)
	require.Equal(t, l, slogx.FromContext(ctx))
}

func TestHTTPMiddlewareAttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seen *slog.Logger
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/clients/getClients", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, seen)
	require.NotEqual(t, base, seen)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "http_request", record["msg"])
	require.Equal(t, "req-123", record["req_id"])
	require.EqualValues(t, http.StatusTeapot, record["status"])
}
