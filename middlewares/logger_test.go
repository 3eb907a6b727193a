package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torchweb/torch"
	"github.com/torchweb/torch/middlewares"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestLogger(t *testing.T) {
	t.Parallel()

	t.Run("logs method path status and elapsed", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		run(middlewares.Logger(log), getReq("/users/1"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "request completed", entry["msg"])
		require.Equal(t, http.MethodGet, entry["method"])
		require.Equal(t, "/users/1", entry["path"])
		require.EqualValues(t, http.StatusOK, entry["status"])
		require.Contains(t, entry, "elapsed")
	})

	t.Run("5xx logs at error level", func(t *testing.T) {
		t.Parallel()

		failing := func(ctx context.Context, r *torch.Request) *torch.Response {
			return torch.Text(http.StatusInternalServerError, "boom")
		}

		log, buf := captureLogger()
		middlewares.Logger(log)(failing)(context.Background(), getReq("/"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "ERROR", entry["level"])
	})

	t.Run("skip paths", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		mw := middlewares.Logger(log, middlewares.WithLoggerSkipPaths("/health"))
		run(mw, getReq("/health"))
		require.Zero(t, buf.Len())

		run(mw, getReq("/other"))
		require.NotZero(t, buf.Len())
	})

	t.Run("request id included when present", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		chain := middlewares.RequestID()(middlewares.Logger(log)(okHandler))
		chain(context.Background(), getReq("/").SetHeader("X-Request-ID", "trace-me"))

		require.Contains(t, buf.String(), "trace-me")
	})

	t.Run("request line option", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogger()
		run(middlewares.Logger(log, middlewares.WithLoggerRequestLine()), getReq("/"))
		require.Contains(t, buf.String(), "request started")
		require.Contains(t, buf.String(), "request completed")
	})

	t.Run("nil logger is safe", func(t *testing.T) {
		t.Parallel()

		resp := run(middlewares.Logger(nil), getReq("/"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
