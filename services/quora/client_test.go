package quora

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quoraprofiler-backend/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{Host: "upstream.test", Key: "test-key"})
	client.http.SetBaseURL(srv.URL)
	client.sleep = func(time.Duration) {}
	return client
}

func TestExecuteSuccess(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:quora")
	defer cleanup()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		require.Equal(t, "upstream.test", r.Header.Get("x-rapidapi-host"))
		require.Equal(t, "application/json", r.Header.Get("content-type"))

		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"questions": [{"title": "Does China have cars?"}], "cursor": "next"}`))
	})

	result := client.Execute(context.Background(), http.MethodGet, "/search_questions", Params{
		{"query", "cars"},
		{"language", "en"},
	})

	require.True(t, result.Success)
	require.Equal(t, http.StatusOK, result.Status)
	require.Empty(t, result.Message)
	require.Nil(t, result.Details)

	expected := map[string]any{
		"questions": []any{
			map[string]any{"title": "Does China have cars?"},
		},
		"cursor": "next",
	}
	if diff := cmp.Diff(expected, result.Data); diff != "" {
		t.Fatalf("unexpected data (-want +got):\n%s", diff)
	}
}

func TestExecuteUpstreamError(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:quora")
	defer cleanup()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "You are not subscribed to this API.", "code": 403}`))
	})

	result := client.Execute(context.Background(), http.MethodGet, "/search_questions", nil)

	require.False(t, result.Success)
	require.Equal(t, http.StatusForbidden, result.Status)
	require.Equal(t, "You are not subscribed to this API.", result.Message)
	require.Nil(t, result.Data)

	details, ok := result.Details.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(403), details["code"])
}

func TestExecuteUpstreamErrorWithoutMessage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:quora")
	defer cleanup()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"oops": true}`))
	})

	result := client.Execute(context.Background(), http.MethodGet, "/search_answers", nil)

	require.False(t, result.Success)
	require.Equal(t, http.StatusBadGateway, result.Status)
	require.Equal(t, "Unknown API error", result.Message)
}

func TestExecuteEmptyBody(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:quora")
	defer cleanup()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	result := client.Execute(context.Background(), http.MethodGet, "/search_profiles", nil)

	require.False(t, result.Success)
	require.Equal(t, http.StatusOK, result.Status)
	require.Equal(t, "Empty response from API", result.Message)
	require.Nil(t, result.Details)
}

func TestExecuteMalformedBody(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:quora")
	defer cleanup()

	garbage := "<html>" + strings.Repeat("x", 2000) + "</html>"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(garbage))
	})

	result := client.Execute(context.Background(), http.MethodGet, "/question_answers", nil)

	require.False(t, result.Success)
	require.Equal(t, http.StatusOK, result.Status)
	require.Equal(t, "Failed to decode JSON response", result.Message)

	details, ok := result.Details.(DecodeErrorDetails)
	require.True(t, ok)
	require.NotEmpty(t, details.Error)
	require.Len(t, details.RawData, maxRawDataLen)
	require.Equal(t, garbage[:maxRawDataLen], details.RawData)
}

func TestExecuteTransportRetry(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:quora")
	defer cleanup()

	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		// drop the connection mid-flight to force a transport error
		conn, _, err := http.NewResponseController(w).Hijack()
		require.NoError(t, err)
		conn.Close()
	})

	var waits []time.Duration
	client.sleep = func(d time.Duration) {
		waits = append(waits, d)
	}

	result := client.Execute(context.Background(), http.MethodGet, "/search_questions", nil)

	require.Equal(t, 3, attempts)
	require.Equal(t, []time.Duration{time.Second * 2, time.Second * 4}, waits)

	require.False(t, result.Success)
	require.Equal(t, http.StatusInternalServerError, result.Status)
	require.Equal(t, "request failed after 3 attempts", result.Message)

	details, ok := result.Details.(map[string]string)
	require.True(t, ok)
	require.NotEmpty(t, details["error"])
}

func TestExecuteNeverLogsCredentials(t *testing.T) {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer slog.SetDefault(previous)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid API key."}`))
	})
	client.http.SetHeader("x-rapidapi-key", "super-secret-key")

	result := client.Execute(context.Background(), http.MethodGet, "/search_questions", Params{
		{"query", "cars"},
		{"language", "en"},
	})

	require.False(t, result.Success)
	require.NotContains(t, logs.String(), "super-secret-key")
}
