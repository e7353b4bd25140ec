package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(Config{
		BaseURL: url + "/",
		APIKey:  "anon-key",
		Timeout: 5 * time.Second,
		Retry:   retry.FixedConfig(3, 0),
	}, logger.NewNopLogger())
}

func TestClient_Do_SendsHeadersAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/companies", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "req-1", r.Header.Get(RequestIDHeader))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Acme"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"c1","name":"Acme"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := ContextWithRequestID(context.Background(), "req-1")

	var out []map[string]interface{}
	err := client.Do(ctx, "companies", http.MethodPost, "/rest/v1/companies",
		map[string]string{"name": "Acme"}, map[string]string{"Prefer": "return=representation"}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0]["id"])
}

func TestClient_ErrorStatus(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		wantCalls  int32
		wantServer bool
	}{
		{name: "client error is not retried", status: http.StatusConflict, wantCalls: 1},
		{name: "server error is retried", status: http.StatusBadGateway, wantCalls: 3, wantServer: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
			}))
			defer server.Close()

			err := newTestClient(server.URL).GetJSON(context.Background(), "/rest/v1/drivers", &[]map[string]interface{}{})

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tc.status, httpErr.StatusCode)
			assert.Contains(t, httpErr.Message, "nope")
			assert.Equal(t, tc.wantServer, IsServerError(err))
			assert.Equal(t, tc.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	for i := 0; i < 5; i++ {
		_ = client.Do(context.Background(), "payments", http.MethodDelete, "/rest/v1/payments", nil, nil, nil)
	}
	assert.Equal(t, "OPEN", client.BreakerStats()["payments"])

	err := client.Do(context.Background(), "payments", http.MethodDelete, "/rest/v1/payments", nil, nil, nil)
	assert.Error(t, err)
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestClient_GetJSONBypassesBreaker(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Retry: retry.FixedConfig(1, 0)}, logger.NewNopLogger())
	for i := 0; i < 8; i++ {
		err := client.GetJSON(context.Background(), "/rest/v1/projects", &[]map[string]interface{}{})
		assert.True(t, IsServerError(err))
	}
	assert.Equal(t, int32(8), atomic.LoadInt32(&calls))
	assert.Empty(t, client.BreakerStats())
}

func TestClient_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	var out []map[string]interface{}
	err := newTestClient(server.URL).Do(context.Background(), "rpc", http.MethodPost, "/rest/v1/rpc/x", nil, nil, &out)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestIsServerError(t *testing.T) {
	assert.False(t, IsServerError(nil))
	assert.False(t, IsServerError(context.Canceled))
	assert.False(t, IsServerError(&HTTPError{StatusCode: 404}))
	assert.True(t, IsServerError(&HTTPError{StatusCode: 500}))
	assert.True(t, IsServerError(errors.New("dial tcp: connection refused")))
}
