package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		userID       string
		expectInLogs []string
	}{
		{name: "string panic", panicValue: "boom", expectInLogs: []string{"boom", "stack_trace", "anonymous"}},
		{name: "error panic", panicValue: errors.New("bad state"), expectInLogs: []string{"bad state", "*errors.errorString"}},
		{name: "with user", panicValue: "boom", userID: "user-1", expectInLogs: []string{"user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/state", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-1")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.userID != "" {
				c.Set(ContextKeyUserID, tt.userID)
			}

			h := PanicRecoveryWithZapMiddleware(bufferedLogger(&buf))(func(c echo.Context) error {
				panic(tt.panicValue)
			})
			require.NoError(t, h(c))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "req-1", body["request_id"])
			assert.Equal(t, false, body["success"])

			logs := buf.String()
			assert.Contains(t, logs, "Panic recovered during request processing")
			for _, want := range tt.expectInLogs {
				assert.Contains(t, logs, want)
			}
		})
	}
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
}

func TestPanicRecoveryWithZapMiddleware_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	h := PanicRecoveryWithZapMiddleware(bufferedLogger(&buf))(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, buf.String())
}
