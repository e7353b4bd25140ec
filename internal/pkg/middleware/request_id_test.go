package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	httppkg "github.com/piresc/nebengjek-dispatch/internal/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generates id"},
		{name: "keeps incoming id", incoming: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			h := RequestIDMiddleware()(func(c echo.Context) error {
				fromCtx = httppkg.RequestIDFromContext(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, h(c))

			header := rec.Header().Get(echo.HeaderXRequestID)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, fromCtx)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, header)
			}
		})
	}
}
