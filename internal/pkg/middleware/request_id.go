package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	httppkg "github.com/piresc/nebengjek-dispatch/internal/pkg/http"
)

// RequestIDMiddleware adds a unique request ID to each request and carries
// it on the request context for outbound store calls
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)

			ctx := httppkg.ContextWithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
