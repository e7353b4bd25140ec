package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nebengjek-dispatch/internal/pkg/jwt"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/internal/utils"
)

// Echo context keys set by JWTAuthMiddleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyClaims = "claims"
)

// AccessTokenParam carries the bearer token for clients that cannot set
// headers, such as browser WebSocket connections
const AccessTokenParam = "access_token"

// RevocationChecker reports whether a token id was revoked at logout
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuthMiddleware creates a middleware for JWT authentication. Tokens
// revoked through revoked are rejected; a nil checker skips the lookup.
func JWTAuthMiddleware(config models.JWTConfig, revoked RevocationChecker, l *logger.ZapLogger) echo.MiddlewareFunc {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" && c.QueryParam(AccessTokenParam) != "" {
				authHeader = "Bearer " + c.QueryParam(AccessTokenParam)
			}
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), claims.TokenID())
				if err != nil {
					l.Error("Failed to check token revocation",
						logger.String("user_id", claims.UserID),
						logger.Err(err))
					return utils.ServiceUnavailableResponse(c, "")
				}
				if isRevoked {
					return utils.UnauthorizedResponse(c, "Token has been revoked")
				}
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}

// UserID returns the authenticated user set by JWTAuthMiddleware
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextKeyUserID).(string)
	return id
}

// Claims returns the validated token claims set by JWTAuthMiddleware
func Claims(c echo.Context) *jwtpkg.Claims {
	claims, _ := c.Get(ContextKeyClaims).(*jwtpkg.Claims)
	return claims
}
