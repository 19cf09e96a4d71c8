package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authvalidator "portal-server/internal/infrastructure/auth"
	"portal-server/internal/infrastructure/metrics"
	"portal-server/internal/utils/platformerrors"
)

const sessionContextKey = "session"

// SessionAuth validates the bearer token and stores the session payload in the
// gin context. Everything behind it can assume an authenticated principal.
func SessionAuth(validator *authvalidator.SessionValidator, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("unauthenticated request")
			metrics.RecordAuthRequest("missing")
			platformerrors.WriteUnauthorized(c, "authentication required")
			return
		}

		session, err := validator.Validate(c.Request.Context(), token)
		if err != nil {
			logger.Warn().Err(err).Msg("session token validation failed")
			metrics.RecordAuthRequest("invalid")
			platformerrors.WriteUnauthorized(c, "unauthorized")
			return
		}

		metrics.RecordAuthRequest("ok")
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext returns the validated session, if any.
func SessionFromContext(c *gin.Context) (*authvalidator.Session, bool) {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := val.(*authvalidator.Session)
	return session, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
