package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/infrastructure/metrics"
	"portal-server/internal/utils/platformerrors"
)

// RequireCapability gates a route on one capability. The denial body is the
// same for every reason; the reason goes to logs and metrics only.
func RequireCapability(capability identity.Capability, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ec, ok := EffectiveContextFromContext(c)
		if !ok {
			metrics.RecordDenial(string(capability), "unresolved")
			platformerrors.WriteAccessDenied(c)
			return
		}

		decision := authorizeWithGuard(c, ec, capability)
		if !decision.Allow {
			metrics.RecordDenial(string(capability), string(decision.Reason))
			logger.Warn().
				Str("capability", string(capability)).
				Str("reason", string(decision.Reason)).
				Str("role", string(ec.Role)).
				Bool("viewing_as", ec.ViewingAs).
				Msg("capability denied")
			platformerrors.WriteAccessDenied(c)
			return
		}

		c.Next()
	}
}

func authorizeWithGuard(c *gin.Context, ec identity.EffectiveContext, capability identity.Capability) identity.Decision {
	if guard := GuardFromContext(c); guard != nil {
		return guard.Authorize(ec, capability)
	}
	return identity.Authorize(ec, capability)
}
