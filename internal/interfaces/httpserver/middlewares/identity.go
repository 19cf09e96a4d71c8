package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/infrastructure/metrics"
	"portal-server/internal/utils/platformerrors"
)

const (
	effectiveContextKey = "effective_context"
	guardContextKey     = "access_guard"

	// SessionRefreshHeader signals that claims were just rewritten and the
	// client should refresh its session before the next request.
	SessionRefreshHeader = "X-Session-Refresh"
)

// IdentityContext resolves the session to an effective context: cached-or-full
// resolution, the claims reconciliation side effect, and the transient view-as
// overlay. Runs after SessionAuth on every protected route.
func IdentityContext(svc *identity.Service, viewAsParam string, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		guard := identity.NewGuard()
		guard.BeginResolution()
		c.Set(guardContextKey, guard)

		session, ok := SessionFromContext(c)
		if !ok {
			platformerrors.WriteUnauthorized(c, "authentication required")
			return
		}

		resolution, err := svc.ResolveSession(c.Request.Context(), session.Principal, session.Claims)
		if err != nil {
			// Transient store failures fail resolution, and an unresolved
			// request reads the same as a denied one.
			logger.Error().Err(err).Str("subject", session.Principal.Subject).Msg("identity resolution failed")
			platformerrors.WriteAccessDenied(c)
			return
		}

		metrics.RecordResolution(string(resolution.Resolved.Source), resolution.FromCache)
		if resolution.RefreshRequired {
			metrics.RecordClaimSync(true)
			c.Writer.Header().Set(SessionRefreshHeader, "true")
		}

		directive := identity.ParseDirective(c.Query(viewAsParam))
		ec := identity.ApplyImpersonation(resolution.Resolved, directive)
		if ec.ViewingAs {
			metrics.ImpersonatedRequestsTotal.Inc()
			logger.Info().
				Str("subject", session.Principal.Subject).
				Str("role", string(ec.Role)).
				Str("view_as", ec.EffectivePartnerID.String()).
				Msg("request served under view-as directive")
		}

		c.Set(effectiveContextKey, ec)
		c.Next()
	}
}

// EffectiveContextFromContext returns the resolved effective context, if any.
func EffectiveContextFromContext(c *gin.Context) (identity.EffectiveContext, bool) {
	val, ok := c.Get(effectiveContextKey)
	if !ok {
		return identity.EffectiveContext{}, false
	}
	ec, ok := val.(identity.EffectiveContext)
	return ec, ok
}

// GuardFromContext returns the per-request access guard.
func GuardFromContext(c *gin.Context) *Guard {
	val, ok := c.Get(guardContextKey)
	if !ok {
		return nil
	}
	guard, _ := val.(*identity.Guard)
	return guard
}

// Guard aliases the domain guard for callers of GuardFromContext.
type Guard = identity.Guard
