package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
)

func guardTestRouter(ec identity.EffectiveContext, capability identity.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(effectiveContextKey, ec)
		c.Next()
	})
	router.GET("/probe", RequireCapability(capability, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func serveProbe(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return w
}

func TestRequireCapabilityAllowsPermittedRole(t *testing.T) {
	ec := identity.EffectiveContext{Role: identity.RoleAdmin}
	w := serveProbe(guardTestRouter(ec, identity.CapabilityViewPartners))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireCapabilityDeniesWithGenericBody(t *testing.T) {
	partnerID := uuid.New()
	ec := identity.EffectiveContext{Role: identity.RolePartner, PartnerID: &partnerID, EffectivePartnerID: &partnerID}

	w := serveProbe(guardTestRouter(ec, identity.CapabilityViewPartners))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	var body map[string]map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["error"]["message"] != "access denied" {
		t.Fatalf("denial body must not leak the reason, got %s", w.Body.String())
	}
	if body["error"]["type"] != "forbidden" {
		t.Fatalf("expected forbidden type, got %s", w.Body.String())
	}
}

func TestRequireCapabilityHidesFleetOpsWhileViewingAs(t *testing.T) {
	tenant := uuid.New()
	ec := identity.EffectiveContext{
		Role:               identity.RoleSuperAdmin,
		EffectivePartnerID: &tenant,
		ViewingAs:          true,
	}

	w := serveProbe(guardTestRouter(ec, identity.CapabilityFleetOperations))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected fleet ops hidden under view-as, got %d", w.Code)
	}
}

func TestRequireCapabilityDeniesUnresolvedRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", RequireCapability(identity.CapabilityViewDashboard, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serveProbe(router)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for request without effective context, got %d", w.Code)
	}
}
