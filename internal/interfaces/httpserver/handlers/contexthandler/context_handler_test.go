package contexthandler

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

func serveContext(t *testing.T, ec *identity.EffectiveContext) (*httptest.ResponseRecorder, MeContextResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if ec != nil {
		router.Use(func(c *gin.Context) {
			c.Set("effective_context", *ec)
			c.Next()
		})
	}
	handler := NewContextHandler(zerolog.Nop())
	router.GET("/v1/me/context", handler.GetContext)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/me/context", nil))

	var resp MeContextResponse
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
	}
	return w, resp
}

func TestGetContextPartnerSurface(t *testing.T) {
	partnerID := uuid.New()
	ec := identity.EffectiveContext{
		Role:               identity.RolePartner,
		PartnerID:          &partnerID,
		EffectivePartnerID: &partnerID,
	}

	w, resp := serveContext(t, &ec)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Role != "partner" {
		t.Fatalf("expected partner role, got %s", resp.Role)
	}
	if resp.EffectivePartnerID == nil || *resp.EffectivePartnerID != partnerID.String() {
		t.Fatalf("expected effective partner %s, got %v", partnerID, resp.EffectivePartnerID)
	}
	for _, section := range resp.Navigation {
		if section == "fleet_ops" || section == "partners" || section == "user_admin" {
			t.Fatalf("partner surface must not expose %s", section)
		}
	}
}

func TestGetContextSuperAdminViewingAsRendersTenantSurface(t *testing.T) {
	tenant := uuid.New()
	ec := identity.EffectiveContext{
		Role:               identity.RoleSuperAdmin,
		EffectivePartnerID: &tenant,
		ViewingAs:          true,
	}

	w, resp := serveContext(t, &ec)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !resp.ViewingAs {
		t.Fatal("expected viewing_as set")
	}
	if resp.Role != "superadmin" {
		t.Fatalf("underlying role must stay visible in the context payload, got %s", resp.Role)
	}
	for _, section := range resp.Navigation {
		if section == "fleet_ops" {
			t.Fatal("fleet ops must disappear while viewing-as")
		}
	}
}

func TestGetContextWithoutResolutionDenied(t *testing.T) {
	w, _ := serveContext(t, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without an effective context, got %d", w.Code)
	}
}
