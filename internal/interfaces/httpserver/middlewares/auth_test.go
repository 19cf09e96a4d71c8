package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestSessionAuthMissingTokenHaltsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handlerRan := false
	router := gin.New()
	router.GET("/protected", SessionAuth(nil, zerolog.Nop()), func(c *gin.Context) {
		handlerRan = true
		c.String(http.StatusOK, "handler body")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if handlerRan {
		t.Fatal("downstream handler ran after auth rejection")
	}

	body := rec.Body.String()
	if strings.Contains(body, "handler body") {
		t.Fatalf("handler output leaked into response: %q", body)
	}
	if !strings.HasSuffix(strings.TrimSpace(body), "}") {
		t.Fatalf("response body has trailing content after error JSON: %q", body)
	}
}

func TestSessionAuthMalformedHeaderHaltsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handlerRan := false
	router := gin.New()
	router.GET("/protected", SessionAuth(nil, zerolog.Nop()), func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if handlerRan {
		t.Fatal("downstream handler ran after auth rejection")
	}
}
