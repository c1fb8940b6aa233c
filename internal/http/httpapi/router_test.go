package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"caltrack/internal/http/handlers"
	"caltrack/internal/infra"
)

func testConfig() *infra.Config {
	return &infra.Config{
		JWTSecret:       "test-secret",
		DefaultLocale:   "pt",
		RateLimitPerMin: 1000,
	}
}

func TestRouterHealthOpen(t *testing.T) {
	router := NewRouter(&handlers.App{Logger: zerolog.Nop()}, testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	router := NewRouter(&handlers.App{Logger: zerolog.Nop()}, testConfig(), nil)

	for _, target := range []string{
		"/v1/profiles/me",
		"/v1/meals",
		"/v1/stats",
		"/v1/subscription",
		"/v1/affiliate",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s status = %d, want 401", target, rr.Code)
		}
	}
}
