package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doctrack-io/doctrackgo/internal/config"
	"github.com/doctrack-io/doctrackgo/internal/models"
	"github.com/doctrack-io/doctrackgo/internal/utils"
)

const testSecret = "test-secret-key-12345"

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	user := &models.UserAuth{ID: 5, Email: "u@example.com", Role: role}
	access, _, err := utils.GenerateTokens(user, &config.Config{JWTSecret: testSecret})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return access
}

func TestAuthMiddleware(t *testing.T) {
	var gotID uint
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Missing header
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/documents", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header: expected 401, got %d", rec.Code)
	}

	// Garbage token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/documents", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: expected 401, got %d", rec.Code)
	}

	// Valid token
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/documents", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleClerk))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: expected 200, got %d", rec.Code)
	}
	if gotID != 5 {
		t.Errorf("expected user id 5 in context, got %d", gotID)
	}
}

func TestRequireRole(t *testing.T) {
	handler := Auth(testSecret)(RequireRole(models.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/documents/1/finalize", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleClerk))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("clerk on admin route: expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/documents/1/finalize", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin on admin route: expected 200, got %d", rec.Code)
	}
}
