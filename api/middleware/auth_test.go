package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pkgAuth "github.com/apurvakunkulol/directory-backend/pkg/auth"
	"github.com/apurvakunkulol/directory-backend/pkg/config"
)

var authTestJWT = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "directory",
	ExpirationMinutes: 30,
}

func protectedEcho(t *testing.T, wantIdentity string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := IdentityFromContext(r.Context()); got != wantIdentity {
			t.Fatalf("expected identity %q in context, got %q", wantIdentity, got)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	token, err := pkgAuth.MintAccessToken(authTestJWT, time.Now(), "directory-admin")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := Auth(authTestJWT, nil)(protectedEcho(t, "directory-admin"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0.1/a@b.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthAcceptsRawTokenWithoutScheme(t *testing.T) {
	token, err := pkgAuth.MintAccessToken(authTestJWT, time.Now(), "directory-admin")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := Auth(authTestJWT, nil)(protectedEcho(t, "directory-admin"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0.1/a@b.com", nil)
	req.Header.Set("Authorization", token)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler := Auth(authTestJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0.1/a@b.com", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"status":"error"`) || !strings.Contains(body, "Authorization Required") {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	handler := Auth(authTestJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0.1/a@b.com", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	token, err := pkgAuth.MintAccessToken(authTestJWT, time.Now().Add(-2*time.Hour), "directory-admin")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := Auth(authTestJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0.1/a@b.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthRejectsWrongIssuer(t *testing.T) {
	otherIssuer := authTestJWT
	otherIssuer.Issuer = "someone-else"
	token, err := pkgAuth.MintAccessToken(otherIssuer, time.Now(), "directory-admin")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := Auth(authTestJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0.1/a@b.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
