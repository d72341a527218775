package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgAuth "github.com/apurvakunkulol/directory-backend/pkg/auth"
	"github.com/apurvakunkulol/directory-backend/pkg/config"
	"github.com/apurvakunkulol/directory-backend/pkg/security"
)

func authTestConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := security.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "directory",
			ExpirationMinutes: 30,
		},
		APIAuth: config.APIAuthConfig{
			Username:     "directory-admin",
			PasswordHash: hash,
		},
	}
}

func TestAuthLoginSuccess(t *testing.T) {
	cfg := authTestConfig(t)
	handler := AuthLogin(cfg, nil)

	body := []byte(`{"username":"directory-admin","password":"correct horse"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader(body))

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}

	claims, err := pkgAuth.ParseAccessToken(cfg.JWT, resp.AccessToken)
	if err != nil {
		t.Fatalf("minted token failed to parse: %v", err)
	}
	if claims.Identity != "directory-admin" {
		t.Fatalf("unexpected identity %q", claims.Identity)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	cfg := authTestConfig(t)
	handler := AuthLogin(cfg, nil)

	body := []byte(`{"username":"directory-admin","password":"wrong"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader(body))

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthLoginWrongUsername(t *testing.T) {
	cfg := authTestConfig(t)
	handler := AuthLogin(cfg, nil)

	body := []byte(`{"username":"intruder","password":"correct horse"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader(body))

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthLoginMissingFields(t *testing.T) {
	cfg := authTestConfig(t)
	handler := AuthLogin(cfg, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader([]byte(`{"username":"directory-admin"}`)))

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
