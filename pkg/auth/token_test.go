package auth

import (
	"testing"
	"time"

	"github.com/apurvakunkulol/directory-backend/pkg/config"
)

var tokenTestJWT = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "directory",
	ExpirationMinutes: 30,
}

func TestMintAndParseRoundTrip(t *testing.T) {
	token, err := MintAccessToken(tokenTestJWT, time.Now(), "directory-admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(tokenTestJWT, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Identity != "directory-admin" {
		t.Fatalf("unexpected identity %q", claims.Identity)
	}
	if claims.Issuer != "directory" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestMintRequiresConfig(t *testing.T) {
	cases := []config.JWTConfig{
		{Issuer: "directory", ExpirationMinutes: 30},
		{Secret: "s", ExpirationMinutes: 30},
		{Secret: "s", Issuer: "directory"},
	}
	for _, cfg := range cases {
		if _, err := MintAccessToken(cfg, time.Now(), "id"); err == nil {
			t.Fatalf("expected error for config %+v", cfg)
		}
	}
	if _, err := MintAccessToken(tokenTestJWT, time.Now(), "  "); err == nil {
		t.Fatal("expected error for blank identity")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := MintAccessToken(tokenTestJWT, time.Now().Add(-2*time.Hour), "directory-admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(tokenTestJWT, token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(tokenTestJWT, time.Now(), "directory-admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := tokenTestJWT
	other.Secret = "different"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to fail")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	other := tokenTestJWT
	other.Issuer = "someone-else"
	token, err := MintAccessToken(other, time.Now(), "directory-admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(tokenTestJWT, token); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}
