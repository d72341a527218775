package validators

import (
	"testing"

	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
)

func TestEmailNormalizes(t *testing.T) {
	got, err := Email("  Ada@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", got)
	}
}

func TestEmailEmpty(t *testing.T) {
	_, err := Email("   ")
	if err == nil {
		t.Fatal("expected error for empty email")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "Email address not supplied." {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestEmailMalformed(t *testing.T) {
	for _, raw := range []string{"nope", "a@", "@b.com", "a b@c.com"} {
		_, err := Email(raw)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Message() != "Email is not in proper format." {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
	}
}
