package validators

import (
	"strings"

	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
)

// Email validates the syntax of a path-supplied email address and returns its
// normalized (lower-cased, trimmed) form. The store is never touched when
// validation fails.
func Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Email address not supplied.")
	}
	if err := validate.Var(email, "email"); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Email is not in proper format.")
	}
	return email, nil
}
