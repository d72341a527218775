package controllers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/apurvakunkulol/directory-backend/api/responses"
	"github.com/apurvakunkulol/directory-backend/api/validators"
	pkgAuth "github.com/apurvakunkulol/directory-backend/pkg/auth"
	"github.com/apurvakunkulol/directory-backend/pkg/config"
	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
	"github.com/apurvakunkulol/directory-backend/pkg/logger"
	"github.com/apurvakunkulol/directory-backend/pkg/security"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// AuthLogin verifies the configured identity and mints an access token.
// Every rejection looks the same to the caller.
func AuthLogin(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		username := strings.TrimSpace(payload.Username)
		usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.APIAuth.Username)) == 1

		passwordOK, err := security.VerifyPassword(payload.Password, cfg.APIAuth.PasswordHash)
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify credentials"))
			return
		}

		if !usernameOK || !passwordOK {
			responses.WriteUserError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials"))
			return
		}

		token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), username)
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token"))
			return
		}

		responses.WriteData(w, http.StatusOK, loginResponse{AccessToken: token})
	}
}
