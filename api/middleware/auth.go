package middleware

import (
	"net/http"
	"strings"

	"github.com/apurvakunkulol/directory-backend/api/responses"
	pkgAuth "github.com/apurvakunkulol/directory-backend/pkg/auth"
	"github.com/apurvakunkulol/directory-backend/pkg/config"
	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
	"github.com/apurvakunkulol/directory-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// resolved identity. Every failure mode collapses into the same unauthorized
// response; callers learn nothing about why a credential was rejected.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteUserError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authorization Required"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteUserError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authorization Required"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteUserError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Authorization Required"))
				return
			}

			if claims.Identity == "" {
				responses.WriteUserError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authorization Required"))
				return
			}

			ctx := WithIdentity(r.Context(), claims.Identity)
			if logg != nil {
				ctx = logg.WithIdentity(ctx, claims.Identity)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
