package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
	"github.com/apurvakunkulol/directory-backend/pkg/logger"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// UserEnvelope wraps every user-resource response. Description is always
// present, even when empty, matching the API's historical shape.
type UserEnvelope struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	UserInfo    any    `json:"user_info,omitempty"`
}

// ProductEnvelope wraps every catalogue response.
type ProductEnvelope struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	ProductDescription any    `json:"product_description,omitempty"`
}

// WriteUser writes a user envelope with an explicit transport status.
func WriteUser(w http.ResponseWriter, status int, envelope UserEnvelope) {
	writeJSON(w, status, envelope)
}

// WriteUserSuccess writes a 200 success envelope for the user resource.
func WriteUserSuccess(w http.ResponseWriter, description string, userInfo any) {
	WriteUser(w, http.StatusOK, UserEnvelope{
		Status:      StatusSuccess,
		Description: description,
		UserInfo:    userInfo,
	})
}

// WriteProduct writes a product envelope with an explicit transport status.
func WriteProduct(w http.ResponseWriter, status int, envelope ProductEnvelope) {
	writeJSON(w, status, envelope)
}

// WriteProductSuccess writes a 200 success envelope for the catalogue.
func WriteProductSuccess(w http.ResponseWriter, message string, productDescription any) {
	WriteProduct(w, http.StatusOK, ProductEnvelope{
		Status:             StatusSuccess,
		Message:            message,
		ProductDescription: productDescription,
	})
}

// WriteData writes an arbitrary JSON payload (token issuance, health).
func WriteData(w http.ResponseWriter, status int, payload any) {
	writeJSON(w, status, payload)
}

// WriteUserError resolves the typed error and writes a user-flavored error
// envelope on the mapped transport status.
func WriteUserError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	status, msg := resolve(ctx, logg, err)
	WriteUser(w, status, UserEnvelope{Status: StatusError, Description: msg})
}

// WriteProductError is WriteUserError with the catalogue envelope key.
func WriteProductError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	status, msg := resolve(ctx, logg, err)
	WriteProduct(w, status, ProductEnvelope{Status: StatusError, Message: msg})
}

func resolve(ctx context.Context, logg *logger.Logger, err error) (int, string) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict,
		pkgerrors.CodeRateLimit,
		pkgerrors.CodeDependency:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)

		fields := map[string]any{
			"error":         dump.TopMessage,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_column":     dump.PGColumn,
			"pg_constraint": dump.PGConstraint,
		}

		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	return meta.HTTPStatus, msg
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
