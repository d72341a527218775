package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/apurvakunkulol/directory-backend/api/responses"
	"github.com/apurvakunkulol/directory-backend/api/validators"
	usersvc "github.com/apurvakunkulol/directory-backend/internal/users"
	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
	"github.com/apurvakunkulol/directory-backend/pkg/logger"
)

// UserFetch returns the profile stored for the path-supplied email.
func UserFetch(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := validators.Email(chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Fetch(r.Context(), email)
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		responses.WriteUserSuccess(w, "", user)
	}
}

type updatedInfoRequest struct {
	// Email is accepted for wire compatibility but never merged; the
	// identity field is immutable once set.
	Email         *string `json:"email"`
	Firstname     *string `json:"firstname"`
	Lastname      *string `json:"lastname"`
	Designation   *string `json:"designation"`
	Address       *string `json:"address"`
	Website       *string `json:"website"`
	Qualification *string `json:"qualification"`
}

type updateUserRequest struct {
	UpdatedInfo *updatedInfoRequest `json:"updated_info"`
}

func (u *updatedInfoRequest) toInput() usersvc.UpdateUserInput {
	if u == nil {
		return usersvc.UpdateUserInput{}
	}
	return usersvc.UpdateUserInput{
		EmailSupplied: u.Email != nil,
		Firstname:     u.Firstname,
		Lastname:      u.Lastname,
		Designation:   u.Designation,
		Address:       u.Address,
		Website:       u.Website,
		Qualification: u.Qualification,
	}
}

// UserUpsert merges the supplied fields into the profile for the path email,
// falling back to an insert when no profile exists yet. The fallback keeps
// its historical error-shaped body; the 201 status carries the real outcome.
func UserUpsert(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := validators.Email(chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		var payload updateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Upsert(r.Context(), email, payload.UpdatedInfo.toInput())
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		if result.Outcome == usersvc.OutcomeInserted {
			responses.WriteUser(w, http.StatusCreated, responses.UserEnvelope{
				Status: responses.StatusError,
				Description: fmt.Sprintf(
					"Inserted a new record successfully since a previous one didn't exist for this email. ID: %s",
					result.InsertedID,
				),
			})
			return
		}

		responses.WriteUserSuccess(w, "Record updated successfully.", nil)
	}
}

// UserDelete removes the profile for the path email.
func UserDelete(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := validators.Email(chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), email); err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		responses.WriteUserSuccess(w, fmt.Sprintf("Successfully deleted information for user %s.", email), nil)
	}
}

type createUserRequest struct {
	Email         string  `json:"email"`
	Firstname     *string `json:"firstname"`
	Lastname      *string `json:"lastname"`
	Designation   *string `json:"designation"`
	Address       *string `json:"address"`
	Website       *string `json:"website"`
	Qualification *string `json:"qualification"`
}

// UserCreate inserts a brand-new profile. Email is the only mandatory field;
// the store's unique index catches duplicates.
func UserCreate(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		if strings.TrimSpace(payload.Email) == "" {
			responses.WriteUserError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "Please provide email. It is a mandatory field."))
			return
		}

		email, err := validators.Email(payload.Email)
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.Create(r.Context(), usersvc.CreateUserInput{
			Email:         email,
			Firstname:     payload.Firstname,
			Lastname:      payload.Lastname,
			Designation:   payload.Designation,
			Address:       payload.Address,
			Website:       payload.Website,
			Qualification: payload.Qualification,
		})
		if err != nil {
			responses.WriteUserError(r.Context(), logg, w, err)
			return
		}

		responses.WriteUser(w, http.StatusCreated, responses.UserEnvelope{
			Status:      responses.StatusSuccess,
			Description: fmt.Sprintf("Successfully inserted record for user. ID: %s", id),
		})
	}
}
