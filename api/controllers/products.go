package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/apurvakunkulol/directory-backend/api/responses"
	productsvc "github.com/apurvakunkulol/directory-backend/internal/products"
	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
	"github.com/apurvakunkulol/directory-backend/pkg/logger"
)

// ProductFetch returns the catalogue entry for the path-supplied identifier.
func ProductFetch(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := strings.TrimSpace(chi.URLParam(r, "productID"))
		if productID == "" {
			responses.WriteProductError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "Please supply product ID."))
			return
		}

		product, err := svc.FetchByProductID(r.Context(), productID)
		if err != nil {
			responses.WriteProductError(r.Context(), logg, w, err)
			return
		}

		responses.WriteProductSuccess(w, "", product)
	}
}

// ProductCreate stores an arbitrary attribute document under a generated
// identifier. The body is free-form apart from the mandatory name field.
func ProductCreate(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			_, _ = io.Copy(io.Discard, r.Body)
		}()

		var attributes map[string]any
		if err := json.NewDecoder(r.Body).Decode(&attributes); err != nil || len(attributes) == 0 {
			responses.WriteProductError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "Please provide product details."))
			return
		}

		name, _ := attributes["name"].(string)
		delete(attributes, "name")

		product, err := svc.Create(r.Context(), productsvc.CreateProductInput{
			Name:       name,
			Attributes: attributes,
		})
		if err != nil {
			responses.WriteProductError(r.Context(), logg, w, err)
			return
		}

		responses.WriteProduct(w, http.StatusCreated, responses.ProductEnvelope{
			Status:  responses.StatusSuccess,
			Message: fmt.Sprintf("Successfully inserted new product. ID: %s", product.ProductID),
		})
	}
}
