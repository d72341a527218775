package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/go-chi/chi/v5"

	productsvc "github.com/apurvakunkulol/directory-backend/internal/products"
	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
)

type stubProductService struct {
	fetchDTO  *productsvc.ProductDTO
	fetchErr  error
	createDTO *productsvc.ProductDTO
	createErr error
	gotID     string
	gotCreate productsvc.CreateProductInput
}

func (s *stubProductService) FetchByProductID(_ context.Context, productID string) (*productsvc.ProductDTO, error) {
	s.gotID = productID
	return s.fetchDTO, s.fetchErr
}

func (s *stubProductService) Create(_ context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	s.gotCreate = input
	return s.createDTO, s.createErr
}

func productRouter(svc productsvc.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/product/api/v0.1/product_description/{productID}", ProductFetch(svc, nil))
	r.Post("/product/api/v0.1/create_product", ProductCreate(svc, nil))
	return r
}

func decodeProductEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestProductFetchSuccess(t *testing.T) {
	svc := &stubProductService{fetchDTO: &productsvc.ProductDTO{
		ProductID:  "widget_abcde",
		Name:       "widget",
		Attributes: map[string]any{"color": "red"},
	}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/api/v0.1/product_description/widget_abcde", nil)

	productRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotID != "widget_abcde" {
		t.Fatalf("expected product id to flow through, got %q", svc.gotID)
	}
	envelope := decodeProductEnvelope(t, rec)
	if envelope["status"] != "success" {
		t.Fatalf("expected success status, got %v", envelope["status"])
	}
	desc, ok := envelope["product_description"].(map[string]any)
	if !ok {
		t.Fatalf("expected product_description object, got %v", envelope["product_description"])
	}
	if desc["product_id"] != "widget_abcde" {
		t.Fatalf("unexpected product_id %v", desc["product_id"])
	}
}

func TestProductFetchNotFound(t *testing.T) {
	svc := &stubProductService{fetchErr: pkgerrors.New(pkgerrors.CodeNotFound, "No product found for the given ID: widget_zzzzz")}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/api/v0.1/product_description/widget_zzzzz", nil)

	productRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	envelope := decodeProductEnvelope(t, rec)
	if envelope["message"] != "No product found for the given ID: widget_zzzzz" {
		t.Fatalf("unexpected message %v", envelope["message"])
	}
}

func TestProductCreateSuccess(t *testing.T) {
	svc := &stubProductService{createDTO: &productsvc.ProductDTO{ProductID: "widget_abcde", Name: "widget"}}
	body := []byte(`{"name":"widget","color":"red","stock":3}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product/api/v0.1/create_product", bytes.NewReader(body))

	productRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.gotCreate.Name != "widget" {
		t.Fatalf("expected name widget, got %q", svc.gotCreate.Name)
	}
	if _, present := svc.gotCreate.Attributes["name"]; present {
		t.Fatalf("name should be lifted out of attributes, got %v", svc.gotCreate.Attributes)
	}
	if svc.gotCreate.Attributes["color"] != "red" {
		t.Fatalf("expected color attribute, got %v", svc.gotCreate.Attributes)
	}

	envelope := decodeProductEnvelope(t, rec)
	msg, _ := envelope["message"].(string)
	if !regexp.MustCompile(`^Successfully inserted new product\. ID: widget_[a-z]{5}$`).MatchString(msg) {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestProductCreateEmptyBody(t *testing.T) {
	svc := &stubProductService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product/api/v0.1/create_product", bytes.NewReader([]byte(`{}`)))

	productRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	envelope := decodeProductEnvelope(t, rec)
	if envelope["message"] != "Please provide product details." {
		t.Fatalf("unexpected message %v", envelope["message"])
	}
}

func TestProductCreateMissingName(t *testing.T) {
	svc := &stubProductService{createErr: pkgerrors.New(pkgerrors.CodeValidation, "Please provide product details.")}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product/api/v0.1/create_product", bytes.NewReader([]byte(`{"color":"red"}`)))

	productRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
