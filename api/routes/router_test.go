package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	productsvc "github.com/apurvakunkulol/directory-backend/internal/products"
	usersvc "github.com/apurvakunkulol/directory-backend/internal/users"
	pkgAuth "github.com/apurvakunkulol/directory-backend/pkg/auth"
	"github.com/apurvakunkulol/directory-backend/pkg/config"
	"github.com/apurvakunkulol/directory-backend/pkg/metrics"
	"github.com/apurvakunkulol/directory-backend/pkg/redis"
)

type routeUserService struct{}

func (routeUserService) Fetch(context.Context, string) (*usersvc.UserDTO, error) {
	return &usersvc.UserDTO{Email: "a@b.com"}, nil
}

func (routeUserService) Upsert(context.Context, string, usersvc.UpdateUserInput) (*usersvc.UpsertResult, error) {
	return &usersvc.UpsertResult{Outcome: usersvc.OutcomeUpdated}, nil
}

func (routeUserService) Delete(context.Context, string) error { return nil }

func (routeUserService) Create(context.Context, usersvc.CreateUserInput) (uuid.UUID, error) {
	return uuid.New(), nil
}

type routeProductService struct{}

func (routeProductService) FetchByProductID(context.Context, string) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ProductID: "widget_abcde", Name: "widget"}, nil
}

func (routeProductService) Create(context.Context, productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ProductID: "widget_abcde", Name: "widget"}, nil
}

type stubDBPinger struct{}

func (stubDBPinger) Ping(context.Context) error { return nil }

func newTestRouter() (http.Handler, *config.Config) {
	cfg := &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "directory",
			ExpirationMinutes: 30,
		},
	}
	router := NewRouter(
		cfg,
		nil,
		stubDBPinger{},
		redis.NewFromCmdable(nil),
		metrics.NewHTTPMetrics(),
		routeUserService{},
		routeProductService{},
	)
	return router, cfg
}

func TestRouterHealthLiveIsOpen(t *testing.T) {
	router, _ := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterMetricsIsOpen(t *testing.T) {
	router, _ := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterUserRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v0.1/a@b.com"},
		{http.MethodPut, "/api/v0.1/a@b.com"},
		{http.MethodDelete, "/api/v0.1/a@b.com"},
		{http.MethodPost, "/api/v0.1/create"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 got %d", tc.method, tc.path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Authorization Required") {
			t.Fatalf("%s %s: unexpected body %s", tc.method, tc.path, rec.Body.String())
		}
	}
}

func TestRouterUserRouteAcceptsToken(t *testing.T) {
	router, cfg := newTestRouter()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), "directory-admin")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0.1/a@b.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterProductRoutesAreOpen(t *testing.T) {
	router, _ := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product/api/v0.1/product_description/widget_abcde", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router, _ := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
