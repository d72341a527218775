package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apurvakunkulol/directory-backend/api/controllers"
	"github.com/apurvakunkulol/directory-backend/api/middleware"
	"github.com/apurvakunkulol/directory-backend/internal/products"
	"github.com/apurvakunkulol/directory-backend/internal/users"
	"github.com/apurvakunkulol/directory-backend/pkg/config"
	"github.com/apurvakunkulol/directory-backend/pkg/db"
	"github.com/apurvakunkulol/directory-backend/pkg/logger"
	"github.com/apurvakunkulol/directory-backend/pkg/metrics"
	"github.com/apurvakunkulol/directory-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	userService users.Service,
	productService products.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
		Post("/auth", controllers.AuthLogin(cfg, logg))

	r.Route("/api/v0.1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Post("/create", controllers.UserCreate(userService, logg))
		r.Get("/{email}", controllers.UserFetch(userService, logg))
		r.Put("/{email}", controllers.UserUpsert(userService, logg))
		r.Delete("/{email}", controllers.UserDelete(userService, logg))
	})

	// Catalogue routes predate the token gate and stay open.
	r.Route("/product/api/v0.1", func(r chi.Router) {
		r.Get("/product_description/{productID}", controllers.ProductFetch(productService, logg))
		r.Post("/create_product", controllers.ProductCreate(productService, logg))
	})

	return r
}
