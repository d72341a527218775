package controllers

import (
	"net/http"

	"github.com/apurvakunkulol/directory-backend/api/responses"
	"github.com/apurvakunkulol/directory-backend/pkg/config"
	"github.com/apurvakunkulol/directory-backend/pkg/db"
	"github.com/apurvakunkulol/directory-backend/pkg/logger"
	"github.com/apurvakunkulol/directory-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Directory-Env", cfg.App.Env)
		responses.WriteData(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Directory-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				healthy = false
				checks["database"] = "down"
				if logg != nil {
					logg.Error(r.Context(), "readiness: database ping failed", err)
				}
			} else {
				checks["database"] = "up"
			}
		}

		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				healthy = false
				checks["redis"] = "down"
				if logg != nil {
					logg.Error(r.Context(), "readiness: redis ping failed", err)
				}
			} else {
				checks["redis"] = "up"
			}
		}

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}

		responses.WriteData(w, status, map[string]any{"status": state, "checks": checks})
	}
}
