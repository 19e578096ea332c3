package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/storefront-api/internal/middleware"
	"github.com/deppfellow/storefront-api/internal/response"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/labstack/echo/v4"
)

// TimestampFormat is ISO-8601 with milliseconds, always in UTC.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

var errDatabaseUnavailable = errors.New("database not configured")

// Pinger is the dependency check behind GET /status.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness (/health) and readiness (/status) endpoints.
type HealthHandler struct {
	Handler
	db  Pinger
	now func() time.Time
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		now:     time.Now,
	}
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

// Health reports that the process is up. It checks nothing else.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Success{
		Message: "Backend is running",
		Extra: map[string]any{
			"status":    "ok",
			"timestamp": h.now().UTC().Format(TimestampFormat),
		},
	})
}

// CheckHealth pings the database and reports readiness.
//
// It returns:
//   - 200 OK if all checks pass
//   - 503 Service Unavailable if any check fails
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	isHealthy := true

	// ---------------- Database connectivity check ----------------------------
	timeout := h.server.Config.Observability.HealthCheckTimeout()
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	dbStart := time.Now()

	var err error
	if h.db == nil {
		err = errDatabaseUnavailable
	} else {
		err = h.db.Ping(ctx)
	}

	if err != nil {
		checks["database"] = map[string]any{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
			"error":         err.Error(),
		}
		isHealthy = false

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": time.Since(dbStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		}
	} else {
		checks["database"] = map[string]any{
			"status":        "healthy",
			"response_time": time.Since(dbStart).String(),
		}
	}

	// ---------------- Overall status + response ------------------------------
	extra := map[string]any{
		"status":      "healthy",
		"timestamp":   h.now().UTC().Format(TimestampFormat),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !isHealthy {
		extra["status"] = "unhealthy"
		extra["success"] = false

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, extra)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response.Success{Extra: extra})
}
