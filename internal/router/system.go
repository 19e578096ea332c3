package router

import (
	"net/http"

	"github.com/deppfellow/storefront-api/internal/handler"
	"github.com/deppfellow/storefront-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business logic:
// liveness, readiness and the API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.Any("/health", h.Health.Health, middleware.Endpoint(http.MethodGet))
	r.Any("/status", h.Health.CheckHealth, middleware.Endpoint(http.MethodGet))

	// openapi.json and any future docs assets.
	r.Static("/static", handler.OpenAPIDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
