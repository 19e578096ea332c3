// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/storefront-api/internal/handler"
	"github.com/deppfellow/storefront-api/internal/middleware"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with global middleware and every route.
//
// Middleware order matters: the New Relic transaction must exist before
// tracing attributes are added, and the request id before the request
// logger is built.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middleware.RequestID(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)
	registerAuthRoutes(router, h)
	registerCustomerRoutes(router, h)

	return router
}
