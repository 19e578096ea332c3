package router

import (
	"net/http"

	"github.com/deppfellow/storefront-api/internal/handler"
	"github.com/deppfellow/storefront-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(r *echo.Echo, h *handler.Handlers) {
	auth := r.Group("/auth")

	auth.Any("/forgot-password",
		handler.Handle(h.Auth.Handler, h.Auth.ForgotPassword, http.StatusOK, handler.NewForgotPasswordRequest),
		middleware.Endpoint(http.MethodPost),
	)

	auth.Any("/me",
		handler.Handle(h.Auth.Handler, h.Auth.Me, http.StatusOK, handler.NewMeRequest),
		middleware.Endpoint(http.MethodGet),
	)
}
