package router

import (
	"net/http"

	"github.com/deppfellow/storefront-api/internal/handler"
	"github.com/deppfellow/storefront-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerCustomerRoutes(r *echo.Echo, h *handler.Handlers) {
	r.Any("/customers/:id",
		handler.Handle(h.Customer.Handler, h.Customer.GetByID, http.StatusOK, handler.NewGetCustomerRequest),
		middleware.Endpoint(http.MethodGet),
	)
}
