package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/deppfellow/storefront-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Endpoint is the preamble every API route runs before its handler.
//
// It always sets the CORS headers (any origin, the route's methods plus
// OPTIONS, and the Content-Type request header). A preflight OPTIONS request
// is answered with 200 and an empty body. Any method not in methods is
// rejected with the 405 envelope.
//
// Routes using it are registered for every method (echo.Any), so this gate
// and not the router decides what is allowed.
func Endpoint(methods ...string) echo.MiddlewareFunc {
	allowMethods := strings.Join(append(slices.Clone(methods), http.MethodOptions), ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, "*")
			header.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			header.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)

			method := c.Request().Method
			if method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			if !slices.Contains(methods, method) {
				return errs.NewMethodNotAllowedError()
			}

			return next(c)
		}
	}
}
