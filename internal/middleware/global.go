package middleware

import (
	"net/http"

	"github.com/deppfellow/storefront-api/internal/errs"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/deppfellow/storefront-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups global middleware and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// RequestLogger writes one "API" log line per request, with severity based on status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// The global error handler writes the final status after this runs,
			// so take it from the error when there is one.
			// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := v.Status
			if v.Error != nil {
				statusCode = toHTTPError(v.Error).Status
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns panics into errors handled by GlobalErrorHandler (500).
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds standard security-related headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error a handler or middleware returns ends up here and leaves as
// the failure envelope:
//   - *errs.HTTPError is written as is
//   - echo's 404 (no route) and 405 become their envelopes
//   - anything else is a 500 carrying the error's description
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)

	if httpErr.Status >= http.StatusInternalServerError {
		sqlerr.LogFields(logger.Error().Stack(), err).
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Str("route", c.Path()).
			Msg(httpErr.Category)
	} else {
		logger.Debug().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Category)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr)
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch {
		case echoErr.Code == http.StatusNotFound:
			return errs.NewRouteNotFoundError()
		case echoErr.Code == http.StatusMethodNotAllowed:
			return errs.NewMethodNotAllowedError()
		case echoErr.Code >= http.StatusInternalServerError:
			return errs.NewInternalServerError(echoMessage(echoErr))
		default:
			return &errs.HTTPError{
				Category: http.StatusText(echoErr.Code),
				Message:  echoMessage(echoErr),
				Code:     errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
				Status:   echoErr.Code,
			}
		}
	}

	if err == nil {
		return errs.NewInternalServerError("")
	}
	return errs.NewInternalServerError(err.Error())
}

func echoMessage(echoErr *echo.HTTPError) string {
	if msg, ok := echoErr.Message.(string); ok {
		return msg
	}
	if echoErr.Internal != nil {
		return echoErr.Internal.Error()
	}
	return ""
}
