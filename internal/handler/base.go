package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/storefront-api/internal/errs"
	"github.com/deppfellow/storefront-api/internal/middleware"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/deppfellow/storefront-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared application dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function: it receives a bound and
// validated request and returns the response body or an error.
//
// Req is a pointer type, e.g. *GetCustomerRequest, because echo's Bind
// needs a pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Identifiable requests name the identifier they target, so failures can
// be logged with it (e.g. "customer_id").
type Identifiable interface {
	LogIdentifier() (key, value string)
}

// ResponseHandler defines how a successful handler result is written to
// the HTTP response.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes for the response.
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// handleRequest is the shared execution pipeline for all typed handlers.
//
// It centralizes:
//   - request binding + validation
//   - structured logging (with request context)
//   - New Relic tracing attributes and error reporting
//   - timing (validation duration, handler duration, total duration)
//   - response writing
//
// Errors are returned untouched; GlobalErrorHandler writes them.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		// Invalid input is the client's fault; the request log line already records the 400.
		logger.Debug().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	if id, ok := any(req).(Identifiable); ok {
		key, value := id.LogIdentifier()
		logger = logger.With().Str(key, value).Logger()
		if txn != nil {
			txn.AddAttribute("request."+key, value)
		}
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logHandlerError(&logger, err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// logHandlerError logs expected outcomes (404 and other 4xx) below error level.
func logHandlerError(logger *zerolog.Logger, err error) *zerolog.Event {
	if isClientError(err) {
		return logger.Info().Err(err)
	}
	return logger.Error().Stack().Err(err)
}

func isClientError(err error) bool {
	var httpErr *errs.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status < http.StatusInternalServerError
}

// Handle wraps a typed handler with binding, validation, logging and tracing,
// and writes its result as JSON with status.
//
// newReq returns a fresh request value for every call:
//
//	r.Any("/customers/:id", handler.Handle(h.Handler, h.GetByID, http.StatusOK, NewGetCustomerRequest), ...)
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
