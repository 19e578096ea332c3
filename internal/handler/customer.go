package handler

import (
	"github.com/deppfellow/storefront-api/internal/response"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/deppfellow/storefront-api/internal/service"
	"github.com/deppfellow/storefront-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// GetCustomerRequest carries the customer id. It normally comes from the
// path; an id query list (?id=a&id=b) is accepted too, and only its first
// value is used.
type GetCustomerRequest struct {
	PathID   string   `param:"id"`
	QueryIDs []string `query:"id"`
}

func NewGetCustomerRequest() *GetCustomerRequest { return &GetCustomerRequest{} }

// CustomerID is the normalized single id.
func (r *GetCustomerRequest) CustomerID() string {
	if r.PathID != "" {
		return r.PathID
	}
	if len(r.QueryIDs) > 0 {
		return r.QueryIDs[0]
	}
	return ""
}

func (r *GetCustomerRequest) Validate() error {
	if r.CustomerID() == "" {
		return validation.CustomValidationErrors{{Field: "id", Message: "is required"}}
	}
	return nil
}

func (r *GetCustomerRequest) FailureMessage() string { return "Invalid customer ID" }

func (r *GetCustomerRequest) LogIdentifier() (string, string) { return "customer_id", r.CustomerID() }

type CustomerHandler struct {
	Handler
	customerService *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:         NewHandler(s),
		customerService: customerService,
	}
}

// GetByID returns the customer with orders (newest first, items and
// products expanded) and addresses.
func (h *CustomerHandler) GetByID(c echo.Context, req *GetCustomerRequest) (response.Success, error) {
	customer, err := h.customerService.GetByID(c.Request().Context(), req.CustomerID())
	if err != nil {
		return response.Success{}, err
	}

	return response.OK(customer), nil
}
