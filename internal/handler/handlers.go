package handler

import (
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/deppfellow/storefront-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object around.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Auth     *AuthHandler
	Customer *CustomerHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Auth:     NewAuthHandler(s, services.Auth),
		Customer: NewCustomerHandler(s, services.Customer),
	}
}
