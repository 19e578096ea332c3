package service

import (
	"github.com/deppfellow/storefront-api/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Customer *CustomerService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User),
		Customer: NewCustomerService(repos.Customer),
	}
}
